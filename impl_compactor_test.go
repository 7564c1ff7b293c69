package disk_compaction_demo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

const example = "2333133121414131402"

func TestChecksumExample(t *testing.T) {
	m := NewDiskMap([]byte(example))
	require.EqualValues(t, 1928, BlockCompactor{}.Checksum(m))
	require.EqualValues(t, 2858, FileCompactor{}.Checksum(m))

	// calling again gives the same result
	require.EqualValues(t, 1928, BlockCompactor{}.Checksum(m))
	require.EqualValues(t, 2858, FileCompactor{}.Checksum(m))
}

func TestChecksumSmall(t *testing.T) {
	cases := []struct {
		data  string
		block uint64
		file  uint64
	}{
		{"", 0, 0},
		{"0", 0, 0},
		{"5", 0, 0},
		{"19", 0, 0},
		// 022111222......
		{"12345", 60, 132},
		// no gap, nothing moves
		{"1010101", 14, 14},
		{"90909", 513, 513},
	}

	for _, c := range cases {
		m := NewDiskMap([]byte(c.data))
		require.Equal(t, c.block, BlockCompactor{}.Checksum(m), c.data)
		require.Equal(t, c.file, FileCompactor{}.Checksum(m), c.data)
		require.Equal(t, blocksChecksum(simulateBlockCompaction(m)), c.block, c.data)
		require.Equal(t, blocksChecksum(simulateFileCompaction(m)), c.file, c.data)
	}
}

func TestChecksumNoGap(t *testing.T) {
	data := []byte("304050601020")
	m := NewDiskMap(data)

	expected := uint64(0)
	offset := uint64(0)
	for id := 0; id < m.FileCount(); id++ {
		size := uint64(m.Size(id))
		expected += (offset*size + size*(size-1)/2) * uint64(id)
		offset += size
	}

	require.Equal(t, expected, BlockCompactor{}.Checksum(m))
	require.Equal(t, expected, FileCompactor{}.Checksum(m))
	require.Equal(t, blocksChecksum(materialize(m)), expected)
}

func TestBlockChecksumRandom(t *testing.T) {
	rnd := newRand(t)
	for i := 0; i < 2000; i++ {
		m := randomDiskMap(rnd, 60, true)
		blocks := simulateBlockCompaction(m)
		require.Equal(t, blocksChecksum(blocks), BlockCompactor{}.Checksum(m), string(m.data))
	}
}

func TestBlockChecksumConservation(t *testing.T) {
	rnd := newRand(t)
	for i := 0; i < 500; i++ {
		m := randomDiskMap(rnd, 60, true)
		blocks := simulateBlockCompaction(m)

		total := 0
		for id := 0; id < m.FileCount(); id++ {
			total += m.Size(id)
		}
		used := 0
		for _, id := range blocks {
			if id != freeBlock {
				used++
			}
		}
		require.Equal(t, total, used)
		// every used block is before every free block
		for pos := used; pos < len(blocks); pos++ {
			require.Equal(t, freeBlock, blocks[pos])
		}
	}
}

func TestFileChecksumRandom(t *testing.T) {
	rnd := newRand(t)
	for i := 0; i < 2000; i++ {
		// a file of size 0 splits the gap around it, so only non-empty files are
		// comparable with the block level simulation
		m := randomDiskMap(rnd, 60, false)
		blocks := simulateFileCompaction(m)
		require.Equal(t, blocksChecksum(blocks), FileCompactor{}.Checksum(m), string(m.data))
	}
}

func TestFileChecksumZeroSizeFile(t *testing.T) {
	// 0..22 : the empty file 1 sits between the two free blocks, so the gaps
	// are seen one by one and file 2 does not fit any of them
	m := NewDiskMap([]byte("110120"))
	require.EqualValues(t, 6, BlockCompactor{}.Checksum(m))
	require.EqualValues(t, (3+4)*2, FileCompactor{}.Checksum(m))

	// 0..2.3. : both files still fit a single free block
	m = NewDiskMap([]byte("11011011"))
	require.EqualValues(t, 1*3+2*2, FileCompactor{}.Checksum(m))
}

func TestStrategyByName(t *testing.T) {
	c, err := StrategyByName(StrategyBlock)
	require.NoError(t, err)
	require.IsType(t, BlockCompactor{}, c)

	c, err = StrategyByName(StrategyFile)
	require.NoError(t, err)
	require.IsType(t, FileCompactor{}, c)

	_, err = StrategyByName("defrag")
	require.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestComputeChecksums(t *testing.T) {
	m := NewDiskMap([]byte(example))
	expected := Checksums{Block: 1928, File: 2858}

	got, err := ComputeChecksums(context.Background(), m, false)
	require.NoError(t, err)
	require.Equal(t, expected, got)

	got, err = ComputeChecksums(context.Background(), m, true)
	require.NoError(t, err)
	require.Equal(t, expected, got)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, parallel := range []bool{false, true} {
		got, err = ComputeChecksums(ctx, m, parallel)
		require.ErrorIs(t, err, context.Canceled)
		require.Equal(t, Checksums{}, got)
	}
}

func TestComputeChecksumsParallelRandom(t *testing.T) {
	rnd := newRand(t)
	for i := 0; i < 200; i++ {
		m := randomDiskMap(rnd, 200, true)
		serial, err := ComputeChecksums(context.Background(), m, false)
		require.NoError(t, err)
		parallel, err := ComputeChecksums(context.Background(), m, true)
		require.NoError(t, err)
		require.Equal(t, serial, parallel)
	}
}
