package disk_compaction_demo

// maxDigit is the largest length a single disk map digit can encode.
const maxDigit = 9

// DiskMap is a read-only view over a disk map buffer. Even positions hold file
// sizes and odd positions hold the gap after the file, so file i is described
// by data[2*i] and data[2*i+1].
//
// DiskMap borrows the buffer, the caller must not modify it while any
// compaction is running.
type DiskMap struct {
	data []byte
}

// NewDiskMap wraps data, which must contain only ASCII digits.
func NewDiskMap(data []byte) DiskMap {
	return DiskMap{data: data}
}

// FileCount returns the number of files encoded in the map.
func (m DiskMap) FileCount() int {
	return (len(m.data) + 1) >> 1
}

// Size returns the block count of file id, or 0 when id is out of range.
func (m DiskMap) Size(id int) int {
	return m.digit(id * 2)
}

// GapAfter returns the free block count after file id, or 0 when id is out of
// range. The last file never has a gap.
func (m DiskMap) GapAfter(id int) int {
	return m.digit(id*2 + 1)
}

func (m DiskMap) digit(pos int) int {
	if pos < 0 || pos >= len(m.data) {
		return 0
	}
	return int(m.data[pos] - '0')
}
