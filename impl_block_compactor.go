package disk_compaction_demo

// BlockCompactor moves single blocks from the end of the disk into the first
// free block, until no gap is left before the last used block.
type BlockCompactor struct{}

var _ Compactor = BlockCompactor{}

// Checksum implements Compactor.Checksum.
//
// It walks the files from both ends. lo is the file whose original blocks are
// being placed, hi is the file whose blocks are used to fill the gap after lo.
// hiRemaining is the number of blocks of hi that have not been placed yet.
func (BlockCompactor) Checksum(m DiskMap) uint64 {
	var (
		p           placement
		lo          = 0
		hi          = m.FileCount()
		hiRemaining = 0
	)

	for lo <= hi {
		if lo == hi {
			// hi was partially moved, the rest stays right after lo-1
			p.put(hiRemaining, hi)
			break
		}

		p.put(m.Size(lo), lo)

		available := m.GapAfter(lo)
		for hi > lo && available > 0 {
			moved := min(hiRemaining, available)
			p.put(moved, hi)
			available -= moved
			hiRemaining -= moved

			if hiRemaining == 0 {
				hi--
				hiRemaining = m.Size(hi)
			}
		}

		lo++
	}
	return p.checksum
}
