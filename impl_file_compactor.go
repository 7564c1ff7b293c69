package disk_compaction_demo

import "fmt"

// FileCompactor moves whole files, in descending ID order, into the leftmost
// gap that can hold them. A file is moved at most once and never split.
type FileCompactor struct{}

var _ Compactor = FileCompactor{}

// Checksum implements Compactor.Checksum.
//
// Instead of trying every file against every gap, it walks the gaps from left
// to right and asks freeFiles for the file that would have been moved into
// it.
func (FileCompactor) Checksum(m DiskMap) uint64 {
	var (
		p     placement
		files = newFreeFiles(m)
		moved = newMovedFiles(m.FileCount())
	)

	for id := 0; id < m.FileCount(); id++ {
		if moved.contains(id) {
			// already counted at its new place
			p.skip(m.Size(id))
		} else {
			p.put(m.Size(id), id)
		}

		available := m.GapAfter(id)
		for available > 0 {
			found, ok := files.findAndRemove(available, id)
			if !ok {
				p.skip(available)
				break
			}
			size := m.Size(found)
			p.put(size, found)
			available -= size
			moved.add(found)
		}
	}
	return p.checksum
}

// movedFiles records the IDs of files that have left their original place.
type movedFiles struct {
	moved []bool
}

func newMovedFiles(fileCnt int) *movedFiles {
	return &movedFiles{moved: make([]bool, fileCnt)}
}

func (f *movedFiles) add(id int) {
	if f.moved[id] {
		panic(fmt.Sprintf("file is moved twice. id: %d", id))
	}
	f.moved[id] = true
}

func (f *movedFiles) contains(id int) bool {
	return f.moved[id]
}
