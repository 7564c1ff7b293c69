package disk_compaction_demo

import "fmt"

// freeFiles is a structure to query files that are not placed yet, scanning
// from the end of the disk map. It divides the scanned files into buckets by
// their size, so a query for a gap only needs to look at the front of the
// buckets that fit.
//
// Files are loaded lazily. A file is only scanned when no bucket can serve a
// query, and a scanned file that fits the query is returned directly without
// being put into a bucket.
type freeFiles struct {
	m DiskMap
	// buckets[i] holds files of size i. buckets[0] is never used because a file
	// of size 0 always fits and is returned by the scan.
	buckets [maxDigit + 1]fileBucket
	// nextUnscannedID is the lowest file ID that has been scanned. All IDs in the
	// buckets are not less than it, files below it are not scanned yet.
	nextUnscannedID int
}

// newFreeFiles creates a freeFiles that has not scanned any file of m.
func newFreeFiles(m DiskMap) *freeFiles {
	s := &freeFiles{m: m, nextUnscannedID: m.FileCount()}
	for i := range s.buckets {
		s.buckets[i].size = i
	}
	return s
}

// findAndRemove returns a file whose size is not larger than maxSize and whose
// ID is larger than minFileID, and forgets it. Among the buckets it prefers the
// file with the largest ID, which is the file that would be moved first when
// moving files in descending ID order.
//
// The caller must not decrease minFileID between calls, the entries that are
// not larger than minFileID are dropped.
func (s *freeFiles) findAndRemove(maxSize int, minFileID int) (int, bool) {
	if maxSize > maxDigit {
		maxSize = maxDigit
	}

	var chosen *fileBucket
	for size := maxSize; size > 0; size-- {
		b := &s.buckets[size]
		front, ok := b.front()
		if !ok {
			continue
		}
		// IDs are decreasing from front to back, when the front is stale all
		// the others are.
		if front <= minFileID {
			b.clear()
			continue
		}
		if chosen == nil {
			chosen = b
			continue
		}
		if chosenFront, _ := chosen.front(); chosenFront < front {
			chosen = b
		}
	}
	if chosen != nil {
		return chosen.take(), true
	}

	for s.nextUnscannedID-1 > minFileID {
		s.nextUnscannedID--
		id := s.nextUnscannedID
		size := s.m.Size(id)
		if size <= maxSize {
			return id, true
		}
		s.buckets[size].put(id)
	}
	return 0, false
}

// fileBucket is a FIFO queue of file IDs with the same size.
type fileBucket struct {
	size int
	ids  []int
	head int
}

func (b *fileBucket) put(id int) {
	if b.size == 0 {
		panic(fmt.Sprintf("file of size 0 should not be put into a bucket. id: %d", id))
	}
	b.ids = append(b.ids, id)
}

func (b *fileBucket) front() (int, bool) {
	if b.len() == 0 {
		return 0, false
	}
	return b.ids[b.head], true
}

func (b *fileBucket) take() int {
	id := b.ids[b.head]
	b.head++
	if b.len() == 0 {
		b.clear()
	}
	return id
}

func (b *fileBucket) len() int {
	return len(b.ids) - b.head
}

func (b *fileBucket) clear() {
	b.ids = b.ids[:0]
	b.head = 0
}
