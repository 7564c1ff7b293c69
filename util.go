package disk_compaction_demo

// placement folds the implicit placement stream into a checksum. Only the
// current position and the running sum are kept, a run of blocks is added with
// the closed form of the arithmetic series.
type placement struct {
	pos      uint64
	checksum uint64
}

// put places cnt blocks of file id at the current position.
func (p *placement) put(cnt int, id int) {
	if cnt <= 0 {
		return
	}
	p.checksum += runChecksum(p.pos, uint64(cnt), uint64(id))
	p.pos += uint64(cnt)
}

// skip leaves cnt blocks empty, or occupied by a file that was already
// counted elsewhere.
func (p *placement) skip(cnt int) {
	if cnt <= 0 {
		return
	}
	p.pos += uint64(cnt)
}

// runChecksum returns sum_{k=0}^{cnt-1} (pos+k) * id.
func runChecksum(pos, cnt, id uint64) uint64 {
	return (pos*cnt + cnt*(cnt-1)/2) * id
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
