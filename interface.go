package disk_compaction_demo

import "errors"

var (
	ErrInvalidDigit    = errors.New("disk map contains a non-digit byte")
	ErrUnknownStrategy = errors.New("unknown compaction strategy")
)

// Compactor simulates one compaction strategy over a disk map.
type Compactor interface {
	// Checksum returns the sum of position * file ID over every block after the
	// compaction. It never fails for a well-formed DiskMap.
	Checksum(m DiskMap) uint64
}

const (
	StrategyBlock = "block"
	StrategyFile  = "file"
)

// StrategyByName returns the Compactor registered under name.
//
// If the name is unknown, it returns ErrUnknownStrategy.
func StrategyByName(name string) (Compactor, error) {
	switch name {
	case StrategyBlock:
		return BlockCompactor{}, nil
	case StrategyFile:
		return FileCompactor{}, nil
	}
	return nil, ErrUnknownStrategy
}
