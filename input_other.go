//go:build !unix

package disk_compaction_demo

import (
	"os"

	goerrors "github.com/go-errors/errors"
)

// mapFile reads the whole file where mmap is not available.
func mapFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerrors.Wrap(err, 0)
	}
	return data, nil
}

func unmap([]byte) error {
	return nil
}
