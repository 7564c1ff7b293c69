//go:build unix

package disk_compaction_demo

import (
	"os"

	goerrors "github.com/go-errors/errors"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// mapFile maps the file at path read-only. I/O errors carry the stack of
// this call, see goerrors.Error.ErrorStack.
func mapFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, goerrors.Wrap(err, 0)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, goerrors.Wrap(err, 0)
	}
	size := stat.Size()
	if size == 0 {
		// mmap refuses zero length
		return nil, nil
	}
	if int64(int(size)) != size {
		return nil, errors.Errorf("file is too large to map: %d", size)
	}

	region, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, goerrors.WrapPrefix(err, "mmap "+path, 0)
	}
	return region, nil
}

func unmap(region []byte) error {
	return errors.WithStack(unix.Munmap(region))
}
