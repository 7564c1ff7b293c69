package disk_compaction_demo

import (
	"io"

	goerrors "github.com/go-errors/errors"
	"github.com/pkg/errors"
)

// TrimDigits returns data without its trailing non-digit bytes, such as the
// line ending of an input file.
func TrimDigits(data []byte) []byte {
	end := len(data)
	for end > 0 && !isDigit(data[end-1]) {
		end--
	}
	return data[:end]
}

// Validate checks that data only contains ASCII digits.
//
// If not, it returns ErrInvalidDigit.
func Validate(data []byte) error {
	for i, b := range data {
		if !isDigit(b) {
			return errors.Wrapf(ErrInvalidDigit, "byte %q at offset %d", b, i)
		}
	}
	return nil
}

// ReadDiskMap reads a whole disk map from r.
func ReadDiskMap(r io.Reader) (DiskMap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return DiskMap{}, goerrors.Wrap(err, 0)
	}
	data = TrimDigits(data)
	if err = Validate(data); err != nil {
		return DiskMap{}, err
	}
	return NewDiskMap(data), nil
}

// MappedDiskMap is a DiskMap backed by a file mapped into memory. The DiskMap
// must not be used after Close.
type MappedDiskMap struct {
	m      DiskMap
	region []byte
}

// DiskMap returns the trimmed disk map of the file.
func (f *MappedDiskMap) DiskMap() DiskMap {
	return f.m
}

// Close releases the mapped file.
func (f *MappedDiskMap) Close() error {
	if f.region == nil {
		return nil
	}
	region := f.region
	f.region = nil
	f.m = DiskMap{}
	return unmap(region)
}

// OpenDiskMap maps the file at path into memory and returns the disk map it
// contains, with trailing non-digit bytes trimmed.
func OpenDiskMap(path string) (*MappedDiskMap, error) {
	region, err := mapFile(path)
	if err != nil {
		return nil, err
	}
	data := TrimDigits(region)
	if err = Validate(data); err != nil {
		_ = unmap(region)
		return nil, errors.Wrapf(err, "invalid disk map in %s", path)
	}
	return &MappedDiskMap{m: NewDiskMap(data), region: region}, nil
}
