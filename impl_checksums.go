package disk_compaction_demo

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Checksums holds the result of both compaction strategies of one disk map.
type Checksums struct {
	Block uint64
	File  uint64
}

// ComputeChecksums runs BlockCompactor and FileCompactor on m. When parallel is
// true the two passes run on separate goroutines; m is only read and each pass
// owns its own state, so no locking is needed.
//
// The passes can not be interrupted, ctx is only checked before each of them
// starts.
func ComputeChecksums(ctx context.Context, m DiskMap, parallel bool) (Checksums, error) {
	var ret Checksums
	if !parallel {
		if err := ctx.Err(); err != nil {
			return ret, err
		}
		ret.Block = BlockCompactor{}.Checksum(m)
		if err := ctx.Err(); err != nil {
			return Checksums{}, err
		}
		ret.File = FileCompactor{}.Checksum(m)
		return ret, nil
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return err
		}
		ret.Block = BlockCompactor{}.Checksum(m)
		return nil
	})
	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return err
		}
		ret.File = FileCompactor{}.Checksum(m)
		return nil
	})
	if err := g.Wait(); err != nil {
		return Checksums{}, err
	}
	return ret, nil
}
