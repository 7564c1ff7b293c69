// Package cmd implements the diskcompact command line.
package cmd

import (
	"fmt"
	"io"
	"log"
	"time"

	goerrors "github.com/go-errors/errors"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	diskcompaction "github.com/lance6716/disk-compaction-demo"
)

const (
	defaultInputPath = "input.txt"
	stdinPath        = "-"
	strategyBoth     = "both"
)

type options struct {
	strategy string
	parallel bool
	verbose  bool
}

// NewRootCmd creates the diskcompact command. It reads a disk map from PATH
// and prints the checksum of each selected compaction strategy, one per line,
// block-level first.
func NewRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "diskcompact [PATH]",
		Short: "Compute disk map compaction checksums",
		Long: `diskcompact decodes a disk map, a line of digits that alternately describe
a file length and the free space after it, and prints the checksum of the disk
after compaction.

Strategies:
  - block: move single blocks from the end into the first free block
  - file:  move whole files, highest ID first, into the leftmost gap that fits
  - both:  print block, then file

PATH defaults to input.txt, use - to read from stdin.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultInputPath
			if len(args) > 0 {
				path = args[0]
			}
			err := run(cmd, path, opts)
			if err != nil && opts.verbose {
				logErrorStack(err)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", strategyBoth, "Compaction strategy: both, block or file")
	cmd.Flags().BoolVar(&opts.parallel, "parallel", false, "Run both strategies concurrently")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "Log progress to stderr")

	return cmd
}

func run(cmd *cobra.Command, path string, opts options) error {
	var compactor diskcompaction.Compactor
	if opts.strategy != strategyBoth {
		c, err := diskcompaction.StrategyByName(opts.strategy)
		if err != nil {
			return errors.Wrapf(err, "strategy %q", opts.strategy)
		}
		compactor = c
	}

	m, closeFn, err := load(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}
	defer closeFn()

	if opts.verbose {
		log.Printf("loaded disk map from %s: %d files", path, m.FileCount())
	}

	out := cmd.OutOrStdout()
	start := time.Now()
	if compactor == nil {
		sums, err := diskcompaction.ComputeChecksums(cmd.Context(), m, opts.parallel)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, sums.Block)
		fmt.Fprintln(out, sums.File)
	} else {
		fmt.Fprintln(out, compactor.Checksum(m))
	}
	if opts.verbose {
		log.Printf("checksums took %s", time.Since(start))
	}
	return nil
}

func load(stdin io.Reader, path string) (diskcompaction.DiskMap, func(), error) {
	if path == stdinPath {
		m, err := diskcompaction.ReadDiskMap(stdin)
		return m, func() {}, err
	}

	f, err := diskcompaction.OpenDiskMap(path)
	if err != nil {
		return diskcompaction.DiskMap{}, nil, err
	}
	return f.DiskMap(), func() {
		if err := f.Close(); err != nil {
			log.Printf("failed to unmap %s: %v", path, err)
		}
	}, nil
}

// logErrorStack logs the stack recorded where err was created. I/O errors
// carry a go-errors stack, the others a pkg/errors one.
func logErrorStack(err error) {
	var stackErr *goerrors.Error
	if errors.As(err, &stackErr) {
		log.Print(stackErr.ErrorStack())
		return
	}
	log.Printf("%+v", err)
}
