package main

import (
	"context"
	"fmt"
	"hash"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/fastcrc"
	"github.com/hupe1980/fastcrc/internal/resource"
)

type sumFlags struct {
	algorithm    string
	jobs         int
	bwlimit      int64
	bufferSize   int
	bufferBudget int64
}

func newSumCommand(g *globalFlags) *cobra.Command {
	f := &sumFlags{}
	cmd := &cobra.Command{
		Use:   "sum [file...]",
		Short: "Prints the checksum of each file (stdin when none or \"-\")",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSum(cmd, g, f, args)
		},
	}
	cmd.Flags().StringVarP(&f.algorithm, "algorithm", "a", "crc32", "algorithm name or alias")
	cmd.Flags().IntVarP(&f.jobs, "jobs", "j", 1, "files hashed concurrently")
	cmd.Flags().Int64Var(&f.bwlimit, "bwlimit", 0, "read bandwidth limit in bytes per second (0 is unlimited)")
	cmd.Flags().IntVar(&f.bufferSize, "buffer-size", 256<<10, "read buffer size per job")
	cmd.Flags().Int64Var(&f.bufferBudget, "buffer-budget", 0, "total read buffer memory across jobs (0 is unlimited)")
	return cmd
}

type sumResult struct {
	sum   uint32
	bytes int64
}

func runSum(cmd *cobra.Command, g *globalFlags, f *sumFlags, files []string) error {
	alg, err := fastcrc.Lookup(f.algorithm)
	if err != nil {
		return err
	}
	if f.bufferSize <= 0 {
		return fmt.Errorf("invalid --buffer-size %d", f.bufferSize)
	}
	if len(files) == 0 {
		files = []string{"-"}
	}

	s, err := g.open()
	if err != nil {
		return err
	}
	defer s.Close()

	rc := resource.NewController(resource.Config{
		BufferBudgetBytes:  f.bufferBudget,
		MaxWorkers:         int64(max(f.jobs, 1)),
		IOLimitBytesPerSec: f.bwlimit,
	})
	lg := s.lg.WithVariant(alg.Name).WithBackend(s.backend)

	results := make([]sumResult, len(files))
	err = forEachFile(cmd.Context(), rc, files, func(ctx context.Context, i int, name string) error {
		h, err := alg.NewHash(s.opts...)
		if err != nil {
			return err
		}
		n, err := sumFile(ctx, rc, h, name, f.bufferSize)
		sum := h.Sum32()
		lg.LogSum(ctx, name, n, sum, err)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		results[i] = sumResult{sum: sum, bytes: n}
		return nil
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, name := range files {
		fmt.Fprintf(out, "%0*x  %d  %s\n", hexWidth(alg), results[i].sum, results[i].bytes, name)
	}
	return nil
}

// forEachFile runs fn for every file, at most rc.MaxWorkers at a time.
// The first error cancels the jobs still waiting for a worker.
func forEachFile(ctx context.Context, rc *resource.Controller, files []string, fn func(ctx context.Context, i int, name string) error) error {
	eg, ctx := errgroup.WithContext(ctx)
	for i, name := range files {
		eg.Go(func() error {
			if err := rc.AcquireWorker(ctx); err != nil {
				return err
			}
			defer rc.ReleaseWorker()
			return fn(ctx, i, name)
		})
	}
	return eg.Wait()
}

func sumFile(ctx context.Context, rc *resource.Controller, h hash.Hash32, name string, bufSize int) (int64, error) {
	var r io.Reader = stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return 0, err
		}
		defer f.Close()
		r = f
	}

	if err := rc.AcquireBuffer(ctx, int64(bufSize)); err != nil {
		return 0, err
	}
	defer rc.ReleaseBuffer(int64(bufSize))

	buf := make([]byte, bufSize)
	return io.CopyBuffer(h, resource.NewRateLimitedReader(ctx, r, rc), buf)
}
