package parcount

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// Options configures Count.
type Options struct {
	// Threshold: elements strictly greater than it are counted.
	Threshold int
	// Workers is the number of partitions, >= 1. Workers-1 of them run on
	// spawned goroutines, the last one on the caller's goroutine.
	Workers int
	// Discipline selects the synchronization strategy.
	Discipline Discipline
	// FetchAdd makes the Shared discipline merge with an atomic add
	// instead of the lossy load-then-store.
	FetchAdd bool
	// Logger receives per-worker lines at debug level. Nil discards.
	Logger *slog.Logger
}

func (o *Options) validate() error {
	if o.Workers <= 0 {
		return fmt.Errorf("%w: worker count %d, want >= 1", ErrInvalidConfig, o.Workers)
	}
	if o.Discipline > Shared {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, o.Discipline)
	}
	return nil
}

// Result is the outcome of one Count call.
type Result struct {
	// Count is the aggregate of all partial counts.
	Count int
	// Elapsed covers spawning, scanning and the join barrier only.
	Elapsed    time.Duration
	Partitions []Partition
	// Reports holds one entry per worker, in worker order.
	Reports []WorkerReport
	// PeakOverlap is the largest number of workers seen scanning at the
	// same moment. It never exceeds 1 under Exclusive.
	PeakOverlap int
}

// Millis returns Elapsed in whole milliseconds.
func (r Result) Millis() int64 {
	return r.Elapsed.Milliseconds()
}

// Count splits data into opts.Workers partitions, scans them concurrently
// under opts.Discipline and aggregates the partial counts after every worker
// has finished.
//
// data must not be modified until Count returns.
func Count(data []int, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	parts, err := Split(len(data), opts.Workers)
	if err != nil {
		return Result{}, err
	}
	return run(data, parts, opts)
}

func run(data []int, parts []Partition, opts Options) (Result, error) {
	c := newSyncContext(data, len(parts), opts)
	spawned, last := parts[:len(parts)-1], parts[len(parts)-1]

	var g errgroup.Group
	begin := time.Now()
	for _, p := range spawned {
		g.Go(func() error {
			c.start.park()
			return c.work(p, false)
		})
	}
	if n := c.start.release(); n > 0 {
		c.log.Debug("start gate released", "parked", n, "spawned", len(spawned))
	}
	inlineErr := c.work(last, true)
	err := errors.Join(g.Wait(), inlineErr)
	elapsed := time.Since(begin)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Count:       c.total(),
		Elapsed:     elapsed,
		Partitions:  parts,
		Reports:     c.reports,
		PeakOverlap: int(c.peak.Load()),
	}
	c.log.Debug("concurrent phase finished",
		"workers", len(parts),
		"count", res.Count,
		"elapsed", elapsed,
		"peak_overlap", res.PeakOverlap,
	)
	return res, nil
}
