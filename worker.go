package parcount

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// scan counts the elements of part strictly greater than k.
func scan(part []int, k int) int {
	n := 0
	for _, v := range part {
		if v > k {
			n++
		}
	}
	return n
}

// Reference is the single-threaded count of elements of data strictly
// greater than threshold.
func Reference(data []int, threshold int) int {
	return scan(data, threshold)
}

// work runs one worker over p and publishes its count according to the
// discipline.
func (c *syncContext) work(p Partition, inline bool) error {
	if !p.within(len(c.data)) || p.Index < 0 || p.Index >= len(c.slots) {
		return fmt.Errorf("%w: %v over %d elements", ErrPartitionBounds, p, len(c.data))
	}

	r := &c.reports[p.Index]
	*r = WorkerReport{Worker: p.Index, Partition: p, Inline: inline}
	if c.discipline == Exclusive {
		c.acquire(r)
		defer c.lock.Unlock()
	}

	r.Started = time.Now()
	c.enter()
	r.Found = scan(c.data[p.Offset:p.End()], c.threshold)
	c.leave()

	switch {
	case c.discipline != Shared:
		c.slots[p.Index].N = r.Found
	case c.fetchAdd:
		c.acc.Add(r.Found)
	default:
		c.acc.Merge(r.Found)
	}
	r.Finished = time.Now()

	c.logWorker(r)
	return nil
}

func (c *syncContext) logWorker(r *WorkerReport) {
	if !c.log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	p := r.Partition
	c.log.Debug("worker is speaking",
		"worker", r.Worker,
		"inline", r.Inline,
		"queued", r.Queued,
		"offset", p.Offset,
		"len", p.Len,
		"values", c.data[p.Offset:p.End()],
	)
	c.log.Debug("worker finished",
		"worker", r.Worker,
		"found", r.Found,
		"threshold", c.threshold,
		"took", r.Duration(),
	)
}
