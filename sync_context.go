package parcount

import (
	"log/slog"
	"sync/atomic"

	"github.com/llxisdsh/parcount/internal/opt"
)

// syncContext is everything the workers of one Count call share.
// A fresh one is built per call; nothing lives at package level.
type syncContext struct {
	_ noCopy

	data       []int
	threshold  int
	discipline Discipline
	fetchAdd   bool
	log        *slog.Logger

	// lock serializes worker bodies under Exclusive.
	lock TicketLock
	// start holds spawned workers back until all of them exist.
	start startGate
	// acc is the running total under Shared.
	acc Accumulator
	// slots[i] and reports[i] are written only by worker i and read only
	// after the join barrier.
	slots   []opt.Slot_
	reports []WorkerReport

	active atomic.Int32
	peak   atomic.Int32
}

func newSyncContext(data []int, workers int, o Options) *syncContext {
	log := o.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &syncContext{
		data:       data,
		threshold:  o.Threshold,
		discipline: o.Discipline,
		fetchAdd:   o.FetchAdd,
		log:        log.With("discipline", o.Discipline.String()),
		slots:      make([]opt.Slot_, workers),
		reports:    make([]WorkerReport, workers),
	}
}

// acquire takes the Exclusive lock for r, noting how many workers were
// ahead of it when the lock was not free.
func (c *syncContext) acquire(r *WorkerReport) {
	if c.lock.TryLock() {
		return
	}
	r.Queued = c.lock.Waiting()
	c.lock.Lock()
}

// enter marks a worker as scanning and records the highest number of
// workers seen scanning at once.
func (c *syncContext) enter() {
	n := c.active.Add(1)
	for {
		p := c.peak.Load()
		if n <= p || c.peak.CompareAndSwap(p, n) {
			return
		}
	}
}

func (c *syncContext) leave() {
	c.active.Add(-1)
}

// total reads the aggregate. Must only be called after the join barrier.
func (c *syncContext) total() int {
	if c.discipline == Shared {
		return c.acc.Load()
	}
	sum := 0
	for i := range c.slots {
		sum += c.slots[i].N
	}
	return sum
}
