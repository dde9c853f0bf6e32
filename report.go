package parcount

import (
	"time"
)

// WorkerReport describes what one worker did.
type WorkerReport struct {
	Worker    int
	Partition Partition
	// Found is the worker's own count, before any merge.
	Found int
	// Inline is set for the worker run on the invoking goroutine.
	Inline bool
	// Queued is how many workers held or waited for the Exclusive lock
	// when this one asked for it. Always 0 under the other disciplines.
	Queued   int
	Started  time.Time
	Finished time.Time
}

// Duration returns how long the worker spent scanning, lock hold included.
func (r WorkerReport) Duration() time.Duration {
	return r.Finished.Sub(r.Started)
}
