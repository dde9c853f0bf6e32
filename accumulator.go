package parcount

import (
	"sync/atomic"
)

// Accumulator is the single running total shared by all workers of the
// Shared discipline.
//
// Each access is atomic on its own, so the race detector stays quiet, but
// Merge is a read followed by a write: two merges that both read before
// either writes lose one of the additions. Add is the correct counterpart.
type Accumulator struct {
	_ noCopy
	v atomic.Int64
}

// Merge adds n by loading the total and storing total+n.
// Concurrent merges may lose updates.
func (a *Accumulator) Merge(n int) {
	cur := a.v.Load()
	a.v.Store(cur + int64(n))
}

// Add adds n with a single atomic fetch-add.
func (a *Accumulator) Add(n int) {
	a.v.Add(int64(n))
}

// Load returns the current total.
func (a *Accumulator) Load() int {
	return int(a.v.Load())
}
