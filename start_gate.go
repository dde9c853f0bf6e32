package parcount

import (
	"sync/atomic"

	"github.com/llxisdsh/parcount/internal/opt"
)

// startGate lines spawned workers up so that all partitions begin scanning
// together. Workers park on it, the invoking goroutine releases it once
// it has spawned the last worker. A gate is released once and never reset.
type startGate struct {
	_ noCopy
	// state 64-bit:
	//   bit 63:   released
	//   bits 0-31: workers parked so far
	state atomic.Uint64
	sema  opt.Sema
}

const gateReleased = 1 << 63

// park blocks the worker until release. A worker arriving after release
// passes straight through.
func (g *startGate) park() {
	for {
		s := g.state.Load()
		if s&gateReleased != 0 {
			return
		}
		if g.state.CompareAndSwap(s, s+1) {
			g.sema.Park()
			return
		}
	}
}

// release lets every parked worker go and returns how many were parked.
// Later calls return 0.
func (g *startGate) release() int {
	for {
		s := g.state.Load()
		if s&gateReleased != 0 {
			return 0
		}
		if g.state.CompareAndSwap(s, s|gateReleased) {
			parked := int(uint32(s))
			for range parked {
				g.sema.Unpark()
			}
			return parked
		}
	}
}
