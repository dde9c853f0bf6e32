package parcount

import (
	"sync/atomic"
)

// TicketLock is a fair, FIFO spin-lock.
//
// It is the lock of the Exclusive discipline: workers are admitted to their
// scan strictly in the order they asked for it, so a worker spawned early is
// never overtaken by one spawned later, and the inline worker waits its turn
// like the others.
//
//   - Lock(): takes a ticket, backs off until `serving` reaches it.
//   - Unlock(): advances `serving` to the next ticket.
type TicketLock struct {
	_       noCopy
	next    atomic.Uint32
	serving atomic.Uint32
}

// Lock acquires the lock. Blocks until the lock is available.
func (m *TicketLock) Lock() {
	my := m.next.Add(1) - 1
	var spins int
	for m.serving.Load() != my {
		delay(&spins)
	}
}

// TryLock acquires the lock only if nobody holds or waits for it.
func (m *TicketLock) TryLock() bool {
	s := m.serving.Load()
	return m.next.CompareAndSwap(s, s+1)
}

// Unlock releases the lock.
func (m *TicketLock) Unlock() {
	m.serving.Add(1)
}

// Waiting returns the number of goroutines holding or queued for the lock.
// The snapshot is approximate under contention but never negative.
func (m *TicketLock) Waiting() int {
	s := m.serving.Load()
	return int(m.next.Load() - s)
}
