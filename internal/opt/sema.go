package opt

import (
	_ "unsafe" // for linkname
)

// Sema parks and unparks goroutines on the runtime semaphore table without
// allocating. An Unpark with nobody parked is banked for the next Park.
type Sema uint32

// Park blocks until a matching Unpark.
func (s *Sema) Park() {
	runtime_semacquire((*uint32)(s))
}

// Unpark wakes one parked goroutine.
func (s *Sema) Unpark() {
	runtime_semrelease((*uint32)(s), false, 0)
}

//go:linkname runtime_semacquire sync.runtime_Semacquire
func runtime_semacquire(s *uint32)

//go:linkname runtime_semrelease sync.runtime_Semrelease
func runtime_semrelease(s *uint32, handoff bool, skipframes int)
