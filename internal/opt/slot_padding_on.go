//go:build !parcount_disable_padding

package opt

import (
	"unsafe"
)

// Slot_ holds one worker's partial count.
// It is padded to a full cache line so that neighbouring workers writing
// their own slots never share a line.
type Slot_ struct {
	N int
	_ [(CacheLineSize_ - unsafe.Sizeof(struct {
		N int
	}{})%CacheLineSize_) % CacheLineSize_]byte
}
