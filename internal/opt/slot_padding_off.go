//go:build parcount_disable_padding

package opt

// Slot_ holds one worker's partial count.
// Padding is disabled via the parcount_disable_padding build tag, which makes
// false sharing between neighbouring slots observable in benchmarks.
// Use: go build -tags=parcount_disable_padding
type Slot_ struct {
	N int
}
