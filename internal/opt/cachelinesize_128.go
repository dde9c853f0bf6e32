//go:build parcount_cachelinesize_128

package opt

// CacheLineSize_ forced to 128 bytes (arm64 big cores, ppc64).
// Use: go build -tags=parcount_cachelinesize_128
const CacheLineSize_ = 128
