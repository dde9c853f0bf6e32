//go:build race

package opt

// Race_ reports whether the race detector is compiled in.
// Tests scale their stress loops down with it.
const Race_ = true
