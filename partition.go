package parcount

import "fmt"

// Partition is a contiguous range [Offset, Offset+Len) of the input owned by
// exactly one worker.
type Partition struct {
	Index  int
	Offset int
	Len    int
}

// End returns the first offset past the partition.
func (p Partition) End() int {
	return p.Offset + p.Len
}

// Empty reports whether the partition performs no comparisons.
func (p Partition) Empty() bool {
	return p.Len == 0
}

func (p Partition) String() string {
	return fmt.Sprintf("#%d[%d:%d]", p.Index, p.Offset, p.End())
}

// within reports whether p addresses only elements of a sequence of length n.
func (p Partition) within(n int) bool {
	return p.Offset >= 0 && p.Len >= 0 && p.End() <= n
}

// Split divides a sequence of length n into workers contiguous partitions.
//
// Every partition has length n/workers except the last one, which also
// absorbs the remainder n%workers. When workers > n the leading partitions
// are empty. The partitions cover [0, n) exactly once.
func Split(n, workers int) ([]Partition, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("%w: worker count %d, want >= 1", ErrInvalidConfig, workers)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: sequence length %d, want >= 0", ErrInvalidConfig, n)
	}

	base, rem := n/workers, n%workers
	parts := make([]Partition, workers)
	for i := range parts {
		parts[i] = Partition{Index: i, Offset: base * i, Len: base}
	}
	parts[workers-1].Len += rem
	return parts, nil
}
