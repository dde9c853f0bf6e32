// Package parcount counts the elements of an integer sequence that exceed a
// threshold by splitting the sequence into contiguous partitions, one per
// worker, and scanning them concurrently.
//
// Three synchronization disciplines are available:
//
//   - Exclusive: every worker holds one shared lock for its whole scan, so
//     the counting itself is serialized.
//   - Private: every worker writes its partial count into its own slot; the
//     slots are summed after the join barrier.
//   - Shared: every worker merges into one accumulator with a load followed
//     by a store. Updates can be lost when merges interleave. Set
//     Options.FetchAdd for a true atomic add.
//
// Example:
//
//	res, err := parcount.Count(data, parcount.Options{
//		Threshold:  5,
//		Workers:    4,
//		Discipline: parcount.Private,
//	})
//	if err != nil {
//		return err
//	}
//	fmt.Println(res.Count, res.Millis())
package parcount
