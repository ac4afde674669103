// Package run groups an ordered sequence of discrete values into maximal
// runs of consecutive values, preserving input order. A run is either a
// single value or a contiguous ascending stretch where each value is the
// successor of the one before it. Only the strict forward successor extends
// a run: repeated values, descending values, and gaps all start a new run.
//
// Adjacency is supplied as a Successor capability, so the same grouping
// works for any discrete type. Implementations for the built-in integer
// types and for runes are provided.
//
// Basic usage:
//
//	values := []int{42, 100, 101, 102, 103, 104, 20}
//
//	for r := range run.Seq(slices.Values(values), run.Ints[int]()) {
//	    fmt.Println(r.Start, r.End)
//	}
//
//	// Or pull runs one at a time:
//	b := run.NewBuilder(slices.Values(values), run.Ints[int]())
//	defer b.Stop()
//	for b.Next() {
//	    r := b.At()
//	    // Process run
//	}
//
// The grouping is a single linear pass with O(1) state beyond the input
// itself, so arbitrarily long sequences can be grouped without materializing
// the run list.
package run
