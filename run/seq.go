package run

import (
	"iter"
	"slices"
)

// SeqBy groups values into maximal runs using an adjacency predicate.
// adjacent(prev, v) reports whether v is the value directly after prev.
//
// The grouping is a single forward pass with one run of lookbehind: a run is
// extended only while each value is adjacent to the one before it, and any
// other value (smaller, equal, or further away) closes the current run and
// starts a new one. The concatenation of the produced runs always covers the
// input exactly, in input order.
func SeqBy[T comparable](values iter.Seq[T], adjacent func(prev, v T) bool) iter.Seq[Run[T]] {
	return func(yield func(Run[T]) bool) {
		var (
			cur  Run[T]
			open bool
		)
		for v := range values {
			if open && adjacent(cur.End, v) {
				cur.End = v
				continue
			}
			if open && !yield(cur) {
				return
			}
			cur = Run[T]{Start: v, End: v}
			open = true
		}
		if open {
			yield(cur)
		}
	}
}

// Seq groups values into maximal runs of consecutive values under succ. A
// value with no successor simply ends its run; the next value starts a new
// one.
func Seq[T comparable](values iter.Seq[T], succ Successor[T]) iter.Seq[Run[T]] {
	return SeqBy(values, func(prev, v T) bool {
		next, ok := succ.Next(prev)
		return ok && next == v
	})
}

// Collect groups a slice into runs and returns them as a slice.
func Collect[T comparable](values []T, succ Successor[T]) []Run[T] {
	return slices.Collect(Seq(slices.Values(values), succ))
}
