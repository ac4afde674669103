package run

import "iter"

// Run is a maximal stretch of consecutive input values where each value is
// the successor of the one before it. Start == End for a run covering a
// single value.
type Run[T comparable] struct {
	Start T
	End   T
}

// Single reports whether the run covers exactly one value.
func (r Run[T]) Single() bool { return r.Start == r.End }

// Values returns the values covered by the run, in successor order from
// Start to End.
func (r Run[T]) Values(succ Successor[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		v := r.Start
		for yield(v) {
			if v == r.End {
				return
			}
			next, ok := succ.Next(v)
			if !ok {
				return
			}
			v = next
		}
	}
}
