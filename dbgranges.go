// Package dbgranges displays lists of discrete values compactly for debug
// output. Runs of adjacent values collapse into a single "start-end" token,
// so a block list like [42 100 101 102 103 104 20] prints as
// "[42, 100-104, 20]" and patterns in mostly-sequential data stay visible.
//
// Input order is preserved and nothing is sorted, deduplicated, or merged
// beyond the forward-successor rule; see the run subpackage for the exact
// grouping semantics and the rangefmt subpackage for the display grammar.
package dbgranges

import (
	"slices"

	"github.com/sivadeilra/dbg-ranges/rangefmt"
	"github.com/sivadeilra/dbg-ranges/run"
)

// Format groups values into runs of consecutive values under succ and
// renders them as a bare comma-separated list.
func Format[T comparable](values []T, succ run.Successor[T], opts ...Option) string {
	return rangefmt.Format(run.Seq(slices.Values(values), succ), buildOptions(opts))
}

// FormatList renders like Format and wraps the result in list delimiters.
func FormatList[T comparable](values []T, succ run.Successor[T], opts ...Option) string {
	return rangefmt.FormatList(run.Seq(slices.Values(values), succ), buildOptions(opts))
}

// List displays a slice of integers compactly. The slice is not copied and
// no work happens until String is called.
type List[T run.Integer] struct {
	values []T
	opts   rangefmt.Options
}

// Adjacent returns a List that renders values compactly when printed. It is
// cheap to construct, so it can be handed to a log statement that may never
// fire.
func Adjacent[T run.Integer](values []T, opts ...Option) List[T] {
	return List[T]{values: values, opts: buildOptions(opts)}
}

// String implements fmt.Stringer.
func (l List[T]) String() string {
	return rangefmt.Format(run.Seq(slices.Values(l.values), run.Ints[T]()), l.opts)
}

// ListBy displays a slice of values compactly using a caller-supplied
// adjacency predicate. Like List, it does no work until printed.
type ListBy[T comparable] struct {
	values   []T
	adjacent func(prev, v T) bool
	opts     rangefmt.Options
}

// AdjacentBy returns a ListBy that renders values compactly when printed.
// adjacent(prev, v) reports whether v is the value directly after prev.
func AdjacentBy[T comparable](values []T, adjacent func(prev, v T) bool, opts ...Option) ListBy[T] {
	return ListBy[T]{values: values, adjacent: adjacent, opts: buildOptions(opts)}
}

// String implements fmt.Stringer.
func (l ListBy[T]) String() string {
	return rangefmt.Format(run.SeqBy(slices.Values(l.values), l.adjacent), l.opts)
}
