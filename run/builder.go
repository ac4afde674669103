package run

import "iter"

// Builder produces runs one at a time. It is the pull form of Seq for
// callers that cannot consume a range-over-func sequence. A Builder consumes
// its input once and cannot be restarted.
type Builder[T comparable] struct {
	next func() (Run[T], bool)
	stop func()
	cur  Run[T]
}

// NewBuilder returns a Builder that groups values into runs of consecutive
// values under succ.
func NewBuilder[T comparable](values iter.Seq[T], succ Successor[T]) *Builder[T] {
	next, stop := iter.Pull(Seq(values, succ))
	return &Builder[T]{next: next, stop: stop}
}

// Next advances the builder to the next run. It returns false once the input
// is exhausted.
func (b *Builder[T]) Next() bool {
	r, ok := b.next()
	if !ok {
		return false
	}
	b.cur = r
	return true
}

// At returns the run the builder is positioned on. It is only valid after a
// call to Next that returned true.
func (b *Builder[T]) At() Run[T] { return b.cur }

// Stop releases the underlying input sequence. It is safe to call Stop more
// than once.
func (b *Builder[T]) Stop() { b.stop() }
