package run

import "unicode/utf8"

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// Successor computes the value immediately after another value.
//
// Implementations must be deterministic, must never return their own input,
// and must report ok=false at a maximum value instead of wrapping around; a
// wrapping implementation would merge runs across the type's boundary.
type Successor[T comparable] interface {
	// Next returns the value directly after v. ok is false when v has no
	// successor.
	Next(v T) (next T, ok bool)
}

// SuccessorFunc is a function type that implements Successor.
type SuccessorFunc[T comparable] func(v T) (T, bool)

// Next calls the function.
func (f SuccessorFunc[T]) Next(v T) (T, bool) { return f(v) }

// Integer covers the built-in fixed-size integer kinds.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Ints returns the Successor for an integer type. The maximum value of the
// type has no successor.
func Ints[T Integer]() Successor[T] {
	return SuccessorFunc[T](func(v T) (T, bool) {
		next := v + 1
		if next < v { // wrapped past the maximum
			var zero T
			return zero, false
		}
		return next, true
	})
}

// Runes returns the Successor for Unicode code points. A code point has no
// successor when stepping forward would leave the valid scalar values: into
// the surrogate block, above utf8.MaxRune, or from a negative (invalid)
// rune.
func Runes() Successor[rune] {
	return SuccessorFunc[rune](func(r rune) (rune, bool) {
		next := r + 1
		if r < 0 || next > utf8.MaxRune ||
			(next >= surrogateMin && next <= surrogateMax) {
			return 0, false
		}
		return next, true
	})
}
