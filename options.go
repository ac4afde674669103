package dbgranges

import "github.com/sivadeilra/dbg-ranges/rangefmt"

// Option is a function that configures the display grammar.
type Option func(*rangefmt.Options)

// WithSeparator sets the string written between runs.
func WithSeparator(sep string) Option {
	return func(o *rangefmt.Options) {
		o.Separator = sep
	}
}

// WithRangeSeparator sets the string written between the first and last
// value of a range.
func WithRangeSeparator(sep string) Option {
	return func(o *rangefmt.Options) {
		o.RangeSeparator = sep
	}
}

// WithBrackets sets the delimiters wrapped around list-mode output.
func WithBrackets(open, close string) Option {
	return func(o *rangefmt.Options) {
		o.Open = open
		o.Close = close
	}
}

// buildOptions returns the default grammar with the given options applied.
func buildOptions(opts []Option) rangefmt.Options {
	o := rangefmt.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
