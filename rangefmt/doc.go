// Package rangefmt renders a sequence of runs into a single compact string.
// A single-value run renders as the value itself and a multi-value run as
// "start-end", with consecutive runs joined by ", ". Runs render in the
// order they arrive; nothing is sorted or merged here.
//
// Two display modes are provided: Format produces the bare joined list, and
// FormatList wraps it in delimiters ("[" and "]" by default). Write streams
// the bare rendering to an io.Writer run by run.
//
// Basic usage:
//
//	values := []int{42, 100, 101, 102, 103, 104, 20}
//	runs := run.Seq(slices.Values(values), run.Ints[int]())
//
//	s := rangefmt.FormatList(runs, rangefmt.DefaultOptions())
//	// s == "[42, 100-104, 20]"
//
// The separators and delimiters are configurable through Options.
package rangefmt
