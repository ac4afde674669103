package rangefmt

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/sivadeilra/dbg-ranges/run"
)

// Options defines the display grammar for rendered runs.
type Options struct {
	// Separator is written between consecutive runs.
	Separator string
	// RangeSeparator is written between the first and last value of a
	// multi-value run.
	RangeSeparator string
	// Open and Close wrap the whole output in list mode.
	Open  string
	Close string
}

// DefaultOptions returns the conventional list display: comma-separated
// runs, "start-end" ranges, square brackets in list mode.
func DefaultOptions() Options {
	return Options{
		Separator:      ", ",
		RangeSeparator: "-",
		Open:           "[",
		Close:          "]",
	}
}

// Format renders runs in input order: a single value as itself, a
// multi-value run as its first and last value joined by the range separator.
// An empty sequence renders as the empty string.
func Format[T comparable](runs iter.Seq[run.Run[T]], opts Options) string {
	var sb strings.Builder
	appendRuns(&sb, runs, opts)
	return sb.String()
}

// FormatList renders runs like Format and wraps the result in the Open and
// Close delimiters. An empty sequence renders as the bare delimiter pair.
func FormatList[T comparable](runs iter.Seq[run.Run[T]], opts Options) string {
	var sb strings.Builder
	sb.WriteString(opts.Open)
	appendRuns(&sb, runs, opts)
	sb.WriteString(opts.Close)
	return sb.String()
}

// Write streams the Format rendering of runs to w without materializing the
// whole string, one write per run. It returns the total bytes written and
// the first error reported by w.
func Write[T comparable](w io.Writer, runs iter.Seq[run.Run[T]], opts Options) (int64, error) {
	var (
		total int64
		sb    strings.Builder
		first = true
	)
	for r := range runs {
		sb.Reset()
		if !first {
			sb.WriteString(opts.Separator)
		}
		first = false
		appendRun(&sb, r, opts)

		n, err := io.WriteString(w, sb.String())
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("error writing run: %w", err)
		}
	}
	return total, nil
}

func appendRuns[T comparable](sb *strings.Builder, runs iter.Seq[run.Run[T]], opts Options) {
	first := true
	for r := range runs {
		if !first {
			sb.WriteString(opts.Separator)
		}
		first = false
		appendRun(sb, r, opts)
	}
}

func appendRun[T comparable](sb *strings.Builder, r run.Run[T], opts Options) {
	fmt.Fprintf(sb, "%v", r.Start)
	if !r.Single() {
		sb.WriteString(opts.RangeSeparator)
		fmt.Fprintf(sb, "%v", r.End)
	}
}
