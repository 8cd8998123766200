// Package ahocorasick defines options, results and error definitions
// for dictionary-automaton construction and scanning.
package ahocorasick

import "errors"

// Sentinel errors for construction and scanning.
var (
	// ErrEmptyPattern is returned by Build when the dictionary contains
	// an empty string; an empty pattern would match at every position.
	ErrEmptyPattern = errors.New("ahocorasick: empty pattern")

	// ErrNilAutomaton is returned if a nil automaton pointer is passed.
	ErrNilAutomaton = errors.New("ahocorasick: automaton is nil")
)

// Match is one occurrence of a dictionary pattern in the scanned text.
// Start and End are 0-based inclusive rune offsets, so
// End-Start+1 equals the pattern length in runes.
type Match struct {
	Pattern string
	Start   int
	End     int
}

// Option configures Scan behavior via functional arguments.
type Option func(*Options)

// Options holds callbacks to customize a Scan run.
type Options struct {
	// OnMatch is called for every match, in report order, before the match
	// is appended to the result. If it returns an error, Scan aborts and
	// propagates that error.
	OnMatch func(Match) error
}

// DefaultOptions returns Options with sane defaults: a no-op OnMatch hook.
func DefaultOptions() Options {
	return Options{
		OnMatch: func(Match) error { return nil },
	}
}

// WithOnMatch registers a callback to run on every match; returning an
// error from this callback stops the scan.
func WithOnMatch(fn func(Match) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMatch = fn
		}
	}
}
