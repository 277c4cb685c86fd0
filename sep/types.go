// Package sep defines options and sentinel errors for separator inference.
package sep

import (
	"errors"
)

// Sentinel errors for separator inference.
var (
	// ErrNoLines indicates the input contains no lines at all.
	ErrNoLines = errors.New("sep: input must contain at least one line")
	// ErrAmbiguous indicates several candidates survived every filter with
	// equal frequency and equal length, and ambiguity suppression was off.
	ErrAmbiguous = errors.New("sep: multiple equally plausible separators")
	// ErrNoSeparator indicates no candidate occurs consistently on every
	// line at any frequency tier; the input is not separator-structured.
	ErrNoSeparator = errors.New("sep: no consistent separator detected")
)

// Options contains tunable parameters for separator inference.
type Options struct {
	// HasHeaders marks the first line as a header row. Candidates whose
	// split of the first line would yield duplicate header names are
	// pruned before the frequency tally.
	HasHeaders bool
	// SuppressAmbiguity resolves a residual tie deterministically (first
	// candidate in enumeration order) instead of returning ErrAmbiguous.
	SuppressAmbiguity bool
}

// DefaultOptions returns an Options with default settings:
// HasHeaders=false, SuppressAmbiguity=false.
func DefaultOptions() Options {
	return Options{}
}
