// Package table defines the record/table types and sentinel errors for
// the table subpackage of github.com/katalvlaran/septable.
package table

import (
	"errors"
)

// Sentinel errors for table construction and field access.
var (
	// ErrDuplicateHeader indicates the header row, split on the chosen
	// separator, contains repeated names.
	ErrDuplicateHeader = errors.New("table: header names must be pairwise distinct")
	// ErrOutOfRange indicates a row or column index outside the table.
	ErrOutOfRange = errors.New("table: row or column index out of range")
	// ErrNoHeaders indicates named access on a table built without headers.
	ErrNoHeaders = errors.New("table: table was built without headers")
	// ErrUnknownHeader indicates a header name absent from the header row.
	ErrUnknownHeader = errors.New("table: unknown header name")
)

// Record is one parsed row: the ordered fields of a single input line,
// produced by splitting on the inferred separator. Ranging over a Record
// visits its fields in order.
type Record []string

// Table owns an ordered sequence of Records, an optional header row with
// its name→index mapping, and the inferred separator. It is immutable
// once built: accessors hand out copies, never internal state.
type Table struct {
	separator string
	headers   []string
	index     map[string]int
	records   []Record
}
