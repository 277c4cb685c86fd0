package table

import (
	"strings"

	"github.com/katalvlaran/septable/sep"
)

// New constructs a Table from raw text lines:
//  1. infer the separator with sep.Detect (its errors propagate unchanged)
//  2. split every line on the literal separator — empty fields kept, no
//     split limit, no regex
//  3. if opts.HasHeaders, bind the first row as headers and build the
//     name→index mapping, rejecting duplicates with ErrDuplicateHeader
//  4. store the remaining rows as Records
//
// Field counts are not validated against the header count; ragged rows
// are stored as-is. Complexity: O(N·L) time and memory on top of Detect.
func New(lines []string, opts sep.Options) (*Table, error) {
	separator, err := sep.Detect(lines, opts)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, len(lines))
	for i, line := range lines {
		rows[i] = strings.Split(line, separator)
	}

	t := &Table{separator: separator}
	if opts.HasHeaders {
		headers, index, rest, err := bindHeaders(rows)
		if err != nil {
			return nil, err
		}
		t.headers, t.index, rows = headers, index, rest
	}

	t.records = make([]Record, len(rows))
	for i, row := range rows {
		t.records[i] = Record(row)
	}

	return t, nil
}

// bindHeaders takes the first split row as header names and maps each
// name to its column index. Duplicate names error with ErrDuplicateHeader.
// Inference already prunes header-clashing candidates, so a duplicate here
// should be unreachable; the check stays as a safety net.
func bindHeaders(rows [][]string) ([]string, map[string]int, [][]string, error) {
	headers := rows[0]
	index := make(map[string]int, len(headers))
	for i, name := range headers {
		if _, dup := index[name]; dup {
			return nil, nil, nil, ErrDuplicateHeader
		}
		index[name] = i
	}

	return headers, index, rows[1:], nil
}

// Separator returns the inferred separator string.
func (t *Table) Separator() string {
	return t.separator
}

// Len returns the number of Records (the header row excluded).
func (t *Table) Len() int {
	return len(t.records)
}

// Headers returns a copy of the header names, or nil when the table was
// built without headers.
func (t *Table) Headers() []string {
	if t.headers == nil {
		return nil
	}
	headers := make([]string, len(t.headers))
	copy(headers, t.headers)

	return headers
}

// Records returns a copy of the record sequence in original line order.
// Each Record is itself a fresh copy, so ranging over the result — as
// many times as needed, always from record zero — cannot observe or
// cause mutation of the table.
func (t *Table) Records() []Record {
	records := make([]Record, len(t.records))
	for i, rec := range t.records {
		records[i] = make(Record, len(rec))
		copy(records[i], rec)
	}

	return records
}

// Field returns the field at row r, column c.
// Returns ErrOutOfRange if either index is invalid. Complexity: O(1).
func (t *Table) Field(r, c int) (string, error) {
	if r < 0 || r >= len(t.records) {
		return "", ErrOutOfRange
	}
	if c < 0 || c >= len(t.records[r]) {
		return "", ErrOutOfRange
	}

	return t.records[r][c], nil
}

// FieldByName returns the field at row r in the column bound to header
// name. Returns ErrNoHeaders when the table has no headers,
// ErrUnknownHeader when name is not a header, ErrOutOfRange on a bad row.
// A failed access never invalidates the table. Complexity: O(1).
func (t *Table) FieldByName(r int, name string) (string, error) {
	if t.index == nil {
		return "", ErrNoHeaders
	}
	c, ok := t.index[name]
	if !ok {
		return "", ErrUnknownHeader
	}

	return t.Field(r, c)
}
