package table

import (
	"strings"
	"unicode/utf8"
)

// cellPadding is the fixed width added to every column on top of its
// widest field: one space on each side of the cell.
const cellPadding = 2

// Render draws the table as a fixed-width, bordered grid. Each column is
// as wide as its widest field (the header included, when present) plus
// cellPadding. Ragged rows render missing cells as empty. Purely a
// presentation helper; the returned string always ends with a newline.
// Complexity: O(N·L) time and memory.
func (t *Table) Render() string {
	widths := t.columnWidths()

	var b strings.Builder
	writeBorder(&b, widths)
	if t.headers != nil {
		writeRow(&b, t.headers, widths)
		writeBorder(&b, widths)
	}
	for _, rec := range t.records {
		writeRow(&b, rec, widths)
	}
	if len(t.records) > 0 {
		writeBorder(&b, widths)
	}

	return b.String()
}

// columnWidths computes per-column content widths in runes, spanning the
// header row and every record.
func (t *Table) columnWidths() []int {
	cols := len(t.headers)
	for _, rec := range t.records {
		if len(rec) > cols {
			cols = len(rec)
		}
	}

	widths := make([]int, cols)
	for i, name := range t.headers {
		if n := utf8.RuneCountInString(name); n > widths[i] {
			widths[i] = n
		}
	}
	for _, rec := range t.records {
		for i, field := range rec {
			if n := utf8.RuneCountInString(field); n > widths[i] {
				widths[i] = n
			}
		}
	}

	return widths
}

// writeBorder writes one horizontal border: +----+----+…+.
func writeBorder(b *strings.Builder, widths []int) {
	for _, w := range widths {
		b.WriteByte('+')
		b.WriteString(strings.Repeat("-", w+cellPadding))
	}
	b.WriteString("+\n")
}

// writeRow writes one content row, left-aligning each field within its
// column and filling absent trailing cells with blanks.
func writeRow(b *strings.Builder, fields []string, widths []int) {
	for i, w := range widths {
		field := ""
		if i < len(fields) {
			field = fields[i]
		}
		b.WriteString("| ")
		b.WriteString(field)
		b.WriteString(strings.Repeat(" ", w-utf8.RuneCountInString(field)+1))
	}
	b.WriteString("|\n")
}
