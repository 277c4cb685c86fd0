// Package table builds addressable record tables from delimiter-separated
// text, using sep.Detect to find the separator first.
//
// 🚀 What is table?
//
//	Feed it raw lines (or any io.Reader) and it:
//	  • infers the field separator via github.com/katalvlaran/septable/sep
//	  • splits every line on the literal separator, empty fields kept
//	  • optionally binds the first row as headers (name → column index)
//	  • stores the rows as immutable Records
//
// ✨ Key features:
//   - positional access:   t.Field(row, col)
//   - named access:        t.FieldByName(row, "age")
//   - restartable ranging: for _, rec := range t.Records() { … }
//   - presentation:        t.Render() draws a fixed-width bordered grid
//   - immutable after construction — safe for unsynchronized concurrent
//     reads by any number of callers
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/septable/sep"
//	  "github.com/katalvlaran/septable/table"
//	)
//
//	opts := sep.DefaultOptions()
//	opts.HasHeaders = true
//
//	t, err := table.New([]string{"name,age", "ada,36", "bob,41"}, opts)
//	age, _ := t.FieldByName(0, "age") // "36"
//
// Errors: separator inference failures propagate unchanged from sep;
// construction adds ErrDuplicateHeader, access adds ErrOutOfRange,
// ErrNoHeaders and ErrUnknownHeader — see types.go.
package table
