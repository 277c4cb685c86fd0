// Package septable turns raw delimiter-separated text into addressable
// records — without ever being told what the delimiter is.
//
// 🚀 What is septable?
//
//	A small, zero-configuration library that brings together:
//		• Separator inference: deduce the field separator of a DSV sample
//		  by statistical reasoning over its non-alphanumeric substrings
//		• Record tables: split every line on the inferred separator and
//		  address fields by position or by header name
//		• Rendering: print any table as a fixed-width, bordered grid
//
// ✨ Why choose septable?
//
//   - Nothing to configure – the separator is found, not declared
//   - Deterministic – identical input always yields identical output
//   - Honest failures – ambiguity and undetectable separators surface
//     as typed sentinel errors, never as silent guesses
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under two subpackages:
//
//	sep/   — separator inference (the core algorithm)
//	table/ — record tables: build, access, iterate, render
//
// Quick ASCII example:
//
//	    name,age          +------+-----+
//	    ada,36      ──►   | name | age |
//	    bob,41            +------+-----+
//	                      | ada  | 36  |
//	                      | bob  | 41  |
//	                      +------+-----+
//
//	the comma was never mentioned — septable found it.
//
//	go get github.com/katalvlaran/septable
package septable
