// Package sep infers the field separator of delimiter-separated text
// from the text itself, with no prior configuration.
//
// 🚀 What is sep?
//
//	Given the lines of a DSV sample, Detect deduces which substring acts
//	as the field separator by statistical reasoning:
//	  • enumerate every substring of every non-alphanumeric run in the
//	    first line as a candidate separator
//	  • group candidates into frequency classes (equal occurrence count)
//	  • within each class, most frequent first, keep only candidates
//	    that occur the same number of times on every line
//	  • prefer the longest survivor; a residual tie is an ambiguity
//
// ✨ Key features:
//   - pure function: no retained state, no I/O, no side effects
//   - deterministic: identical input and options → identical result
//   - header-aware: candidates that would produce duplicate header
//     names are pruned before the tally (HasHeaders=true)
//   - suppressible ambiguity: take the first tied candidate instead of
//     failing (SuppressAmbiguity=true)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/septable/sep"
//
//	lines := []string{"name,age", "ada,36", "bob,41"}
//	opts := sep.DefaultOptions()
//	opts.HasHeaders = true
//
//	s, err := sep.Detect(lines, opts)
//	// s == ","
//
// Performance:
//
//   - Time:   O(R·k² · L·N) worst case, for R runs of length ≤ k in the
//     first line, N lines of length ≤ L — bounded by input size.
//   - Memory: O(R·k²) candidate storage.
//
// Errors: ErrNoLines, ErrAmbiguous, ErrNoSeparator — see types.go.
package sep
