package sep

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Detect — separator inference for delimiter-separated text.
//
// Description:
//
//	Detect deduces the field separator of a DSV sample without prior
//	configuration. The separator is never given: it is deduced from the
//	first line and cross-checked against every line of the input.
//
// Algorithm Outline:
//  1. Split the first line on runs of alphanumeric runes and keep the
//     non-alphanumeric remainders (the maximal runs). Enumerate every
//     contiguous substring of every run as a candidate separator; a run
//     of k runes yields k(k+1)/2 candidates, duplicates retained.
//  2. If opts.HasHeaders, prune every candidate whose literal split of
//     the first line yields duplicate tokens. Pruning precedes tallying.
//  3. Tally the surviving candidate multiset and group candidates into
//     frequency classes (equal count). Order classes by descending
//     count; within a class, candidates keep enumeration order.
//  4. For each class, most frequent first, keep candidates that occur
//     the same number of times on every input line (overlapping
//     occurrences counted: one per matching start position).
//     - one survivor             → answer
//     - several, one longest     → the longest is the answer
//     - several, tie on length   → first in enumeration order if
//       opts.SuppressAmbiguity, otherwise ErrAmbiguous
//     - none                     → continue with the next class
//  5. Every class exhausted → ErrNoSeparator.
//
// A single-line input passes the cross-line check trivially and resolves
// from the frequency tally of that one line alone.
//
// Complexity:
//
//	Time   = O(R·k²·L·N) worst case (R runs of ≤ k runes on line one,
//	         N lines of ≤ L bytes); Memory = O(R·k²).
//
// Errors:
//   - ErrNoLines     — the input holds no lines.
//   - ErrAmbiguous   — residual tie with SuppressAmbiguity=false.
//   - ErrNoSeparator — no candidate is consistent across all lines.
func Detect(lines []string, opts Options) (string, error) {
	if len(lines) == 0 {
		return "", ErrNoLines
	}

	candidates := enumerate(lines[0])
	if opts.HasHeaders {
		candidates = pruneHeaderClashes(candidates, lines[0])
	}

	for _, class := range classify(candidates) {
		survivors := consistent(class, lines)
		if len(survivors) == 0 {
			continue
		}
		if len(survivors) == 1 {
			return survivors[0], nil
		}
		longest := keepLongest(survivors)
		if len(longest) == 1 || opts.SuppressAmbiguity {
			return longest[0], nil
		}

		return "", ErrAmbiguous
	}

	return "", ErrNoSeparator
}

// alphanumeric reports whether r is a letter or a digit.
func alphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// enumerate returns every contiguous substring of every maximal
// non-alphanumeric run in line, in left-to-right enumeration order.
// Duplicates are retained: the multiset doubles as the occurrence tally.
// Complexity: O(R·k²) time and memory.
func enumerate(line string) []string {
	var candidates []string
	for _, run := range strings.FieldsFunc(line, alphanumeric) {
		rs := []rune(run)
		for i := 0; i < len(rs); i++ {
			for j := i + 1; j <= len(rs); j++ {
				candidates = append(candidates, string(rs[i:j]))
			}
		}
	}

	return candidates
}

// pruneHeaderClashes removes every candidate whose literal split of the
// header line produces duplicate tokens. Verdicts are cached per distinct
// candidate string, so each is split at most once.
func pruneHeaderClashes(candidates []string, header string) []string {
	verdict := make(map[string]bool, len(candidates))
	kept := candidates[:0]
	for _, c := range candidates {
		ok, seen := verdict[c]
		if !seen {
			ok = splitsDistinct(header, c)
			verdict[c] = ok
		}
		if ok {
			kept = append(kept, c)
		}
	}

	return kept
}

// splitsDistinct reports whether splitting line on the literal separator
// yields pairwise-distinct tokens.
func splitsDistinct(line, separator string) bool {
	tokens := strings.Split(line, separator)
	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		if _, dup := seen[tok]; dup {
			return false
		}
		seen[tok] = struct{}{}
	}

	return true
}

// classify groups the candidate multiset into frequency classes and
// orders the classes by descending occurrence count. Inside a class,
// candidates appear once each, in first-encounter enumeration order —
// the tie-break in Detect relies on that order being deterministic.
func classify(candidates []string) [][]string {
	counts := make(map[string]int, len(candidates))
	var order []string
	for _, c := range candidates {
		if counts[c] == 0 {
			order = append(order, c)
		}
		counts[c]++
	}

	byCount := make(map[int][]string)
	var tiers []int
	for _, c := range order {
		n := counts[c]
		if len(byCount[n]) == 0 {
			tiers = append(tiers, n)
		}
		byCount[n] = append(byCount[n], c)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(tiers)))

	classes := make([][]string, len(tiers))
	for i, n := range tiers {
		classes[i] = byCount[n]
	}

	return classes
}

// consistent filters a frequency class down to the candidates occurring
// the same number of times on every line of the input.
func consistent(class []string, lines []string) []string {
	var survivors []string
	for _, c := range class {
		want := occurrences(lines[0], c)
		ok := true
		for _, line := range lines[1:] {
			if occurrences(line, c) != want {
				ok = false
				break
			}
		}
		if ok {
			survivors = append(survivors, c)
		}
	}

	return survivors
}

// occurrences counts start positions at which sub matches inside s.
// Overlapping matches are counted: "aa" occurs twice in "aaa".
func occurrences(s, sub string) int {
	n := 0
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			n++
		}
	}

	return n
}

// keepLongest returns the candidates of maximal rune length, preserving
// their relative order.
func keepLongest(candidates []string) []string {
	best := 0
	for _, c := range candidates {
		if n := utf8.RuneCountInString(c); n > best {
			best = n
		}
	}
	var longest []string
	for _, c := range candidates {
		if utf8.RuneCountInString(c) == best {
			longest = append(longest, c)
		}
	}

	return longest
}
