package sep_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/katalvlaran/septable/sep"
)

// benchmarkDetect is a helper that synthesizes rows×cols delimiter-separated
// lines joined by glue and runs Detect on them. It resets the timer before
// entering the loop and fails on unexpected errors.
func benchmarkDetect(b *testing.B, rows, cols int, glue string, opts sep.Options) {
	lines := make([]string, rows)
	for r := 0; r < rows; r++ {
		fields := make([]string, cols)
		for c := 0; c < cols; c++ {
			fields[c] = fmt.Sprintf("f%dx%d", r, c) // distinct fields, header-safe
		}
		lines[r] = strings.Join(fields, glue)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		_, err := sep.Detect(lines, opts)
		if err != nil {
			b.Fatalf("Detect failed: %v", err)
		}
	}
}

// BenchmarkDetect_CommaSmall benchmarks a 100×10 comma-separated sample.
func BenchmarkDetect_CommaSmall(b *testing.B) {
	benchmarkDetect(b, 100, 10, ",", sep.DefaultOptions())
}

// BenchmarkDetect_CommaLarge benchmarks a 5000×20 comma-separated sample.
func BenchmarkDetect_CommaLarge(b *testing.B) {
	benchmarkDetect(b, 5000, 20, ",", sep.DefaultOptions())
}

// BenchmarkDetect_MultiRuneGlue benchmarks a two-rune mixed separator,
// which forces the length tie-break path on every call.
func BenchmarkDetect_MultiRuneGlue(b *testing.B) {
	benchmarkDetect(b, 1000, 10, ";,", sep.DefaultOptions())
}

// BenchmarkDetect_WithHeaders benchmarks header pruning on top of the tally.
func BenchmarkDetect_WithHeaders(b *testing.B) {
	opts := sep.DefaultOptions()
	opts.HasHeaders = true
	benchmarkDetect(b, 1000, 10, ",", opts)
}
