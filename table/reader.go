package table

import (
	"bufio"
	"io"
	"strings"

	"github.com/katalvlaran/septable/sep"
)

// FromReader reads decoded text lines from r, drops lines that are blank
// after whitespace trimming, and builds a Table from the remainder via
// New. Line splitting follows bufio.ScanLines, so a CRLF terminator is
// consumed with the line. An input that is empty after filtering errors
// with sep.ErrNoLines.
//
// This is a convenience for callers holding a stream; inference itself
// never performs I/O.
func FromReader(r io.Reader, opts sep.Options) (*Table, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return New(lines, opts)
}
