package internal

import (
	"bufio"
	"io"
	"iter"
)

// LineScanner iterates over the lines of a reader.
type LineScanner struct {
	scanner *bufio.Scanner
}

// NewLineScanner creates a new LineScanner.
func NewLineScanner(input io.Reader) *LineScanner {
	return &LineScanner{scanner: bufio.NewScanner(input)}
}

// All returns an iterator of line numbers, counting from 1, and line text.
func (ls *LineScanner) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		lineno := 0
		for ls.scanner.Scan() {
			lineno += 1
			if !yield(lineno, ls.scanner.Text()) {
				return // Stop if the consumer stops
			}
		}
	}
}

// Err returns the first non-EOF error encountered while scanning.
func (ls *LineScanner) Err() error {
	return ls.scanner.Err()
}
