package riscv

import (
	"strings"
)

// COMMENT starts a comment, which runs to the end of the line.
const COMMENT = "#"

// Tokenize splits a line of assembly into its mnemonic and operands.
//
// Commas are dropped, and the memory operand syntax 'offset(reg)' becomes
// the two tokens 'offset reg'. A blank line yields no tokens.
func Tokenize(line string) (words []string) {
	line = strings.TrimSpace(stripComment(line))
	line = strings.ReplaceAll(line, ",", " ")
	line = strings.ReplaceAll(line, "(", " ")
	line = strings.ReplaceAll(line, ")", "")

	return strings.Fields(line)
}

// stripComment removes any comment from a line.
func stripComment(line string) string {
	line, _, _ = strings.Cut(line, COMMENT)
	return line
}
