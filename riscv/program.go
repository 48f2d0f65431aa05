package riscv

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// OUTPUT_SUFFIX is the file suffix of an assembled program.
const OUTPUT_SUFFIX = ".bin"

// OutputName derives the assembled program file name from an output name.
func OutputName(name string) string {
	return strings.TrimSuffix(name, OUTPUT_SUFFIX) + OUTPUT_SUFFIX
}

// Program is an assembled program, in source order.
type Program struct {
	Instructions []Instruction
}

// Words iterates over the source line numbers and encoded words.
func (prog *Program) Words() iter.Seq2[int, Word] {
	return func(yield func(lineno int, word Word) bool) {
		for _, inst := range prog.Instructions {
			if !yield(inst.LineNo, inst.Word) {
				return
			}
		}
	}
}

// Binary returns the encoded words.
func (prog *Program) Binary() (bins []uint32) {
	for _, word := range prog.Words() {
		bins = append(bins, uint32(word))
	}

	return
}

// WriteTo writes the program as text, one 32 digit binary word per line.
func (prog *Program) WriteTo(w io.Writer) (n int64, err error) {
	for _, word := range prog.Words() {
		var count int
		count, err = fmt.Fprintln(w, word.String())
		n += int64(count)
		if err != nil {
			return
		}
	}

	return
}
