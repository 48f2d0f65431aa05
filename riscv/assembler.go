// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package riscv

import (
	"io"
	"iter"
	"log"

	"github.com/ezrec/rvasm/internal"
)

// Assembler is a single pass, line at a time, RISC-V assembler.
//
// Lines share no state: there are no labels, equates or program counter,
// so each line assembles to exactly one Word or one error.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.
}

// Instruction is a single assembled line of source.
type Instruction struct {
	LineNo int      // Line number, counting from 1.
	Line   string   // Source text of the line.
	Words  []string // Tokens of the line.
	Format Format   // Format of the instruction.
	Word   Word     // Encoded instruction.
}

// AssembleLine assembles a single line of source text. A line with no
// instruction returns a nil Instruction and no error.
func (asm *Assembler) AssembleLine(line string, lineno int) (inst *Instruction, err error) {
	defer func() {
		if err != nil {
			inst = nil
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	if asm.Verbose {
		log.Printf("%v: %v\n", lineno, line)
	}

	// Do $() evaluations
	text, err := expandExpressions(stripComment(line))
	if err != nil {
		return
	}

	words := Tokenize(text)
	if len(words) == 0 {
		return
	}

	format, err := Classify(words[0])
	if err != nil {
		return
	}

	word, err := EncodeFormat(format, words)
	if err != nil {
		return
	}

	inst = &Instruction{
		LineNo: lineno,
		Line:   line,
		Words:  words,
		Format: format,
		Word:   word,
	}

	return
}

// Assemble returns an iterator over the instructions of an input stream, in
// source order. A line that fails to assemble yields a nil Instruction and
// an *ErrSyntax; the consumer decides whether to stop or continue.
// Blank lines are skipped.
func (asm *Assembler) Assemble(input io.Reader) iter.Seq2[*Instruction, error] {
	return func(yield func(*Instruction, error) bool) {
		scanner := internal.NewLineScanner(input)
		for lineno, line := range scanner.All() {
			inst, err := asm.AssembleLine(line, lineno)
			if inst == nil && err == nil {
				continue
			}
			if !yield(inst, err) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield(nil, err)
		}
	}
}

// Parse assembles an input stream into a Program, stopping at the first
// line in error.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	prog = &Program{}

	for inst, err := range asm.Assemble(input) {
		if err != nil {
			return nil, err
		}
		prog.Instructions = append(prog.Instructions, *inst)
	}

	return
}
