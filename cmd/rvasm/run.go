package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/term"

	"github.com/ezrec/rvasm/riscv"
	"github.com/ezrec/rvasm/translate"
)

var f = translate.From

const usage = "rvasm [-v] [-k] <input> [-o <outputName>]"

// options are the command line settings.
type options struct {
	Verbose   bool // Log each line as it is assembled.
	KeepGoing bool // Report every failing line, not just the first.
	Table     bool // Display as a table, instead of plain text.
}

func printUsage(w io.Writer) {
	translate.Fprintf(w, "usage: %v\n", usage)
}

// isTerminal returns true if the file is an interactive terminal.
func isTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}

// run executes the command with its positional arguments, and returns the
// process exit code.
//
//	<input>                  assemble and display
//	<input> -o <outputName>  assemble and write <outputName>.bin
//
// Any other argument shape prints the usage, and does nothing.
func run(args []string, stdout io.Writer, opts options) int {
	var input, output string

	switch {
	case len(args) == 1:
		input = args[0]
	case len(args) == 3 && args[1] == "-o":
		input = args[0]
		output = args[2]
	default:
		printUsage(stdout)
		return 0
	}

	prog, ok := assemble(input, opts)
	if !ok {
		return 1
	}

	if len(output) == 0 {
		display(stdout, prog, opts.Table)
		return 0
	}

	err := persist(riscv.OutputName(output), prog)
	if err != nil {
		log.Print(err)
		return 1
	}

	return 0
}

// assemble reads and assembles the input file. Errors are logged; when
// opts.KeepGoing is set every failing line is logged before giving up.
func assemble(input string, opts options) (prog *riscv.Program, ok bool) {
	inf, err := os.Open(input)
	if err != nil {
		log.Printf("%v: %v", input, err)
		return
	}
	defer inf.Close()

	asm := &riscv.Assembler{Verbose: opts.Verbose}
	prog = &riscv.Program{}
	failed := 0

	for inst, err := range asm.Assemble(inf) {
		if err != nil {
			log.Printf("%v: %v", input, err)
			failed++
			if !opts.KeepGoing {
				break
			}
			continue
		}
		prog.Instructions = append(prog.Instructions, *inst)
	}

	if failed > 0 {
		if opts.KeepGoing {
			log.Print(f("%v: %d lines in error", input, failed))
		}
		return nil, false
	}

	return prog, true
}

// display writes each source line followed by its encoded word.
func display(w io.Writer, prog *riscv.Program, as_table bool) {
	if !as_table {
		for _, inst := range prog.Instructions {
			fmt.Fprintf(w, "%v %v\n", inst.Line, inst.Word)
		}
		return
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{f("Line"), f("Source"), f("Format"), f("Word")})
	for _, inst := range prog.Instructions {
		tw.AppendRow(table.Row{inst.LineNo, inst.Line, inst.Format.String(), inst.Word.Fields(inst.Format)})
	}
	tw.Render()
}

// persist writes the program to a file. Nothing is left on disk when
// writing fails.
func persist(output string, prog io.WriterTo) (err error) {
	art, err := createArtifact(output)
	if err != nil {
		return
	}

	_, err = prog.WriteTo(art)
	if err != nil {
		art.Discard()
		return
	}

	err = art.Commit()
	return
}
