package riscv

import (
	"strconv"

	"github.com/ezrec/rvasm/translate"
)

var f = translate.From

// ErrUnknownInstruction is a mnemonic outside of the supported set.
type ErrUnknownInstruction string

func (err ErrUnknownInstruction) Error() string {
	return f("unknown instruction '%v'", string(err))
}

// ErrPseudoInstruction is a recognized pseudo-instruction, which this
// assembler does not expand.
type ErrPseudoInstruction string

func (err ErrPseudoInstruction) Error() string {
	return f("pseudo-instruction '%v' is not supported", string(err))
}

// ErrUnknownFormat is a Format with no encoding.
type ErrUnknownFormat Format

func (err ErrUnknownFormat) Error() string {
	return f("unknown format %v", Format(err).String())
}

type ErrUnknownRegister string

func (err ErrUnknownRegister) Error() string {
	return f("unknown register '%v'", string(err))
}

type ErrMalformedImmediate string

func (err ErrMalformedImmediate) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrImmediateRange is an immediate that does not fit the field it is
// encoded into.
type ErrImmediateRange struct {
	Literal string
	Value   int64
	Min     int64
	Max     int64
}

func (err ErrImmediateRange) Error() string {
	// Bounds are preformatted, so no digit grouping is applied.
	lo := strconv.FormatInt(err.Min, 10)
	hi := strconv.FormatInt(err.Max, 10)
	return f("'%v' out of range %v to %v", err.Literal, lo, hi)
}

// ErrImmediateAlign is an odd branch or jump offset.
type ErrImmediateAlign string

func (err ErrImmediateAlign) Error() string {
	return f("'%v' is not a multiple of 2", string(err))
}

// ErrOperandArity is an instruction with the wrong number of operands.
type ErrOperandArity struct {
	Mnemonic string
	Want     int
	Got      int
}

func (err ErrOperandArity) Error() string {
	return f("'%v' expects %d operands, got %d", err.Mnemonic, err.Want, err.Got)
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrSyntax locates an error at a line of assembly source.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
