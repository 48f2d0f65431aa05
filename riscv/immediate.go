package riscv

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Immediate is a 32-bit two's-complement immediate value.
//
// Bit slices are always computed from this single representation: Bits()
// gives contiguous MSB-first ranges, Bit() picks out single bits for the
// scrambled SB and UJ layouts.
type Immediate uint32

// ParseValue parses a decimal, 0x-prefixed hexadecimal or -0x-prefixed
// hexadecimal literal into a signed value.
func ParseValue(literal string) (value int64, err error) {
	var neg bool
	base := 10
	digits := literal

	switch {
	case strings.HasPrefix(literal, "-0x"):
		neg = true
		base = 16
		digits = literal[3:]
	case strings.HasPrefix(literal, "0x"):
		base = 16
		digits = literal[2:]
	}

	if base == 16 {
		var u64 uint64
		u64, err = strconv.ParseUint(digits, base, 63)
		value = int64(u64)
		if neg {
			value = -value
		}
	} else {
		value, err = strconv.ParseInt(digits, base, 64)
	}

	switch {
	case err == nil:
	case errors.Is(err, strconv.ErrRange):
		value = 0
		err = ErrImmediateRange{Literal: literal, Min: math.MinInt32, Max: math.MaxUint32}
	default:
		value = 0
		err = ErrMalformedImmediate(literal)
	}

	return
}

// ParseImmediate parses a literal into its 32-bit two's-complement form.
// Negative values encode as 2^32 + value.
func ParseImmediate(literal string) (imm Immediate, err error) {
	imm, _, err = parseImmediate(literal)
	return
}

// parseImmediate parses a literal into both its 32-bit two's-complement
// form and its signed value.
func parseImmediate(literal string) (imm Immediate, value int64, err error) {
	value, err = ParseValue(literal)
	if err != nil {
		return
	}

	if value < math.MinInt32 || value > math.MaxUint32 {
		err = ErrImmediateRange{Literal: literal, Value: value, Min: math.MinInt32, Max: math.MaxUint32}
		return
	}

	imm = Immediate(uint32(value))
	return
}

// Bits returns imm[hi:lo], right justified.
func (imm Immediate) Bits(hi, lo int) uint32 {
	width := hi - lo + 1
	return (uint32(imm) >> lo) & ((1 << width) - 1)
}

// Bit returns imm[n].
func (imm Immediate) Bit(n int) uint32 {
	return (uint32(imm) >> n) & 1
}

// String returns the immediate as 32 binary digits, MSB first.
func (imm Immediate) String() string {
	return fmt.Sprintf("%032b", uint32(imm))
}

// immediateRange describes the valid values of an immediate field.
type immediateRange struct {
	Min   int64
	Max   int64
	Align int64 // Required alignment; 0 or 1 for none.
}

var (
	rangeSigned12 = immediateRange{Min: -(1 << 11), Max: (1 << 11) - 1}
	rangeBranch   = immediateRange{Min: -(1 << 12), Max: (1 << 12) - 2, Align: 2}
	rangeJump     = immediateRange{Min: -(1 << 20), Max: (1 << 20) - 2, Align: 2}
	rangeUpper    = immediateRange{Min: -(1 << 19), Max: (1 << 20) - 1}
	rangeShift    = immediateRange{Min: 0, Max: 63}
)

// immediateOf parses an operand and verifies its signed value fits the
// field range.
func immediateOf(literal string, limit immediateRange) (imm Immediate, err error) {
	imm, value, err := parseImmediate(literal)
	if err != nil {
		return
	}

	if value < limit.Min || value > limit.Max {
		err = ErrImmediateRange{Literal: literal, Value: value, Min: limit.Min, Max: limit.Max}
		return 0, err
	}

	if limit.Align > 1 && value%limit.Align != 0 {
		return 0, ErrImmediateAlign(literal)
	}

	return
}
