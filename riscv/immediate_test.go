package riscv

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseImmediate(t *testing.T) {
	assert := assert.New(t)

	imm, err := ParseImmediate("-1")
	assert.NoError(err)
	assert.Equal(Immediate(0xffffffff), imm)
	assert.Equal("11111111111111111111111111111111", imm.String())

	hex, err := ParseImmediate("0x10")
	assert.NoError(err)
	dec, err := ParseImmediate("16")
	assert.NoError(err)
	assert.Equal(dec, hex)
	assert.Equal(Immediate(16), hex)

	imm, err = ParseImmediate("-0x10")
	assert.NoError(err)
	assert.Equal(Immediate(0xfffffff0), imm)

	imm, err = ParseImmediate("0xffffffff")
	assert.NoError(err)
	assert.Equal(Immediate(0xffffffff), imm)

	imm, err = ParseImmediate("-2147483648")
	assert.NoError(err)
	assert.Equal(Immediate(0x80000000), imm)
}

func TestParseImmediate_Malformed(t *testing.T) {
	assert := assert.New(t)

	for _, literal := range []string{"", "abc", "0x", "-0x", "0xg", "1.5", "x1", "--1", "0x-1", "1_000"} {
		_, err := ParseImmediate(literal)
		assert.Equal(ErrMalformedImmediate(literal), err, literal)
	}
}

func TestParseImmediate_Range(t *testing.T) {
	assert := assert.New(t)

	for _, literal := range []string{"4294967296", "-2147483649", "0x100000000", "99999999999999999999"} {
		_, err := ParseImmediate(literal)
		var rng ErrImmediateRange
		assert.True(errors.As(err, &rng), literal)
		assert.Equal(literal, rng.Literal)
	}
}

func TestImmediate_Bits(t *testing.T) {
	assert := assert.New(t)

	imm := Immediate(0xfffffffc) // -4

	assert.Equal(uint32(1), imm.Bit(12))
	assert.Equal(uint32(1), imm.Bit(11))
	assert.Equal(uint32(0), imm.Bit(0))
	assert.Equal(uint32(0x3f), imm.Bits(10, 5))
	assert.Equal(uint32(0xe), imm.Bits(4, 1))
	assert.Equal(uint32(0xffc), imm.Bits(11, 0))
	assert.Equal(uint32(0xfffffffc), imm.Bits(31, 0))

	imm = Immediate(0x12345)
	assert.Equal(uint32(0x12345), imm.Bits(19, 0))
	assert.Equal(uint32(0x5), imm.Bits(3, 0))
	assert.Equal(uint32(0x12), imm.Bits(19, 12))
}

func TestImmediateOf(t *testing.T) {
	assert := assert.New(t)

	imm, err := immediateOf("2047", rangeSigned12)
	assert.NoError(err)
	assert.Equal(Immediate(2047), imm)

	imm, err = immediateOf("-2048", rangeSigned12)
	assert.NoError(err)
	assert.Equal(uint32(0x800), imm.Bits(11, 0))

	_, err = immediateOf("2048", rangeSigned12)
	assert.Equal(ErrImmediateRange{Literal: "2048", Value: 2048, Min: -2048, Max: 2047}, err)

	// A 12-bit pattern written in hex is still a value, not a bit pattern.
	_, err = immediateOf("0xfff", rangeSigned12)
	assert.Equal(ErrImmediateRange{Literal: "0xfff", Value: 4095, Min: -2048, Max: 2047}, err)

	_, err = immediateOf("3", rangeBranch)
	assert.Equal(ErrImmediateAlign("3"), err)

	_, err = immediateOf("-4097", rangeBranch)
	assert.Equal(ErrImmediateRange{Literal: "-4097", Value: -4097, Min: -4096, Max: 4094}, err)
}

func TestImmediateOf_ParseImmediate(t *testing.T) {
	assert := assert.New(t)

	for _, literal := range []string{"0", "-1", "2047", "-2048", "0x7ff", "-0x800"} {
		expected, err := ParseImmediate(literal)
		assert.NoError(err)
		imm, err := immediateOf(literal, rangeSigned12)
		assert.NoError(err)
		assert.Equal(expected, imm, literal)
	}

	// 0xffffffff is -1 as a 32-bit pattern, but its value does not fit.
	_, err := immediateOf("0xffffffff", rangeSigned12)
	assert.Equal(ErrImmediateRange{Literal: "0xffffffff", Value: 0xffffffff, Min: -2048, Max: 2047}, err)

	_, err = immediateOf("0x100000000", rangeSigned12)
	var rng ErrImmediateRange
	assert.True(errors.As(err, &rng))
	assert.Equal(int64(math.MaxUint32), rng.Max)
}

func TestErrImmediateRange(t *testing.T) {
	assert := assert.New(t)

	err := ErrImmediateRange{Literal: "0x12345000", Value: 0x12345000, Min: -524288, Max: 1048575}
	assert.Equal("'0x12345000' out of range -524288 to 1048575", err.Error())
}
