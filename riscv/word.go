package riscv

import (
	"fmt"
	"strings"
)

// Word is an encoded 32-bit instruction.
type Word uint32

// MakeWordR creates an R format word.
func MakeWordR(funct7, rs2, rs1, funct3, rd, opcode uint32) Word {
	return Word((funct7 << 25) | (rs2 << 20) | (rs1 << 15) | (funct3 << 12) | (rd << 7) | opcode)
}

// MakeWordI creates an I format word, from imm[11:0].
func MakeWordI(imm Immediate, rs1, funct3, rd, opcode uint32) Word {
	return Word((imm.Bits(11, 0) << 20) | (rs1 << 15) | (funct3 << 12) | (rd << 7) | opcode)
}

// MakeWordS creates an S format word, from imm[11:0].
func MakeWordS(imm Immediate, rs2, rs1, funct3, opcode uint32) Word {
	return Word((imm.Bits(11, 5) << 25) | (rs2 << 20) | (rs1 << 15) | (funct3 << 12) | (imm.Bits(4, 0) << 7) | opcode)
}

// MakeWordSB creates an SB format word, from imm[12:1].
func MakeWordSB(imm Immediate, rs2, rs1, funct3, opcode uint32) Word {
	return Word((imm.Bit(12) << 31) |
		(imm.Bits(10, 5) << 25) |
		(rs2 << 20) |
		(rs1 << 15) |
		(funct3 << 12) |
		(imm.Bits(4, 1) << 8) |
		(imm.Bit(11) << 7) |
		opcode)
}

// MakeWordUJ creates a UJ format word, from imm[20:1].
func MakeWordUJ(imm Immediate, rd, opcode uint32) Word {
	return Word((imm.Bit(20) << 31) |
		(imm.Bits(10, 1) << 21) |
		(imm.Bit(11) << 20) |
		(imm.Bits(19, 12) << 12) |
		(rd << 7) |
		opcode)
}

// MakeWordU creates a U format word. imm is the 20-bit upper immediate,
// which lands in word[31:12].
func MakeWordU(imm Immediate, rd, opcode uint32) Word {
	return Word((imm.Bits(19, 0) << 12) | (rd << 7) | opcode)
}

// Opcode returns word[6:0].
func (word Word) Opcode() uint32 {
	return uint32(word) & 0x7f
}

// Rd returns the destination register, word[11:7].
func (word Word) Rd() uint32 {
	return (uint32(word) >> 7) & 0x1f
}

// Funct3 returns word[14:12].
func (word Word) Funct3() uint32 {
	return (uint32(word) >> 12) & 0x7
}

// Rs1 returns the first source register, word[19:15].
func (word Word) Rs1() uint32 {
	return (uint32(word) >> 15) & 0x1f
}

// Rs2 returns the second source register, word[24:20].
func (word Word) Rs2() uint32 {
	return (uint32(word) >> 20) & 0x1f
}

// Funct7 returns word[31:25].
func (word Word) Funct7() uint32 {
	return (uint32(word) >> 25) & 0x7f
}

// signExtend sign extends the low bits of value.
func signExtend(value uint32, bits int) int64 {
	shift := 32 - bits
	return int64(int32(value<<shift) >> shift)
}

// Immediate reassembles the immediate of a word, as interpreted by format.
// The U format returns the 20-bit upper immediate, unsigned.
func (word Word) Immediate(format Format) (value int64) {
	w := uint32(word)

	switch format {
	case FORMAT_I_LOAD, FORMAT_I_IMMEDIATE, FORMAT_I_JALR:
		value = signExtend(w>>20, 12)
	case FORMAT_S:
		value = signExtend(((w>>25)<<5)|((w>>7)&0x1f), 12)
	case FORMAT_SB:
		raw := ((w >> 31) << 12) |
			(((w >> 7) & 0x1) << 11) |
			(((w >> 25) & 0x3f) << 5) |
			(((w >> 8) & 0xf) << 1)
		value = signExtend(raw, 13)
	case FORMAT_UJ:
		raw := ((w >> 31) << 20) |
			(((w >> 12) & 0xff) << 12) |
			(((w >> 20) & 0x1) << 11) |
			(((w >> 21) & 0x3ff) << 1)
		value = signExtend(raw, 21)
	case FORMAT_U:
		value = int64(w >> 12)
	}

	return
}

// String returns the word as 32 binary digits, MSB first.
func (word Word) String() string {
	return fmt.Sprintf("%032b", uint32(word))
}

// Fields returns the word as binary digits, with a space between each field
// of format.
func (word Word) Fields(format Format) string {
	widths, ok := fieldWidths[format]
	if !ok {
		return word.String()
	}

	bits := word.String()
	fields := make([]string, 0, len(widths))
	for _, width := range widths {
		fields = append(fields, bits[:width])
		bits = bits[width:]
	}

	return strings.Join(fields, " ")
}
