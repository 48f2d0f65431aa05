// Package riscv implements a line-at-a-time assembler for a subset of the
// RV64I instruction set (plus lr.d/sc.d).
//
// Each source line is tokenized, its mnemonic classified into an instruction
// format (R, I-load, I-immediate, I-jalr, S, SB, UJ or U), and its operands
// packed into a single 32-bit Word. There is no symbol table and no program
// counter: branch and jump targets are literal offsets, and every line is
// assembled independently of every other line.
//
// Operands follow the R, I, S, SB, UJ and U orders throughout, including
// lr.d and sc.d: 'sc.d rd, rs1, rs2', where rs1 is the address.
// The U format operand is the 20-bit upper immediate, as in 'lui x5, 0x12345'.
//
// Immediates may be written in decimal, as 0x-prefixed hexadecimal, or as
// compile-time $(...) expressions which are evaluated before tokenization.
package riscv
