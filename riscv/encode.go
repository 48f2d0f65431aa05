// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package riscv

// Encode classifies and encodes a tokenized instruction.
func Encode(words []string) (word Word, err error) {
	if len(words) == 0 {
		err = ErrOperandArity{Want: 1}
		return
	}

	format, err := Classify(words[0])
	if err != nil {
		return
	}

	return EncodeFormat(format, words)
}

// registers resolves a list of register names.
func registers(names ...string) (regs []uint32, err error) {
	regs = make([]uint32, len(names))
	for n, name := range names {
		regs[n], err = Register(name)
		if err != nil {
			return
		}
	}

	return
}

// EncodeFormat encodes a tokenized instruction, words[0] being the mnemonic,
// into the layout of format.
func EncodeFormat(format Format, words []string) (word Word, err error) {
	if len(words) == 0 {
		err = ErrOperandArity{Want: 1}
		return
	}

	mnemonic := words[0]
	args := words[1:]

	// lr.d rd, (rs1) has no rs2. lr.d and sc.d otherwise take the R operand
	// order rd, rs1, rs2, so 'sc.d x1, x2, (x3)' stores x3 to the address in
	// x2, not the conventional 'sc.d rd, rs2, (rs1)'.
	if mnemonic == "lr.d" && len(args) == 2 {
		args = append(args[:2:2], "x0")
	}

	if len(args) != format.Operands() {
		err = ErrOperandArity{Mnemonic: mnemonic, Want: format.Operands(), Got: len(args)}
		return
	}

	opcode, err := Opcode(format)
	if err != nil {
		return
	}

	var funct3 uint32
	if format != FORMAT_UJ && format != FORMAT_U {
		funct3, err = Funct3(mnemonic)
		if err != nil {
			return
		}
	}

	var regs []uint32
	var imm Immediate

	switch format {
	case FORMAT_R:
		// rd rs1 rs2
		var funct7 uint32
		funct7, err = Funct7(mnemonic)
		if err != nil {
			return
		}
		regs, err = registers(args[0], args[1], args[2])
		if err != nil {
			return
		}
		word = MakeWordR(funct7, regs[2], regs[1], funct3, regs[0], opcode)
	case FORMAT_I_LOAD, FORMAT_I_JALR:
		// rd imm rs1
		regs, err = registers(args[0], args[2])
		if err != nil {
			return
		}
		imm, err = immediateOf(args[1], rangeSigned12)
		if err != nil {
			return
		}
		word = MakeWordI(imm, regs[1], funct3, regs[0], opcode)
	case FORMAT_I_IMMEDIATE:
		// rd rs1 imm
		regs, err = registers(args[0], args[1])
		if err != nil {
			return
		}
		funct6, is_shift := Funct6(mnemonic)
		if is_shift {
			imm, err = immediateOf(args[2], rangeShift)
			if err != nil {
				return
			}
			imm |= Immediate(funct6 << 6)
		} else {
			imm, err = immediateOf(args[2], rangeSigned12)
			if err != nil {
				return
			}
		}
		word = MakeWordI(imm, regs[1], funct3, regs[0], opcode)
	case FORMAT_S:
		// rs2 imm rs1
		regs, err = registers(args[0], args[2])
		if err != nil {
			return
		}
		imm, err = immediateOf(args[1], rangeSigned12)
		if err != nil {
			return
		}
		word = MakeWordS(imm, regs[0], regs[1], funct3, opcode)
	case FORMAT_SB:
		// rs1 rs2 imm
		regs, err = registers(args[0], args[1])
		if err != nil {
			return
		}
		imm, err = immediateOf(args[2], rangeBranch)
		if err != nil {
			return
		}
		word = MakeWordSB(imm, regs[1], regs[0], funct3, opcode)
	case FORMAT_UJ:
		// rd imm
		regs, err = registers(args[0])
		if err != nil {
			return
		}
		imm, err = immediateOf(args[1], rangeJump)
		if err != nil {
			return
		}
		word = MakeWordUJ(imm, regs[0], opcode)
	case FORMAT_U:
		// rd imm
		regs, err = registers(args[0])
		if err != nil {
			return
		}
		imm, err = immediateOf(args[1], rangeUpper)
		if err != nil {
			return
		}
		word = MakeWordU(imm, regs[0], opcode)
	default:
		err = ErrUnknownFormat(format)
	}

	return
}
