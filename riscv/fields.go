package riscv

// formatMap is the closed set of supported mnemonics.
var formatMap = map[string]Format{
	"add":  FORMAT_R,
	"sub":  FORMAT_R,
	"sll":  FORMAT_R,
	"xor":  FORMAT_R,
	"srl":  FORMAT_R,
	"sra":  FORMAT_R,
	"or":   FORMAT_R,
	"and":  FORMAT_R,
	"lr.d": FORMAT_R,
	"sc.d": FORMAT_R,

	"lb":  FORMAT_I_LOAD,
	"lh":  FORMAT_I_LOAD,
	"lw":  FORMAT_I_LOAD,
	"ld":  FORMAT_I_LOAD,
	"lbu": FORMAT_I_LOAD,
	"lhu": FORMAT_I_LOAD,
	"lwu": FORMAT_I_LOAD,

	"addi": FORMAT_I_IMMEDIATE,
	"slli": FORMAT_I_IMMEDIATE,
	"xori": FORMAT_I_IMMEDIATE,
	"srli": FORMAT_I_IMMEDIATE,
	"srai": FORMAT_I_IMMEDIATE,
	"ori":  FORMAT_I_IMMEDIATE,
	"andi": FORMAT_I_IMMEDIATE,

	"jalr": FORMAT_I_JALR,

	"sb": FORMAT_S,
	"sh": FORMAT_S,
	"sw": FORMAT_S,
	"sd": FORMAT_S,

	"beq":  FORMAT_SB,
	"bne":  FORMAT_SB,
	"blt":  FORMAT_SB,
	"bge":  FORMAT_SB,
	"bltu": FORMAT_SB,
	"bgeu": FORMAT_SB,

	"jal": FORMAT_UJ,

	"lui": FORMAT_U,
}

// pseudoMap lists the pseudo-instructions, and what they would expand to.
var pseudoMap = map[string]string{
	"mv": "addi",
	"li": "addi",
	"j":  "jal",
	"la": "lui+addi",
}

// Classify returns the instruction format of a mnemonic.
func Classify(mnemonic string) (format Format, err error) {
	format, ok := formatMap[mnemonic]
	if ok {
		return
	}

	if _, ok = pseudoMap[mnemonic]; ok {
		err = ErrPseudoInstruction(mnemonic)
		return
	}

	err = ErrUnknownInstruction(mnemonic)
	return
}

var opcodeMap = map[Format]uint32{
	FORMAT_R:           0b0110011,
	FORMAT_I_LOAD:      0b0000011,
	FORMAT_I_IMMEDIATE: 0b0010011,
	FORMAT_I_JALR:      0b1100111,
	FORMAT_S:           0b0100011,
	FORMAT_SB:          0b1100011,
	FORMAT_UJ:          0b1101111,
	FORMAT_U:           0b0110111,
}

// Opcode returns the 7-bit major opcode of a format.
func Opcode(format Format) (opcode uint32, err error) {
	opcode, ok := opcodeMap[format]
	if !ok {
		err = ErrUnknownFormat(format)
	}
	return
}

var funct3Map = map[string]uint32{
	"add":  0b000,
	"sub":  0b000,
	"sll":  0b001,
	"xor":  0b100,
	"srl":  0b101,
	"sra":  0b101,
	"or":   0b110,
	"and":  0b111,
	"lr.d": 0b011,
	"sc.d": 0b011,

	"lb":  0b000,
	"lh":  0b001,
	"lw":  0b010,
	"ld":  0b011,
	"lbu": 0b100,
	"lhu": 0b101,
	"lwu": 0b110,

	"addi": 0b000,
	"slli": 0b001,
	"xori": 0b100,
	"srli": 0b101,
	"srai": 0b101,
	"ori":  0b110,
	"andi": 0b111,

	"jalr": 0b000,

	"sb": 0b000,
	"sh": 0b001,
	"sw": 0b010,
	"sd": 0b011,

	"beq":  0b000,
	"bne":  0b001,
	"blt":  0b100,
	"bge":  0b101,
	"bltu": 0b110,
	"bgeu": 0b111,
}

// Funct3 returns the 3-bit minor opcode of a mnemonic.
// jal and lui have none.
func Funct3(mnemonic string) (funct3 uint32, err error) {
	funct3, ok := funct3Map[mnemonic]
	if !ok {
		err = ErrUnknownInstruction(mnemonic)
	}
	return
}

var funct7Map = map[string]uint32{
	"add":  0b0000000,
	"sub":  0b0100000,
	"sll":  0b0000000,
	"xor":  0b0000000,
	"srl":  0b0000000,
	"sra":  0b0100000,
	"or":   0b0000000,
	"and":  0b0000000,
	"lr.d": 0b0001000,
	"sc.d": 0b0001100,
}

// Funct7 returns the 7-bit opcode extension of an R format mnemonic.
func Funct7(mnemonic string) (funct7 uint32, err error) {
	funct7, ok := funct7Map[mnemonic]
	if !ok {
		err = ErrUnknownInstruction(mnemonic)
	}
	return
}

// shiftMap holds imm[11:6] of the RV64 shift-immediate mnemonics.
var shiftMap = map[string]uint32{
	"slli": 0b000000,
	"srli": 0b000000,
	"srai": 0b010000,
}

// Funct6 returns the shift-immediate opcode extension placed in imm[11:6].
func Funct6(mnemonic string) (funct6 uint32, ok bool) {
	funct6, ok = shiftMap[mnemonic]
	return
}
