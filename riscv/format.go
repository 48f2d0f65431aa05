package riscv

// Format is the instruction format family, which determines the bit layout
// of an encoded Word.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_R           = Format(0) // R
	FORMAT_I_LOAD      = Format(1) // I-load
	FORMAT_I_IMMEDIATE = Format(2) // I-immediate
	FORMAT_I_JALR      = Format(3) // I-jalr
	FORMAT_S           = Format(4) // S
	FORMAT_SB          = Format(5) // SB
	FORMAT_UJ          = Format(6) // UJ
	FORMAT_U           = Format(7) // U
)

// Operands returns the number of operand tokens a format consumes.
func (format Format) Operands() int {
	switch format {
	case FORMAT_UJ, FORMAT_U:
		return 2
	default:
		return 3
	}
}

// fieldWidths are the field widths of each format, MSB first.
var fieldWidths = map[Format][]int{
	FORMAT_R:           {7, 5, 5, 3, 5, 7},
	FORMAT_I_LOAD:      {12, 5, 3, 5, 7},
	FORMAT_I_IMMEDIATE: {12, 5, 3, 5, 7},
	FORMAT_I_JALR:      {12, 5, 3, 5, 7},
	FORMAT_S:           {7, 5, 5, 3, 5, 7},
	FORMAT_SB:          {1, 6, 5, 5, 3, 4, 1, 7},
	FORMAT_UJ:          {1, 10, 1, 8, 5, 7},
	FORMAT_U:           {20, 5, 7},
}
