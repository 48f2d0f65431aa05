package riscv

import (
	"fmt"
)

// REGISTER_COUNT is the number of integer registers.
const REGISTER_COUNT = 32

// regMap is a map of register names to register indexes.
var regMap = make(map[string]uint32, REGISTER_COUNT)

func init() {
	for n := range REGISTER_COUNT {
		regMap[RegisterName(uint32(n))] = uint32(n)
	}
}

// RegisterName returns the name of a register index.
func RegisterName(index uint32) string {
	return fmt.Sprintf("x%d", index)
}

// Register returns the 5-bit index of a register name, x0 through x31.
// ABI aliases (ra, sp, ...) are not recognized.
func Register(name string) (index uint32, err error) {
	index, ok := regMap[name]
	if !ok {
		err = ErrUnknownRegister(name)
	}
	return
}
