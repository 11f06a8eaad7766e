package cpu

import (
	"fmt"
)

const (
	REGISTER_COUNT = 8 // Number of general purpose registers.
)

// registerName lists the source names of the registers, in index order.
var registerName = [REGISTER_COUNT]string{
	"REG0", "REG1", "REG2", "REG3", "REG4", "REG5", "REG6", "REG7",
}

// RegisterFile is the bank of general purpose registers.
type RegisterFile [REGISTER_COUNT]int32

// RegisterName returns the source name of a register index.
func RegisterName(index int) string {
	if index < 0 || index >= REGISTER_COUNT {
		return fmt.Sprintf("REG?%d", index)
	}

	return registerName[index]
}

// LookupRegister finds the register index for an exact register name.
func LookupRegister(name string) (index int, ok bool) {
	for n, reg := range registerName {
		if reg == name {
			return n, true
		}
	}

	return
}

// Reset zeros all registers.
func (rf *RegisterFile) Reset() {
	clear(rf[:])
}

// String returns the register contents, one register per line.
func (rf *RegisterFile) String() (text string) {
	for n, val := range rf {
		text += fmt.Sprintf("% 5s: %d\n", registerName[n], val)
	}

	return
}
