package cpu

import (
	"iter"
)

// CodeClass is the shape of an operation.
type CodeClass int

//go:generate go tool stringer -linecomment -type=CodeClass
const (
	CLASS_ALU   = CodeClass(0) // alu
	CLASS_JUMP  = CodeClass(1) // jump
	CLASS_PRINT = CodeClass(2) // print
)

// Mnemonic is an operation of the machine.
type Mnemonic int

//go:generate go tool stringer -linecomment -type=Mnemonic
const (
	OP_ADD = Mnemonic(0) // ADD
	OP_SUB = Mnemonic(1) // SUB
	OP_SHL = Mnemonic(2) // SHL
	OP_SHR = Mnemonic(3) // SHR
	OP_SET = Mnemonic(4) // SET
	OP_AND = Mnemonic(5) // AND
	OP_OR  = Mnemonic(6) // OR
	OP_J   = Mnemonic(7) // J
	OP_PRT = Mnemonic(8) // PRT

	OP_COUNT = 9 // Number of operations.
)

// mnemonicMap maps source mnemonics to operations.
var mnemonicMap = map[string]Mnemonic{
	"ADD": OP_ADD,
	"SUB": OP_SUB,
	"SHL": OP_SHL,
	"SHR": OP_SHR,
	"SET": OP_SET,
	"AND": OP_AND,
	"OR":  OP_OR,
	"J":   OP_J,
	"PRT": OP_PRT,
}

// LookupMnemonic finds the operation for a case-sensitive mnemonic.
func LookupMnemonic(word string) (op Mnemonic, ok bool) {
	op, ok = mnemonicMap[word]
	return
}

// Mnemonics iterates over all operations in table order.
func Mnemonics() iter.Seq[Mnemonic] {
	return func(yield func(op Mnemonic) bool) {
		for op := range Mnemonic(OP_COUNT) {
			if !yield(op) {
				return
			}
		}
	}
}

// Valid returns true if the operation is in the table.
func (op Mnemonic) Valid() bool {
	return op >= 0 && op < OP_COUNT
}

// Class returns the operation class.
func (op Mnemonic) Class() CodeClass {
	switch op {
	case OP_J:
		return CLASS_JUMP
	case OP_PRT:
		return CLASS_PRINT
	default:
		return CLASS_ALU
	}
}

// Arity returns the number of operands following the mnemonic.
func (op Mnemonic) Arity() int {
	if op.Class() == CLASS_ALU {
		return 2
	}

	return 1
}
