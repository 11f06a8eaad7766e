package cpu

import (
	"errors"
	"strings"
)

// Instruction is a decoded program line.
type Instruction struct {
	LineNo   int      // Index of the line in the program.
	Line     string   // Line text as loaded.
	Mnemonic Mnemonic // Operation to perform.
	Args     []string // Operand tokens, as written.
}

// Decode splits a line into its mnemonic and operand tokens, and checks the
// operand count against the arity of the operation.
func Decode(lineno int, line string) (inst Instruction, err error) {
	inst.LineNo = lineno
	inst.Line = line

	words := strings.Fields(line)
	if len(words) == 0 {
		err = ErrMnemonic("")
		return
	}

	op, ok := LookupMnemonic(words[0])
	if !ok {
		err = ErrMnemonic(words[0])
		return
	}

	inst.Mnemonic = op
	inst.Args = words[1:]

	arity := op.Arity()
	switch {
	case len(inst.Args) > arity:
		err = errors.Join(ErrInvalidOperand, ErrOperandExtra)
	case len(inst.Args) == 0 && op.Class() == CLASS_ALU:
		err = errors.Join(ErrInvalidDestination, ErrOperandMissing)
	case len(inst.Args) < arity:
		err = errors.Join(ErrInvalidOperand, ErrOperandMissing)
	}

	return
}

// arg returns the n'th operand token.
func (inst Instruction) arg(n int) (word string, err error) {
	if n >= len(inst.Args) {
		if n == 0 && inst.Mnemonic.Class() == CLASS_ALU {
			err = errors.Join(ErrInvalidDestination, ErrOperandMissing)
		} else {
			err = errors.Join(ErrInvalidOperand, ErrOperandMissing)
		}
		return
	}

	word = inst.Args[n]
	return
}

// Destination resolves the register written by an ALU operation.
func (inst Instruction) Destination() (reg int, err error) {
	word, err := inst.arg(0)
	if err != nil {
		return
	}

	reg, ok := LookupRegister(word)
	if !ok {
		err = ErrInvalidDestination
		return
	}

	return
}

// Source resolves the value operand of an ALU operation.
func (inst Instruction) Source() (src Operand, err error) {
	word, err := inst.arg(1)
	if err != nil {
		return
	}

	return ResolveOperand(word)
}

// JumpTarget resolves the line index of a jump. Targets are always
// literal indices; a register target is ErrInvalidJumpTarget.
func (inst Instruction) JumpTarget() (ip uint32, err error) {
	word, err := inst.arg(0)
	if err != nil {
		return
	}

	target, err := ResolveOperand(word)
	if err != nil {
		return
	}

	if target.IsRegister() || target.Immediate < 0 {
		err = ErrInvalidJumpTarget
		return
	}

	ip = uint32(target.Immediate)
	return
}

// Check validates the operands without executing the instruction.
func (inst Instruction) Check() (err error) {
	switch inst.Mnemonic.Class() {
	case CLASS_ALU:
		_, err = inst.Destination()
		if err != nil {
			return
		}
		_, err = inst.Source()
	case CLASS_JUMP:
		_, err = inst.JumpTarget()
	case CLASS_PRINT:
		_, err = inst.arg(0)
	}

	return
}

// String returns the instruction in canonical form.
func (inst Instruction) String() string {
	return strings.Join(append([]string{inst.Mnemonic.String()}, inst.Args...), " ")
}
