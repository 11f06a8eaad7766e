package cpu

import (
	"strconv"
)

// OperandKind is the resolved form of an operand token.
type OperandKind int

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	OPERAND_REGISTER  = OperandKind(0) // reg
	OPERAND_IMMEDIATE = OperandKind(1) // imm
)

// Operand is a resolved operand token.
type Operand struct {
	Kind      OperandKind // Register reference or immediate.
	Register  int         // Register index, for OPERAND_REGISTER.
	Immediate int32       // Literal value, for OPERAND_IMMEDIATE.
	Text      string      // Token as written.
}

// ResolveOperand decides if a token names a register or is an integer literal.
// Tokens that are neither return ErrParseValue.
func ResolveOperand(token string) (op Operand, err error) {
	op.Text = token

	reg, ok := LookupRegister(token)
	if ok {
		op.Kind = OPERAND_REGISTER
		op.Register = reg
		return
	}

	v64, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		err = ErrParseValue(token)
		return
	}

	op.Kind = OPERAND_IMMEDIATE
	op.Immediate = int32(v64)

	return
}

// IsRegister returns true for a register reference.
func (op Operand) IsRegister() bool {
	return op.Kind == OPERAND_REGISTER
}

// Value reads the operand, using the register file for register references.
func (op Operand) Value(rf *RegisterFile) int32 {
	if op.Kind == OPERAND_REGISTER {
		return rf[op.Register]
	}

	return op.Immediate
}

// String returns the operand as written.
func (op Operand) String() string {
	return op.Text
}
