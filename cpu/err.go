package cpu

import (
	"errors"

	"github.com/ezrec/regvm/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrIpEmpty = errors.New(f("ip past end of program"))

	// Instruction errors
	ErrUnknownOpcode      = errors.New(f("unknown operation"))
	ErrInvalidDestination = errors.New(f("destination is not a register"))
	ErrInvalidJumpTarget  = errors.New(f("invalid jump target"))
	ErrInvalidOperand     = errors.New(f("invalid operand"))
	ErrOperandMissing     = errors.New(f("operand missing"))
	ErrOperandExtra       = errors.New(f("excessive operands"))

	// Loader errors
	ErrLineTooLong    = errors.New(f("line too long"))
	ErrProgramTooLong = errors.New(f("program too long"))
)

// ErrSyntax indicates the location of a load or check error.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrParseValue is a token that is neither a register nor an integer.
type ErrParseValue string

func (err ErrParseValue) Error() string {
	return f("'%v' is not a value or register", string(err))
}

func (err ErrParseValue) Is(target error) bool {
	return target == ErrInvalidOperand
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrMnemonic is an unknown mnemonic.
type ErrMnemonic string

func (err ErrMnemonic) Error() string {
	return f("unknown operation '%v'", string(err))
}

func (err ErrMnemonic) Is(target error) bool {
	return target == ErrUnknownOpcode
}
