package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_Line(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{Lines: []string{"SET REG0 1", "PRT REG0"}}

	assert.Equal(2, prog.Len())

	line, ok := prog.Line(1)
	assert.True(ok)
	assert.Equal("PRT REG0", line)

	_, ok = prog.Line(2)
	assert.False(ok)

	_, ok = prog.Line(0xffffffff)
	assert.False(ok)

	var empty *Program
	assert.Equal(0, empty.Len())
	_, ok = empty.Line(0)
	assert.False(ok)
}

func TestProgram_Fetch(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{Lines: []string{"SET REG0 1", "FOO"}}

	inst, err := prog.Fetch(0)
	assert.NoError(err)
	assert.Equal(OP_SET, inst.Mnemonic)
	assert.Equal(0, inst.LineNo)

	_, err = prog.Fetch(1)
	assert.ErrorIs(err, ErrUnknownOpcode)

	_, err = prog.Fetch(2)
	assert.ErrorIs(err, ErrIpEmpty)
}

func TestProgram_Instructions(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{Lines: []string{"A", "B", "C"}}

	var seen []string
	for n, line := range prog.Instructions() {
		assert.Equal(len(seen), n)
		seen = append(seen, line)
		if n == 1 {
			break
		}
	}

	assert.Equal([]string{"A", "B"}, seen)
}

func TestProgram_Check(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{Lines: []string{
		"SET REG0 5",
		"ADD REG0 REG1",
		"J 0",
		"PRT anything",
	}}
	assert.NoError(prog.Check())

	table := [](struct {
		line string
		err  error
	}){
		{"FOO REG0 REG1", ErrUnknownOpcode},
		{"SET 1 2", ErrInvalidDestination},
		{"SET REG0 x", ErrInvalidOperand},
		{"J REG1", ErrInvalidJumpTarget},
		{"PRT", ErrInvalidOperand},
	}

	for _, entry := range table {
		prog := &Program{Lines: []string{"SET REG0 5", "PRT REG0", entry.line}}
		err := prog.Check()
		assert.ErrorIs(err, entry.err, entry.line)

		var syntax *ErrSyntax
		assert.True(errors.As(err, &syntax), entry.line)
		if syntax != nil {
			assert.Equal(2, syntax.LineNo, entry.line)
			assert.Equal(entry.line, syntax.Line)
		}
	}
}
