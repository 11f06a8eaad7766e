package cpu

import (
	"iter"
)

// Program is an immutable list of instruction lines.
type Program struct {
	Lines []string
}

// Len returns the number of lines in the program.
func (prog *Program) Len() int {
	if prog == nil {
		return 0
	}

	return len(prog.Lines)
}

// Line returns the text of the line at ip.
func (prog *Program) Line(ip uint32) (line string, ok bool) {
	if uint64(ip) >= uint64(prog.Len()) {
		return
	}

	return prog.Lines[ip], true
}

// Fetch decodes the instruction at ip. Returns ErrIpEmpty if ip is past
// the end of the program.
func (prog *Program) Fetch(ip uint32) (inst Instruction, err error) {
	line, ok := prog.Line(ip)
	if !ok {
		err = ErrIpEmpty
		return
	}

	return Decode(int(ip), line)
}

// Instructions iterates over the line index and text of every line.
func (prog *Program) Instructions() iter.Seq2[int, string] {
	return func(yield func(lineno int, line string) bool) {
		for n := range prog.Len() {
			if !yield(n, prog.Lines[n]) {
				return
			}
		}
	}
}

// Check decodes and validates every line, without executing any.
func (prog *Program) Check() (err error) {
	for lineno, line := range prog.Instructions() {
		var inst Instruction
		inst, err = Decode(lineno, line)
		if err == nil {
			err = inst.Check()
		}
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			return
		}
	}

	return
}
