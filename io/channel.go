// Package io provides the program sources and output sinks used by the
// regvm interpreter. Sources produce the raw instruction lines of a
// program, and sinks receive every line the program prints.
package io

// Source produces the lines of a program.
type Source interface {
	// Load returns the program text, one entry per line, without
	// line terminators.
	Load() (lines []string, err error)
}

// Sink receives console output from a running program.
type Sink interface {
	// Emit outputs a single line of text.
	Emit(line string)
}
