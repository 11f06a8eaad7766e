package io

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Tape provides sequential line I/O over an io.Reader and io.Writer.
// Input is consumed as a program Source, and Output receives the
// lines sent to the Sink.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	Lines int // Count of lines emitted.
}

var _ Source = (*Tape)(nil)
var _ Sink = (*Tape)(nil)

// Load reads all remaining lines from the input stream.
func (tc *Tape) Load() (lines []string, err error) {
	if tc.Input == nil {
		err = errors.Join(ErrSourceUnavailable, ErrSourceMissing)
		return
	}

	scanner := bufio.NewScanner(tc.Input)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}

	err = scanner.Err()
	if err != nil {
		lines = nil
		err = errors.Join(ErrSourceUnavailable, err)
	}

	return
}

// Emit writes a line to the output stream. Output with no writer
// attached is discarded.
func (tc *Tape) Emit(line string) {
	tc.Lines++

	if tc.Output == nil {
		return
	}

	io.WriteString(tc.Output, line+"\n")
}
