// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator drives the regvm machine from reset to halt.
package emulator

import (
	"errors"
	"log"

	"github.com/ezrec/regvm/cpu"
	"github.com/ezrec/regvm/io"
)

// State is the run state of the emulator.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING = State(0) // running
	STATE_HALTED  = State(1) // halted
)

// Emulator state. CPU + console tape.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	*cpu.Cpu      // Reference to the CPU simulation.

	Tape io.Tape // Console IO.

	TickLimit int   // Maximum instructions to execute. Zero is unlimited.
	State     State // Current run state.
	Err       error // Error that halted the emulator, if any.
}

// NewEmulator creates a new emulator, with output sent to its Tape.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu: cpu.NewCpu(&cpu.Program{}, nil),
	}

	emu.Cpu.Output = &emu.Tape

	return
}

// FinishedMessage is emitted when a program runs off its end.
func FinishedMessage() string {
	return f("Program finished executing successfully.")
}

// Reset the emulator to the start of its program.
func (emu *Emulator) Reset() (err error) {
	if emu.Cpu.Program == nil {
		err = ErrProgramMissing
		return
	}

	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()

	emu.State = STATE_RUNNING
	emu.Err = nil

	return
}

// Ticks returns the total instructions executed since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// LineNo returns the line index of the next instruction.
func (emu *Emulator) LineNo() int {
	return int(emu.Cpu.Ip)
}

// Tick performs a single instruction of the emulator. Once halted, done is
// true and err is the halting error, if any.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.State == STATE_HALTED {
		return true, emu.Err
	}

	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	line, _ := emu.Cpu.Program.Line(emu.Cpu.Ip)
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Line: line, Err: err}
			emu.halt(err)
			done = true
		}
	}()

	if emu.Cpu.Done() {
		emu.finish()
		done = true
		return
	}

	if emu.TickLimit > 0 && emu.Cpu.Ticks >= emu.TickLimit {
		err = ErrTickLimit
		return
	}

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrIpEmpty) {
		err = nil
	}
	if err != nil {
		return
	}

	if emu.Cpu.Done() {
		emu.finish()
		done = true
	}

	return
}

// Run ticks the emulator until it halts.
func (emu *Emulator) Run() (err error) {
	var done bool
	for !done {
		done, err = emu.Tick()
	}

	return
}

// finish halts successfully, and reports completion.
func (emu *Emulator) finish() {
	emu.halt(nil)

	if emu.Cpu.Output != nil {
		emu.Cpu.Output.Emit(FinishedMessage())
	}
}

// halt moves the emulator to the halted state.
func (emu *Emulator) halt(err error) {
	emu.State = STATE_HALTED
	emu.Err = err

	if emu.Verbose {
		log.Printf("emulator: halted after %d ticks: %v", emu.Cpu.Ticks, err)
	}
}
