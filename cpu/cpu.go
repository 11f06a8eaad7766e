// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"log"

	"github.com/ezrec/regvm/io"
)

// Source is a program source.
type Source io.Source

// Sink is a console output sink.
type Sink io.Sink

// Cpu is the register machine: an instruction pointer and a register bank,
// executing a Program one line per tick.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Program *Program // Program being executed.
	Output  Sink     // Destination of PRT output.

	Ip       uint32       // Index of the next line to execute.
	Register RegisterFile // Register bank.

	Ticks int // Executed instruction counter.
}

// NewCpu creates a new CPU for a program.
func NewCpu(prog *Program, output Sink) (cpu *Cpu) {
	cpu = &Cpu{
		Program: prog,
		Output:  output,
	}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text = fmt.Sprintf("% 5s: %d\n", "ip", cpu.Ip)
	text += cpu.Register.String()
	return
}

// Reset clears the registers and the tick counter, and rewinds the IP.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Register.Reset()
	cpu.Ip = 0
	cpu.Ticks = 0
}

// Done returns true once the IP has run past the end of the program.
func (cpu *Cpu) Done() bool {
	return uint64(cpu.Ip) >= uint64(cpu.Program.Len())
}

// FetchInstruction decodes the instruction at the IP.
func (cpu *Cpu) FetchInstruction() (inst Instruction, err error) {
	return cpu.Program.Fetch(cpu.Ip)
}

// Tick executes a single instruction. Returns ErrIpEmpty when the
// program has finished.
func (cpu *Cpu) Tick() (err error) {
	inst, err := cpu.FetchInstruction()
	if err != nil {
		return
	}

	return cpu.Execute(inst)
}

// Execute executes a single decoded instruction. On error, neither the
// registers nor the IP are modified.
func (cpu *Cpu) Execute(inst Instruction) (err error) {
	if cpu.Verbose {
		log.Printf("%03d: %v", cpu.Ip, inst)
	}

	next_ip := cpu.Ip + 1

	switch inst.Mnemonic {
	case OP_ADD, OP_SUB, OP_SHL, OP_SHR, OP_SET, OP_AND, OP_OR:
		var dst int
		dst, err = inst.Destination()
		if err != nil {
			return
		}
		var src Operand
		src, err = inst.Source()
		if err != nil {
			return
		}
		val := src.Value(&cpu.Register)
		cpu.Register[dst] = cpu.doAlu(inst.Mnemonic, cpu.Register[dst], val)
	case OP_J:
		next_ip, err = inst.JumpTarget()
		if err != nil {
			return
		}
	case OP_PRT:
		var word string
		word, err = inst.arg(0)
		if err != nil {
			return
		}
		cpu.emit(cpu.printText(word))
	default:
		err = ErrMnemonic(inst.Mnemonic.String())
		return
	}

	cpu.Ip = next_ip
	cpu.Ticks += 1

	return
}

// printText returns the decimal value of a register, or the word itself.
func (cpu *Cpu) printText(word string) string {
	reg, ok := LookupRegister(word)
	if !ok {
		return word
	}

	return fmt.Sprintf("%d", cpu.Register[reg])
}

// emit sends a line to the output sink, if any.
func (cpu *Cpu) emit(line string) {
	if cpu.Output == nil {
		return
	}

	cpu.Output.Emit(line)
}

// doAlu performs the requested ALU action, and returns the output value.
func (cpu *Cpu) doAlu(op Mnemonic, input int32, value int32) (output int32) {
	switch op {
	case OP_SET: // set
		output = value
	case OP_AND: // and
		output = input & value
	case OP_OR: // or
		output = input | value
	case OP_SHL: // shl
		value &= 0x1f // clamp to 31 bits of shift
		output = input << value
	case OP_SHR: // shr
		value &= 0x1f // clamp to 31 bits of shift
		output = input >> value
	case OP_ADD: // add
		output = input + value
	case OP_SUB: // sub
		output = input - value
	}

	return
}
