package cpu

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recorder is a Sink that keeps every emitted line.
type recorder struct {
	lines []string
}

func (r *recorder) Emit(line string) {
	r.lines = append(r.lines, line)
}

// runCpu ticks a program until it finishes, fails, or reaches the tick limit.
func runCpu(program []string, limit int) (cpu *Cpu, out *recorder, err error) {
	out = &recorder{}
	cpu = NewCpu(&Program{Lines: program}, out)

	for range limit {
		err = cpu.Tick()
		if err != nil {
			break
		}
	}

	if errors.Is(err, ErrIpEmpty) {
		err = nil
	}

	return
}

func TestCpuAlu(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		op       string
		a, b     int32
		expected int32
	}){
		{"ADD", 3, 4, 7},
		{"ADD", 2147483647, 1, -2147483648},
		{"SUB", 3, 5, -2},
		{"SUB", -2147483648, 1, 2147483647},
		{"SHL", 1, 4, 16},
		{"SHL", 1, 33, 2},
		{"SHL", 3, -1, -2147483648},
		{"SHR", 256, 4, 16},
		{"SHR", -16, 2, -4},
		{"SET", 9, -3, -3},
		{"AND", 12, 10, 8},
		{"OR", 12, 3, 15},
	}

	for _, entry := range table {
		name := fmt.Sprintf("%v %d %d", entry.op, entry.a, entry.b)

		// Immediate source.
		cpu, _, err := runCpu([]string{
			fmt.Sprintf("SET REG0 %d", entry.a),
			fmt.Sprintf("%v REG0 %d", entry.op, entry.b),
		}, 10)
		assert.NoError(err, name)
		assert.Equal(entry.expected, cpu.Register[0], name)
		assert.Equal(uint32(2), cpu.Ip, name)

		// Register source.
		cpu, _, err = runCpu([]string{
			fmt.Sprintf("SET REG0 %d", entry.a),
			fmt.Sprintf("SET REG5 %d", entry.b),
			fmt.Sprintf("%v REG0 REG5", entry.op),
		}, 10)
		assert.NoError(err, name)
		assert.Equal(entry.expected, cpu.Register[0], name)
		assert.Equal(entry.b, cpu.Register[5], name)
		assert.Equal(3, cpu.Ticks, name)
	}
}

func TestCpuRegisterResolution(t *testing.T) {
	assert := assert.New(t)

	cpu, out, err := runCpu([]string{
		"SET REG0 2",
		"SET REG1 REG0",
		"PRT REG1",
		"SUB REG0 REG0",
	}, 10)
	assert.NoError(err)
	assert.Equal([]string{"2"}, out.lines)
	assert.Equal(int32(0), cpu.Register[0])
	assert.Equal(int32(2), cpu.Register[1])
}

func TestCpuSetIdempotent(t *testing.T) {
	assert := assert.New(t)

	cpu, _, err := runCpu([]string{"SET REG2 11"}, 10)
	assert.NoError(err)
	once := cpu.Register

	cpu, _, err = runCpu([]string{"SET REG2 11", "SET REG2 11"}, 10)
	assert.NoError(err)
	assert.Equal(once, cpu.Register)
}

func TestCpuPrint(t *testing.T) {
	assert := assert.New(t)

	_, out, err := runCpu([]string{
		"SET REG3 -12",
		"PRT REG3",
		"PRT hello",
		"PRT 0042",
		"PRT REG4",
	}, 10)
	assert.NoError(err)
	assert.Equal([]string{"-12", "hello", "0042", "0"}, out.lines)

	// No sink attached.
	cpu := NewCpu(&Program{Lines: []string{"PRT REG0"}}, nil)
	assert.NoError(cpu.Tick())
	assert.Equal(uint32(1), cpu.Ip)
}

func TestCpuJump(t *testing.T) {
	assert := assert.New(t)

	cpu, out, err := runCpu([]string{
		"SET REG0 0",
		"J 3",
		"PRT REG0",
		"PRT REG0",
	}, 10)
	assert.NoError(err)
	assert.Equal([]string{"0"}, out.lines)
	assert.Equal(3, cpu.Ticks)
	assert.Equal(uint32(4), cpu.Ip)

	// Jump past the end finishes the program.
	cpu, out, err = runCpu([]string{"J 50", "PRT skipped"}, 10)
	assert.NoError(err)
	assert.Empty(out.lines)
	assert.Equal(uint32(50), cpu.Ip)
	assert.True(cpu.Done())

	// Self loop never finishes.
	cpu, _, err = runCpu([]string{"J 0"}, 25)
	assert.NoError(err)
	assert.False(cpu.Done())
	assert.Equal(25, cpu.Ticks)
	assert.Equal(uint32(0), cpu.Ip)
}

func TestCpuErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line string
		err  error
	}){
		{"SET 5 REG0", ErrInvalidDestination},
		{"ADD hello 1", ErrInvalidDestination},
		{"ADD REG0 REGX", ErrInvalidOperand},
		{"ADD REG0", ErrInvalidOperand},
		{"J REG0", ErrInvalidJumpTarget},
		{"J -2", ErrInvalidJumpTarget},
		{"J there", ErrInvalidOperand},
		{"FOO REG0 REG1", ErrUnknownOpcode},
		{"", ErrUnknownOpcode},
	}

	for _, entry := range table {
		cpu, out, err := runCpu([]string{"SET REG0 9", entry.line, "SET REG0 1", "PRT REG0"}, 10)
		assert.ErrorIs(err, entry.err, entry.line)
		assert.Equal(uint32(1), cpu.Ip, entry.line)
		assert.Equal(int32(9), cpu.Register[0], entry.line)
		assert.Equal(1, cpu.Ticks, entry.line)
		assert.Empty(out.lines, entry.line)
	}
}

func TestCpuExecuteAllMnemonics(t *testing.T) {
	assert := assert.New(t)

	for op := range Mnemonics() {
		var args []string
		switch op.Class() {
		case CLASS_ALU:
			args = []string{"REG0", "1"}
		case CLASS_JUMP:
			args = []string{"0"}
		case CLASS_PRINT:
			args = []string{"REG0"}
		}

		cpu := NewCpu(&Program{}, &recorder{})
		err := cpu.Execute(Instruction{Mnemonic: op, Args: args})
		assert.NoError(err, op.String())
		assert.Equal(1, cpu.Ticks, op.String())
	}

	cpu := NewCpu(&Program{}, &recorder{})
	err := cpu.Execute(Instruction{Mnemonic: Mnemonic(OP_COUNT), Args: []string{"REG0", "1"}})
	assert.ErrorIs(err, ErrUnknownOpcode)
	assert.Equal(uint32(0), cpu.Ip)
}

func TestCpuReset(t *testing.T) {
	assert := assert.New(t)

	cpu, _, err := runCpu([]string{"SET REG0 1", "SET REG7 7"}, 10)
	assert.NoError(err)
	assert.Contains(cpu.String(), "   ip: 2\n")
	assert.Contains(cpu.String(), " REG7: 7\n")

	cpu.Reset()
	assert.Equal(uint32(0), cpu.Ip)
	assert.Equal(0, cpu.Ticks)
	assert.Equal(RegisterFile{}, cpu.Register)
	assert.False(cpu.Done())

	err = cpu.Tick()
	assert.NoError(err)
	assert.Equal(int32(1), cpu.Register[0])
}

func TestCpuEmptyProgram(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(&Program{}, nil)
	assert.True(cpu.Done())
	assert.ErrorIs(cpu.Tick(), ErrIpEmpty)
}
