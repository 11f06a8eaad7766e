// Package cpu implements the register machine and program loader for regvm.
//
// The machine consists of an instruction pointer (IP) and eight signed 32-bit
// general-purpose registers (REG0-REG7). Programs are sequences of text lines,
// one instruction per line, addressed by their zero-based line index.
//
// Each instruction is a mnemonic followed by up to two operands. An operand
// is either a register name or a base-10 integer literal.
//
// The loader reads program text, enforces the line and program limits, and
// expands compile-time $(...) expressions and defines.
package cpu
