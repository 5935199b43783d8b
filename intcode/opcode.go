package intcode

import (
	"fmt"
	"strings"
)

// INSTRUCTION_WIDTH is the number of cells the instruction pointer advances
// after an add or multiply.
const INSTRUCTION_WIDTH = 4

// Op is a decoded opcode. Values other than the known opcodes are the
// unknown variant, and keep the raw cell value.
type Op int64

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_ADD  = Op(1)  // add
	OP_MUL  = Op(2)  // mul
	OP_HALT = Op(99) // halt
)

// Decode classifies a raw memory cell as an opcode. A value matching none of
// the known opcodes decodes to the unknown variant holding that value.
func Decode(word int64) Op {
	return Op(word)
}

// Known returns true if the opcode is one the machine can execute.
func (op Op) Known() bool {
	switch op {
	case OP_ADD, OP_MUL, OP_HALT:
		return true
	}
	return false
}

// Params returns the number of operand cells the opcode reads.
func (op Op) Params() int {
	switch op {
	case OP_ADD, OP_MUL:
		return 3
	}
	return 0
}

// Apply computes the arithmetic result of an add or multiply.
func (op Op) Apply(a, b int64) (value int64, ok bool) {
	switch op {
	case OP_ADD:
		return a + b, true
	case OP_MUL:
		return a * b, true
	}
	return
}

// Instruction is a decoded opcode with its operand cells.
type Instruction struct {
	Ip     int     // Address of the opcode cell.
	Op     Op      // Decoded opcode.
	Params []int64 // Raw operand cells, in memory order.
}

// String returns the instruction in listing form, ie: "add [9] [10] -> [3]".
func (insn Instruction) String() string {
	switch insn.Op {
	case OP_ADD, OP_MUL:
		return fmt.Sprintf("%v [%d] [%d] -> [%d]", insn.Op, insn.Params[0], insn.Params[1], insn.Params[2])
	}

	if !insn.Op.Known() {
		return fmt.Sprintf(".word %d", int64(insn.Op))
	}

	words := []string{insn.Op.String()}
	for _, param := range insn.Params {
		words = append(words, fmt.Sprintf("%d", param))
	}
	return strings.Join(words, " ")
}
