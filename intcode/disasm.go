package intcode

import (
	"iter"
)

// Disassemble returns an iterator over the instructions of a program,
// keyed by address. It walks the memory at the fixed instruction width
// without executing anything, and stops after the first halt, unknown
// opcode, or instruction missing its operands.
func Disassemble(memory Memory) iter.Seq2[int, Instruction] {
	return func(yield func(ip int, insn Instruction) bool) {
		m := NewMachine(memory)
		for m.Ip < len(memory) {
			insn, err := m.Fetch()
			if err != nil {
				return
			}
			if !yield(insn.Ip, insn) {
				return
			}
			if insn.Op.Params() == 0 {
				return
			}
			m.Ip += INSTRUCTION_WIDTH
		}
	}
}
