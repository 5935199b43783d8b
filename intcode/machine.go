// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package intcode

import (
	"fmt"
	"log"
)

// Machine is the execution context of a single intcode run.
// It owns Memory for the duration of the run and mutates it in place.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Memory Memory // Program memory.
	Ip     int    // Current instruction pointer.
	Halted bool   // Set once a halt opcode has executed.

	Ticks int // Instructions executed since creation.
}

// NewMachine creates a machine running the given memory from address 0.
func NewMachine(memory Memory) (m *Machine) {
	m = &Machine{
		Memory: memory,
	}

	return
}

// String returns the current machine state as a string.
func (m *Machine) String() (text string) {
	text += fmt.Sprintf("% 6s: %d\n", "ip", m.Ip)
	text += fmt.Sprintf("% 6s: %v\n", "halted", m.Halted)
	text += fmt.Sprintf("% 6s: %d\n", "ticks", m.Ticks)
	text += fmt.Sprintf("% 6s: %d\n", "cells", len(m.Memory))
	if m.Memory.Valid(int64(m.Ip)) {
		text += fmt.Sprintf("% 6s: %d\n", "opcode", m.Memory[m.Ip])
	} else {
		text += fmt.Sprintf("% 6s: %v\n", "opcode", "----")
	}

	return
}

// Fetch decodes the instruction at the instruction pointer, along with
// its operand cells.
func (m *Machine) Fetch() (insn Instruction, err error) {
	if !m.Memory.Valid(int64(m.Ip)) {
		err = ErrSegFault(m.Ip)
		return
	}

	insn.Ip = m.Ip
	insn.Op = Decode(m.Memory[m.Ip])

	need := insn.Op.Params()
	if need > 0 && m.Ip+need >= len(m.Memory) {
		err = ErrNotEnoughParams(insn.Op)
		return
	}

	insn.Params = m.Memory[m.Ip+1 : m.Ip+1+need]

	return
}

// Execute executes a single decoded instruction, and advances the
// instruction pointer.
func (m *Machine) Execute(insn Instruction) (err error) {
	if m.Verbose {
		log.Printf("%04d: %v", insn.Ip, insn)
	}

	switch insn.Op {
	case OP_ADD, OP_MUL:
		var a, b int64
		a, err = m.Memory.Load(insn.Params[0])
		if err != nil {
			return
		}
		b, err = m.Memory.Load(insn.Params[1])
		if err != nil {
			return
		}
		dest := insn.Params[2]
		if !m.Memory.Valid(dest) {
			err = ErrSegFault(dest)
			return
		}
		value, _ := insn.Op.Apply(a, b)
		m.Memory[dest] = value
		m.Ip += INSTRUCTION_WIDTH
	case OP_HALT:
		m.Halted = true
	default:
		err = ErrUnknownOpCode(insn.Op)
	}

	if err == nil {
		m.Ticks++
	}

	return
}

// Tick executes a single instruction cycle.
// done is set when the machine halts, or the instruction pointer
// runs off the end of memory.
func (m *Machine) Tick() (done bool, err error) {
	if m.Halted || m.Ip >= len(m.Memory) {
		done = true
		return
	}

	ip := m.Ip
	defer func() {
		if err != nil {
			done = true
			err = &ErrRuntime{Ip: ip, Err: err}
		}
	}()

	insn, err := m.Fetch()
	if err != nil {
		return
	}

	err = m.Execute(insn)
	if err != nil {
		return
	}

	done = m.Halted || m.Ip >= len(m.Memory)
	return
}

// Run ticks the machine until it halts, runs off the end of memory, or faults.
// An empty memory is rejected with ErrProgramTooShort.
func (m *Machine) Run() (err error) {
	if len(m.Memory) == 0 {
		err = ErrProgramTooShort
		return
	}

	for done := false; !done; {
		done, err = m.Tick()
		if err != nil {
			return
		}
	}

	if m.Verbose {
		log.Printf("intcode: stopped after %d ticks at ip %d", m.Ticks, m.Ip)
	}

	return
}

// Run executes memory in place from address 0, returning the final memory.
func Run(memory Memory) (final Memory, err error) {
	m := NewMachine(memory)

	err = m.Run()
	if err != nil {
		return
	}

	final = m.Memory
	return
}
