package intcode

import (
	"slices"
)

// Memory is the flat, zero indexed cell array a program runs in.
type Memory []int64

// Valid returns true if addr lies within the memory.
func (mem Memory) Valid(addr int64) bool {
	return addr >= 0 && addr < int64(len(mem))
}

// Load returns the cell at addr.
func (mem Memory) Load(addr int64) (value int64, err error) {
	if !mem.Valid(addr) {
		err = ErrSegFault(addr)
		return
	}

	value = mem[addr]
	return
}

// Store writes value into the cell at addr.
func (mem Memory) Store(addr int64, value int64) (err error) {
	if !mem.Valid(addr) {
		err = ErrSegFault(addr)
		return
	}

	mem[addr] = value
	return
}

// Clone returns an independent copy of the memory.
func (mem Memory) Clone() Memory {
	return slices.Clone(mem)
}
