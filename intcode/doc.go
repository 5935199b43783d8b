// Package intcode implements the intcode machine: a flat memory of signed
// integers, a decoder for the add, multiply and halt opcodes, and the
// fetch-decode-execute loop that runs a program to completion.
//
// Every instruction occupies four cells. Operands are memory addresses, and
// any address outside of the memory is reported as a segmentation fault
// rather than read or written.
//
// The package also reads and writes the comma-separated text form of a
// program, and can produce a listing of a program without running it.
package intcode
