package intcode

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Program errors
	ErrProgramTooShort = errors.New(f("program too short"))
)

// ErrNotEnoughParams is returned when an opcode is decoded with fewer
// operand cells remaining than it requires.
type ErrNotEnoughParams Op

func (ep ErrNotEnoughParams) Error() string {
	return f("not enough parameters for %v operation", Op(ep).String())
}

// ErrSegFault is returned when an operand address falls outside of memory.
// The value is the offending address.
type ErrSegFault int64

func (es ErrSegFault) Error() string {
	return f("segmentation fault at address %d", int64(es))
}

// Is matches any segmentation fault, regardless of address.
func (es ErrSegFault) Is(err error) (ok bool) {
	_, ok = err.(ErrSegFault)
	return
}

// ErrUnknownOpCode is returned when a cell matches none of the known opcodes.
type ErrUnknownOpCode int64

func (eu ErrUnknownOpCode) Error() string {
	return f("unknown opcode %d", int64(eu))
}

// ErrRuntime indicates the instruction pointer of a runtime fault.
type ErrRuntime struct {
	Ip  int
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("ip %d %v", err.Ip, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrParseNumber is returned when a program cell is not an integer.
type ErrParseNumber struct {
	Index int    // Cell index, zero based.
	Text  string // Offending text.
}

func (err ErrParseNumber) Error() string {
	return f("cell %d '%v' is not a number", err.Index, err.Text)
}
