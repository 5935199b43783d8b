package intcode

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fuzzMemory interprets the fuzz input as a program of small cells, so
// that opcodes and in-bounds addresses are common.
func fuzzMemory(data []byte) (mem Memory) {
	for len(data) >= 2 {
		word := int64(int16(binary.LittleEndian.Uint16(data)))
		switch word & 3 {
		case 0:
			word = 99
		case 1, 2:
			word = word & 0x1f
		}
		mem = append(mem, word)
		data = data[2:]
	}
	return
}

func FuzzRun(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{1, 0, 0, 0, 0, 0, 0, 0})
	f.Add([]byte{1, 0, 9, 0, 10, 0, 3, 0, 2, 0, 3, 0, 11, 0, 0, 0, 99, 0})
	f.Add([]byte{2, 0, 0xff, 0xff, 0, 0, 0, 0, 0, 0})

	f.Fuzz(func(t *testing.T, data []byte) {
		assert := assert.New(t)

		program := fuzzMemory(data)

		m := NewMachine(program.Clone())
		var err error
		if len(program) == 0 {
			err = m.Run()
			assert.ErrorIs(err, ErrProgramTooShort)
			return
		}

		// Self-modifying programs may never finish.
		limit := 16 * (len(program) + 1)
		done := false
		for !done && m.Ticks < limit {
			done, err = m.Tick()
		}
		if !done {
			return
		}

		if err != nil {
			var runtime *ErrRuntime
			assert.True(errors.As(err, &runtime))
			assert.True(runtime.Ip >= 0 && runtime.Ip < len(program))
			assert.True(errors.Is(err, ErrSegFault(0)) ||
				errors.As(err, new(ErrNotEnoughParams)) ||
				errors.As(err, new(ErrUnknownOpCode)))
			return
		}

		assert.Equal(m.Halted, m.Ip < len(program))

		again, err := Run(program.Clone())
		assert.NoError(err)
		assert.Equal(m.Memory, again)
	})
}
