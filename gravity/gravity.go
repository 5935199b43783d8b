package gravity

import (
	"log"

	"github.com/ezrec/intcode/intcode"
)

const (
	NOUN_INDEX = 1 // Cell holding the noun.
	VERB_INDEX = 2 // Cell holding the verb.

	ALARM_NOUN = 12 // Noun of the "1202 program alarm" state.
	ALARM_VERB = 2  // Verb of the "1202 program alarm" state.

	INPUT_LIMIT = 99 // Largest noun or verb tried by Search.
)

// SetInput returns a copy of the program with the noun and verb installed.
func SetInput(program intcode.Memory, noun, verb int64) (mem intcode.Memory, err error) {
	if len(program) <= VERB_INDEX {
		err = intcode.ErrProgramTooShort
		return
	}

	mem = program.Clone()
	mem[NOUN_INDEX] = noun
	mem[VERB_INDEX] = verb

	return
}

// Output runs the program with the noun and verb installed, and returns
// the final memory.
func Output(program intcode.Memory, noun, verb int64) (final intcode.Memory, err error) {
	mem, err := SetInput(program, noun, verb)
	if err != nil {
		return
	}

	return intcode.Run(mem)
}

// Alarm restores the "1202 program alarm" state, and returns the value
// left in cell 0.
func Alarm(program intcode.Memory) (value int64, err error) {
	final, err := Output(program, ALARM_NOUN, ALARM_VERB)
	if err != nil {
		return
	}

	value = final[0]
	return
}

// Answer combines a noun and verb into the puzzle answer.
func Answer(noun, verb int64) int64 {
	return 100*noun + verb
}

// Searcher tries every noun and verb until the goal is reached.
type Searcher struct {
	Verbose bool // Set to enable verbose logging.
	Goal    Goal // Goal to reach.
}

// Search tries every noun and verb from 0 to INPUT_LIMIT, each on a fresh
// copy of the program. Runs that fault are skipped.
func (s *Searcher) Search(program intcode.Memory) (noun, verb int64, err error) {
	if len(program) <= VERB_INDEX {
		err = intcode.ErrProgramTooShort
		return
	}

	for noun = 0; noun <= INPUT_LIMIT; noun++ {
		for verb = 0; verb <= INPUT_LIMIT; verb++ {
			var final intcode.Memory
			final, err = Output(program, noun, verb)
			if err != nil {
				if s.Verbose {
					log.Printf("gravity: %02d%02d: %v", noun, verb, err)
				}
				continue
			}

			var ok bool
			ok, err = s.Goal.Reached(final, noun, verb)
			if err != nil {
				return
			}
			if ok {
				if s.Verbose {
					log.Printf("gravity: %02d%02d: goal reached", noun, verb)
				}
				return
			}
		}
	}

	noun, verb, err = 0, 0, ErrNotFound
	return
}

// Search tries every noun and verb until the goal is reached.
func Search(program intcode.Memory, goal Goal) (noun, verb int64, err error) {
	s := &Searcher{Goal: goal}
	return s.Search(program)
}
