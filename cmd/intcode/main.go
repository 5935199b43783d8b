// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ezrec/intcode/gravity"
	"github.com/ezrec/intcode/intcode"
)

// config is the command line state.
type config struct {
	program string
	noun    int64
	verb    int64
	alarm   bool
	want    string
	dump    bool
	listing bool
	verbose bool
}

func (cfg *config) flags(fs *flag.FlagSet) {
	fs.StringVar(&cfg.program, "p", "-", "Program file, comma-separated")
	fs.Int64Var(&cfg.noun, "noun", -1, "Noun for cell 1, -1 to leave as is")
	fs.Int64Var(&cfg.verb, "verb", -1, "Verb for cell 2, -1 to leave as is")
	fs.BoolVar(&cfg.alarm, "alarm", false, "Print the 1202 program alarm output")
	fs.StringVar(&cfg.want, "want", "", "Search for the noun and verb reaching this goal expression")
	fs.BoolVar(&cfg.dump, "d", false, "Dump the final memory")
	fs.BoolVar(&cfg.listing, "l", false, "List the program, do not execute")
	fs.BoolVar(&cfg.verbose, "v", false, "Verbose mode")
}

// load reads the program named by cfg.program.
func (cfg *config) load(stdin io.Reader) (mem intcode.Memory, err error) {
	if cfg.program == "-" {
		return intcode.Parse(stdin)
	}

	inf, err := os.Open(cfg.program)
	if err != nil {
		return
	}
	defer inf.Close()

	return intcode.Parse(inf)
}

// run executes the selected mode, writing results to out.
func (cfg *config) run(mem intcode.Memory, out io.Writer) (err error) {
	switch {
	case cfg.listing:
		for ip, insn := range intcode.Disassemble(mem) {
			fmt.Fprintf(out, "%04d: %v\n", ip, insn)
		}
		return
	case cfg.alarm:
		var value int64
		value, err = gravity.Alarm(mem)
		if err != nil {
			return
		}
		fmt.Fprintln(out, value)
		return
	case len(cfg.want) != 0:
		var goal gravity.Goal
		goal, err = gravity.Compile(cfg.want)
		if err != nil {
			return
		}
		s := &gravity.Searcher{Goal: goal, Verbose: cfg.verbose}
		var noun, verb int64
		noun, verb, err = s.Search(mem)
		if err != nil {
			return
		}
		fmt.Fprintln(out, gravity.Answer(noun, verb))
		return
	}

	if cfg.noun >= 0 || cfg.verb >= 0 {
		noun, verb := cfg.noun, cfg.verb
		if len(mem) > gravity.VERB_INDEX {
			if noun < 0 {
				noun = mem[gravity.NOUN_INDEX]
			}
			if verb < 0 {
				verb = mem[gravity.VERB_INDEX]
			}
		}
		mem, err = gravity.SetInput(mem, noun, verb)
		if err != nil {
			return
		}
	}

	m := intcode.NewMachine(mem)
	m.Verbose = cfg.verbose
	err = m.Run()
	if err != nil {
		if cfg.verbose {
			log.Printf("intcode: state\n%v", m)
		}
		return
	}

	if cfg.dump {
		return m.Memory.Format(out)
	}

	fmt.Fprintln(out, m.Memory[0])
	return
}

func main() {
	cfg := &config{}
	cfg.flags(flag.CommandLine)

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	mem, err := cfg.load(os.Stdin)
	if err != nil {
		log.Fatalf("%v: %v", cfg.program, err)
	}

	err = cfg.run(mem, os.Stdout)
	if err != nil {
		log.Fatalf("%v: %v", cfg.program, err)
	}
}
