package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/intcode/intcode"
)

func doRun(t *testing.T, args []string, program string) (output string, err error) {
	assert := assert.New(t)

	cfg := &config{}
	fs := flag.NewFlagSet("intcode", flag.ContinueOnError)
	cfg.flags(fs)
	assert.NoError(fs.Parse(args))

	mem, err := cfg.load(strings.NewReader(program))
	if err != nil {
		return
	}

	out := &bytes.Buffer{}
	err = cfg.run(mem, out)
	output = out.String()
	return
}

func TestRun(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name     string
		args     []string
		program  string
		expected string
	}){
		{"default", nil, "1,9,10,3,2,3,11,0,99,30,40,50\n", "3500\n"},
		{"dump", []string{"-d"}, "1,1,1,4,99,5,6,0,99", "30,1,1,4,2,5,6,0,99\n"},
		{"noun_verb", []string{"-noun", "5", "-verb", "6", "-d"}, "1,0,0,0,99,7,11", "18,5,6,0,99,7,11\n"},
		{"noun_only", []string{"-noun", "5"}, "1,0,6,0,99,7,11", "18\n"},
		{"alarm", []string{"-alarm"}, "2,0,0,0,99,0,0,0,0,0,0,0,21", "42\n"},
		{"want", []string{"-want", "mem[0] == 18 and noun > 0"}, "1,0,0,0,99,7,11", "506\n"},
		{"listing", []string{"-l"}, "1,9,10,3,2,3,11,0,99,30,40,50",
			"0000: add [9] [10] -> [3]\n0004: mul [3] [11] -> [0]\n0008: halt\n"},
	}

	for _, entry := range table {
		output, err := doRun(t, entry.args, entry.program)
		assert.NoError(err, entry.name)
		assert.Equal(entry.expected, output, entry.name)
	}
}

func TestRun_Errors(t *testing.T) {
	assert := assert.New(t)

	_, err := doRun(t, nil, "")
	assert.ErrorIs(err, intcode.ErrProgramTooShort)

	_, err = doRun(t, nil, "1,0,0,5,99")
	assert.ErrorIs(err, intcode.ErrSegFault(0))

	_, err = doRun(t, nil, "1,x")
	assert.ErrorAs(err, new(intcode.ErrParseNumber))

	_, err = doRun(t, []string{"-noun", "1"}, "1,0")
	assert.ErrorIs(err, intcode.ErrProgramTooShort)

	_, err = doRun(t, []string{"-want", "mem["}, "1,0,0,0,99")
	assert.Error(err)
}

func TestLoad_File(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "day2")
	assert.NoError(os.WriteFile(path, []byte("2,3,0,3,99\n"), 0o644))

	output, err := doRun(t, []string{"-p", path, "-d"}, "")
	assert.NoError(err)
	assert.Equal("2,3,0,6,99\n", output)

	_, err = doRun(t, []string{"-p", filepath.Join(t.TempDir(), "missing")}, "")
	assert.ErrorIs(err, os.ErrNotExist)
}
