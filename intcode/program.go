package intcode

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Parse reads a program in its comma-separated text form, ie: "1,0,0,3,99".
// Whitespace around cells, including a trailing newline, is ignored.
// Empty input is an empty program.
func Parse(r io.Reader) (mem Memory, err error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return
	}

	body := strings.TrimSpace(string(text))
	if len(body) == 0 {
		mem = Memory{}
		return
	}

	for n, word := range strings.Split(body, ",") {
		word = strings.TrimSpace(word)
		var value int64
		value, err = strconv.ParseInt(word, 10, 64)
		if err != nil {
			err = ErrParseNumber{Index: n, Text: word}
			mem = nil
			return
		}
		mem = append(mem, value)
	}

	return
}

// Format writes the memory in its comma-separated text form, followed by a newline.
func (mem Memory) Format(w io.Writer) (err error) {
	bw := bufio.NewWriter(w)
	for n, value := range mem {
		if n > 0 {
			bw.WriteByte(',')
		}
		bw.WriteString(strconv.FormatInt(value, 10))
	}
	bw.WriteByte('\n')

	return bw.Flush()
}

// String returns the memory in its comma-separated text form.
func (mem Memory) String() string {
	words := make([]string, len(mem))
	for n, value := range mem {
		words[n] = strconv.FormatInt(value, 10)
	}
	return strings.Join(words, ",")
}
