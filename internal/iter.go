package internal

import (
	"bufio"
	"io"
	"iter"
	"math"
)

// LINE_BUFFER is the initial size of the line buffer; it grows as needed.
const LINE_BUFFER = 64 * 1024

// Lines iterates over the lines of an input stream, numbered from 1.
// The returned function reports the read error, if any, that ended the
// iteration.
func Lines(input io.Reader) (seq iter.Seq2[int, string], errf func() error) {
	var err error

	seq = func(yield func(lineno int, line string) bool) {
		scanner := bufio.NewScanner(input)
		scanner.Buffer(make([]byte, 0, LINE_BUFFER), math.MaxInt)
		lineno := 0
		for scanner.Scan() {
			lineno++
			if !yield(lineno, scanner.Text()) {
				return
			}
		}
		err = scanner.Err()
	}

	errf = func() error {
		return err
	}

	return
}
