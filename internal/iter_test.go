package internal

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	assert := assert.New(t)

	seq, errf := Lines(strings.NewReader("one\r\ntwo\n\nfour"))

	var numbers []int
	var lines []string
	for lineno, line := range seq {
		numbers = append(numbers, lineno)
		lines = append(lines, line)
	}

	assert.NoError(errf())
	assert.Equal([]int{1, 2, 3, 4}, numbers)
	assert.Equal([]string{"one", "two", "", "four"}, lines)
}

func TestLines_EarlyStop(t *testing.T) {
	assert := assert.New(t)

	seq, errf := Lines(strings.NewReader("a\nb\nc\n"))

	count := 0
	for range seq {
		count++
		if count == 2 {
			break
		}
	}

	assert.Equal(2, count)
	assert.NoError(errf())
}

func TestLines_Error(t *testing.T) {
	assert := assert.New(t)

	broken := errors.New("broken")
	seq, errf := Lines(iotest.ErrReader(broken))

	count := 0
	for range seq {
		count++
	}

	assert.Equal(0, count)
	assert.ErrorIs(errf(), broken)
}

func TestLines_Long(t *testing.T) {
	assert := assert.New(t)

	long := "; " + strings.Repeat("x", 70000)
	seq, errf := Lines(strings.NewReader("HALT\n" + long + "\nHALT\n"))

	var lines []string
	for _, line := range seq {
		lines = append(lines, line)
	}

	assert.NoError(errf())
	assert.Equal([]string{"HALT", long, "HALT"}, lines)
}
