package lexer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNumber(t *testing.T) {
	assert := assert.New(t)

	assert.True(IsNumber("123"))
	assert.True(IsNumber("0"))
	assert.True(IsNumber("#45"))
	assert.True(IsNumber("0x1A"))
	assert.True(IsNumber("0xff"))
	assert.True(IsNumber("#0xFF"))
	assert.True(IsNumber("#"))

	assert.False(IsNumber(""))
	assert.False(IsNumber("12A3"))
	assert.False(IsNumber("0x1G"))
	assert.False(IsNumber("loop"))
	assert.False(IsNumber("R0"))
	assert.False(IsNumber("-1"))

	// "0x" with nothing after it is checked as decimal, and fails.
	assert.False(IsNumber("0x"))
	assert.False(IsNumber("#0x"))
}

func TestToNumber(t *testing.T) {
	assert := assert.New(t)

	for token, expected := range map[string]uint8{
		"255":   255,
		"0x1A":  26,
		"#42":   42,
		"#0x10": 16,
		"0":     0,
		"256":   0,
		"0x1FF": 0xff,
		"300":   44,
	} {
		value, err := ToNumber(token)
		assert.NoError(err, token)
		assert.Equal(expected, value, token)
	}

	_, err := ToNumber("#abc")
	assert.Error(err)
	var bad ErrInvalidNumber
	assert.True(errors.As(err, &bad))
	assert.Equal(ErrInvalidNumber("#abc"), bad)

	_, err = ToNumber("#")
	assert.ErrorIs(err, ErrInvalidNumber("#"))
}
