package lexer

import (
	"strconv"
	"strings"

	"github.com/ezrec/borasm/translate"
)

var f = translate.From

// IMMEDIATE_PREFIX marks an immediate operand.
const IMMEDIATE_PREFIX = "#"

// HEX_PREFIX marks a base-16 literal.
const HEX_PREFIX = "0x"

// ErrInvalidNumber is returned when a token can not be converted.
type ErrInvalidNumber string

func (err ErrInvalidNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// IsNumber reports whether a token is a decimal or `0x` hexadecimal
// literal, optionally preceded by the immediate marker.
//
// A bare immediate marker classifies as a number; ToNumber rejects it.
func IsNumber(token string) bool {
	if len(token) == 0 {
		return false
	}

	digits := strings.TrimPrefix(token, IMMEDIATE_PREFIX)

	check := isDigit
	if len(digits) > len(HEX_PREFIX) && strings.HasPrefix(digits, HEX_PREFIX) {
		digits = digits[len(HEX_PREFIX):]
		check = isHexDigit
	}

	for n := range len(digits) {
		if !check(digits[n]) {
			return false
		}
	}

	return true
}

// ToNumber converts a literal to its 8-bit value.
//
// Values wider than 8 bits are truncated to their low byte.
func ToNumber(token string) (value uint8, err error) {
	digits := strings.TrimPrefix(token, IMMEDIATE_PREFIX)

	base := 10
	if len(digits) > len(HEX_PREFIX) && strings.HasPrefix(digits, HEX_PREFIX) {
		digits = digits[len(HEX_PREFIX):]
		base = 16
	}

	v64, perr := strconv.ParseUint(digits, base, 64)
	if perr != nil {
		err = ErrInvalidNumber(token)
		return
	}

	value = uint8(v64)
	return
}
