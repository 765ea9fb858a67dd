package asm

import (
	"errors"

	"github.com/ezrec/borasm/translate"
)

var f = translate.From

var (
	// File errors
	ErrInputOpen   = errors.New(f("input open failed"))
	ErrInputRewind = errors.New(f("input rewind failed"))
	ErrOutputOpen  = errors.New(f("output open failed"))
	ErrOutputWrite = errors.New(f("output write failed"))
)

// ErrUnknownInstruction is returned for a mnemonic not in the instruction set.
type ErrUnknownInstruction string

func (err ErrUnknownInstruction) Error() string {
	return f("unknown instruction %v", string(err))
}

// ErrMissingOperand is returned when a mnemonic lacks a required operand.
type ErrMissingOperand string

func (err ErrMissingOperand) Error() string {
	return f("%v operand missing", string(err))
}

// ErrInvalidRegister is returned for an operand that is not a register name.
type ErrInvalidRegister string

func (err ErrInvalidRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

// ErrUndefinedLabel is returned when a referenced label was never declared.
type ErrUndefinedLabel string

func (err ErrUndefinedLabel) Error() string {
	return f("label %v undefined", string(err))
}

// ErrSyntax locates an encoding error in the source.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrFile reports a failure to open, rewind or write a file.
type ErrFile struct {
	Name string // Path of the file.
	Kind error  // One of the ErrInput* or ErrOutput* errors.
	Err  error  // Underlying cause.
}

func (err ErrFile) Error() string {
	return f("%v: %v: %v", err.Name, err.Kind, err.Err)
}

func (err ErrFile) Unwrap() []error {
	return []error{err.Kind, err.Err}
}
