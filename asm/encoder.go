// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"strings"

	"github.com/ezrec/borasm/isa"
	"github.com/ezrec/borasm/lexer"
)

// LineHandler splits source lines and classifies their operands.
type LineHandler interface {
	Clean(line string) string
	StripComments(line string) string
	Tokenize(line string) []string
	IsNumber(token string) bool
	ToNumber(token string) (uint8, error)
}

var _ LineHandler = lexer.Handler{}

// Encoder encodes one tokenized instruction.
type Encoder interface {
	Encode(tokens []string) error
}

// Core encodes instructions into an Image.
type Core struct {
	Image *Image
	Lines LineHandler
}

var _ Encoder = &Core{}

// NewCore returns an encoder for an image.
func NewCore(img *Image) *Core {
	return &Core{Image: img, Lines: lexer.Handler{}}
}

// register looks up a register operand.
func register(token string) (reg isa.Register, err error) {
	reg, ok := isa.LookupRegister(token)
	if !ok {
		err = ErrInvalidRegister(token)
	}
	return
}

// Encode appends the machine code for a mnemonic and its operands.
// An empty token list encodes nothing. Nothing is emitted for an
// instruction that fails to encode.
func (core *Core) Encode(tokens []string) (err error) {
	if len(tokens) == 0 {
		return
	}

	mnemonic := strings.ToUpper(tokens[0])
	op, ok := isa.Lookup(mnemonic)
	if !ok {
		err = ErrUnknownInstruction(mnemonic)
		return
	}

	switch op.Form() {
	case isa.FORM_NONE:
		core.Image.Emit(op.Byte())
	case isa.FORM_JUMP:
		err = core.encodeJump(mnemonic, op, tokens[1:])
	case isa.FORM_SHIFT:
		err = core.encodeShift(mnemonic, op, tokens[1:])
	default:
		err = core.encodeRegister(mnemonic, op, tokens[1:])
	}

	return
}

// encodeJump emits the opcode byte, then either the numeric address or a
// placeholder for the label.
func (core *Core) encodeJump(mnemonic string, op isa.Opcode, args []string) (err error) {
	if len(args) < 1 {
		err = ErrMissingOperand(mnemonic)
		return
	}

	target := args[0]
	if !core.Lines.IsNumber(target) {
		core.Image.Emit(op.Byte())
		core.Image.Refer(target)
		return
	}

	addr, err := core.Lines.ToNumber(target)
	if err != nil {
		return
	}
	core.Image.Emit(op.Byte(), addr)

	return
}

// encodeShift emits [opcode:4][reg:2][unused:2].
func (core *Core) encodeShift(mnemonic string, op isa.Opcode, args []string) (err error) {
	if len(args) < 1 {
		err = ErrMissingOperand(mnemonic)
		return
	}

	reg, err := register(args[0])
	if err != nil {
		return
	}
	core.Image.Emit(op.Byte() | byte(reg)<<2)

	return
}

// encodeRegister emits [opcode:4][dst:2][src:2], or for an immediate
// source [opcode:4][dst:2][imm&3:2] followed by the whole immediate.
func (core *Core) encodeRegister(mnemonic string, op isa.Opcode, args []string) (err error) {
	if len(args) < 2 {
		err = ErrMissingOperand(mnemonic)
		return
	}

	dst, err := register(args[0])
	if err != nil {
		return
	}

	src := args[1]
	if core.Lines.IsNumber(src) || strings.HasPrefix(src, lexer.IMMEDIATE_PREFIX) {
		var imm uint8
		imm, err = core.Lines.ToNumber(src)
		if err != nil {
			return
		}
		core.Image.Emit(op.Byte()|byte(dst)<<2|imm&0x3, imm)
		return
	}

	reg, err := register(src)
	if err != nil {
		return
	}
	core.Image.Emit(op.Byte() | byte(dst)<<2 | byte(reg))

	return
}
