package isa

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// Opcode is the 4-bit instruction class identifier.
type Opcode uint8

//go:generate go tool stringer -type=Opcode
const (
	ADD  = Opcode(0x00)
	SUB  = Opcode(0x01)
	AND  = Opcode(0x02)
	OR   = Opcode(0x03)
	XOR  = Opcode(0x04)
	MOV  = Opcode(0x05)
	SHL  = Opcode(0x06)
	SHR  = Opcode(0x07)
	JMP  = Opcode(0x08)
	JZ   = Opcode(0x09)
	JNZ  = Opcode(0x0A)
	JC   = Opcode(0x0B)
	JNC  = Opcode(0x0C)
	JN   = Opcode(0x0D)
	JNN  = Opcode(0x0E)
	CMP  = Opcode(0x0F)
	HALT = Opcode(0xFF)
)

// HALT_BYTE is the only encoding of HALT.
const HALT_BYTE = byte(0xFF)

// Form is the operand form of an instruction class.
type Form int

const (
	FORM_NONE     = Form(0) // no operands
	FORM_JUMP     = Form(1) // address or label
	FORM_SHIFT    = Form(2) // register
	FORM_REGISTER = Form(3) // register, register or immediate
)

// opcodeMap maps the upper case mnemonic to its opcode.
var opcodeMap = map[string]Opcode{
	"ADD":  ADD,
	"SUB":  SUB,
	"AND":  AND,
	"OR":   OR,
	"XOR":  XOR,
	"MOV":  MOV,
	"SHL":  SHL,
	"SHR":  SHR,
	"JMP":  JMP,
	"JZ":   JZ,
	"JNZ":  JNZ,
	"JC":   JC,
	"JNC":  JNC,
	"JN":   JN,
	"JNN":  JNN,
	"CMP":  CMP,
	"HALT": HALT,
}

// Lookup returns the opcode for a mnemonic, ignoring case.
func Lookup(mnemonic string) (op Opcode, ok bool) {
	op, ok = opcodeMap[strings.ToUpper(mnemonic)]
	return
}

// IsJump is true for the conditional and unconditional jumps.
func (op Opcode) IsJump() bool {
	return op >= JMP && op <= JNN
}

// IsShift is true for SHL and SHR.
func (op Opcode) IsShift() bool {
	return op == SHL || op == SHR
}

// Form returns the operand form of the opcode.
func (op Opcode) Form() Form {
	switch {
	case op == HALT:
		return FORM_NONE
	case op.IsJump():
		return FORM_JUMP
	case op.IsShift():
		return FORM_SHIFT
	default:
		return FORM_REGISTER
	}
}

// Byte returns the first instruction byte with the opcode in the upper nibble.
func (op Opcode) Byte() byte {
	if op == HALT {
		return HALT_BYTE
	}
	return byte(op) << 4
}

// Opcodes iterates over the instruction set in opcode order.
func Opcodes() iter.Seq2[string, Opcode] {
	return func(yield func(string, Opcode) bool) {
		ops := slices.Sorted(maps.Values(opcodeMap))
		for _, op := range ops {
			if !yield(op.String(), op) {
				return
			}
		}
	}
}

// Syntax returns a short operand synopsis for the form.
func (form Form) Syntax() string {
	switch form {
	case FORM_JUMP:
		return "addr|label"
	case FORM_SHIFT:
		return "reg"
	case FORM_REGISTER:
		return "reg, reg|#imm"
	default:
		return ""
	}
}
