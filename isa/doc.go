// Package isa describes the instruction set of the borasm 8-bit CPU.
//
// The CPU has four 8-bit registers (R0-R3, aliased A-D) and sixteen
// instruction classes selected by a 4-bit opcode placed in the upper
// nibble of the first byte of every instruction. HALT is the single
// exception, encoded as the full byte 0xFF.
package isa
