// Package asm implements the two pass assembler for the borasm 8-bit CPU.
//
// The first pass (Analyzer.DetectLabels) encodes every instruction only to
// learn how many bytes precede each label. The machine code image is then
// rewound, and the second pass (Analyzer.Tokenize) encodes the program
// again, leaving a zero placeholder byte for each label operand. Finally
// the placeholders are overwritten with the label addresses
// (Image.Resolve).
//
// The Assembler ties the passes to an input file and writes the resulting
// machine code as one two-digit hexadecimal byte per line.
package asm
