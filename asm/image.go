package asm

import (
	"bufio"
	"fmt"
	"io"
	"slices"
)

// BYTES_PER_LINE is the number of bytes per PrintMachineCode line.
const BYTES_PER_LINE = 8

// Reference is a placeholder byte awaiting the address of a label.
type Reference struct {
	Offset int    // Offset of the placeholder in the machine code.
	Label  string // Label whose address fills the placeholder.
}

// Image is the state of one assembly run: the machine code, the label
// addresses and the pending label references.
type Image struct {
	Code       []byte         // Machine code.
	Labels     map[string]int // Map of labels to machine code offsets.
	References []Reference    // Label references, in encoding order.
}

// Len is the current machine code length, which is also the address of
// the next byte to be emitted.
func (img *Image) Len() int {
	return len(img.Code)
}

// Emit appends bytes to the machine code.
func (img *Image) Emit(code ...byte) {
	img.Code = append(img.Code, code...)
}

// Refer records a reference to a label and emits its placeholder byte.
func (img *Image) Refer(label string) {
	img.References = append(img.References, Reference{Offset: img.Len(), Label: label})
	img.Emit(0x00)
}

// Define sets the address of a label to the current length. A label
// that is defined again takes the new address.
func (img *Image) Define(label string) {
	if img.Labels == nil {
		img.Labels = make(map[string]int, 16)
	}
	img.Labels[label] = img.Len()
}

// Reset rewinds the machine code and drops the references, keeping the
// labels for the next pass.
func (img *Image) Reset() {
	img.Code = img.Code[:0]
	img.References = img.References[:0]
}

// Clear empties the image for a new assembly run.
func (img *Image) Clear() {
	img.Reset()
	clear(img.Labels)
}

// Bytes returns a copy of the machine code.
func (img *Image) Bytes() []byte {
	return slices.Clone(img.Code)
}

// Print writes a hex dump of the machine code, BYTES_PER_LINE bytes per
// line separated by spaces.
func (img *Image) Print(w io.Writer) (err error) {
	out := bufio.NewWriter(w)

	for n, code := range img.Code {
		sep := " "
		if (n+1)%BYTES_PER_LINE == 0 || n+1 == len(img.Code) {
			sep = "\n"
		}
		_, err = fmt.Fprintf(out, "%02X%s", code, sep)
		if err != nil {
			return
		}
	}

	err = out.Flush()
	return
}

// Write writes the machine code as one hex byte per line.
func (img *Image) Write(w io.Writer) (err error) {
	out := bufio.NewWriter(w)

	for _, code := range img.Code {
		_, err = fmt.Fprintf(out, "%02X\n", code)
		if err != nil {
			return
		}
	}

	err = out.Flush()
	return
}
