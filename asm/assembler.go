// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"io"
	"log"

	bio "github.com/ezrec/borasm/io"
)

// FileHandler opens the streams of an assembly run.
type FileHandler interface {
	OpenInput(name string) (io.ReadSeekCloser, error)
	CreateOutput(name string) (io.WriteCloser, error)
}

var _ FileHandler = &bio.FileHandler{}

// Assembler runs both passes over an input file and writes the linked
// machine code.
type Assembler struct {
	Verbose  bool         // If set, logs the pipeline steps.
	Files    FileHandler  // Opens input and output files.
	Analyzer CodeAnalyzer // Runs the passes, sharing Image.
	Image    *Image       // Machine code, labels and references.
}

// New returns an assembler for files on the host file system.
func New() (asm *Assembler) {
	img := &Image{}
	asm = &Assembler{
		Files:    bio.NewFileHandler(),
		Analyzer: NewAnalyzer(img),
		Image:    img,
	}

	return
}

// Assemble assembles the input file. If output is not empty, the machine
// code is saved there; nothing is written unless every step succeeds.
func (asm *Assembler) Assemble(input, output string) (err error) {
	asm.Image.Clear()

	if asm.Verbose {
		log.Printf("open %v\n", input)
	}
	inf, err := asm.Files.OpenInput(input)
	if err != nil {
		err = &ErrFile{Name: input, Kind: ErrInputOpen, Err: err}
		return
	}
	defer inf.Close()

	if asm.Verbose {
		log.Printf("pass 1: %v\n", input)
	}
	err = asm.Analyzer.DetectLabels(inf)
	if err != nil {
		return
	}

	_, err = inf.Seek(0, io.SeekStart)
	if err != nil {
		err = &ErrFile{Name: input, Kind: ErrInputRewind, Err: err}
		return
	}
	asm.Image.Reset()

	if asm.Verbose {
		log.Printf("pass 2: %v\n", input)
	}
	err = asm.Analyzer.Tokenize(inf)
	if err != nil {
		return
	}

	if asm.Verbose {
		log.Printf("link: %d references\n", len(asm.Image.References))
	}
	err = asm.Analyzer.ResolveLabelReferences()
	if err != nil {
		return
	}

	if len(output) != 0 {
		err = asm.SaveMachineCodeToFile(output)
	}

	return
}

// Bytes returns a copy of the assembled machine code.
func (asm *Assembler) Bytes() []byte {
	return asm.Image.Bytes()
}

// PrintMachineCode writes a hex dump of the machine code.
func (asm *Assembler) PrintMachineCode(w io.Writer) (err error) {
	return asm.Image.Print(w)
}

// SaveMachineCodeToFile writes the machine code to a file, one hex byte
// per line.
func (asm *Assembler) SaveMachineCodeToFile(output string) (err error) {
	ouf, err := asm.Files.CreateOutput(output)
	if err != nil {
		err = &ErrFile{Name: output, Kind: ErrOutputOpen, Err: err}
		return
	}

	err = asm.Image.Write(ouf)
	if err != nil {
		ouf.Close()
		err = &ErrFile{Name: output, Kind: ErrOutputWrite, Err: err}
		return
	}

	err = ouf.Close()
	if err != nil {
		err = &ErrFile{Name: output, Kind: ErrOutputWrite, Err: err}
	}

	if asm.Verbose && err == nil {
		log.Printf("saved %d bytes to %v\n", asm.Image.Len(), output)
	}

	return
}
