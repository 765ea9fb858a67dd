package asm

import (
	"io"
	"log"
	"strings"

	"github.com/ezrec/borasm/internal"
	"github.com/ezrec/borasm/lexer"
)

// CodeAnalyzer runs the passes of an assembly over an input stream.
type CodeAnalyzer interface {
	DetectLabels(input io.Reader) error
	Tokenize(input io.Reader) error
	ResolveLabelReferences() error
}

// Analyzer drives an Encoder line by line over the source.
type Analyzer struct {
	Verbose bool        // If set, verbosely logs each line and label.
	Image   *Image      // Image receiving labels and references.
	Lines   LineHandler // Line cleanup and tokenizing.
	Encoder Encoder     // Instruction encoder writing to Image.
}

var _ CodeAnalyzer = &Analyzer{}

// NewAnalyzer returns an analyzer encoding into an image.
func NewAnalyzer(img *Image) *Analyzer {
	return &Analyzer{
		Image:   img,
		Lines:   lexer.Handler{},
		Encoder: NewCore(img),
	}
}

// scan encodes every instruction line of the input, calling label for
// each label line. The first encoding error stops the scan.
func (an *Analyzer) scan(input io.Reader, label func(name string, lineno int)) (err error) {
	lines, lines_err := internal.Lines(input)

	for lineno, text := range lines {
		if an.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line := an.Lines.StripComments(an.Lines.Clean(text))
		if len(line) == 0 {
			continue
		}

		if name, ok := strings.CutSuffix(line, ":"); ok {
			label(name, lineno)
			continue
		}

		tokens := an.Lines.Tokenize(line)
		if len(tokens) == 0 {
			continue
		}

		err = an.Encoder.Encode(tokens)
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: text, Err: err}
			return
		}

		if an.Verbose {
			log.Printf("%v: %v => 0x%02X\n", lineno, tokens, an.Image.Len())
		}
	}

	err = lines_err()
	return
}

// DetectLabels is the first pass. Labels are set to the length of the
// machine code at their declaration, and every instruction is encoded so
// that the length advances as it will in the second pass.
func (an *Analyzer) DetectLabels(input io.Reader) (err error) {
	return an.scan(input, func(name string, lineno int) {
		an.Image.Define(name)
		if an.Verbose {
			log.Printf("%v: label %v = 0x%02X\n", lineno, name, an.Image.Len())
		}
	})
}

// Tokenize is the second pass. Label lines are skipped, and the labels
// found by DetectLabels are left unchanged.
func (an *Analyzer) Tokenize(input io.Reader) (err error) {
	return an.scan(input, func(string, int) {})
}

// ResolveLabelReferences links the label references of the image.
func (an *Analyzer) ResolveLabelReferences() (err error) {
	err = an.Image.Resolve()
	if err != nil {
		return
	}

	if an.Verbose {
		for _, ref := range an.Image.References {
			log.Printf("link: %v = 0x%02X at 0x%02X\n", ref.Label, an.Image.Code[ref.Offset], ref.Offset)
		}
	}

	return
}
