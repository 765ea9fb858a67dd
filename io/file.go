package io

import (
	"bytes"
	"io"
	"io/fs"
)

// FileHandler opens the source and destination streams of an assembly run.
type FileHandler struct {
	Input  fs.FS    // Where input files are opened.
	Output CreateFS // Where output files are created.
}

// NewFileHandler returns a file handler over the host file system.
func NewFileHandler() *FileHandler {
	return &FileHandler{
		Input:  OSFS{},
		Output: OSFS{},
	}
}

type readSeekCloser struct {
	io.ReadSeeker
	io.Closer
}

// OpenInput opens a file for reading. The returned stream can always be
// rewound: files that do not support seeking are read into memory.
func (fh *FileHandler) OpenInput(name string) (input io.ReadSeekCloser, err error) {
	file, err := fh.Input.Open(name)
	if err != nil {
		return
	}

	seeker, ok := file.(io.ReadSeeker)
	if ok {
		input = readSeekCloser{ReadSeeker: seeker, Closer: file}
		return
	}

	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return
	}

	input = readSeekCloser{ReadSeeker: bytes.NewReader(data), Closer: io.NopCloser(nil)}
	return
}

// CreateOutput creates a file for writing.
func (fh *FileHandler) CreateOutput(name string) (output io.WriteCloser, err error) {
	return fh.Output.Create(name)
}
