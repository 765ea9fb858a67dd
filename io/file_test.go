package io

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
)

// streamFS returns files that can not seek.
type streamFS struct {
	fstest.MapFS
}

type streamFile struct {
	fs.File
}

func (sfs streamFS) Open(name string) (fs.File, error) {
	file, err := sfs.MapFS.Open(name)
	if err != nil {
		return nil, err
	}
	return streamFile{File: file}, nil
}

func readTwice(t *testing.T, input io.ReadSeeker) (first, second string) {
	assert := assert.New(t)

	data, err := io.ReadAll(input)
	assert.NoError(err)
	first = string(data)

	_, err = input.Seek(0, io.SeekStart)
	assert.NoError(err)

	data, err = io.ReadAll(input)
	assert.NoError(err)
	second = string(data)

	return
}

func TestFileHandler_OpenInput(t *testing.T) {
	assert := assert.New(t)

	fh := &FileHandler{
		Input: fstest.MapFS{"prog.asm": &fstest.MapFile{Data: []byte("HALT\n")}},
	}

	input, err := fh.OpenInput("prog.asm")
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}
	defer input.Close()

	first, second := readTwice(t, input)
	assert.Equal("HALT\n", first)
	assert.Equal("HALT\n", second)

	_, err = fh.OpenInput("missing.asm")
	assert.ErrorIs(err, fs.ErrNotExist)
}

func TestFileHandler_OpenInput_Stream(t *testing.T) {
	assert := assert.New(t)

	fh := &FileHandler{
		Input: streamFS{fstest.MapFS{"prog.asm": &fstest.MapFile{Data: []byte("JMP 0\n")}}},
	}

	input, err := fh.OpenInput("prog.asm")
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}
	defer input.Close()

	first, second := readTwice(t, input)
	assert.Equal("JMP 0\n", first)
	assert.Equal("JMP 0\n", second)
}

func TestFileHandler_CreateOutput(t *testing.T) {
	assert := assert.New(t)

	mfs := &MemFS{}
	fh := &FileHandler{Output: mfs}

	output, err := fh.CreateOutput("prog.hex")
	assert.NoError(err)
	_, err = output.Write([]byte("FF\n"))
	assert.NoError(err)

	// Not visible until closed.
	_, ok := mfs.Files["prog.hex"]
	assert.False(ok)

	assert.NoError(output.Close())
	assert.Equal([]byte("FF\n"), mfs.Files["prog.hex"])

	mfs.ReadOnly = true
	_, err = fh.CreateOutput("other.hex")
	assert.ErrorIs(err, ErrReadOnly)
}

func TestOSFS(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	name := filepath.Join(dir, "out.hex")

	fh := NewFileHandler()

	output, err := fh.CreateOutput(name)
	assert.NoError(err)
	_, err = output.Write([]byte("51\n05\n"))
	assert.NoError(err)
	assert.NoError(output.Close())

	data, err := os.ReadFile(name)
	assert.NoError(err)
	assert.Equal("51\n05\n", string(data))

	input, err := fh.OpenInput(name)
	assert.NoError(err)
	first, second := readTwice(t, input)
	assert.Equal(first, second)
	assert.NoError(input.Close())

	_, err = fh.OpenInput(filepath.Join(dir, "missing"))
	assert.True(errors.Is(err, fs.ErrNotExist))

	_, err = fh.CreateOutput(filepath.Join(dir, "no", "such", "dir"))
	assert.Error(err)
}
