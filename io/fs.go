package io

import (
	"bytes"
	"io"
	"io/fs"
	"os"
)

// CreateFS defines a file system interface that supports creating files.
type CreateFS interface {
	// Create creates a new file for writing, truncating any existing file.
	Create(name string) (file io.WriteCloser, err error)
}

// OSFS opens and creates files on the host file system. Unlike
// os.DirFS, names are host paths and may be absolute or contain "..".
type OSFS struct{}

var _ fs.FS = OSFS{}
var _ CreateFS = OSFS{}

// Open opens a host file for reading.
func (OSFS) Open(name string) (file fs.File, err error) {
	osf, err := os.Open(name)
	if err != nil {
		return
	}
	file = osf
	return
}

// Create creates a host file for writing.
func (OSFS) Create(name string) (file io.WriteCloser, err error) {
	osf, err := os.Create(name)
	if err != nil {
		return
	}
	file = osf
	return
}

// MemFS is an in-memory CreateFS. Files become visible once closed.
type MemFS struct {
	ReadOnly bool              // If set, Create fails with ErrReadOnly.
	Files    map[string][]byte // Contents of closed files.
}

var _ CreateFS = &MemFS{}

type memFile struct {
	bytes.Buffer
	name string
	fs   *MemFS
}

func (mf *memFile) Close() error {
	if mf.fs.Files == nil {
		mf.fs.Files = make(map[string][]byte)
	}
	mf.fs.Files[mf.name] = bytes.Clone(mf.Bytes())
	return nil
}

// Create creates an in-memory file.
func (mfs *MemFS) Create(name string) (file io.WriteCloser, err error) {
	if mfs.ReadOnly {
		err = &fs.PathError{Op: "create", Path: name, Err: ErrReadOnly}
		return
	}

	file = &memFile{name: name, fs: mfs}
	return
}
