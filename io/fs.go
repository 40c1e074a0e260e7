package io

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing/fstest"
	"time"
)

// CreateFS defines a file system interface that supports creating files and directories.
type CreateFS interface {
	// Sub returns a filesystem for a subdirectory.
	Sub(name string) (sub CreateFS, err error)
	// Create creates a new file for writing.
	Create(name string) (file io.WriteCloser, err error)
	// Mkdir creates a new directory with the specified permissions.
	Mkdir(name string, filemode fs.FileMode) (err error)
}

// FileSystem is readable and writable. It backs the file input and
// output instructions.
type FileSystem interface {
	fs.FS
	CreateFS
}

// DirFS is a FileSystem rooted at a host directory.
type DirFS string

var _ FileSystem = DirFS("")

func (dir DirFS) path(name string) (string, error) {
	if !fs.ValidPath(name) {
		return "", &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	return filepath.Join(string(dir), filepath.FromSlash(name)), nil
}

// Open opens a file for reading.
func (dir DirFS) Open(name string) (fs.File, error) {
	return os.DirFS(string(dir)).Open(name)
}

// Sub returns the file system of a subdirectory.
func (dir DirFS) Sub(name string) (sub CreateFS, err error) {
	path, err := dir.path(name)
	if err != nil {
		return
	}
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	if !info.IsDir() {
		err = &fs.PathError{Op: "sub", Path: name, Err: fs.ErrInvalid}
		return
	}
	sub = DirFS(path)
	return
}

// Create creates or truncates a file.
func (dir DirFS) Create(name string) (file io.WriteCloser, err error) {
	path, err := dir.path(name)
	if err != nil {
		return
	}
	return os.Create(path)
}

// Mkdir creates a directory.
func (dir DirFS) Mkdir(name string, filemode fs.FileMode) (err error) {
	path, err := dir.path(name)
	if err != nil {
		return
	}
	return os.Mkdir(path, filemode)
}

// MemFS is an in-memory FileSystem.
type MemFS struct {
	Files fstest.MapFS
}

var _ FileSystem = (*MemFS)(nil)

// Open opens a file for reading.
func (mem *MemFS) Open(name string) (fs.File, error) {
	return mem.Files.Open(name)
}

// Sub is not supported on an in-memory file system.
func (mem *MemFS) Sub(name string) (sub CreateFS, err error) {
	err = &fs.PathError{Op: "sub", Path: name, Err: fs.ErrNotExist}
	return
}

// Mkdir records a directory.
func (mem *MemFS) Mkdir(name string, filemode fs.FileMode) (err error) {
	if mem.Files == nil {
		mem.Files = fstest.MapFS{}
	}
	mem.Files[name] = &fstest.MapFile{Mode: fs.ModeDir | filemode, ModTime: time.Now()}
	return
}

// Create returns a writer whose content is stored on Close.
func (mem *MemFS) Create(name string) (file io.WriteCloser, err error) {
	if !fs.ValidPath(name) {
		err = &fs.PathError{Op: "create", Path: name, Err: fs.ErrInvalid}
		return
	}
	file = &memFile{fs: mem, name: name}
	return
}

type memFile struct {
	bytes.Buffer
	fs   *MemFS
	name string
}

func (mf *memFile) Close() error {
	if mf.fs.Files == nil {
		mf.fs.Files = fstest.MapFS{}
	}
	mf.fs.Files[mf.name] = &fstest.MapFile{Data: mf.Bytes(), Mode: 0644, ModTime: time.Now()}
	return nil
}
