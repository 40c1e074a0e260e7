package io

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemFS(t *testing.T) {
	assert := assert.New(t)

	mem := &MemFS{}
	file, err := mem.Create("out.txt")
	assert.NoError(err)
	file.Write([]byte("data"))
	assert.NoError(file.Close())

	data, err := fs.ReadFile(mem, "out.txt")
	assert.NoError(err)
	assert.Equal("data", string(data))

	_, err = fs.ReadFile(mem, "missing.txt")
	assert.ErrorIs(err, fs.ErrNotExist)

	_, err = mem.Create("../escape")
	assert.ErrorIs(err, fs.ErrInvalid)

	assert.NoError(mem.Mkdir("dir", 0755))
	_, err = mem.Sub("dir")
	assert.Error(err)
}

func TestDirFS(t *testing.T) {
	assert := assert.New(t)

	root := t.TempDir()
	dir := DirFS(root)

	file, err := dir.Create("a.txt")
	assert.NoError(err)
	file.Write([]byte("hello"))
	assert.NoError(file.Close())

	data, err := os.ReadFile(filepath.Join(root, "a.txt"))
	assert.NoError(err)
	assert.Equal("hello", string(data))

	data, err = fs.ReadFile(dir, "a.txt")
	assert.NoError(err)
	assert.Equal("hello", string(data))

	assert.NoError(dir.Mkdir("sub", 0755))
	sub, err := dir.Sub("sub")
	assert.NoError(err)
	file, err = sub.Create("b.txt")
	assert.NoError(err)
	assert.NoError(file.Close())
	_, err = os.Stat(filepath.Join(root, "sub", "b.txt"))
	assert.NoError(err)

	_, err = dir.Sub("a.txt")
	assert.ErrorIs(err, fs.ErrInvalid)

	_, err = dir.Create("/abs")
	assert.ErrorIs(err, fs.ErrInvalid)
}
