package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/unbrew/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fs := NewOS()
	assert.NotNil(t, fs)

	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "Cellar", "wget")
	require.NoError(t, os.MkdirAll(target, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "README"), []byte("hello"), 0644))
	link := filepath.Join(tmpDir, "wget")
	require.NoError(t, os.Symlink(target, link))

	info, err := fs.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)

	got, err := fs.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, target, got)

	resolved, err := fs.EvalSymlinks(link)
	require.NoError(t, err)
	wantReal, _ := filepath.EvalSymlinks(target)
	assert.Equal(t, wantReal, resolved)

	content, err := fs.ReadFile(filepath.Join(target, "README"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))

	entries, err := fs.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	require.NoError(t, fs.Remove(link))
	require.NoError(t, fs.RemoveAll(filepath.Join(tmpDir, "Cellar")))
	_, err = os.Stat(target)
	assert.True(t, os.IsNotExist(err))
}

func TestAferoFS(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/opt/tool/bin", 0755))
	require.NoError(t, afero.WriteFile(mem, "/opt/tool/bin/brew", []byte("#!/bin/sh"), 0755))

	fs := NewAferoFS(mem)

	info, err := fs.Lstat("/opt/tool/bin/brew")
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	resolved, err := fs.EvalSymlinks("/opt/tool/bin/../bin/brew")
	require.NoError(t, err)
	assert.Equal(t, "/opt/tool/bin/brew", resolved)

	_, err = fs.EvalSymlinks("/missing")
	assert.Error(t, err)

	_, err = fs.Readlink("/opt/tool/bin/brew")
	assert.Error(t, err, "MemMapFs has no symlinks")

	_, err = fs.ReadFile("/opt/tool/bin")
	assert.Error(t, err, "reading a directory must fail")

	require.NoError(t, fs.RemoveAll("/opt/tool"))
	_, err = fs.Stat("/opt/tool")
	assert.Error(t, err)
}

func TestReadOnly_RefusesMutations(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/opt/tool/.gitignore", []byte("!/bin/brew\n"), 0644))

	fs := NewReadOnly(NewAferoFS(mem))

	content, err := fs.ReadFile("/opt/tool/.gitignore")
	require.NoError(t, err)
	assert.Equal(t, "!/bin/brew\n", string(content))

	err = fs.RemoveAll("/opt/tool")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrReadOnly))

	err = fs.Remove("/opt/tool/.gitignore")
	require.Error(t, err)

	_, err = mem.Stat("/opt/tool/.gitignore")
	assert.NoError(t, err, "file must survive")
}
