package testutil

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/unbrew/pkg/types"
)

// FailingFS wraps a filesystem and fails Remove/RemoveAll for chosen paths
// with fs.ErrPermission, simulating files owned by another user.
type FailingFS struct {
	types.FS
	fail map[string]bool

	// Attempts lists every removal attempted, failed ones included.
	Attempts []string
}

// NewFailingFS returns a wrapper that refuses to remove any of paths.
func NewFailingFS(base types.FS, paths ...string) *FailingFS {
	fail := make(map[string]bool, len(paths))
	for _, p := range paths {
		fail[filepath.Clean(p)] = true
	}
	return &FailingFS{FS: base, fail: fail}
}

func (f *FailingFS) Remove(name string) error {
	f.Attempts = append(f.Attempts, name)
	if f.fail[filepath.Clean(name)] {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrPermission}
	}
	return f.FS.Remove(name)
}

func (f *FailingFS) RemoveAll(path string) error {
	f.Attempts = append(f.Attempts, path)
	if f.fail[filepath.Clean(path)] {
		return &fs.PathError{Op: "unlinkat", Path: path, Err: fs.ErrPermission}
	}
	return f.FS.RemoveAll(path)
}
