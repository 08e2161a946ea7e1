package types

import (
	"io/fs"
)

// FS is the filesystem interface required for unbrew operations
type FS interface {
	// Inspection
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Readlink(name string) (string, error)
	EvalSymlinks(path string) (string, error)

	// Mutations
	Remove(name string) error
	RemoveAll(path string) error
}

// CommandRunner runs an external program and returns its combined output.
type CommandRunner interface {
	Run(name string, args ...string) ([]byte, error)
}
