package paths

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/unbrew/pkg/types"
)

// Resolver classifies and canonicalizes paths through a filesystem.
type Resolver struct {
	fs types.FS
}

// NewResolver returns a Resolver reading through fsys.
func NewResolver(fsys types.FS) *Resolver {
	return &Resolver{fs: fsys}
}

// FS returns the filesystem the resolver reads through.
func (r *Resolver) FS() types.FS {
	return r.fs
}

// Kind classifies path without following a final symlink.
func (r *Resolver) Kind(path string) types.PathKind {
	info, err := r.fs.Lstat(path)
	if err != nil {
		return types.KindMissing
	}
	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		return types.KindSymlink
	case info.IsDir():
		return types.KindDir
	default:
		return types.KindFile
	}
}

// Exists reports whether an entry is present at path. A dangling symlink
// exists: it is still an entry that can be removed.
func (r *Resolver) Exists(path string) bool {
	return r.Kind(path) != types.KindMissing
}

// IsDir reports whether path is a directory, following symlinks.
func (r *Resolver) IsDir(path string) bool {
	info, err := r.fs.Stat(path)
	return err == nil && info.IsDir()
}

// IsSymlink reports whether path itself is a symlink.
func (r *Resolver) IsSymlink(path string) bool {
	return r.Kind(path) == types.KindSymlink
}

// IsExecutable reports whether path resolves to a regular file with any
// execute bit set.
func (r *Resolver) IsExecutable(path string) bool {
	info, err := r.fs.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return info.Mode().Perm()&0111 != 0
}

// Resolve returns the absolute real path of path with every symlink
// followed. The path must exist.
func (r *Resolver) Resolve(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return r.fs.EvalSymlinks(abs)
}

// Owned classifies path into an OwnedPath. ok is false when nothing exists
// at path.
func (r *Resolver) Owned(path string) (types.OwnedPath, bool) {
	kind := r.Kind(path)
	if kind == types.KindMissing {
		return types.OwnedPath{}, false
	}
	return types.OwnedPath{Path: filepath.Clean(path), Kind: kind}, true
}

// Within reports whether path is root or lies beneath it. Both are compared
// lexically after cleaning, so /opt/Cellarx is not within /opt/Cellar.
func Within(root, path string) bool {
	root = filepath.Clean(root)
	path = filepath.Clean(path)
	if root == path {
		return true
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
