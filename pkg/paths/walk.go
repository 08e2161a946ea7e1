package paths

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/unbrew/pkg/types"
)

// WalkOrder selects when a directory is visited relative to its children.
type WalkOrder int

const (
	// PreOrder visits a directory before its children, like find(1).
	PreOrder WalkOrder = iota
	// PostOrder visits children first, like find -depth. A directory
	// emptied by the callback is seen as empty when it is visited.
	PostOrder
)

// WalkFunc is called for every entry under the walked root, root included.
// err is non-nil when a directory could not be read; the callback decides
// whether to continue. Returning fs.SkipDir from a pre-order directory visit
// skips its children.
type WalkFunc func(path string, d fs.DirEntry, err error) error

// Walk traverses root depth-first without following symlinks. Entries are
// visited in lexical order.
func (r *Resolver) Walk(root string, order WalkOrder, fn WalkFunc) error {
	info, err := r.fs.Lstat(root)
	if err != nil {
		return fn(root, nil, err)
	}
	err = r.walk(root, fs.FileInfoToDirEntry(info), order, fn)
	if err == fs.SkipDir || err == fs.SkipAll {
		return nil
	}
	return err
}

func (r *Resolver) walk(path string, d fs.DirEntry, order WalkOrder, fn WalkFunc) error {
	if !d.IsDir() {
		return fn(path, d, nil)
	}

	if order == PreOrder {
		if err := fn(path, d, nil); err != nil {
			if err == fs.SkipDir {
				return nil
			}
			return err
		}
	}

	entries, readErr := r.fs.ReadDir(path)
	if readErr != nil {
		if err := fn(path, d, readErr); err != nil && err != fs.SkipDir {
			return err
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		if err := r.walk(filepath.Join(path, entry.Name()), entry, order, fn); err != nil {
			return err
		}
	}

	if order == PostOrder {
		if err := fn(path, d, nil); err != nil && err != fs.SkipDir {
			return err
		}
	}
	return nil
}

// IsEmptyDir reports whether path is a directory with no entries.
func (r *Resolver) IsEmptyDir(path string) bool {
	if r.Kind(path) != types.KindDir {
		return false
	}
	entries, err := r.fs.ReadDir(path)
	return err == nil && len(entries) == 0
}
