package filesystem

import (
	"io/fs"

	"github.com/arthur-debert/unbrew/pkg/errors"
	"github.com/arthur-debert/unbrew/pkg/types"
)

// readOnlyFS passes reads through and refuses every mutation.
type readOnlyFS struct {
	types.FS
}

// NewReadOnly wraps base so that Remove and RemoveAll always fail with
// ErrReadOnly. Reads are delegated unchanged.
func NewReadOnly(base types.FS) types.FS {
	return &readOnlyFS{FS: base}
}

func (r *readOnlyFS) Remove(name string) error {
	return refuse("remove", name)
}

func (r *readOnlyFS) RemoveAll(path string) error {
	return refuse("removeall", path)
}

func refuse(op, path string) error {
	return &fs.PathError{
		Op:   op,
		Path: path,
		Err:  errors.New(errors.ErrReadOnly, "filesystem is read-only"),
	}
}
