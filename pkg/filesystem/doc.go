// Package filesystem provides filesystem implementations for unbrew.
//
// This package contains implementations of the types.FS interface: the
// standard OS filesystem, an afero-backed filesystem used by tests, and a
// read-only guard that turns every mutation into an error. Dry runs are
// executed against the guard so they cannot touch the disk.
package filesystem
