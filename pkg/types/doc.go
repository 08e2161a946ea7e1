// Package types defines the core types and interfaces used throughout unbrew.
// This includes the FS interface every component reads and mutates the disk
// through, the Installation located for a run, the OwnedPath values slated for
// removal, and the Result accumulator that records what each removal phase did.
package types
