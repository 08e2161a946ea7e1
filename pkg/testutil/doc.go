// Package testutil provides helpers shared by unbrew's package tests:
// builders for fake Homebrew trees on a real temp directory, filesystem
// snapshots for proving a dry run changed nothing, a types.FS wrapper that
// injects removal failures, and a recording command runner.
package testutil
