package testutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// Snapshot records every entry under root: its relative path, mode, size and
// symlink target. Two snapshots compare equal with reflect.DeepEqual when
// nothing under root was created, removed or rewritten.
func Snapshot(t *testing.T, root string) []string {
	t.Helper()

	var entries []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(root, path)
		info, err := os.Lstat(path)
		if err != nil {
			return err
		}
		line := fmt.Sprintf("%s %s %d", rel, info.Mode(), info.Size())
		if info.Mode()&os.ModeSymlink != 0 {
			target, _ := os.Readlink(path)
			line += " -> " + target
		}
		if info.IsDir() {
			line = fmt.Sprintf("%s %s", rel, info.Mode())
		}
		entries = append(entries, line)
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to snapshot %s: %v", root, err)
	}
	sort.Strings(entries)
	return entries
}
