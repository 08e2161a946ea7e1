package testutil

import (
	"path/filepath"
	"strings"
	"testing"
)

// DefaultGitignore is a trimmed copy of Homebrew's .gitignore. Only the
// "!" lines matter to the uninstaller.
const DefaultGitignore = `# Ignore all files by default, but scan subdirectories.
*
!*/

# Unignore the contents of Library as that's where our code lives.
!/Library/

# Unignore our shell completion
!/completions

# Unignore our documentation/contribution files
!/docs
!/CHANGELOG.md
!/README.md

# Unignore our binary stubs, but only the brew one
!/bin
!/bin/brew

# Unignore our shared docs
!/share
!/share/doc
!/share/doc/homebrew
!/share/man/man1/brew.1
`

// HomebrewPrefix creates a single-root Homebrew install under a fresh temp
// dir and returns its path. The prefix gets a .git directory; every entry in
// files is created relative to it, entries ending in "/" as directories.
func HomebrewPrefix(t *testing.T, files ...string) string {
	t.Helper()

	prefix := filepath.Join(RealTempDir(t), "homebrew")
	CreateDir(t, prefix, ".git")
	for _, f := range files {
		if strings.HasSuffix(f, "/") {
			CreateDir(t, prefix, strings.TrimSuffix(f, "/"))
			continue
		}
		CreateFile(t, prefix, f, "")
	}
	return prefix
}
