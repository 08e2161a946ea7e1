// Package manifest reads Homebrew's ignore manifest and turns its negated
// entries into the list of repository paths the installation owns.
//
// A manifest is a .gitignore-style file that ignores everything and then
// re-includes the installation's own files with "!" lines:
//
//	*
//	!/bin/brew
//	!/Library/
//
// Only the "!" lines matter. Each is stripped of its marker, leading slashes
// and a trailing slash, then resolved against the repository root.
package manifest
