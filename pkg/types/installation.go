package types

// Installation is the located Homebrew tree for a run.
type Installation struct {
	// Prefix is the root under which the runtime files live (bin, lib, ...)
	Prefix string

	// Repository holds the version-controlled sources. It equals Prefix for
	// single-root installs and is always a real, non-symlinked path.
	Repository string

	// Cellar holds one subdirectory per installed package.
	Cellar string
}

// SplitRepository reports whether Repository lives outside Prefix, as in the
// /usr/local + /usr/local/Homebrew layout.
func (i Installation) SplitRepository() bool {
	return i.Prefix != i.Repository
}
