package types

// PathKind classifies a filesystem entry without following a final symlink.
type PathKind int

const (
	KindMissing PathKind = iota
	KindFile
	KindDir
	KindSymlink
)

func (k PathKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "directory"
	case KindSymlink:
		return "symlink"
	default:
		return "missing"
	}
}

// OwnedPath is a single filesystem entry considered part of the installation.
// Values are built once by the surface builder and never mutated afterwards.
type OwnedPath struct {
	Path string   `json:"path"`
	Kind PathKind `json:"kind"`
}

// String returns the absolute path.
func (o OwnedPath) String() string {
	return o.Path
}

// OwnedPaths returns the plain path strings of ps, preserving order.
func OwnedPaths(ps []OwnedPath) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Path
	}
	return out
}
