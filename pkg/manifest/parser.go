package manifest

import (
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/unbrew/pkg/errors"
	"github.com/arthur-debert/unbrew/pkg/paths"
)

// Marker starts every line that names an owned path.
const Marker = "!"

// globChars mark a pattern rather than a concrete path.
const globChars = "*?["

// Parse returns the owned entries named by text, relative to the repository,
// in manifest order. Entries listed in shared are dropped: other software
// writes into them too. Patterns and entries that climb out of the
// repository are dropped as well. Parse does no I/O.
func Parse(text string, shared []string) []string {
	skip := make(map[string]bool, len(shared))
	for _, s := range shared {
		skip[s] = true
	}

	var entries []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if !strings.HasPrefix(line, Marker) {
			continue
		}
		entry := strings.TrimPrefix(line, Marker)
		entry = strings.TrimLeft(entry, "/")
		entry = strings.TrimSuffix(entry, "/")
		if entry == "" || skip[entry] || strings.ContainsAny(entry, globChars) {
			continue
		}
		entry = path.Clean(entry)
		if entry == "." || entry == ".." || strings.HasPrefix(entry, "../") || skip[entry] {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// Validate rejects manifest content that cannot be trusted to describe an
// installation.
func Validate(content []byte) error {
	if len(strings.TrimSpace(string(content))) == 0 {
		return errors.New(errors.ErrManifestEmpty, "failed to determine files to remove: manifest is empty")
	}
	if !utf8.Valid(content) {
		return errors.New(errors.ErrManifestInvalid, "failed to determine files to remove: manifest is not valid UTF-8")
	}
	return nil
}

// Manifest is a loaded and validated manifest.
type Manifest struct {
	// Source describes where the content came from
	Source string

	// Entries are the owned paths relative to the repository
	Entries []string
}

// New validates content and parses it.
func New(source string, content []byte, shared []string) (Manifest, error) {
	if err := Validate(content); err != nil {
		return Manifest{}, errors.Wrap(err, errors.GetErrorCode(err), "invalid manifest from "+source).
			WithDetail("source", source)
	}
	return Manifest{Source: source, Entries: Parse(string(content), shared)}, nil
}

// Resolve returns the entries as absolute paths under repo. Entries that
// would land outside repo are left out.
func (m Manifest) Resolve(repo string) []string {
	out := make([]string, 0, len(m.Entries))
	for _, e := range m.Entries {
		joined := filepath.Join(repo, filepath.FromSlash(e))
		if joined == filepath.Clean(repo) || !paths.Within(repo, joined) {
			continue
		}
		out = append(out, joined)
	}
	return out
}
