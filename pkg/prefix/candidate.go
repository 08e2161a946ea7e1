package prefix

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/unbrew/pkg/paths"
	"github.com/arthur-debert/unbrew/pkg/types"
)

// Candidate sources, as reported in logs
const (
	SourceOverride = "override"
	SourceProbe    = "brew --prefix"
	SourcePath     = "PATH"
	SourceDefault  = "default"
)

// Candidate is a possible Prefix whose path is computed on demand.
type Candidate struct {
	Source  string
	resolve func() (string, bool)
}

// Path evaluates the candidate. ok is false when it produced nothing.
func (c Candidate) Path() (string, bool) {
	if c.resolve == nil {
		return "", false
	}
	p, ok := c.resolve()
	if !ok || p == "" {
		return "", false
	}
	p = paths.ExpandHome(p)
	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	}
	return filepath.Clean(p), true
}

// Static returns a candidate with a fixed path.
func Static(source, path string) Candidate {
	return Candidate{
		Source:  source,
		resolve: func() (string, bool) { return path, path != "" },
	}
}

// Probe asks the brew executable where its prefix is.
func Probe(runner types.CommandRunner, brew string) Candidate {
	return Candidate{
		Source: SourceProbe,
		resolve: func() (string, bool) {
			out, err := runner.Run(brew, "--prefix")
			if err != nil {
				return "", false
			}
			p := strings.TrimSpace(string(out))
			return p, p != ""
		},
	}
}

// OnPath derives a prefix from the brew executable found on PATH: the parent
// of the directory holding it.
func OnPath(lookPath func(string) (string, error), brew string) Candidate {
	return Candidate{
		Source: SourcePath,
		resolve: func() (string, bool) {
			exe, err := lookPath(brew)
			if err != nil || exe == "" {
				return "", false
			}
			return filepath.Dir(filepath.Dir(exe)), true
		},
	}
}

// Discovery configures how Candidates assembles the candidate list.
type Discovery struct {
	// Overrides are explicit paths. When present nothing else is tried.
	Overrides []string

	// Defaults are the conventional install locations, tried last.
	Defaults []string

	// Probe enables the `brew --prefix` candidate.
	Probe bool

	// Runner executes the probe. Probing is skipped when nil.
	Runner types.CommandRunner

	// LookPath finds brew on PATH. The PATH candidate is skipped when nil.
	LookPath func(string) (string, error)
}

// BrewCommand is the executable name probed and searched for on PATH.
const BrewCommand = "brew"

// Candidates returns the ordered candidate list: explicit overrides alone
// when given, otherwise the probe, the PATH location and then the defaults.
func Candidates(d Discovery) []Candidate {
	if len(d.Overrides) > 0 {
		out := make([]Candidate, 0, len(d.Overrides))
		for _, p := range d.Overrides {
			out = append(out, Static(SourceOverride, p))
		}
		return out
	}

	var out []Candidate
	if d.Probe && d.Runner != nil {
		out = append(out, Probe(d.Runner, BrewCommand))
	}
	if d.LookPath != nil {
		out = append(out, OnPath(d.LookPath, BrewCommand))
	}
	for _, p := range d.Defaults {
		out = append(out, Static(SourceDefault, p))
	}
	return out
}
