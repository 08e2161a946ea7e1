package prefix

import (
	"path/filepath"

	"github.com/arthur-debert/unbrew/pkg/config"
	"github.com/arthur-debert/unbrew/pkg/errors"
	"github.com/arthur-debert/unbrew/pkg/logging"
	"github.com/arthur-debert/unbrew/pkg/paths"
	"github.com/arthur-debert/unbrew/pkg/types"
	"github.com/rs/zerolog"
)

// SystemPrefix is the shared Unix prefix that may host Homebrew in a
// Homebrew/ subdirectory.
const SystemPrefix = "/usr/local"

// Locator finds and describes an installation.
type Locator struct {
	resolver *paths.Resolver
	cfg      config.Prefix
	logger   zerolog.Logger
}

// NewLocator returns a Locator reading through fsys.
func NewLocator(fsys types.FS, cfg config.Prefix) *Locator {
	return &Locator{
		resolver: paths.NewResolver(fsys),
		cfg:      cfg,
		logger:   logging.GetLogger("prefix.locator"),
	}
}

// Locate returns the installation rooted at the first qualifying candidate.
func (l *Locator) Locate(candidates []Candidate) (types.Installation, error) {
	var tried []string
	for _, c := range candidates {
		p, ok := c.Path()
		if !ok {
			l.logger.Debug().Str("source", c.Source).Msg("Candidate produced no path")
			continue
		}
		tried = append(tried, p)
		if !l.Qualifies(p) {
			l.logger.Debug().Str("source", c.Source).Str("path", p).Msg("Candidate does not qualify")
			continue
		}

		l.logger.Info().Str("source", c.Source).Str("prefix", p).Msg("Found installation")
		return l.Describe(p)
	}

	return types.Installation{}, errors.New(errors.ErrPrefixNotFound, "failed to locate Homebrew!").
		WithDetail("tried", tried)
}

// Qualifies reports whether p is a directory holding VCS metadata or an
// executable brew. The metadata may be a file, as in a git worktree.
// /usr/local also qualifies through /usr/local/Homebrew.
func (l *Locator) Qualifies(p string) bool {
	if !l.resolver.IsDir(p) {
		return false
	}
	if l.resolver.Exists(filepath.Join(p, l.cfg.VCSDir)) {
		return true
	}
	if l.resolver.IsExecutable(filepath.Join(p, l.cfg.Executable)) {
		return true
	}
	return p == SystemPrefix && l.resolver.Exists(l.nestedVCS(p))
}

// Describe derives the Repository and Cellar of the installation at prefix.
func (l *Locator) Describe(prefix string) (types.Installation, error) {
	repo, err := l.repository(prefix)
	if err != nil {
		return types.Installation{}, err
	}

	cellar := filepath.Join(prefix, l.cfg.CellarDir)
	if !l.resolver.Exists(cellar) {
		cellar = filepath.Join(repo, l.cfg.CellarDir)
	}

	inst := types.Installation{Prefix: prefix, Repository: repo, Cellar: cellar}
	l.logger.Debug().
		Str("prefix", inst.Prefix).
		Str("repository", inst.Repository).
		Str("cellar", inst.Cellar).
		Msg("Installation layout")
	return inst, nil
}

func (l *Locator) repository(prefix string) (string, error) {
	if vcs := filepath.Join(prefix, l.cfg.VCSDir); l.resolver.Exists(vcs) {
		resolved, err := l.resolver.Resolve(vcs)
		if err == nil {
			return filepath.Dir(resolved), nil
		}
		l.logger.Debug().Err(err).Str("path", vcs).Msg("Cannot resolve VCS directory")
	}

	if brew := filepath.Join(prefix, l.cfg.Executable); l.resolver.IsExecutable(brew) {
		resolved, err := l.resolver.Resolve(brew)
		if err == nil {
			return filepath.Dir(filepath.Dir(resolved)), nil
		}
		l.logger.Debug().Err(err).Str("path", brew).Msg("Cannot resolve brew executable")
	}

	if nested := l.nestedVCS(prefix); prefix == SystemPrefix && l.resolver.Exists(nested) {
		resolved, err := l.resolver.Resolve(nested)
		if err == nil {
			return filepath.Dir(resolved), nil
		}
	}

	return "", errors.Newf(errors.ErrPrefixNotFound, "failed to locate Homebrew repository for %s", prefix).
		WithDetail("prefix", prefix)
}

func (l *Locator) nestedVCS(prefix string) string {
	return filepath.Join(prefix, paths.HomebrewDirName, l.cfg.VCSDir)
}
