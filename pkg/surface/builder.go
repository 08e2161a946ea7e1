// Package surface computes the set of paths an installation owns.
package surface

import (
	"path/filepath"
	"sort"

	"github.com/arthur-debert/unbrew/pkg/config"
	"github.com/arthur-debert/unbrew/pkg/logging"
	"github.com/arthur-debert/unbrew/pkg/manifest"
	"github.com/arthur-debert/unbrew/pkg/paths"
	"github.com/arthur-debert/unbrew/pkg/platform"
	"github.com/arthur-debert/unbrew/pkg/types"
	"github.com/rs/zerolog"
)

// Request is everything a surface is built from.
type Request struct {
	Installation     types.Installation
	Manifest         manifest.Manifest
	SkipCacheAndLogs bool
}

// Builder assembles removal surfaces.
type Builder struct {
	resolver *paths.Resolver
	cfg      config.Surface
	vcsDir   string
	platform platform.Platform
	logger   zerolog.Logger
}

// NewBuilder returns a Builder reading through fsys. vcsDir names the VCS
// metadata directory inside the repository.
func NewBuilder(fsys types.FS, cfg config.Surface, vcsDir string, plat platform.Platform) *Builder {
	return &Builder{
		resolver: paths.NewResolver(fsys),
		cfg:      cfg,
		vcsDir:   vcsDir,
		platform: plat,
		logger:   logging.GetLogger("surface.builder"),
	}
}

// Build returns the owned paths of the installation: existing entries only,
// deduplicated and sorted lexicographically.
func (b *Builder) Build(req Request) []types.OwnedPath {
	done := logging.LogOperationStart(b.logger, "build surface")
	defer done()

	candidates := b.Candidates(req)

	seen := make(map[string]bool, len(candidates))
	owned := make([]types.OwnedPath, 0, len(candidates))
	for _, c := range candidates {
		op, ok := b.resolver.Owned(c)
		if !ok {
			b.logger.Trace().Str("path", c).Msg("Not present, skipping")
			continue
		}
		if seen[op.Path] {
			continue
		}
		seen[op.Path] = true
		owned = append(owned, op)
	}

	sort.Slice(owned, func(i, j int) bool { return owned[i].Path < owned[j].Path })

	b.logger.Info().Int("candidates", len(candidates)).Int("owned", len(owned)).Msg("Built removal surface")
	return owned
}

// Candidates returns the unfiltered union the surface is drawn from, in
// discovery order.
func (b *Builder) Candidates(req Request) []string {
	inst := req.Installation

	out := req.Manifest.Resolve(inst.Repository)
	out = append(out, filepath.Join(inst.Repository, b.vcsDir), inst.Cellar)

	for _, rel := range b.cfg.Extra {
		out = append(out, filepath.Join(inst.Prefix, rel))
	}

	if inst.SplitRepository() {
		out = append(out, inst.Repository)
		for _, rel := range b.cfg.SplitRepositoryFiles {
			out = append(out, filepath.Join(inst.Prefix, rel))
		}
	}

	if !req.SkipCacheAndLogs {
		out = append(out, paths.CacheAndLogDirs(b.cfg.CacheAndLogs)...)
	}

	out = append(out, b.applicationShims(inst.Cellar)...)
	return out
}

// applicationShims finds symlinks directly inside the platform's application
// directories that resolve into the Cellar.
func (b *Builder) applicationShims(cellar string) []string {
	dirs := b.platform.ApplicationDirs()
	if len(dirs) == 0 {
		return nil
	}

	roots := []string{cellar}
	if resolved, err := b.resolver.Resolve(cellar); err == nil && resolved != cellar {
		roots = append(roots, resolved)
	}

	var shims []string
	for _, dir := range dirs {
		entries, err := b.resolver.FS().ReadDir(dir)
		if err != nil {
			b.logger.Debug().Err(err).Str("dir", dir).Msg("Cannot list application directory")
			continue
		}
		for _, e := range entries {
			link := filepath.Join(dir, e.Name())
			if !b.resolver.IsSymlink(link) {
				continue
			}
			target, err := b.resolver.Resolve(link)
			if err != nil {
				continue
			}
			for _, root := range roots {
				if paths.Within(root, target) {
					shims = append(shims, link)
					break
				}
			}
		}
	}
	return shims
}
