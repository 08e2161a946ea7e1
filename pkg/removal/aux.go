package removal

import (
	stderrors "errors"
	"io/fs"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/unbrew/pkg/errors"
	"github.com/arthur-debert/unbrew/pkg/paths"
	"github.com/arthur-debert/unbrew/pkg/types"
	"github.com/bmatcuk/doublestar/v4"
)

// indexFile is the documentation index every info directory keeps.
const indexFile = "dir"

// AuxCleanup de-registers documentation index entries and unlinks symlinks
// into the Cellar found under the prefix's auxiliary directories.
func (p *Planner) AuxCleanup(plan Plan) types.PhaseResult {
	res := types.NewPhaseResult(types.PhaseAuxCleanup)
	roots := p.auxRoots(plan.Installation.Prefix)

	infos := p.find(roots, p.isInfoFile)
	links := p.find(roots, p.isCellarLink)
	p.logger.Debug().Int("infoFiles", len(infos)).Int("cellarLinks", len(links)).Msg("Auxiliary files found")

	if plan.DryRun {
		p.reporter.WouldDeleteHeader()
		for _, f := range infos {
			p.reporter.Listed(f)
			res.Previewed(f, ActionUnregister)
		}
		for _, l := range links {
			p.reporter.Listed(l)
			res.Previewed(l, ActionUnlink)
		}
		return res
	}

	p.unregister(infos, &res)

	for _, l := range links {
		if err := p.fs.Remove(l); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
			p.reporter.Warning("Failed to unlink " + l)
			res.Failed(l, ActionUnlink, errors.Wrapf(err, errors.ErrUnlinkFailed, "failed to unlink %s", l))
			continue
		}
		res.Removed(l, ActionUnlink)
	}
	return res
}

// unregister runs the index tool for each info file. A missing tool is
// reported once and the remaining files are skipped.
func (p *Planner) unregister(infos []string, res *types.PhaseResult) {
	for _, f := range infos {
		index := filepath.Join(filepath.Dir(f), indexFile)
		_, err := p.runner.Run(p.cfg.IndexTool, "--delete", "--quiet", f, index)
		if err == nil {
			res.Removed(f, ActionUnregister)
			continue
		}
		if stderrors.Is(err, exec.ErrNotFound) {
			p.reporter.Warning("Skipping documentation index cleanup: " + p.cfg.IndexTool + " not found")
			p.logger.Warn().Str("tool", p.cfg.IndexTool).Msg("Index tool not found")
			return
		}
		p.reporter.Warning("Failed to remove " + f + " from " + index)
		res.Failed(f, ActionUnregister, errors.Wrapf(err, errors.ErrIndexFailed, "failed to unregister %s", f))
	}
}

// find walks roots in pre-order and returns every entry accepted by match.
func (p *Planner) find(roots []string, match func(path string, d fs.DirEntry) bool) []string {
	var out []string
	for _, root := range roots {
		_ = p.resolver.Walk(root, paths.PreOrder, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				p.logger.Debug().Err(err).Str("path", path).Msg("Walk error")
				return nil
			}
			if match(path, d) {
				out = append(out, path)
			}
			return nil
		})
	}
	return out
}

func (p *Planner) isInfoFile(path string, d fs.DirEntry) bool {
	return !d.IsDir() && p.infoRe.MatchString(filepath.ToSlash(path))
}

// isCellarLink matches symlinks whose link text, not their resolved target,
// points into a Cellar.
func (p *Planner) isCellarLink(path string, d fs.DirEntry) bool {
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	text, err := p.fs.Readlink(path)
	if err != nil {
		return false
	}
	ok, err := doublestar.Match(p.cfg.CellarLinkGlob, strings.TrimLeft(filepath.ToSlash(text), "/"))
	return err == nil && ok
}
