package removal

import (
	"io/fs"

	"github.com/arthur-debert/unbrew/pkg/errors"
	"github.com/arthur-debert/unbrew/pkg/paths"
	"github.com/arthur-debert/unbrew/pkg/types"
)

// EmptyDirPruning deletes litter files under the prune roots, then removes
// every empty directory in a single post-order walk so directories emptied
// on the way are removed in the same pass.
func (p *Planner) EmptyDirPruning(plan Plan) types.PhaseResult {
	res := types.NewPhaseResult(types.PhaseEmptyDirPruning)
	roots := p.existingDirs(plan.Installation.Prefix, p.pruneNames())

	litter := p.find(roots, func(path string, d fs.DirEntry) bool {
		return !d.IsDir() && d.Name() == p.cfg.LitterFile
	})

	if plan.DryRun {
		p.reporter.WouldDeleteHeader()
		for _, f := range litter {
			p.reporter.Listed(f)
			res.Previewed(f, ActionDelete)
		}
		for _, d := range p.find(roots, func(path string, d fs.DirEntry) bool {
			return d.IsDir() && p.resolver.IsEmptyDir(path)
		}) {
			p.reporter.Listed(d)
			res.Previewed(d, ActionPrune)
		}
		return res
	}

	for _, f := range litter {
		p.removeOne(f, ActionDelete, &res)
	}

	for _, root := range roots {
		_ = p.resolver.Walk(root, paths.PostOrder, func(path string, d fs.DirEntry, err error) error {
			if err != nil || !d.IsDir() {
				return nil
			}
			if p.resolver.IsEmptyDir(path) {
				p.removeOne(path, ActionPrune, &res)
			}
			return nil
		})
	}
	return res
}

// RootPruning removes the repository, when separate, and the prefix if
// they are empty. Anything else is left alone without complaint.
func (p *Planner) RootPruning(plan Plan) types.PhaseResult {
	res := types.NewPhaseResult(types.PhaseRootPruning)
	if plan.DryRun {
		res.Skipped = true
		return res
	}

	inst := plan.Installation
	var roots []string
	if inst.SplitRepository() {
		roots = append(roots, inst.Repository)
	}
	if !p.protected[inst.Prefix] {
		roots = append(roots, inst.Prefix)
	}

	for _, root := range roots {
		if !p.resolver.IsEmptyDir(root) {
			p.logger.Debug().Str("path", root).Msg("Not empty, keeping")
			continue
		}
		if err := p.fs.Remove(root); err != nil {
			p.logger.Debug().Err(err).Str("path", root).Msg("Cannot remove root")
			continue
		}
		res.Removed(root, ActionPrune)
	}
	return res
}

func (p *Planner) removeOne(path, action string, res *types.PhaseResult) {
	if err := p.fs.Remove(path); err != nil {
		p.logger.Warn().Err(err).Str("path", path).Msg("Failed to prune")
		res.Failed(path, action, errors.Wrapf(err, errors.ErrRemoveFailed, "failed to remove %s", path))
		return
	}
	res.Removed(path, action)
}
