package removal

import (
	"github.com/arthur-debert/unbrew/pkg/errors"
	"github.com/arthur-debert/unbrew/pkg/types"
)

// OwnedRemoval recursively removes every owned path. A failure is reported
// and recorded, and the loop moves on to the next path.
func (p *Planner) OwnedRemoval(plan Plan) types.PhaseResult {
	res := types.NewPhaseResult(types.PhaseOwnedRemoval)

	for _, o := range plan.Owned {
		if plan.DryRun {
			p.reporter.WouldDelete(o.Path)
			res.Previewed(o.Path, ActionDelete)
			continue
		}

		if err := p.fs.RemoveAll(o.Path); err != nil {
			p.logger.Warn().Err(err).Str("path", o.Path).Str("kind", o.Kind.String()).Msg("Failed to delete")
			p.reporter.Warning("Failed to delete " + o.Path + "\n" + err.Error())
			res.Failed(o.Path, ActionDelete, errors.Wrapf(err, errors.ErrRemoveFailed, "failed to delete %s", o.Path))
			continue
		}
		p.logger.Debug().Str("path", o.Path).Msg("Deleted")
		res.Removed(o.Path, ActionDelete)
	}
	return res
}
