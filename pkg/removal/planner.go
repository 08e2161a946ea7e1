package removal

import (
	"path/filepath"
	"regexp"

	"github.com/arthur-debert/unbrew/pkg/config"
	"github.com/arthur-debert/unbrew/pkg/logging"
	"github.com/arthur-debert/unbrew/pkg/paths"
	"github.com/arthur-debert/unbrew/pkg/types"
	"github.com/rs/zerolog"
)

// Actions recorded in outcomes
const (
	ActionUnregister = "unregister"
	ActionUnlink     = "unlink"
	ActionDelete     = "delete"
	ActionPrune      = "prune"
)

// Plan is the input of a run.
type Plan struct {
	Installation types.Installation
	Owned        []types.OwnedPath
	DryRun       bool
}

// Planner executes removal plans.
type Planner struct {
	fs        types.FS
	resolver  *paths.Resolver
	runner    types.CommandRunner
	cfg       config.Removal
	infoRe    *regexp.Regexp
	protected map[string]bool
	reporter  Reporter
	logger    zerolog.Logger
}

// NewPlanner returns a Planner mutating through fsys and running the index
// tool through runner. A nil reporter discards messages.
func NewPlanner(fsys types.FS, runner types.CommandRunner, cfg *config.Config, reporter Reporter) *Planner {
	if reporter == nil {
		reporter = nopReporter{}
	}
	protected := make(map[string]bool, len(cfg.Prefix.Protected))
	for _, p := range cfg.Prefix.Protected {
		protected[filepath.Clean(p)] = true
	}
	return &Planner{
		fs:        fsys,
		resolver:  paths.NewResolver(fsys),
		runner:    runner,
		cfg:       cfg.Removal,
		infoRe:    cfg.InfoRegexp(),
		protected: protected,
		reporter:  reporter,
		logger:    logging.GetLogger("removal.planner"),
	}
}

// Execute runs every phase of plan in order and returns the merged result.
func (p *Planner) Execute(plan Plan) *types.Result {
	done := logging.LogOperationStart(p.logger, "removal")
	defer done()

	result := &types.Result{DryRun: plan.DryRun}
	p.reporter.Section("Removing Homebrew installation...")
	result.Merge(p.runPhase(types.PhaseAuxCleanup, p.AuxCleanup, plan))
	result.Merge(p.runPhase(types.PhaseOwnedRemoval, p.OwnedRemoval, plan))
	p.reporter.Section("Removing empty directories...")
	result.Merge(p.runPhase(types.PhaseEmptyDirPruning, p.EmptyDirPruning, plan))
	result.Merge(p.runPhase(types.PhaseRootPruning, p.RootPruning, plan))
	result.Residual = p.Residual(plan.Installation)

	p.logger.Info().
		Bool("dryRun", plan.DryRun).
		Int("removed", result.Count(types.OutcomeRemoved)).
		Int("failed", result.Count(types.OutcomeFailed)).
		Int("previewed", result.Count(types.OutcomeDryRun)).
		Bool("partial", result.Failed()).
		Msg("Removal finished")
	return result
}

// runPhase runs fn with the planner's logger tagged with phase and logs the
// phase's tally when it returns.
func (p *Planner) runPhase(phase types.Phase, fn func(Plan) types.PhaseResult, plan Plan) types.PhaseResult {
	base := p.logger
	phaseLogger, finish := logging.StartPhase(base, string(phase))
	p.logger = phaseLogger
	defer func() { p.logger = base }()

	res := fn(plan)
	counts := logging.PhaseCounts{Skipped: res.Skipped}
	for _, o := range res.Outcomes {
		switch o.Outcome {
		case types.OutcomeRemoved:
			counts.Removed++
		case types.OutcomeFailed:
			counts.Failed++
		case types.OutcomeDryRun:
			counts.Previewed++
		}
	}
	finish(counts)
	return res
}

// Residual returns the prune roots under the prefix that still exist.
func (p *Planner) Residual(inst types.Installation) []string {
	var out []string
	for _, dir := range p.pruneRoots(inst.Prefix) {
		if p.resolver.Exists(dir) {
			out = append(out, dir)
		}
	}
	return out
}

// auxRoots returns the existing auxiliary directories under prefix.
func (p *Planner) auxRoots(prefix string) []string {
	return p.existingDirs(prefix, p.cfg.AuxDirs)
}

// pruneRoots returns every prune root under prefix, existing or not.
func (p *Planner) pruneRoots(prefix string) []string {
	names := p.pruneNames()
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = filepath.Join(prefix, name)
	}
	return out
}

// pruneNames is the auxiliary directories followed by the extra prune
// directories, without duplicates.
func (p *Planner) pruneNames() []string {
	seen := make(map[string]bool)
	var out []string
	for _, list := range [][]string{p.cfg.AuxDirs, p.cfg.PruneDirs} {
		for _, name := range list {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	return out
}

func (p *Planner) existingDirs(prefix string, names []string) []string {
	var out []string
	for _, name := range names {
		dir := filepath.Join(prefix, name)
		if p.resolver.Kind(dir) == types.KindDir {
			out = append(out, dir)
		}
	}
	return out
}
