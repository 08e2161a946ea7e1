package types

// Phase names a step of the removal plan.
type Phase string

const (
	PhaseAuxCleanup      Phase = "aux-cleanup"
	PhaseOwnedRemoval    Phase = "owned-removal"
	PhaseEmptyDirPruning Phase = "empty-dir-pruning"
	PhaseRootPruning     Phase = "root-pruning"
)

// Phases lists every phase in execution order.
var Phases = []Phase{PhaseAuxCleanup, PhaseOwnedRemoval, PhaseEmptyDirPruning, PhaseRootPruning}

// countsAsFailure reports whether a failed outcome in this phase marks the
// whole run as partially uninstalled.
func (p Phase) countsAsFailure() bool {
	return p == PhaseAuxCleanup || p == PhaseOwnedRemoval
}

// Outcome is what happened to a single path.
type Outcome string

const (
	OutcomeRemoved Outcome = "removed"
	OutcomeFailed  Outcome = "failed"
	OutcomeDryRun  Outcome = "dry-run"
)

// RemovalOutcome is the per-path result of a phase step.
type RemovalOutcome struct {
	Phase   Phase   `json:"phase"`
	Path    string  `json:"path"`
	Action  string  `json:"action"`
	Outcome Outcome `json:"outcome"`
	Reason  string  `json:"reason,omitempty"`
}

// PhaseResult collects the outcomes of one phase. Each phase returns one and
// the planner merges it into the run Result.
type PhaseResult struct {
	Phase    Phase            `json:"phase"`
	Outcomes []RemovalOutcome `json:"outcomes"`
	Skipped  bool             `json:"skipped,omitempty"`
}

// NewPhaseResult returns an empty result for phase.
func NewPhaseResult(phase Phase) PhaseResult {
	return PhaseResult{Phase: phase}
}

// Removed records a successful mutation.
func (p *PhaseResult) Removed(path, action string) {
	p.Outcomes = append(p.Outcomes, RemovalOutcome{Phase: p.Phase, Path: path, Action: action, Outcome: OutcomeRemoved})
}

// Failed records a mutation that returned err.
func (p *PhaseResult) Failed(path, action string, err error) {
	reason := ""
	if err != nil {
		reason = err.Error()
	}
	p.Outcomes = append(p.Outcomes, RemovalOutcome{Phase: p.Phase, Path: path, Action: action, Outcome: OutcomeFailed, Reason: reason})
}

// Previewed records a mutation that was only printed.
func (p *PhaseResult) Previewed(path, action string) {
	p.Outcomes = append(p.Outcomes, RemovalOutcome{Phase: p.Phase, Path: path, Action: action, Outcome: OutcomeDryRun})
}

// Result accumulates phase results for a whole run. The failure flag is only
// ever set, never cleared.
type Result struct {
	DryRun   bool             `json:"dryRun"`
	Outcomes []RemovalOutcome `json:"outcomes"`
	Phases   []Phase          `json:"phases"`
	Residual []string         `json:"residual,omitempty"`
	failed   bool
}

// Merge folds a phase result into r.
func (r *Result) Merge(p PhaseResult) {
	if !p.Skipped {
		r.Phases = append(r.Phases, p.Phase)
	}
	for _, o := range p.Outcomes {
		r.Outcomes = append(r.Outcomes, o)
		if o.Outcome == OutcomeFailed && o.Phase.countsAsFailure() {
			r.failed = true
		}
	}
}

// Failed reports whether any auxiliary cleanup or owned-path removal failed.
func (r *Result) Failed() bool {
	return r.failed
}

// Count returns the number of outcomes of the given kind.
func (r *Result) Count(kind Outcome) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Outcome == kind {
			n++
		}
	}
	return n
}

// FailedPaths returns the paths of every failed outcome in record order.
func (r *Result) FailedPaths() []string {
	var out []string
	for _, o := range r.Outcomes {
		if o.Outcome == OutcomeFailed {
			out = append(out, o.Path)
		}
	}
	return out
}

// ExitCode maps the failure flag to the process exit status.
func (r *Result) ExitCode() int {
	if r.failed {
		return 1
	}
	return 0
}
