// Package removal deletes an installation's removal surface.
//
// A run moves through four phases in a fixed order and never goes back:
//
//	AuxCleanup      de-register documentation indexes, unlink Cellar links
//	OwnedRemoval    remove every owned path
//	EmptyDirPruning delete litter files, then empty directories bottom-up
//	RootPruning     remove the repository and prefix if they are now empty
//
// A failure on one path never stops the run. Each phase returns a
// types.PhaseResult that the Planner merges into the run's types.Result.
// In dry-run mode every phase only reports what it would do and RootPruning
// is not attempted.
package removal
