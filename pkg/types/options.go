package types

// Options is the configuration record produced by the command line.
type Options struct {
	// PrefixOverrides are explicit prefix candidates, tried before any detection
	PrefixOverrides []string

	// SkipCacheAndLogs keeps cache and log directories out of the removal set
	SkipCacheAndLogs bool

	// Force skips the confirmation prompt
	Force bool

	// Quiet suppresses the removal listing and the final summary
	Quiet bool

	// DryRun shows what would be removed without actually removing
	DryRun bool
}
