package removal

// Reporter receives the user-facing messages of a run.
type Reporter interface {
	// Section announces a phase.
	Section(title string)

	// WouldDeleteHeader precedes a dry-run listing of matches.
	WouldDeleteHeader()

	// Listed prints one dry-run match under the header.
	Listed(path string)

	// WouldDelete prints a single dry-run owned-path deletion.
	WouldDelete(path string)

	// Warning reports a recoverable problem.
	Warning(msg string)
}

type nopReporter struct{}

func (nopReporter) Section(string)     {}
func (nopReporter) WouldDeleteHeader() {}
func (nopReporter) Listed(string)      {}
func (nopReporter) WouldDelete(string) {}
func (nopReporter) Warning(string)     {}
