package testutil

import (
	"strings"
)

// RecordingRunner is a types.CommandRunner that records invocations and
// returns canned results.
type RecordingRunner struct {
	Calls [][]string

	// Output is returned for every call, keyed by program name.
	Output map[string]string

	// Err is returned for every call, keyed by program name.
	Err map[string]error
}

// Run records the invocation.
func (r *RecordingRunner) Run(name string, args ...string) ([]byte, error) {
	r.Calls = append(r.Calls, append([]string{name}, args...))
	var out string
	if r.Output != nil {
		out = r.Output[name]
	}
	if r.Err != nil {
		if err := r.Err[name]; err != nil {
			return []byte(out), err
		}
	}
	return []byte(out), nil
}

// CallLines renders each call as a single space-joined line.
func (r *RecordingRunner) CallLines() []string {
	lines := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		lines[i] = strings.Join(c, " ")
	}
	return lines
}
