// Package ui holds terminal capability detection and interactive prompts.
package ui

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// EnvNoColor disables colored output when set to any value.
const EnvNoColor = "NO_COLOR"

// IsTerminal reports whether f is attached to an interactive terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ColorEnabled determines whether output written to f may be colored.
func ColorEnabled(f *os.File, noColor bool) bool {
	// Explicit opt-outs first
	if noColor || os.Getenv(EnvNoColor) != "" {
		return false
	}

	// Piped or redirected
	if !IsTerminal(f) {
		return false
	}

	return termenv.NewOutput(f).ColorProfile() != termenv.Ascii
}
