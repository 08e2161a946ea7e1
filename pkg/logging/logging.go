package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Field names shared by every component.
const (
	// RunField tags each record with the invocation that wrote it. The log
	// file is appended to across runs; the console never shows it.
	RunField = "run"

	// PhaseField names the removal phase a record belongs to.
	PhaseField = "phase"
)

var runID = xid.New().String()

// RunID identifies this process in the log file.
func RunID() string {
	return runID
}

// LevelForVerbosity maps the -v count to a level. No flag shows warnings
// only, so a clean uninstall prints nothing but its own output.
func LevelForVerbosity(verbosity int) zerolog.Level {
	switch verbosity {
	case 0:
		return zerolog.WarnLevel
	case 1:
		return zerolog.InfoLevel
	case 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// SetupLogger configures the global logger for verbosity. Records go to
// stderr and to a log file under the XDG state directory, which lives
// outside any Homebrew prefix and so survives the uninstall.
func SetupLogger(verbosity int) {
	zerolog.SetGlobalLevel(LevelForVerbosity(verbosity))

	logFile := getLogFilePath()
	file, err := setupLogFile(logFile)
	var fileOut io.Writer
	if err == nil {
		fileOut = file
	}
	log.Logger = newLogger(os.Stderr, fileOut, os.Getenv("NO_COLOR") != "")

	if err != nil {
		log.Warn().Err(err).Str("path", logFile).Msg("Failed to create log file, logging to console only")
	}

	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().
		Int("verbosity", verbosity).
		Str("logFile", logFile).
		Int("pid", os.Getpid()).
		Strs("args", os.Args[1:]).
		Msg("Logger initialized")
}

// newLogger writes human-readable records to console and JSON records to
// file, when file is non-nil. Only the JSON records carry the run ID.
func newLogger(console io.Writer, file io.Writer, noColor bool) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:           console,
		TimeFormat:    time.Kitchen,
		NoColor:       noColor,
		FieldsExclude: []string{RunField},
	}

	var out io.Writer = consoleWriter
	if file != nil {
		out = zerolog.MultiLevelWriter(consoleWriter, file)
	}
	return zerolog.New(out).With().Timestamp().Str(RunField, runID).Logger()
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// getLogFilePath returns the path to the log file
// It respects XDG_STATE_HOME if set, otherwise uses ~/.local/state/unbrew/
func getLogFilePath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "unbrew.log"
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "unbrew", "unbrew.log")
}

func setupLogFile(logPath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// LogCommand logs an external command execution with its arguments
func LogCommand(cmd string, args []string) {
	log.Debug().
		Str("command", cmd).
		Strs("args", args).
		Msg("Executing command")
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}

// PhaseCounts is the tally a phase reports when it finishes.
type PhaseCounts struct {
	Removed   int
	Failed    int
	Previewed int
	Skipped   bool
}

// StartPhase returns logger tagged with phase and a function that records the
// phase's duration and tally. A phase with failures finishes at warn level so
// it reaches the log file even without -v.
func StartPhase(logger zerolog.Logger, phase string) (zerolog.Logger, func(PhaseCounts)) {
	phaseLogger := logger.With().Str(PhaseField, phase).Logger()
	start := time.Now()
	phaseLogger.Debug().Msg("Phase started")

	return phaseLogger, func(c PhaseCounts) {
		event := phaseLogger.Info()
		if c.Failed > 0 {
			event = phaseLogger.Warn()
		}
		event.
			Dur("duration", time.Since(start)).
			Int("removed", c.Removed).
			Int("failed", c.Failed).
			Int("previewed", c.Previewed).
			Bool("skipped", c.Skipped).
			Msg("Phase finished")
	}
}
