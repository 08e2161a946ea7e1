package unbrew

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/unbrew/internal/version"
	"github.com/arthur-debert/unbrew/pkg/commands/uninstall"
	"github.com/arthur-debert/unbrew/pkg/config"
	"github.com/arthur-debert/unbrew/pkg/errors"
	"github.com/arthur-debert/unbrew/pkg/logging"
	"github.com/arthur-debert/unbrew/pkg/output"
	"github.com/arthur-debert/unbrew/pkg/paths"
	"github.com/arthur-debert/unbrew/pkg/types"
	"github.com/arthur-debert/unbrew/pkg/ui"
	"github.com/arthur-debert/unbrew/pkg/ui/confirmations"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// ExitError carries a process exit status for a failure that has already
// been reported to the user.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode maps the error returned by the root command to an exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

// IsReported reports whether err was already printed by the command.
func IsReported(err error) bool {
	var exitErr *ExitError
	return stderrors.As(err, &exitErr)
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		opts        types.Options
		verbosity   int
		noColor     bool
		configFile  string
		manifestURL string
	)

	rootCmd := &cobra.Command{
		Use:     "unbrew",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
			printer := output.NewPrinter(stdout, stderr, colorEnabled(stdout, noColor), opts.Quiet)

			var overrides map[string]interface{}
			if cmd.Flags().Changed("manifest-url") {
				overrides = map[string]interface{}{"manifest.url": manifestURL}
			}
			load := config.Load
			if cmd.Flags().Changed("config") {
				load = config.LoadRequired
			}
			cfg, err := load(configFile, overrides)
			if err != nil {
				printer.Error(fmt.Errorf(MsgErrConfig, err))
				return &ExitError{Code: 1}
			}

			result, err := uninstall.Uninstall(cmd.Context(), uninstall.UninstallOptions{
				Options:     opts,
				Config:      cfg,
				Printer:     printer,
				Prompter:    confirmations.NewConsoleDialog(cmd.InOrStdin(), stdout),
				Interactive: isInteractive(cmd),
			})
			if errors.IsErrorCode(err, errors.ErrAborted) {
				return nil
			}
			if err != nil {
				printer.Error(err)
				return &ExitError{Code: 1}
			}
			if code := result.ExitCode(); code != 0 {
				return &ExitError{Code: code}
			}
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.Flags()
	flags.StringArrayVarP(&opts.PrefixOverrides, "path", "p", nil, MsgFlagPath)
	flags.BoolVar(&opts.SkipCacheAndLogs, "skip-cache-and-logs", false, MsgFlagSkipCacheAndLogs)
	flags.BoolVarP(&opts.Force, "force", "f", false, MsgFlagForce)
	flags.BoolVarP(&opts.Quiet, "quiet", "q", false, MsgFlagQuiet)
	flags.BoolVarP(&opts.DryRun, "dry-run", "d", false, MsgFlagDryRun)
	flags.CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	flags.BoolVar(&noColor, "no-color", false, MsgFlagNoColor)
	flags.StringVar(&configFile, "config", paths.ConfigFilePath(), MsgFlagConfig)
	flags.StringVar(&manifestURL, "manifest-url", "", MsgFlagManifestURL)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetVersionTemplate(fmt.Sprintf("unbrew version %s\n  commit: %s\n  built:  %s\n",
		version.Version, version.Commit, version.Date))

	return rootCmd
}

// isInteractive reports whether the command reads from a terminal.
func isInteractive(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	return ok && ui.IsTerminal(f)
}

func colorEnabled(w io.Writer, noColor bool) bool {
	f, ok := w.(*os.File)
	return ok && ui.ColorEnabled(f, noColor)
}
