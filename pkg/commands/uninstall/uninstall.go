// Package uninstall runs one complete uninstallation: locate the
// installation, read its manifest, build the removal surface, confirm and
// remove.
package uninstall

import (
	"context"
	"os/exec"

	"github.com/arthur-debert/unbrew/pkg/config"
	"github.com/arthur-debert/unbrew/pkg/errors"
	"github.com/arthur-debert/unbrew/pkg/execution"
	"github.com/arthur-debert/unbrew/pkg/filesystem"
	"github.com/arthur-debert/unbrew/pkg/logging"
	"github.com/arthur-debert/unbrew/pkg/manifest"
	"github.com/arthur-debert/unbrew/pkg/output"
	"github.com/arthur-debert/unbrew/pkg/platform"
	"github.com/arthur-debert/unbrew/pkg/prefix"
	"github.com/arthur-debert/unbrew/pkg/removal"
	"github.com/arthur-debert/unbrew/pkg/surface"
	"github.com/arthur-debert/unbrew/pkg/types"
	"github.com/arthur-debert/unbrew/pkg/ui/confirmations"
)

// ConfirmQuestion is asked before anything is removed.
const ConfirmQuestion = "Are you sure you want to uninstall Homebrew? This will remove your installed packages!"

// UninstallOptions defines the options for the Uninstall command.
type UninstallOptions struct {
	types.Options

	// Config is the loaded configuration. Required.
	Config *config.Config

	// Printer receives all user-facing output. Required.
	Printer *output.Printer

	// Prompter asks for confirmation. Required unless Force, DryRun or
	// not Interactive.
	Prompter confirmations.Prompter

	// Interactive is true when standard input is a terminal.
	Interactive bool

	// FS defaults to the host filesystem.
	FS types.FS

	// Runner defaults to executing on the host.
	Runner types.CommandRunner

	// LookPath defaults to exec.LookPath.
	LookPath func(string) (string, error)

	// Platform defaults to the running platform.
	Platform platform.Platform
}

// Uninstall locates the installation and removes it. The returned error is
// non-nil only when the run stopped before removal started: a fatal
// discovery error or a declined confirmation (ErrAborted). Per-path
// failures are reported through the result.
func Uninstall(ctx context.Context, opts UninstallOptions) (*types.Result, error) {
	log := logging.GetLogger("commands.uninstall")
	log.Debug().Str("command", "Uninstall").Msg("Executing command")
	opts.setDefaults()
	cfg := opts.Config

	// 1. Locate the installation
	candidates := prefix.Candidates(prefix.Discovery{
		Overrides: opts.PrefixOverrides,
		Defaults:  cfg.Prefix.Defaults,
		Probe:     cfg.Prefix.Probe,
		Runner:    opts.Runner,
		LookPath:  opts.LookPath,
	})
	inst, err := prefix.NewLocator(opts.FS, cfg.Prefix).Locate(candidates)
	if err != nil {
		return nil, err
	}

	// 2. Read the manifest
	m, err := manifest.Load(ctx, manifest.Sources(opts.FS, inst, cfg.Manifest), cfg.Manifest.Shared)
	if err != nil {
		return nil, err
	}

	// 3. Build the surface
	owned := surface.NewBuilder(opts.FS, cfg.Surface, cfg.Prefix.VCSDir, opts.Platform).Build(surface.Request{
		Installation:     inst,
		Manifest:         m,
		SkipCacheAndLogs: opts.SkipCacheAndLogs,
	})
	opts.Printer.RemovalList(owned, opts.DryRun)

	// 4. Confirm
	if !opts.Force && !opts.DryRun && opts.Interactive {
		ok, err := opts.Prompter.Confirm(ConfirmQuestion)
		if err != nil {
			return nil, err
		}
		if !ok {
			log.Info().Msg("Uninstall declined")
			return nil, errors.New(errors.ErrAborted, "uninstall declined")
		}
	}

	// 5. Remove
	fsys := opts.FS
	if opts.DryRun {
		fsys = filesystem.NewReadOnly(fsys)
	}
	result := removal.NewPlanner(fsys, opts.Runner, cfg, opts.Printer).Execute(removal.Plan{
		Installation: inst,
		Owned:        owned,
		DryRun:       opts.DryRun,
	})

	opts.Printer.Summary(result)
	if !opts.DryRun {
		opts.Printer.Residual(result.Residual)
	}
	return result, nil
}

func (o *UninstallOptions) setDefaults() {
	if o.FS == nil {
		o.FS = filesystem.NewOS()
	}
	if o.Runner == nil {
		o.Runner = execution.NewRunner(0)
	}
	if o.LookPath == nil {
		o.LookPath = exec.LookPath
	}
	if o.Platform == nil {
		o.Platform = platform.Current(o.Config.Surface.ApplicationDirs)
	}
}
