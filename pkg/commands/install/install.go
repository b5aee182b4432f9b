// Package install drives the full install flow: policy resolution,
// package reconciliation, theme fetch and link reconciliation.
package install

import (
	"context"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/proflink/pkg/capability"
	"github.com/arthur-debert/proflink/pkg/cmdexec"
	"github.com/arthur-debert/proflink/pkg/commands/internal"
	"github.com/arthur-debert/proflink/pkg/config"
	"github.com/arthur-debert/proflink/pkg/elevate"
	"github.com/arthur-debert/proflink/pkg/linker"
	"github.com/arthur-debert/proflink/pkg/logging"
	"github.com/arthur-debert/proflink/pkg/pkgmgr"
	"github.com/arthur-debert/proflink/pkg/policy"
	"github.com/arthur-debert/proflink/pkg/profilepath"
	"github.com/arthur-debert/proflink/pkg/prompt"
	"github.com/arthur-debert/proflink/pkg/theme"
)

// Options defines the options for the install command.
type Options struct {
	// ProfileToken is the scope selector (current, all-hosts, all-users, global).
	ProfileToken string
	// ShellToken is the shell selector (current, windows, pwsh, both).
	ShellToken string
	// Source overrides the configured profile source path.
	Source string
	// NoPackages skips package reconciliation.
	NoPackages bool
	// Force auto-accepts overwrite prompts.
	Force bool
	// DryRun reports intended mutations without performing them.
	DryRun bool

	// Commander overrides the external command runner, for tests.
	Commander cmdexec.Commander
	// Confirm overrides the confirmation dialog, for tests.
	Confirm prompt.Confirmer
	// ExePath overrides the executable used for elevated children, for tests.
	ExePath string
}

// LinkReport records the outcome for one shell target.
type LinkReport struct {
	Shell   policy.ShellTarget
	Path    string
	Outcome linker.Outcome
	Err     error
}

// Report summarizes an install run.
type Report struct {
	Resolution policy.Resolution
	Packages   []pkgmgr.Result
	Theme      theme.FetchOutcome
	Links      []LinkReport
}

// Failed reports whether any per-item operation failed.
func (r *Report) Failed() bool {
	for _, p := range r.Packages {
		if p.Status == pkgmgr.StatusFailed {
			return true
		}
	}
	for _, l := range r.Links {
		if l.Err != nil {
			return true
		}
	}
	return false
}

// Run executes the install flow. Per-item failures (one package, one shell
// target) are isolated and recorded in the report; only a failure that
// prevents the whole flow returns an error.
func Run(ctx context.Context, cfg *config.Config, opts Options) (*Report, error) {
	logger := logging.GetLogger("commands.install")
	done := logging.LogOperationStart(logger, "install")
	defer done()

	cmd := opts.Commander
	if cmd == nil {
		cmd = &cmdexec.RealCommander{}
	}

	caps := capability.Detect(ctx, cmd)

	resolution, err := policy.Resolve(opts.ProfileToken, opts.ShellToken, caps)
	if err != nil {
		return nil, err
	}

	report := &Report{Resolution: resolution}
	internal.PrintBanner("Install", resolution, caps, opts.DryRun)

	if !opts.NoPackages {
		report.Packages = reconcilePackages(ctx, cfg, caps, cmd, opts.DryRun)
	}

	report.Theme = fetchTheme(ctx, cfg, opts.DryRun)

	confirm := opts.Confirm
	if confirm == nil {
		confirm = prompt.NewConsoleConfirmer()
	}
	rec, err := linker.NewReconciler(linker.Options{
		Elevator: elevate.New(cmd),
		Confirm:  confirm,
		ExePath:  opts.ExePath,
		Force:    opts.Force,
		DryRun:   opts.DryRun,
	})
	if err != nil {
		return nil, err
	}

	source := opts.Source
	if source == "" {
		source = cfg.Profile.Source
	}

	for _, shell := range resolution.Shells {
		path, _ := profilepath.Profile(shell, resolution.Scope)
		outcome, lerr := rec.Install(ctx, source, shell, resolution.Scope)
		report.Links = append(report.Links, LinkReport{Shell: shell, Path: path, Outcome: outcome, Err: lerr})
		switch {
		case lerr != nil:
			logger.Warn().Err(lerr).Str("shell", shell.String()).Msg("link reconciliation failed, continuing")
			pterm.Error.Printfln("%s: %v", shell, lerr)
		case outcome == linker.OutcomeSkipped:
			pterm.Warning.Printfln("%s: skipping, %s kept as-is", shell, path)
		default:
			pterm.Success.Printfln("%s: %s -> %s", shell, path, source)
		}
	}

	return report, nil
}

func reconcilePackages(ctx context.Context, cfg *config.Config, caps *capability.Set, cmd cmdexec.Commander, dryRun bool) []pkgmgr.Result {
	if !caps.Has(capability.ToolPackageManager) {
		pterm.Warning.Println("winget not found, skipping package installation")
		return nil
	}

	rec := pkgmgr.NewReconciler(pkgmgr.NewWingetManager(cmd), dryRun)
	results := rec.EnsureInstalled(ctx, cfg.Packages)
	for _, res := range results {
		switch res.Status {
		case pkgmgr.StatusFailed:
			pterm.Error.Printfln("package %s: %v", res.Package.ID, res.Err)
		case pkgmgr.StatusInstalled:
			pterm.Success.Printfln("package %s installed", res.Package.ID)
		default:
			pterm.Info.Printfln("package %s %s", res.Package.ID, res.Status)
		}
	}
	return results
}

func fetchTheme(ctx context.Context, cfg *config.Config, dryRun bool) theme.FetchOutcome {
	logger := logging.GetLogger("commands.install")

	dest := cfg.Theme.Dir
	if dest == "" {
		var err error
		dest, err = profilepath.ThemesDir()
		if err != nil {
			logger.Warn().Err(err).Msg("cannot resolve themes directory, skipping theme fetch")
			return ""
		}
	}

	outcome, err := theme.NewFetcher(cfg.Theme.Repository, dryRun).Ensure(ctx, dest)
	if err != nil {
		logger.Warn().Err(err).Msg("theme fetch failed, continuing")
		pterm.Warning.Printfln("theme fetch failed: %v", err)
		return ""
	}
	pterm.Info.Printfln("theme repository %s", outcome)
	return outcome
}
