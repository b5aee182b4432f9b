// Package uninstall reverses the install flow: it removes the profile links
// and optionally the supporting packages.
package uninstall

import (
	"context"
	"fmt"
	"strings"

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
)

// Options defines the options for the uninstall command.
type Options struct {
	ProfileToken string
	ShellToken   string
	// RemovePackages also removes the fixed package list.
	RemovePackages bool
	// Force skips the package-removal confirmation.
	Force  bool
	DryRun bool

	Commander cmdexec.Commander
	Confirm   prompt.Confirmer
	ExePath   string
}

// LinkReport records the outcome for one shell target.
type LinkReport struct {
	Shell   policy.ShellTarget
	Path    string
	Outcome linker.Outcome
	Err     error
}

// Report summarizes an uninstall run.
type Report struct {
	Resolution policy.Resolution
	Links      []LinkReport
	Packages   []pkgmgr.Result
}

// Failed reports whether any per-item operation failed.
func (r *Report) Failed() bool {
	for _, l := range r.Links {
		if l.Err != nil {
			return true
		}
	}
	for _, p := range r.Packages {
		if p.Status == pkgmgr.StatusFailed {
			return true
		}
	}
	return false
}

// Run executes the uninstall flow.
func Run(ctx context.Context, cfg *config.Config, opts Options) (*Report, error) {
	logger := logging.GetLogger("commands.uninstall")
	done := logging.LogOperationStart(logger, "uninstall")
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
	internal.PrintBanner("Uninstall", resolution, caps, opts.DryRun)

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

	for _, shell := range resolution.Shells {
		path, _ := profilepath.Profile(shell, resolution.Scope)
		outcome, lerr := rec.Remove(ctx, shell, resolution.Scope)
		report.Links = append(report.Links, LinkReport{Shell: shell, Path: path, Outcome: outcome, Err: lerr})
		switch {
		case lerr != nil:
			logger.Warn().Err(lerr).Str("shell", shell.String()).Msg("link removal failed, continuing")
			pterm.Error.Printfln("%s: %v", shell, lerr)
		case outcome == linker.OutcomeAbsent:
			pterm.Info.Printfln("%s: %s already absent", shell, path)
		default:
			pterm.Success.Printfln("%s: removed %s", shell, path)
		}
	}

	if opts.RemovePackages {
		report.Packages = removePackages(ctx, cfg, caps, cmd, confirm, opts)
	}

	return report, nil
}

// removePackages collects the installed subset of the fixed list, asks one
// confirm-all question, and removes everything on accept. Decline skips
// package removal entirely.
func removePackages(ctx context.Context, cfg *config.Config, caps *capability.Set, cmd cmdexec.Commander, confirm prompt.Confirmer, opts Options) []pkgmgr.Result {
	if !caps.Has(capability.ToolPackageManager) {
		pterm.Warning.Println("winget not found, skipping package removal")
		return nil
	}

	rec := pkgmgr.NewReconciler(pkgmgr.NewWingetManager(cmd), opts.DryRun)
	present := rec.CollectPresent(ctx, cfg.Packages)
	if len(present) == 0 {
		pterm.Info.Println("no supporting packages installed")
		return nil
	}

	ids := make([]string, 0, len(present))
	for _, spec := range present {
		ids = append(ids, spec.ID)
	}
	pterm.Info.Printfln("installed supporting packages: %s", strings.Join(ids, ", "))

	if !opts.Force {
		question := fmt.Sprintf("Remove %d package(s)?", len(present))
		if !confirm.Confirm(question) {
			pterm.Info.Println("keeping packages")
			return nil
		}
	}

	results := rec.EnsureRemoved(ctx, present)
	for _, res := range results {
		if res.Status == pkgmgr.StatusFailed {
			pterm.Error.Printfln("package %s: %v", res.Package.ID, res.Err)
		} else {
			pterm.Info.Printfln("package %s %s", res.Package.ID, res.Status)
		}
	}
	return results
}
