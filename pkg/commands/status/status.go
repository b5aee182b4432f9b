// Package status reports the observable state of every profile placement
// without mutating anything.
package status

import (
	"context"
	"os"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/proflink/pkg/capability"
	"github.com/arthur-debert/proflink/pkg/cmdexec"
	"github.com/arthur-debert/proflink/pkg/config"
	"github.com/arthur-debert/proflink/pkg/linker"
	"github.com/arthur-debert/proflink/pkg/logging"
	"github.com/arthur-debert/proflink/pkg/policy"
	"github.com/arthur-debert/proflink/pkg/profilepath"
)

// Options defines the options for the status command.
type Options struct {
	Commander cmdexec.Commander
}

// LinkStatus is the state of one (shell, scope) profile slot.
type LinkStatus struct {
	Shell policy.ShellTarget
	Scope policy.Scope
	Path  string
	State linker.State
}

// Report is the full read-only system state.
type Report struct {
	Capabilities *capability.Set
	Links        []LinkStatus
	ThemePresent bool
	ThemeDir     string
}

// Run inspects every scope and shell combination.
func Run(ctx context.Context, cfg *config.Config, opts Options) (*Report, error) {
	logger := logging.GetLogger("commands.status")

	cmd := opts.Commander
	if cmd == nil {
		cmd = &cmdexec.RealCommander{}
	}

	report := &Report{Capabilities: capability.Detect(ctx, cmd)}

	scopes := []policy.Scope{
		policy.CurrentUserCurrentHost,
		policy.CurrentUserAllHosts,
		policy.AllUsersCurrentHost,
		policy.AllUsersAllHosts,
	}
	shells := []policy.ShellTarget{policy.WindowsLegacy, policy.ModernShell}

	for _, scope := range scopes {
		for _, shell := range shells {
			path, err := profilepath.Profile(shell, scope)
			if err != nil {
				logger.Warn().Err(err).Msg("cannot resolve profile path")
				continue
			}
			report.Links = append(report.Links, LinkStatus{
				Shell: shell,
				Scope: scope,
				Path:  path,
				State: linker.Inspect(path),
			})
		}
	}

	dest := cfg.Theme.Dir
	if dest == "" {
		dest, _ = profilepath.ThemesDir()
	}
	report.ThemeDir = dest
	if dest != "" {
		_, err := os.Stat(dest)
		report.ThemePresent = err == nil
	}

	return report, nil
}

// Print renders the report as a table.
func Print(report *Report) {
	rows := pterm.TableData{{"Shell", "Scope", "Path", "State"}}
	for _, link := range report.Links {
		state := link.State.Kind.String()
		if link.State.Kind == linker.KindSymlink {
			state = "symlink -> " + link.State.Dest
		}
		rows = append(rows, []string{link.Shell.String(), link.Scope.String(), link.Path, state})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()

	if report.ThemePresent {
		pterm.Info.Printfln("theme repository present at %s", report.ThemeDir)
	} else {
		pterm.Info.Println("theme repository not fetched")
	}
}
