// Package elevate runs operations with higher OS privileges than the
// current process holds.
//
// The elevated child is the proflink binary itself invoked with an explicit
// subcommand, so the privilege boundary carries a real exit-code contract.
// Callers still re-verify post-conditions by observation, since elevation
// can be denied without a useful error on some hosts.
package elevate

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/arthur-debert/proflink/pkg/cmdexec"
	"github.com/arthur-debert/proflink/pkg/errors"
	"github.com/arthur-debert/proflink/pkg/logging"
)

// Elevator abstracts privilege checks and elevated re-invocation.
type Elevator interface {
	// Elevated reports whether the current process already holds admin rights.
	Elevated(ctx context.Context) bool

	// Run re-invokes the given executable elevated with args and blocks
	// until the child exits, propagating its exit status as an error.
	Run(ctx context.Context, exe string, args []string) error
}

// ProcessElevator implements Elevator over the host OS elevation mechanism:
// Start-Process -Verb RunAs on Windows, sudo elsewhere.
type ProcessElevator struct {
	cmd cmdexec.Commander
}

// New creates a ProcessElevator.
func New(cmd cmdexec.Commander) *ProcessElevator {
	return &ProcessElevator{cmd: cmd}
}

// Elevated checks admin rights. On Windows the `net session` probe only
// succeeds in an elevated session; elsewhere the effective uid decides.
func (e *ProcessElevator) Elevated(ctx context.Context) bool {
	if runtime.GOOS == "windows" {
		_, err := e.cmd.Run(ctx, "net", "session")
		return err == nil
	}
	return os.Geteuid() == 0
}

// Run spawns the elevated child and waits synchronously for completion.
func (e *ProcessElevator) Run(ctx context.Context, exe string, args []string) error {
	logger := logging.GetLogger("elevate")
	logger.Info().Str("exe", exe).Strs("args", args).Msg("Spawning elevated child")

	var out []byte
	var err error
	if runtime.GOOS == "windows" {
		script := buildRunAsScript(exe, args)
		out, err = e.cmd.Run(ctx, "powershell", "-NoProfile", "-Command", script)
	} else {
		out, err = e.cmd.Run(ctx, "sudo", append([]string{exe}, args...)...)
	}
	if err != nil {
		logger.Warn().Err(err).Str("output", string(out)).Msg("Elevated child failed")
		return errors.Wrap(err, errors.ErrElevation, "elevated operation failed")
	}
	return nil
}

// buildRunAsScript produces a PowerShell one-liner that waits for the
// elevated child and forwards its exit code, so the parent sees a real
// success signal instead of inferring it.
func buildRunAsScript(exe string, args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = fmt.Sprintf("'%s'", strings.ReplaceAll(arg, "'", "''"))
	}
	return fmt.Sprintf(
		"$p = Start-Process -FilePath '%s' -ArgumentList @(%s) -Verb RunAs -Wait -PassThru; exit $p.ExitCode",
		strings.ReplaceAll(exe, "'", "''"),
		strings.Join(quoted, ", "),
	)
}
