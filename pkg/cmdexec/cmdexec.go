// Package cmdexec abstracts external command execution for testability.
// Production code uses the Commander interface; tests inject a FakeCommander.
package cmdexec

import (
	"context"
	"os/exec"

	"github.com/arthur-debert/proflink/pkg/logging"
)

// Commander abstracts external command execution.
type Commander interface {
	// Run executes an external command and returns its combined output.
	Run(ctx context.Context, name string, args ...string) ([]byte, error)

	// LookPath reports whether the named binary is available on PATH.
	LookPath(name string) (string, error)
}

// RealCommander executes actual external commands via os/exec.
type RealCommander struct{}

// Run executes the command using os/exec.CommandContext.
func (c *RealCommander) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	logger := logging.GetLogger("cmdexec")
	logger.Debug().Str("command", name).Strs("args", args).Msg("Executing command")
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// LookPath resolves the binary using os/exec.LookPath.
func (c *RealCommander) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
