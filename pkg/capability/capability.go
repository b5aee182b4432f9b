// Package capability detects the external tools proflink depends on.
//
// Detection runs once at startup and produces an immutable Set that later
// steps consult instead of re-probing PATH on every use.
package capability

import (
	"context"
	"strconv"
	"strings"

	"github.com/arthur-debert/proflink/pkg/cmdexec"
	"github.com/arthur-debert/proflink/pkg/logging"
)

// Tool names probed at startup.
const (
	ToolModernShell    = "pwsh"
	ToolLegacyShell    = "powershell"
	ToolPackageManager = "winget"
	ToolGit            = "git"
)

// Tool describes one probed external tool.
type Tool struct {
	Name    string
	Present bool
	// MajorVersion is parsed for shells only; zero when unknown.
	MajorVersion int
}

// Set is the immutable result of a detection run.
type Set struct {
	tools map[string]Tool
}

// Detect probes all known tools through the given commander.
// Missing tools are recorded, not errors.
func Detect(ctx context.Context, cmd cmdexec.Commander) *Set {
	logger := logging.GetLogger("capability")

	tools := map[string]Tool{
		ToolModernShell:    probeShell(ctx, cmd, ToolModernShell),
		ToolLegacyShell:    probeShell(ctx, cmd, ToolLegacyShell),
		ToolPackageManager: probeBinary(cmd, ToolPackageManager),
		ToolGit:            probeBinary(cmd, ToolGit),
	}

	for name, tool := range tools {
		logger.Debug().
			Str("tool", name).
			Bool("present", tool.Present).
			Int("majorVersion", tool.MajorVersion).
			Msg("Probed tool")
	}

	return &Set{tools: tools}
}

// Has reports whether the named tool was found on PATH.
func (s *Set) Has(name string) bool {
	return s.tools[name].Present
}

// MajorVersion returns the parsed major version for the named tool, or zero.
func (s *Set) MajorVersion(name string) int {
	return s.tools[name].MajorVersion
}

// Tools returns a copy of all probed tools.
func (s *Set) Tools() []Tool {
	out := make([]Tool, 0, len(s.tools))
	for _, name := range []string{ToolModernShell, ToolLegacyShell, ToolPackageManager, ToolGit} {
		out = append(out, s.tools[name])
	}
	return out
}

func probeBinary(cmd cmdexec.Commander, name string) Tool {
	_, err := cmd.LookPath(name)
	return Tool{Name: name, Present: err == nil}
}

func probeShell(ctx context.Context, cmd cmdexec.Commander, name string) Tool {
	if _, err := cmd.LookPath(name); err != nil {
		return Tool{Name: name, Present: false}
	}

	tool := Tool{Name: name, Present: true}
	out, err := cmd.Run(ctx, name, "-NoProfile", "-Command", "$PSVersionTable.PSVersion.Major")
	if err != nil {
		return tool
	}
	if major, perr := strconv.Atoi(strings.TrimSpace(string(out))); perr == nil {
		tool.MajorVersion = major
	}
	return tool
}
