// Package pkgmgr wraps the external package manager behind a narrow
// present / install / uninstall contract.
package pkgmgr

import (
	"context"
	"strings"

	"github.com/arthur-debert/proflink/pkg/cmdexec"
	"github.com/arthur-debert/proflink/pkg/errors"
	"github.com/arthur-debert/proflink/pkg/logging"
)

// PackageSpec names one package of the fixed supporting-package list.
type PackageSpec struct {
	// ID is the package identifier understood by the package manager.
	ID string `koanf:"id" toml:"id" yaml:"id"`

	// Interactive runs the installer with its own UI instead of silently.
	Interactive bool `koanf:"interactive" toml:"interactive" yaml:"interactive"`
}

// Manager is the external package-manager collaborator.
type Manager interface {
	IsInstalled(ctx context.Context, id string) (bool, error)
	Install(ctx context.Context, spec PackageSpec) error
	Uninstall(ctx context.Context, id string) error
}

// WingetManager implements Manager by shelling out to winget.
type WingetManager struct {
	cmd cmdexec.Commander
}

// NewWingetManager creates a winget-backed Manager.
func NewWingetManager(cmd cmdexec.Commander) *WingetManager {
	return &WingetManager{cmd: cmd}
}

// IsInstalled queries winget for the exact package id.
func (m *WingetManager) IsInstalled(ctx context.Context, id string) (bool, error) {
	out, err := m.cmd.Run(ctx, "winget", "list", "--exact", "--id", id)
	if err != nil {
		// winget exits non-zero when no package matches, which is an
		// ordinary "absent" answer rather than a failure.
		if strings.Contains(strings.ToLower(string(out)), "no installed package") {
			return false, nil
		}
		return false, nil
	}
	return strings.Contains(string(out), id), nil
}

// Install converges the package to present, auto-accepting agreements.
func (m *WingetManager) Install(ctx context.Context, spec PackageSpec) error {
	logger := logging.GetLogger("pkgmgr")

	args := []string{
		"install",
		"--exact", "--id", spec.ID,
		"--accept-package-agreements",
		"--accept-source-agreements",
	}
	if spec.Interactive {
		args = append(args, "--interactive")
	} else {
		args = append(args, "--silent")
	}

	out, err := m.cmd.Run(ctx, "winget", args...)
	if err != nil {
		logger.Debug().Str("package", spec.ID).Str("output", string(out)).Msg("install failed")
		return errors.Wrapf(err, errors.ErrExternalTool, "winget install %s failed", spec.ID)
	}
	return nil
}

// Uninstall converges the package to absent.
func (m *WingetManager) Uninstall(ctx context.Context, id string) error {
	out, err := m.cmd.Run(ctx, "winget", "uninstall", "--exact", "--id", id, "--silent")
	if err != nil {
		logger := logging.GetLogger("pkgmgr")
		logger.Debug().Str("package", id).Str("output", string(out)).Msg("uninstall failed")
		return errors.Wrapf(err, errors.ErrExternalTool, "winget uninstall %s failed", id)
	}
	return nil
}
