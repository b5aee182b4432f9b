package install

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/proflink/pkg/cmdexec"
	"github.com/arthur-debert/proflink/pkg/config"
	"github.com/arthur-debert/proflink/pkg/errors"
	"github.com/arthur-debert/proflink/pkg/linker"
	"github.com/arthur-debert/proflink/pkg/pkgmgr"
	"github.com/arthur-debert/proflink/pkg/policy"
	"github.com/arthur-debert/proflink/pkg/profilepath"
	"github.com/arthur-debert/proflink/pkg/prompt"
	"github.com/arthur-debert/proflink/pkg/theme"
)

// setupFixture prepares path overrides, a profile source, a pre-cloned theme
// dir and a fake commander with a modern shell and winget available.
func setupFixture(t *testing.T) (*config.Config, *cmdexec.FakeCommander) {
	t.Helper()
	t.Setenv(profilepath.EnvDocumentsDir, filepath.Join(t.TempDir(), "Documents"))
	t.Setenv(profilepath.EnvProgramFilesDir, filepath.Join(t.TempDir(), "Program Files"))
	t.Setenv(profilepath.EnvSystemRootDir, filepath.Join(t.TempDir(), "Windows"))

	source := filepath.Join(t.TempDir(), "Profile.ps1")
	require.NoError(t, os.WriteFile(source, []byte("# profile\n"), 0644))

	themeDir := t.TempDir()

	cmd := cmdexec.NewFakeCommander()
	cmd.On("pwsh -NoProfile -Command $PSVersionTable.PSVersion.Major", "7\n", nil)
	cmd.On("powershell -NoProfile -Command $PSVersionTable.PSVersion.Major", "5\n", nil)
	cmd.On("winget list --exact --id junegunn.fzf", "No installed package found matching input criteria.\n", fmt.Errorf("exit status 1"))
	cmd.On("winget list --exact --id sharkdp.bat", "bat  sharkdp.bat  0.24.0\n", nil)
	cmd.On("winget install --exact --id junegunn.fzf --accept-package-agreements --accept-source-agreements --silent", "", nil)

	cfg := &config.Config{
		Profile: config.ProfileConfig{Source: source},
		Theme:   config.ThemeConfig{Repository: "https://example.invalid/themes.git", Dir: themeDir},
		Packages: []pkgmgr.PackageSpec{
			{ID: "junegunn.fzf"},
			{ID: "sharkdp.bat"},
		},
	}
	return cfg, cmd
}

func TestRun_FullFlow(t *testing.T) {
	cfg, cmd := setupFixture(t)

	report, err := Run(context.Background(), cfg, Options{
		ProfileToken: "current",
		ShellToken:   "pwsh",
		Commander:    cmd,
		Confirm:      &prompt.StaticConfirmer{Answer: true},
		ExePath:      "/fake/proflink",
	})
	require.NoError(t, err)
	assert.False(t, report.Failed())

	assert.Equal(t, policy.CurrentUserCurrentHost, report.Resolution.Scope)
	require.Equal(t, []policy.ShellTarget{policy.ModernShell}, report.Resolution.Shells)

	// Absent package installed, present one untouched.
	require.Len(t, report.Packages, 2)
	assert.Equal(t, pkgmgr.StatusInstalled, report.Packages[0].Status)
	assert.Equal(t, pkgmgr.StatusPresent, report.Packages[1].Status)

	// Theme dir exists already, no clone attempted.
	assert.Equal(t, theme.OutcomePresent, report.Theme)

	require.Len(t, report.Links, 1)
	assert.Equal(t, linker.OutcomeLinked, report.Links[0].Outcome)
	state := linker.Inspect(report.Links[0].Path)
	assert.Equal(t, linker.KindSymlink, state.Kind)
	assert.Equal(t, cfg.Profile.Source, state.Dest)
}

func TestRun_BothShellsLinkBoth(t *testing.T) {
	cfg, cmd := setupFixture(t)

	report, err := Run(context.Background(), cfg, Options{
		ProfileToken: "all-hosts",
		ShellToken:   "both",
		NoPackages:   true,
		Commander:    cmd,
		Confirm:      &prompt.StaticConfirmer{Answer: true},
		ExePath:      "/fake/proflink",
	})
	require.NoError(t, err)
	require.Len(t, report.Links, 2)
	assert.Equal(t, policy.WindowsLegacy, report.Links[0].Shell)
	assert.Equal(t, policy.ModernShell, report.Links[1].Shell)
	for _, link := range report.Links {
		assert.Equal(t, linker.OutcomeLinked, link.Outcome)
		assert.True(t, strings.HasSuffix(link.Path, profilepath.AllHostsProfileName))
	}
}

func TestRun_NoPackagesSkipsPackageManager(t *testing.T) {
	cfg, cmd := setupFixture(t)

	report, err := Run(context.Background(), cfg, Options{
		ProfileToken: "current",
		ShellToken:   "pwsh",
		NoPackages:   true,
		Commander:    cmd,
		Confirm:      &prompt.StaticConfirmer{Answer: true},
		ExePath:      "/fake/proflink",
	})
	require.NoError(t, err)
	assert.Empty(t, report.Packages)
	for _, line := range cmd.CallLines() {
		assert.NotContains(t, line, "winget")
	}
}

func TestRun_MissingPackageManagerIsNonFatal(t *testing.T) {
	cfg, cmd := setupFixture(t)
	cmd.Missing["winget"] = true

	report, err := Run(context.Background(), cfg, Options{
		ProfileToken: "current",
		ShellToken:   "pwsh",
		Commander:    cmd,
		Confirm:      &prompt.StaticConfirmer{Answer: true},
		ExePath:      "/fake/proflink",
	})
	require.NoError(t, err)
	assert.Empty(t, report.Packages)
	require.Len(t, report.Links, 1)
	assert.Equal(t, linker.OutcomeLinked, report.Links[0].Outcome)
}

func TestRun_InvalidScopeToken(t *testing.T) {
	cfg, cmd := setupFixture(t)

	_, err := Run(context.Background(), cfg, Options{
		ProfileToken: "everywhere",
		ShellToken:   "pwsh",
		Commander:    cmd,
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrScopeInvalid))
}

func TestRun_SourceOverride(t *testing.T) {
	cfg, cmd := setupFixture(t)
	override := filepath.Join(t.TempDir(), "Custom.ps1")
	require.NoError(t, os.WriteFile(override, []byte("# custom\n"), 0644))

	report, err := Run(context.Background(), cfg, Options{
		ProfileToken: "current",
		ShellToken:   "pwsh",
		Source:       override,
		NoPackages:   true,
		Commander:    cmd,
		Confirm:      &prompt.StaticConfirmer{Answer: true},
		ExePath:      "/fake/proflink",
	})
	require.NoError(t, err)
	require.Len(t, report.Links, 1)
	assert.Equal(t, override, linker.Inspect(report.Links[0].Path).Dest)
}

func TestRun_DryRunTouchesNothing(t *testing.T) {
	cfg, cmd := setupFixture(t)

	report, err := Run(context.Background(), cfg, Options{
		ProfileToken: "current",
		ShellToken:   "pwsh",
		DryRun:       true,
		Commander:    cmd,
		Confirm:      &prompt.StaticConfirmer{Answer: true},
		ExePath:      "/fake/proflink",
	})
	require.NoError(t, err)

	require.Len(t, report.Packages, 2)
	assert.Equal(t, pkgmgr.StatusSkipped, report.Packages[0].Status)

	require.Len(t, report.Links, 1)
	assert.Equal(t, linker.OutcomeDryRun, report.Links[0].Outcome)
	assert.Equal(t, linker.KindAbsent, linker.Inspect(report.Links[0].Path).Kind)

	for _, line := range cmd.CallLines() {
		assert.NotContains(t, line, "winget install")
	}
}

func TestRun_PartialFailureIsolated(t *testing.T) {
	cfg, cmd := setupFixture(t)
	cmd.On("winget install --exact --id junegunn.fzf --accept-package-agreements --accept-source-agreements --silent",
		"installer hash mismatch", fmt.Errorf("exit status 1"))

	report, err := Run(context.Background(), cfg, Options{
		ProfileToken: "current",
		ShellToken:   "pwsh",
		Commander:    cmd,
		Confirm:      &prompt.StaticConfirmer{Answer: true},
		ExePath:      "/fake/proflink",
	})
	require.NoError(t, err, "a failing package must not abort the flow")
	assert.True(t, report.Failed())

	assert.Equal(t, pkgmgr.StatusFailed, report.Packages[0].Status)
	require.Len(t, report.Links, 1)
	assert.Equal(t, linker.OutcomeLinked, report.Links[0].Outcome, "link step still runs after a package failure")
}
