package policy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/proflink/pkg/capability"
	"github.com/arthur-debert/proflink/pkg/cmdexec"
	"github.com/arthur-debert/proflink/pkg/errors"
)

func capsWithModernShell(t *testing.T) *capability.Set {
	t.Helper()
	cmd := cmdexec.NewFakeCommander()
	cmd.On("pwsh -NoProfile -Command $PSVersionTable.PSVersion.Major", "7\n", nil)
	cmd.On("powershell -NoProfile -Command $PSVersionTable.PSVersion.Major", "5\n", nil)
	return capability.Detect(context.Background(), cmd)
}

func capsLegacyOnly(t *testing.T) *capability.Set {
	t.Helper()
	cmd := cmdexec.NewFakeCommander()
	cmd.Missing["pwsh"] = true
	cmd.On("powershell -NoProfile -Command $PSVersionTable.PSVersion.Major", "5\n", nil)
	return capability.Detect(context.Background(), cmd)
}

func TestParseScope(t *testing.T) {
	tests := []struct {
		token   string
		want    Scope
		wantErr bool
	}{
		{token: "current", want: CurrentUserCurrentHost},
		{token: "all-hosts", want: CurrentUserAllHosts},
		{token: "all-users", want: AllUsersCurrentHost},
		{token: "global", want: AllUsersAllHosts},
		{token: "everything", wantErr: true},
		{token: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseScope(tt.token)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrScopeInvalid))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseShells(t *testing.T) {
	caps := capsWithModernShell(t)

	tests := []struct {
		token   string
		want    []ShellTarget
		wantErr bool
	}{
		{token: "windows", want: []ShellTarget{WindowsLegacy}},
		{token: "pwsh", want: []ShellTarget{ModernShell}},
		{token: "both", want: []ShellTarget{WindowsLegacy, ModernShell}},
		{token: "current", want: []ShellTarget{ModernShell}},
		{token: "fish", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseShells(tt.token, caps)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrShellInvalid))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseShells_CurrentFallsBackToLegacy(t *testing.T) {
	caps := capsLegacyOnly(t)

	got, err := ParseShells("current", caps)
	require.NoError(t, err)
	assert.Equal(t, []ShellTarget{WindowsLegacy}, got)
}

func TestResolve_ValidationPrecedesSideEffects(t *testing.T) {
	caps := capsWithModernShell(t)

	_, err := Resolve("bogus", "pwsh", caps)
	assert.True(t, errors.IsErrorCode(err, errors.ErrScopeInvalid))

	_, err = Resolve("current", "bogus", caps)
	assert.True(t, errors.IsErrorCode(err, errors.ErrShellInvalid))
}

func TestResolve_ScenarioA(t *testing.T) {
	// current + pwsh on a modern host resolves to the single modern target.
	caps := capsWithModernShell(t)

	res, err := Resolve("current", "pwsh", caps)
	require.NoError(t, err)
	assert.Equal(t, CurrentUserCurrentHost, res.Scope)
	assert.Equal(t, []ShellTarget{ModernShell}, res.Shells)
}

func TestResolve_ScenarioB(t *testing.T) {
	caps := capsWithModernShell(t)

	res, err := Resolve("all-hosts", "both", caps)
	require.NoError(t, err)
	assert.Equal(t, CurrentUserAllHosts, res.Scope)
	assert.Equal(t, []ShellTarget{WindowsLegacy, ModernShell}, res.Shells)
}

func TestScope_MachineWide(t *testing.T) {
	assert.False(t, CurrentUserCurrentHost.MachineWide())
	assert.False(t, CurrentUserAllHosts.MachineWide())
	assert.True(t, AllUsersCurrentHost.MachineWide())
	assert.True(t, AllUsersAllHosts.MachineWide())
}
