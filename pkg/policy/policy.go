// Package policy maps the user-facing profile and shell selectors onto the
// concrete scope and shell targets a run acts on.
package policy

import (
	"github.com/arthur-debert/proflink/pkg/capability"
	"github.com/arthur-debert/proflink/pkg/errors"
)

// Scope is the breadth of users and hosts a profile placement applies to.
type Scope int

const (
	CurrentUserCurrentHost Scope = iota
	CurrentUserAllHosts
	AllUsersCurrentHost
	AllUsersAllHosts
)

// String returns the CLI token for the scope.
func (s Scope) String() string {
	switch s {
	case CurrentUserCurrentHost:
		return "current"
	case CurrentUserAllHosts:
		return "all-hosts"
	case AllUsersCurrentHost:
		return "all-users"
	case AllUsersAllHosts:
		return "global"
	}
	return "unknown"
}

// MachineWide reports whether the scope places files outside the user's
// own directories and therefore needs elevation.
func (s Scope) MachineWide() bool {
	return s == AllUsersCurrentHost || s == AllUsersAllHosts
}

// AllHosts reports whether the scope covers every host application of the shell.
func (s Scope) AllHosts() bool {
	return s == CurrentUserAllHosts || s == AllUsersAllHosts
}

// ShellTarget identifies which shell variant a profile placement concerns.
type ShellTarget int

const (
	WindowsLegacy ShellTarget = iota
	ModernShell
)

// String returns the CLI token for the shell target.
func (t ShellTarget) String() string {
	if t == ModernShell {
		return "pwsh"
	}
	return "windows"
}

// modernMajorVersion is the first PowerShell major version counted as modern.
const modernMajorVersion = 6

// ParseScope maps a profile selector token to a Scope.
func ParseScope(token string) (Scope, error) {
	switch token {
	case "current":
		return CurrentUserCurrentHost, nil
	case "all-hosts":
		return CurrentUserAllHosts, nil
	case "all-users":
		return AllUsersCurrentHost, nil
	case "global":
		return AllUsersAllHosts, nil
	}
	return 0, errors.Newf(errors.ErrScopeInvalid,
		"invalid profile selector %q (expected current, all-hosts, all-users or global)", token)
}

// ParseShells maps a shell selector token to the ordered shell targets to act
// on. The "current" token resolves against the detected capabilities: a
// modern shell at or above the version threshold wins, otherwise the legacy
// shell is assumed.
func ParseShells(token string, caps *capability.Set) ([]ShellTarget, error) {
	switch token {
	case "windows":
		return []ShellTarget{WindowsLegacy}, nil
	case "pwsh":
		return []ShellTarget{ModernShell}, nil
	case "both":
		return []ShellTarget{WindowsLegacy, ModernShell}, nil
	case "current":
		if caps.Has(capability.ToolModernShell) &&
			caps.MajorVersion(capability.ToolModernShell) >= modernMajorVersion {
			return []ShellTarget{ModernShell}, nil
		}
		return []ShellTarget{WindowsLegacy}, nil
	}
	return nil, errors.Newf(errors.ErrShellInvalid,
		"invalid shell selector %q (expected current, windows, pwsh or both)", token)
}

// Resolution is the outcome of resolving both selectors for a run.
type Resolution struct {
	Scope  Scope
	Shells []ShellTarget
}

// Resolve validates both tokens before any side effect occurs.
func Resolve(profileToken, shellToken string, caps *capability.Set) (Resolution, error) {
	scope, err := ParseScope(profileToken)
	if err != nil {
		return Resolution{}, err
	}
	shells, err := ParseShells(shellToken, caps)
	if err != nil {
		return Resolution{}, err
	}
	return Resolution{Scope: scope, Shells: shells}, nil
}
