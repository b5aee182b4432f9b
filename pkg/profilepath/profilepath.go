// Package profilepath computes the on-disk profile path for a
// (shell target, scope) pair.
//
// The resolution is a pure function of its inputs and the execution
// environment: filename follows the host axis of the scope, base directory
// follows the user axis and the shell variant. Environment overrides exist
// so tests and non-Windows development hosts get stable paths.
package profilepath

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/proflink/pkg/errors"
	"github.com/arthur-debert/proflink/pkg/policy"
)

// Environment variable overrides
const (
	// EnvDocumentsDir overrides the per-user documents directory
	EnvDocumentsDir = "PROFLINK_DOCUMENTS_DIR"

	// EnvProgramFilesDir overrides the machine-wide program directory
	EnvProgramFilesDir = "PROFLINK_PROGRAM_FILES_DIR"

	// EnvSystemRootDir overrides the Windows system directory
	EnvSystemRootDir = "PROFLINK_SYSTEM_ROOT_DIR"
)

// Profile filename conventions, fixed by the host axis of the scope.
const (
	CurrentHostProfileName = "Microsoft.PowerShell_profile.ps1"
	AllHostsProfileName    = "profile.ps1"
)

// Per-shell directory conventions.
const (
	legacyUserDirName = "WindowsPowerShell"
	modernUserDirName = "PowerShell"
)

// Profile returns the absolute profile path for the given shell and scope.
// Same inputs always yield the same path within one execution environment.
func Profile(shell policy.ShellTarget, scope policy.Scope) (string, error) {
	base, err := baseDir(shell, scope)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, profileName(scope)), nil
}

// ThemesDir returns the directory theme assets are fetched into.
func ThemesDir() (string, error) {
	docs, err := documentsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(docs, modernUserDirName, "Themes"), nil
}

func profileName(scope policy.Scope) string {
	if scope.AllHosts() {
		return AllHostsProfileName
	}
	return CurrentHostProfileName
}

func baseDir(shell policy.ShellTarget, scope policy.Scope) (string, error) {
	if scope.MachineWide() {
		return systemBaseDir(shell)
	}
	return userBaseDir(shell)
}

func userBaseDir(shell policy.ShellTarget) (string, error) {
	docs, err := documentsDir()
	if err != nil {
		return "", err
	}
	if shell == policy.ModernShell {
		return filepath.Join(docs, modernUserDirName), nil
	}
	return filepath.Join(docs, legacyUserDirName), nil
}

func systemBaseDir(shell policy.ShellTarget) (string, error) {
	if shell == policy.ModernShell {
		return filepath.Join(programFilesDir(), "PowerShell", "7"), nil
	}
	return filepath.Join(systemRootDir(), "System32", "WindowsPowerShell", "v1.0"), nil
}

func documentsDir() (string, error) {
	if dir := os.Getenv(EnvDocumentsDir); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = os.Getenv("HOME")
	}
	if home == "" {
		return "", errors.New(errors.ErrFileAccess, "unable to determine home directory")
	}
	return filepath.Join(home, "Documents"), nil
}

func programFilesDir() string {
	if dir := os.Getenv(EnvProgramFilesDir); dir != "" {
		return dir
	}
	if dir := os.Getenv("ProgramFiles"); dir != "" {
		return dir
	}
	return `C:\Program Files`
}

func systemRootDir() string {
	if dir := os.Getenv(EnvSystemRootDir); dir != "" {
		return dir
	}
	if dir := os.Getenv("SystemRoot"); dir != "" {
		return dir
	}
	return `C:\Windows`
}
