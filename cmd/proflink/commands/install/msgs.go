package install

// Message constants
const (
	MsgShort = "Install the profile bundle"
	MsgLong  = `The 'install' command performs the full setup:
  - Installs the fixed list of supporting packages via winget
  - Fetches the prompt-theme repository (once; existing checkouts are kept)
  - Links the profile script into the selected profile slot(s)

Machine-wide scopes (all-users, global) require elevation; when the current
process is not elevated the link step re-invokes proflink elevated.`

	MsgExample = `  # Install for the current user and the running shell
  proflink install

  # Install for both shells, all hosts
  proflink install --profile all-hosts --shell both

  # Machine-wide placement (prompts for elevation)
  proflink install --profile global --shell pwsh

  # Preview without touching anything
  proflink install --dry-run`

	MsgFlagProfile    = "Profile scope: current, all-hosts, all-users or global"
	MsgFlagShell      = "Shell target: current, windows, pwsh or both"
	MsgFlagSource     = "Profile script to link (defaults to the bundled profile)"
	MsgFlagNoPackages = "Skip package installation"
	MsgFlagForce      = "Overwrite existing profile files without prompting"
)
