package uninstall

// Message constants
const (
	MsgShort = "Remove the installed profile links"
	MsgLong  = `The 'uninstall' command removes the profile symlink from the selected
profile slot(s). An absent slot is a no-op. With --packages it also removes
the supporting packages after a single confirmation listing what is
installed.`

	MsgExample = `  # Remove the current user's profile link
  proflink uninstall

  # Remove links for both shells and the supporting packages
  proflink uninstall --shell both --packages

  # Non-interactive removal
  proflink uninstall --packages --yes`

	MsgFlagProfile  = "Profile scope: current, all-hosts, all-users or global"
	MsgFlagShell    = "Shell target: current, windows, pwsh or both"
	MsgFlagPackages = "Also remove the supporting packages"
	MsgFlagYes      = "Answer yes to all prompts"
)
