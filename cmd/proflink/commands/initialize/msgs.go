package initialize

// Message constants
const (
	MsgShort = "Scaffold the profile and config files"
	MsgLong  = `The 'init' command writes the bundled starter profile and an editable
configuration file into the user config directory. An existing profile is
never overwritten; the config file only with --force.`

	MsgExample = `  proflink init

  # Regenerate the config file from defaults
  proflink init --force`

	MsgFlagForce = "Overwrite an existing config file"
)
