package status

// Message constants
const (
	MsgShort = "Show the state of every profile slot"
	MsgLong  = `The 'status' command inspects every (shell, scope) profile slot and
reports whether it is absent, a regular file, or a symlink, plus package
manager availability and whether the theme repository has been fetched.
It never modifies anything.`

	MsgExample = `  proflink status`
)
