package publish

// Identity of the publish command, shared with editor integrations.
const (
	CommandID          = "typefi.brackets-typefi.runworkflow"
	CommandDisplayName = "Publish"
	CommandKeyBinding  = "Shift-Cmd-T"
)
