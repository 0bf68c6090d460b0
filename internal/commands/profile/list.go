package profile

import (
	"github.com/fxrates/fxprov/internal/cli"
	"github.com/fxrates/fxprov/internal/terminal"
)

// table headers for the profile listing
const (
	headerKey   = "Key"
	headerValue = "Value"
)

// set of profile listing keys
const (
	keyServerURI    = "server-uri"
	keyAuthDatabase = "auth-db"
	keyRegistry     = "registry"
)

// CommandList is the `profile list` command
type CommandList struct{}

// Handler is the command handler
func (cmd *CommandList) Handler(profile *cli.Profile, ui terminal.UI) error {
	deployment := profile.GetDeployment()

	ui.Print(terminal.NewTableLog(
		"Deployment targets for profile "+profile.Name,
		[]string{headerKey, headerValue},
		map[string]interface{}{headerKey: keyServerURI, headerValue: deployment.ServerURI},
		map[string]interface{}{headerKey: keyAuthDatabase, headerValue: deployment.AuthDatabase},
		map[string]interface{}{headerKey: keyRegistry, headerValue: deployment.Registry},
	))
	ui.Print(terminal.NewDebugLog("Profile is stored at %s", profile.Path()))
	return nil
}
