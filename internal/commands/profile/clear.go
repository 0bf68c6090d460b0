package profile

import (
	"github.com/fxrates/fxprov/internal/cli"
	"github.com/fxrates/fxprov/internal/terminal"
)

// CommandClear is the `profile clear` command
type CommandClear struct{}

// Handler is the command handler
func (cmd *CommandClear) Handler(profile *cli.Profile, ui terminal.UI) error {
	profile.ClearDeployment()
	if err := profile.Save(); err != nil {
		return err
	}

	ui.Print(terminal.NewTextLog("Successfully cleared the deployment targets of profile %s", profile.Name))
	return nil
}
