package image

import (
	"github.com/fxrates/fxprov/internal/cli"
	"github.com/fxrates/fxprov/internal/terminal"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

// table headers for the image definition list
const (
	headerName      = "Name"
	headerTag       = "Tag"
	headerBaseImage = "Base Image"
)

// CommandList is the `image list` command
type CommandList struct {
	inputs inputs
	fs     afero.Fs
}

// Flags is the command flags
func (cmd *CommandList) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.inputs.ManifestPath, flagManifest, flagManifestShort, "", flagManifestUsage)
}

// Inputs is the command inputs
func (cmd *CommandList) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Setup is the command setup
func (cmd *CommandList) Setup(profile *cli.Profile, ui terminal.UI) error {
	cmd.fs = afero.NewOsFs()
	return nil
}

// Handler is the command handler
func (cmd *CommandList) Handler(profile *cli.Profile, ui terminal.UI) error {
	definitions, err := cmd.inputs.definitions(cmd.fs)
	if err != nil {
		return err
	}

	rows := make([]map[string]interface{}, 0, len(definitions))
	for _, def := range definitions {
		rows = append(rows, map[string]interface{}{
			headerName:      def.Name,
			headerTag:       def.ImageTag(cmd.inputs.Registry),
			headerBaseImage: def.BaseImage,
		})
	}

	ui.Print(terminal.NewTableLog(
		"Found image definitions",
		[]string{headerName, headerTag, headerBaseImage},
		rows...,
	))
	return nil
}
