package image

import (
	"path/filepath"

	"github.com/fxrates/fxprov/internal/cli"
	"github.com/fxrates/fxprov/internal/image"
	"github.com/fxrates/fxprov/internal/terminal"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

// CommandRender is the `image render` command
type CommandRender struct {
	inputs inputs
	fs     afero.Fs
}

// Flags is the command flags
func (cmd *CommandRender) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.inputs.ManifestPath, flagManifest, flagManifestShort, "", flagManifestUsage)
	fs.StringSliceVarP(&cmd.inputs.Names, flagName, flagNameShort, nil, flagNameUsage)
	fs.StringVarP(&cmd.inputs.Dir, flagDir, flagDirShort, ".", flagDirUsage)
}

// Inputs is the command inputs
func (cmd *CommandRender) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Setup is the command setup
func (cmd *CommandRender) Setup(profile *cli.Profile, ui terminal.UI) error {
	cmd.fs = afero.NewOsFs()
	return nil
}

// Handler is the command handler
func (cmd *CommandRender) Handler(profile *cli.Profile, ui terminal.UI) error {
	definitions, err := cmd.inputs.definitions(cmd.fs)
	if err != nil {
		return err
	}

	if err := cmd.fs.MkdirAll(cmd.inputs.Dir, 0755); err != nil {
		return err
	}

	written := make([]interface{}, 0, len(definitions))
	for _, def := range definitions {
		dockerfile, err := image.Render(def)
		if err != nil {
			return err
		}

		path := filepath.Join(cmd.inputs.Dir, def.DockerfileName())
		if err := afero.WriteFile(cmd.fs, path, []byte(dockerfile), 0644); err != nil {
			return err
		}
		written = append(written, path)
	}

	ui.Print(terminal.NewListLog("Rendered Dockerfiles", written...))
	return nil
}
