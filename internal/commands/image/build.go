package image

import (
	"context"
	"path/filepath"

	"github.com/fxrates/fxprov/internal/cli"
	"github.com/fxrates/fxprov/internal/image"
	"github.com/fxrates/fxprov/internal/terminal"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

// CommandBuild is the `image build` command
type CommandBuild struct {
	inputs inputs
	engine image.Engine
	fs     afero.Fs
}

// Flags is the command flags
func (cmd *CommandBuild) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.inputs.ManifestPath, flagManifest, flagManifestShort, "", flagManifestUsage)
	fs.StringSliceVarP(&cmd.inputs.Names, flagName, flagNameShort, nil, flagNameUsage)
	fs.StringVarP(&cmd.inputs.ContextDir, flagContextDir, flagContextDirShort, ".", flagContextDirUsage)
	fs.StringVar(&cmd.inputs.Registry, flagRegistry, "", flagRegistryUsage)
}

// Inputs is the command inputs
func (cmd *CommandBuild) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Setup is the command setup
func (cmd *CommandBuild) Setup(profile *cli.Profile, ui terminal.UI) error {
	engine, err := image.NewEngine()
	if err != nil {
		return cli.NewWrapped("failed to initialize the docker client", err)
	}
	cmd.engine = engine
	cmd.fs = afero.NewOsFs()
	return nil
}

// Handler is the command handler
func (cmd *CommandBuild) Handler(profile *cli.Profile, ui terminal.UI) error {
	ctx := context.Background()
	defer cmd.engine.Close()

	definitions, err := cmd.inputs.definitions(cmd.fs)
	if err != nil {
		return err
	}

	if err := cmd.engine.Ping(ctx); err != nil {
		return err
	}

	for _, def := range definitions {
		dockerfile, err := image.Render(def)
		if err != nil {
			return err
		}

		// the Dockerfile must live inside the build context for the
		// daemon to see it, so it is written there before the build
		dockerfilePath := filepath.Join(cmd.inputs.ContextDir, def.DockerfileName())
		if err := afero.WriteFile(cmd.fs, dockerfilePath, []byte(dockerfile), 0644); err != nil {
			return err
		}

		tag := def.ImageTag(cmd.inputs.Registry)

		s := ui.Spinner("Building "+tag, terminal.SpinnerOptions{})
		s.Start()

		buildErr := cmd.engine.Build(ctx, cmd.inputs.ContextDir, def.DockerfileName(), tag, func(message string) {
			s.SetMessage("Building " + tag + ": " + message)
		})
		s.Stop()

		if buildErr != nil {
			return buildErr
		}

		ui.Print(terminal.NewTextLog("Successfully built image %s", tag))
	}
	return nil
}
