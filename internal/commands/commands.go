package commands

import (
	"github.com/fxrates/fxprov/internal/cli"
	"github.com/fxrates/fxprov/internal/commands/bootstrap"
	"github.com/fxrates/fxprov/internal/commands/image"
	"github.com/fxrates/fxprov/internal/commands/profile"
)

// set of commands the CLI supports
var (
	// Bootstrap provisions the MongoDB database, user and collections
	Bootstrap = cli.CommandDefinition{
		Command:     &bootstrap.Command{},
		Use:         "bootstrap",
		Description: "Provision the platform's MongoDB database, user and collections",
		Help: "Ensures the configured database user and collections exist on the target MongoDB server. " +
			"Resources that already exist are reported and left untouched, so the command is safe to re-run",
	}

	// Image manages the platform's container image definitions
	Image = cli.CommandDefinition{
		Use:         "image",
		Aliases:     []string{"images"},
		Description: "Manage the platform's container images",
		Help:        "Render Dockerfiles from image definitions and build the platform's container images",
		SubCommands: []cli.CommandDefinition{
			{
				Command:     &image.CommandList{},
				Use:         "list",
				Aliases:     []string{"ls"},
				Description: "List the available image definitions",
				Help:        "Lists the built-in image definitions, or those loaded from a manifest",
			},
			{
				Command:     &image.CommandRender{},
				Use:         "render",
				Description: "Render image definitions to Dockerfiles",
				Help:        "Writes one Dockerfile per image definition without building anything",
			},
			{
				Command:     &image.CommandBuild{},
				Use:         "build",
				Description: "Build container images from image definitions",
				Help: "Renders each image definition to a Dockerfile inside the build context " +
					"and builds it with the local docker daemon",
			},
		},
	}

	// Profile manages the CLI profile's deployment targets
	Profile = cli.CommandDefinition{
		Use:         "profile",
		Description: "Manage the CLI profile's deployment targets",
		Help:        "View and store the MongoDB server, database and image registry the CLI provisions against",
		SubCommands: []cli.CommandDefinition{
			{
				Command:     &profile.CommandList{},
				Use:         "list",
				Aliases:     []string{"ls"},
				Description: "List the profile's deployment targets",
			},
			{
				Command:     &profile.CommandSet{},
				Use:         "set",
				Description: "Set the profile's deployment targets",
			},
			{
				Command:     &profile.CommandClear{},
				Use:         "clear",
				Description: "Clear the profile's deployment targets",
			},
		},
	}
)
