package image

import (
	"fmt"
	"strings"

	"github.com/fxrates/fxprov/internal/cli"
	"github.com/fxrates/fxprov/internal/image"
	"github.com/fxrates/fxprov/internal/terminal"

	"github.com/spf13/afero"
)

// set of image command flags shared across subcommands
const (
	flagManifest      = "manifest"
	flagManifestShort = "m"
	flagManifestUsage = "specify a YAML manifest of image definitions to use instead of the built-in set"

	flagName      = "name"
	flagNameShort = "n"
	flagNameUsage = "specify an image definition by name (may be repeated, defaults to all)"

	flagContextDir      = "context"
	flagContextDirShort = "c"
	flagContextDirUsage = "specify the build context directory"

	flagRegistry      = "registry"
	flagRegistryUsage = "specify the registry to prefix image tags with"

	flagDir      = "dir"
	flagDirShort = "d"
	flagDirUsage = "specify the directory to write rendered Dockerfiles to"
)

type inputs struct {
	ManifestPath string
	Names        []string
	ContextDir   string
	Registry     string
	Dir          string
}

func (i *inputs) Resolve(profile *cli.Profile, ui terminal.UI) error {
	if i.Registry == "" {
		i.Registry = profile.GetDeployment().Registry
	}
	return nil
}

// definitions loads the manifest when one is provided, otherwise the
// built-in definitions, and narrows the set to any requested names
func (i inputs) definitions(fs afero.Fs) ([]image.Definition, error) {
	definitions := image.DefaultDefinitions()
	if i.ManifestPath != "" {
		loaded, err := image.LoadManifest(fs, i.ManifestPath)
		if err != nil {
			return nil, err
		}
		definitions = loaded
	}

	if len(i.Names) == 0 {
		return definitions, nil
	}

	selected := make([]image.Definition, 0, len(i.Names))
	for _, name := range i.Names {
		def, ok := image.FindDefinition(definitions, name)
		if !ok {
			return nil, fmt.Errorf(
				"unknown image definition %q, expected one of [%s]",
				name,
				strings.Join(image.Names(definitions), ", "),
			)
		}
		selected = append(selected, def)
	}
	return selected, nil
}
