package profile

import (
	"github.com/fxrates/fxprov/internal/cli"
	"github.com/fxrates/fxprov/internal/terminal"

	"github.com/spf13/pflag"
)

// set of profile set command flags
const (
	flagServerURI      = "server-uri"
	flagServerURIUsage = "specify the MongoDB server to store with the profile"

	flagAuthDatabase      = "auth-db"
	flagAuthDatabaseUsage = "specify the database to store with the profile"

	flagRegistry      = "registry"
	flagRegistryUsage = "specify the image registry to store with the profile"
)

// ErrNoTargets is returned when `profile set` is called with nothing to set
var ErrNoTargets error = errNoTargets{cli.New("no deployment targets provided, use at least one of --server-uri, --auth-db or --registry")}

type errNoTargets struct {
	cli.Err
}

// SuggestedCommands suggests the flagged forms of `profile set`
func (err errNoTargets) SuggestedCommands() []string {
	return []string{
		cli.Name + " profile set --server-uri <uri>",
		cli.Name + " profile set --auth-db <db>",
		cli.Name + " profile set --registry <registry>",
	}
}

// CommandSet is the `profile set` command
type CommandSet struct {
	inputs setInputs
}

type setInputs struct {
	ServerURI    string
	AuthDatabase string
	Registry     string
}

// Flags is the command flags
func (cmd *CommandSet) Flags(fs *pflag.FlagSet) {
	fs.StringVar(&cmd.inputs.ServerURI, flagServerURI, "", flagServerURIUsage)
	fs.StringVar(&cmd.inputs.AuthDatabase, flagAuthDatabase, "", flagAuthDatabaseUsage)
	fs.StringVar(&cmd.inputs.Registry, flagRegistry, "", flagRegistryUsage)
}

// Handler is the command handler
func (cmd *CommandSet) Handler(profile *cli.Profile, ui terminal.UI) error {
	if cmd.inputs.ServerURI == "" && cmd.inputs.AuthDatabase == "" && cmd.inputs.Registry == "" {
		return ErrNoTargets
	}

	// only the targets passed explicitly are stored, so a later change
	// to the platform defaults still reaches profiles that never
	// overrode them
	profile.MergeDeployment(cli.Deployment{
		ServerURI:    cmd.inputs.ServerURI,
		AuthDatabase: cmd.inputs.AuthDatabase,
		Registry:     cmd.inputs.Registry,
	})
	if err := profile.Save(); err != nil {
		return err
	}

	ui.Print(terminal.NewTextLog("Successfully updated profile %s at %s", profile.Name, profile.Path()))
	return nil
}
