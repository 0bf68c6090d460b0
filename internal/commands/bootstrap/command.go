package bootstrap

import (
	"context"

	"github.com/fxrates/fxprov/internal/cli"
	"github.com/fxrates/fxprov/internal/mongodb"
	"github.com/fxrates/fxprov/internal/terminal"

	"github.com/spf13/pflag"
)

// set of bootstrap command flags
const (
	flagServerURI      = "server-uri"
	flagServerURIShort = "s"
	flagServerURIUsage = "specify the MongoDB server to provision"

	flagDatabase      = "db"
	flagDatabaseShort = "d"
	flagDatabaseUsage = "specify the database to provision"

	flagUsername      = "username"
	flagUsernameShort = "u"
	flagUsernameUsage = "specify the database user to create"

	flagPassword      = "password"
	flagPasswordShort = "p"
	flagPasswordUsage = "specify the database user's password"

	flagRole      = "role"
	flagRoleShort = "r"
	flagRoleUsage = "specify a role grant for the user, either 'role' or 'role@db' (may be repeated)"

	flagCollection      = "collection"
	flagCollectionShort = "c"
	flagCollectionUsage = "specify a collection to create (may be repeated)"
)

// table headers for the bootstrap results
const (
	headerResource = "Resource"
	headerName     = "Name"
	headerOutcome  = "Outcome"
)

// Command is the `bootstrap` command
type Command struct {
	inputs inputs
	client mongodb.Client
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.inputs.ServerURI, flagServerURI, flagServerURIShort, "", flagServerURIUsage)
	fs.StringVarP(&cmd.inputs.Database, flagDatabase, flagDatabaseShort, "", flagDatabaseUsage)
	fs.StringVarP(&cmd.inputs.Username, flagUsername, flagUsernameShort, defaultUsername, flagUsernameUsage)
	fs.StringVarP(&cmd.inputs.Password, flagPassword, flagPasswordShort, "", flagPasswordUsage)
	fs.StringSliceVarP(&cmd.inputs.Roles, flagRole, flagRoleShort, []string{defaultRole}, flagRoleUsage)
	fs.StringSliceVarP(&cmd.inputs.Collections, flagCollection, flagCollectionShort, []string{defaultCollection}, flagCollectionUsage)
}

// Inputs is the command inputs
func (cmd *Command) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Setup is the command setup
func (cmd *Command) Setup(profile *cli.Profile, ui terminal.UI) error {
	client, err := mongodb.Connect(context.Background(), cmd.inputs.ServerURI)
	if err != nil {
		return cli.NewPrivileged("failed to connect to the MongoDB server", err)
	}
	cmd.client = client
	return nil
}

// Handler is the command handler
func (cmd *Command) Handler(profile *cli.Profile, ui terminal.UI) error {
	ctx := context.Background()
	defer cmd.client.Close(ctx)

	plan, err := cmd.inputs.plan()
	if err != nil {
		return err
	}

	proceed, err := ui.Confirm("Provision database %q on %s?", plan.Database, cmd.inputs.ServerURI)
	if err != nil {
		return err
	}
	if !proceed {
		ui.Print(terminal.NewTextLog("No changes were made"))
		return nil
	}

	result, err := mongodb.Bootstrap(ctx, cmd.client, plan)
	if err != nil {
		return err
	}

	rows := make([]map[string]interface{}, 0, 1+len(result.Collections))
	rows = append(rows, map[string]interface{}{
		headerResource: "user",
		headerName:     plan.User.Username,
		headerOutcome:  result.User,
	})
	for _, collection := range result.Collections {
		rows = append(rows, map[string]interface{}{
			headerResource: "collection",
			headerName:     collection.Name,
			headerOutcome:  collection.Outcome,
		})
	}

	ui.Print(terminal.NewTableLog(
		"Bootstrap results for "+plan.Database,
		[]string{headerResource, headerName, headerOutcome},
		rows...,
	))

	if result.User == mongodb.OutcomeExists {
		ui.Print(terminal.NewWarningLog(
			"The user %q already exists and was left untouched; verify its role grants manually",
			plan.User.Username,
		))
	}
	return nil
}
