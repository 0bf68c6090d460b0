package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/fxrates/fxprov/internal/cli"
	"github.com/fxrates/fxprov/internal/commands"

	"github.com/spf13/cobra"
)

// Run runs the CLI
func Run() {
	// print commands in help/usage text in the order they are declared
	cobra.EnableCommandSorting = false

	cmd := &cobra.Command{
		Version:       cli.Version,
		Use:           cli.Name,
		Short:         "CLI tool to provision the FX rates platform",
		Long:          fmt.Sprintf(`Use "%s [command] --help" for information on a specific command`, cli.Name),
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	factory, err := cli.NewCommandFactory()
	if err != nil {
		log.Fatal(err)
	}

	cobra.OnInitialize(factory.Setup)

	cmd.Flags().SortFlags = false // ensures CLI help text displays global flags unsorted
	factory.SetGlobalFlags(cmd.PersistentFlags())

	cmd.AddCommand(factory.Build(commands.Bootstrap))
	cmd.AddCommand(factory.Build(commands.Image))
	cmd.AddCommand(factory.Build(commands.Profile))

	os.Exit(factory.Run(cmd))
}
