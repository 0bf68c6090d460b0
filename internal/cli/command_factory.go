package cli

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/fxrates/fxprov/internal/terminal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// CommandFactory is a command factory
type CommandFactory struct {
	profile   *Profile
	ui        terminal.UI
	uiConfig  terminal.UIConfig
	inReader  *os.File
	outWriter *os.File
	errWriter *os.File
	errLogger *log.Logger
}

// NewCommandFactory creates a new command factory
func NewCommandFactory() (*CommandFactory, error) {
	errLogger := log.New(os.Stderr, "UTC ERROR ", log.Ltime|log.Lmsgprefix)

	profile, err := NewDefaultProfile()
	if err != nil {
		return nil, err
	}

	return &CommandFactory{
		profile:   profile,
		errLogger: errLogger,
	}, nil
}

// Build builds a Cobra command from the specified CommandDefinition
func (factory *CommandFactory) Build(command CommandDefinition) *cobra.Command {
	display := command.Display
	if display == "" {
		display = command.Use
	}

	cmd := cobra.Command{
		Use:     command.Use,
		Short:   command.Description,
		Long:    command.Help,
		Aliases: command.Aliases,
	}

	cmd.InheritedFlags().SortFlags = false // ensures command usage text displays global flags unsorted

	for _, subCommand := range command.SubCommands {
		cmd.AddCommand(factory.Build(subCommand))
	}

	if command.Command != nil {

		if command, ok := command.Command.(CommandFlags); ok {
			fs := cmd.Flags()
			fs.SortFlags = false // ensures command flags are added unsorted
			command.Flags(fs)
		}

		cmd.PersistentPreRun = func(c *cobra.Command, a []string) {
			factory.ensureUI()
			c.SetIn(factory.inReader)
			c.SetOut(factory.outWriter)
			c.SetErr(factory.errWriter)
		}

		if command, ok := command.Command.(CommandInputs); ok {
			cmd.PreRunE = func(c *cobra.Command, a []string) error {
				if err := command.Inputs().Resolve(factory.profile, factory.ui); err != nil {
					return fmt.Errorf("%s setup failed: %w", display, err)
				}
				return nil
			}
		}

		cmd.RunE = func(c *cobra.Command, a []string) error {
			if command, ok := command.Command.(CommandPreparer); ok {
				if err := command.Setup(factory.profile, factory.ui); err != nil {
					return fmt.Errorf("%s setup failed: %w", display, errDisableUsage{err})
				}
			}

			if err := command.Command.Handler(factory.profile, factory.ui); err != nil {
				return fmt.Errorf("%s failed: %w", display, errDisableUsage{err})
			}
			return nil
		}
	}

	return &cmd
}

// Run executes the command and returns the exit code
func (factory *CommandFactory) Run(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		handleUsage(cmd, err)

		if factory.ui == nil {
			factory.errLogger.Print(err)
			factory.close()
			return 1
		}

		logs := []terminal.Log{terminal.NewErrorLog(err)}

		var suggester CommandSuggester
		if errors.As(err, &suggester) {
			suggestions := make([]interface{}, 0, len(suggester.SuggestedCommands()))
			for _, command := range suggester.SuggestedCommands() {
				suggestions = append(suggestions, command)
			}
			logs = append(logs, terminal.NewFollowupLog(terminal.MsgSuggestedCommands, suggestions...))
		}

		factory.ui.Print(logs...)
		factory.close()
		return 1
	}

	factory.close()
	return 0
}

// SetGlobalFlags sets the global flags
func (factory *CommandFactory) SetGlobalFlags(fs *pflag.FlagSet) {
	fs.SortFlags = false // ensures global flags are added unsorted

	// profile flags
	fs.StringVar(&factory.profile.Name, flagProfile, DefaultProfile, flagProfileUsage)

	// ui flags
	fs.StringVarP(&factory.uiConfig.OutputTarget, terminal.FlagOutputTarget, terminal.FlagOutputTargetShort, "", terminal.FlagOutputTargetUsage)
	fs.VarP(&factory.uiConfig.OutputFormat, terminal.FlagOutputFormat, terminal.FlagOutputFormatShort, terminal.FlagOutputFormatUsage)
	fs.BoolVar(&factory.uiConfig.DisableColors, terminal.FlagDisableColors, false, terminal.FlagDisableColorsUsage)
	fs.BoolVarP(&factory.uiConfig.AutoConfirm, terminal.FlagAutoConfirm, terminal.FlagAutoConfirmShort, false, terminal.FlagAutoConfirmUsage)
}

// Setup initializes the command factory
func (factory *CommandFactory) Setup() {
	if err := factory.profile.Load(); err != nil {
		factory.errLogger.Fatal(err)
	}

	if filepath := factory.uiConfig.OutputTarget; filepath != "" {
		f, err := os.OpenFile(filepath, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0660)
		if err != nil {
			factory.errLogger.Fatal(fmt.Errorf("failed to open target file: %w", err))
		}
		factory.outWriter = f
	}
}

func (factory *CommandFactory) close() {
	if factory.uiConfig.OutputTarget != "" && factory.outWriter != nil {
		factory.outWriter.Close()
	}
}

func (factory *CommandFactory) ensureUI() {
	if factory.inReader == nil {
		factory.inReader = os.Stdin
	}

	if factory.outWriter == nil {
		factory.outWriter = os.Stdout
	}

	if factory.errWriter == nil {
		if factory.uiConfig.OutputTarget != "" {
			factory.errWriter = factory.outWriter
		} else {
			factory.errWriter = os.Stderr
		}
	}

	if factory.ui == nil {
		factory.ui = terminal.NewUI(factory.uiConfig, factory.inReader, factory.outWriter, factory.errWriter)
	}
}

func handleUsage(cmd *cobra.Command, err error) {
	if _, ok := errors.Unwrap(err).(DisableUsage); ok {
		return
	}
	fmt.Println(cmd.UsageString())
}

const (
	flagProfile      = "profile"
	flagProfileUsage = "this is used to manage CLI profiles"
)
