package terminal

import (
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/fatih/color"
)

// UI is a terminal UI
type UI interface {
	AskOne(answer interface{}, prompt survey.Prompt) error
	AutoConfirm() bool
	Confirm(format string, args ...interface{}) (bool, error)
	Print(logs ...Log)
	Spinner(message string, opts SpinnerOptions) Spinner
}

// UIConfig holds the global config for the CLI ui
type UIConfig struct {
	AutoConfirm   bool
	DisableColors bool
	OutputFormat  OutputFormat
	OutputTarget  string
}

// NewUI creates a new terminal UI
func NewUI(config UIConfig, in io.Reader, out, err io.Writer) UI {
	noColor := config.DisableColors
	if config.OutputFormat == OutputFormatJSON {
		noColor = true
	}
	color.NoColor = noColor

	return &ui{
		config: config,
		in:     in,
		out:    out,
		err:    err,
	}
}

type ui struct {
	config UIConfig
	in     io.Reader
	out    io.Writer
	err    io.Writer
}

func (ui *ui) AskOne(answer interface{}, prompt survey.Prompt) error {
	return survey.AskOne(prompt, answer, survey.WithStdio(ui.stdio()))
}

func (ui *ui) AutoConfirm() bool {
	return ui.config.AutoConfirm
}

func (ui *ui) Confirm(format string, args ...interface{}) (bool, error) {
	if ui.config.AutoConfirm {
		return true, nil
	}

	var proceed bool
	if err := ui.AskOne(&proceed, &survey.Confirm{Message: fmt.Sprintf(format, args...)}); err != nil {
		return false, err
	}
	return proceed, nil
}

func (ui *ui) Print(logs ...Log) {
	for _, log := range logs {
		output, outputErr := log.Print(ui.config.OutputFormat)
		if outputErr != nil {
			fmt.Fprintln(ui.err, outputErr)
			continue
		}

		var writer io.Writer
		switch log.Level {
		case LogLevelError:
			writer = ui.err
		default:
			writer = ui.out
		}

		fmt.Fprintln(writer, output)
	}
}

func (ui *ui) Spinner(message string, opts SpinnerOptions) Spinner {
	if ui.config.OutputFormat == OutputFormatJSON || ui.config.OutputTarget != "" {
		return noopSpinner{}
	}
	return newUISpinner(message, opts)
}

func (ui *ui) stdio() (terminal.FileReader, terminal.FileWriter, io.Writer) {
	in, inOK := ui.in.(terminal.FileReader)
	if !inOK {
		in = noopFdReader{ui.in}
	}
	out, outOK := ui.out.(terminal.FileWriter)
	if !outOK {
		out = noopFdWriter{ui.out}
	}
	return in, out, ui.err
}

type noopFdReader struct {
	io.Reader
}

func (r noopFdReader) Fd() uintptr {
	return 0
}

type noopFdWriter struct {
	io.Writer
}

func (r noopFdWriter) Fd() uintptr {
	return 0
}
