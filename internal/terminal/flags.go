package terminal

import (
	"fmt"
	"strings"
)

// set of supported terminal flags
const (
	FlagOutputTarget      = "output-target"
	FlagOutputTargetShort = "o"
	FlagOutputTargetUsage = "write CLI output to the specified filepath"

	FlagOutputFormat      = "output-format"
	FlagOutputFormatShort = "f"
	FlagOutputFormatUsage = "set the CLI output format, available options: [json]"

	FlagDisableColors      = "disable-colors"
	FlagDisableColorsUsage = "disable output styling"

	FlagAutoConfirm      = "yes"
	FlagAutoConfirmShort = "y"
	FlagAutoConfirmUsage = "set to automatically proceed through CLI confirmations"
)

// OutputFormat is the terminal output format
type OutputFormat string

func (of OutputFormat) String() string {
	val := string(of)
	if val == "" {
		return "<blank>"
	}
	return val
}

// Type returns the OutputFormat type
func (of OutputFormat) Type() string { return "OutputFormat" }

// Set validates and sets the output format value
func (of *OutputFormat) Set(val string) error {
	outputFormat := OutputFormat(val)

	if !isValidOutputFormat(outputFormat) {
		allOutputFormats := []string{
			OutputFormatText.String(),
			OutputFormatJSON.String(),
		}
		return fmt.Errorf("unsupported value, use one of [%s] instead", strings.Join(allOutputFormats, ", "))
	}

	*of = outputFormat
	return nil
}

// set of supported terminal output formats
const (
	OutputFormatText OutputFormat = "" // zero-valued to be flag's default
	OutputFormatJSON OutputFormat = "json"
)

func isValidOutputFormat(outputFormat OutputFormat) bool {
	switch outputFormat {
	case
		OutputFormatJSON,
		OutputFormatText:
		return true
	}
	return false
}
