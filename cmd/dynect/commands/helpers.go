package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/dynect/internal/constants"
)

var (
	okLabel    = color.New(color.FgGreen, color.Bold)
	errorLabel = color.New(color.FgRed, color.Bold)
	titleCaser = cases.Title(language.English)
)

// ChangeResult is printed after a mutating command.
type ChangeResult struct {
	Action string `json:"action" yaml:"action"`
	Target string `json:"target" yaml:"target"`
	Status string `json:"status" yaml:"status"`
}

// outputFormat returns the validated --output value.
func outputFormat() (string, error) {
	format := strings.ToLower(viper.GetString("output"))

	switch format {
	case "", constants.FormatTable:
		return constants.FormatTable, nil
	case constants.FormatJSON, constants.FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %q", constants.ErrInvalidOutputFormat, format)
	}
}

func writeJSON(out io.Writer, value interface{}) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

	return encoder.Encode(value)
}

func writeYAML(out io.Writer, value interface{}) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(constants.JSONIndentSize)

	err := encoder.Encode(value)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return encoder.Close()
}

// writeStructured handles the json and yaml formats. It reports false for
// table output, which the caller renders itself.
func writeStructured(out io.Writer, format string, value interface{}) (bool, error) {
	switch format {
	case constants.FormatJSON:
		return true, writeJSON(out, value)
	case constants.FormatYAML:
		return true, writeYAML(out, value)
	default:
		return false, nil
	}
}

func renderTable(out io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(out)
	table.Header(toAny(header)...)

	for _, row := range rows {
		_ = table.Append(toAny(row)...)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func toAny(values []string) []any {
	result := make([]any, len(values))
	for i, value := range values {
		result[i] = value
	}

	return result
}

// outputList prints a single-column list.
func outputList(cmd *cobra.Command, column string, values []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	handled, err := writeStructured(cmd.OutOrStdout(), format, values)
	if handled || err != nil {
		return err
	}

	if len(values) == 0 {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No %s found\n", strings.ToLower(column)+"s")

		return nil
	}

	rows := make([][]string, 0, len(values))
	for _, value := range values {
		rows = append(rows, []string{value})
	}

	return renderTable(cmd.OutOrStdout(), []string{column}, rows)
}

// outputProperties prints value as json/yaml, or properties as a two-column
// table.
func outputProperties(cmd *cobra.Command, value interface{}, properties [][]string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	handled, err := writeStructured(cmd.OutOrStdout(), format, value)
	if handled || err != nil {
		return err
	}

	return renderTable(cmd.OutOrStdout(), []string{"Property", "Value"}, properties)
}

// outputChange reports a successful mutating command.
func outputChange(cmd *cobra.Command, action, target string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	result := ChangeResult{Action: action, Target: target, Status: constants.StatusSuccess}

	handled, err := writeStructured(cmd.OutOrStdout(), format, result)
	if handled || err != nil {
		return err
	}

	_, _ = okLabel.Fprint(cmd.OutOrStdout(), "OK ")
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", titleCaser.String(action), target)

	return nil
}

// failure wraps a static error with the body of the failed call.
func failure(err error, target, lastResult string) error {
	body := strings.TrimSpace(lastResult)
	if len(body) > constants.MaxErrorBodyLength {
		body = body[:constants.MaxErrorBodyLength] + "..."
	}

	if body == "" {
		return fmt.Errorf("%w: %s", err, target)
	}

	return fmt.Errorf("%w: %s: %s", err, target, body)
}

// PrintError writes err to out, highlighted unless colors are disabled.
func PrintError(out io.Writer, err error) {
	_, _ = errorLabel.Fprint(out, "Error: ")
	_, _ = fmt.Fprintln(out, err)
}

func configureColor() {
	if viper.GetBool("no-color") {
		color.NoColor = true
	}
}

func noColor() bool {
	return color.NoColor || viper.GetBool("no-color")
}
