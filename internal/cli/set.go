package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/suzu-editor/suzu/internal/config"
)

var setString bool

var setCmd = &cobra.Command{
	Use:   "set <pointer> <value>",
	Short: "Store a configuration value",
	Long: `Store a value at a pointer and save the configuration.

The value is parsed as JSON; text that is not valid JSON is stored as a
string. Missing objects along the pointer are created, "-" appends to an
array and an index past the end pads the array with nulls.

Examples:
  suzu set /editor/grid 16
  suzu set /editor '{"grid": 16, "zoom": 1.0}'
  suzu set /recent/- diagram.uml
  suzu set /version 2 --string`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func init() {
	setCmd.Flags().BoolVarP(&setString, "string", "s", false, "Store the value as a string without parsing")

	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	ptr := args[0]
	if err := validatePointer(ptr); err != nil {
		return err
	}

	value := parseValueArg(args[1], setString)

	store, err := openStoreForWrite()
	if err != nil {
		return err
	}

	if err := store.SetValue(ptr, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", ptr, err)
	}
	if err := saveStore(store); err != nil {
		return err
	}

	result := newSuccessResult("set", ptr)
	result.Message = value.String()
	return outputResult(result, "Set %s = %s", ptr, value.String())
}

// parseValueArg interprets a command-line value as JSON, falling back to a
// plain string.
func parseValueArg(text string, asString bool) config.Value {
	if asString {
		return config.String(text)
	}
	value, err := config.ParseValue([]byte(text))
	if err != nil {
		return config.String(text)
	}
	return value
}
