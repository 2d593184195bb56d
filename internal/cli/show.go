package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/suzu-editor/suzu/internal/output"
)

var (
	showPretty bool
	showFormat string
)

var showCmd = &cobra.Command{
	Use:   "show [pointer]",
	Short: "Print the configuration document",
	Long: `Print the whole configuration, or the part below a pointer.

JSON output has sorted keys; --pretty indents it with four spaces.

Examples:
  suzu show
  suzu show --pretty
  suzu show /editor --format yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVarP(&showPretty, "pretty", "p", false, "Indent the JSON output")
	showCmd.Flags().StringVarP(&showFormat, "format", "f", "json", "Output format: json or yaml")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	ptr := ""
	if len(args) > 0 {
		ptr = args[0]
		if err := validatePointer(ptr); err != nil {
			return err
		}
	}

	if showFormat != "json" && showFormat != "yaml" {
		return fmt.Errorf("unknown format %q (want json or yaml)", showFormat)
	}

	store := openStore()
	if !store.IsOK() {
		return fmt.Errorf("configuration %s is unusable: %w", configPath, store.LoadError())
	}

	value := store.GetValue(ptr)
	if value.IsDiscarded() {
		return fmt.Errorf("no value at %s", ptr)
	}

	switch {
	case jsonOutput:
		return output.JSON(value)
	case showFormat == "yaml":
		return output.YAML(value)
	case ptr == "":
		output.Print("%s", store.Serialize(showPretty))
	default:
		output.Print("%s", value.Format(showPretty))
	}
	return nil
}
