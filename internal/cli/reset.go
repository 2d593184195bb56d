package cli

import (
	"github.com/spf13/cobra"
	"github.com/suzu-editor/suzu/internal/input"
	"github.com/suzu-editor/suzu/internal/output"
)

var forceReset bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace the configuration with an empty document",
	Long: `Discard every value and save an empty configuration.

This also recovers a configuration file that cannot be parsed.

Examples:
  suzu reset
  suzu reset --force`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&forceReset, "force", "f", false, "Reset without confirmation")

	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	// Confirm reset if not forced
	if !forceReset {
		output.Print("Are you sure you want to reset '%s'? [y/N]: ", configPath)
		if !input.Confirm(deps.StdinReader) {
			output.Info("Reset cancelled")
			return nil
		}
	}

	store := openStore()
	store.Reset()
	if err := saveStore(store); err != nil {
		return err
	}

	return outputResult(newSuccessResult("reset", ""), "Configuration %s reset", configPath)
}
