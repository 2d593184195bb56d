package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	flushTarget string
	flushAppend bool
)

var flushCmd = &cobra.Command{
	Use:   "flush",
	Short: "Write the configuration to a file",
	Long: `Serialize the configuration and write it out.

Without --to the configuration file itself is rewritten in canonical form:
comments and trailing commas are dropped and keys are sorted.

Examples:
  suzu flush
  suzu flush --to backup.json
  suzu flush --to history.log --append`,
	Args: cobra.NoArgs,
	RunE: runFlush,
}

func init() {
	flushCmd.Flags().StringVarP(&flushTarget, "to", "o", "", "Write to this file instead of the configuration file")
	flushCmd.Flags().BoolVarP(&flushAppend, "append", "a", false, "Append instead of truncating")

	rootCmd.AddCommand(flushCmd)
}

func runFlush(cmd *cobra.Command, args []string) error {
	store, err := openStoreForWrite()
	if err != nil {
		return err
	}

	target := flushTarget
	if target == "" {
		target = store.BackingPath()
	}

	if flushTarget == "" && !flushAppend {
		if err := saveStore(store); err != nil {
			return err
		}
	} else if err := store.Flush(flushTarget, flushAppend); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}

	result := newSuccessResult("flush", "")
	result.Path = target
	return outputResult(result, "Configuration written to %s", target)
}
