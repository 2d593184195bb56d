package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/suzu-editor/suzu/internal/input"
	"github.com/suzu-editor/suzu/internal/output"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the configuration file",
	Long: `Open the configuration file in an editor and check it afterwards.

Uses $VISUAL or $EDITOR, or defaults to vi. When the edited file no longer
parses, the editor can be re-opened to fix it.

Examples:
  suzu edit
  EDITOR=nano suzu edit`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	// Make sure there is something to open
	if _, err := deps.FileIO.ReadAll(configPath); errors.Is(err, os.ErrNotExist) {
		store := openStore()
		if err := saveStore(store); err != nil {
			return err
		}
	}

	editor := getEditor()

	// Check if editor exists
	editorPath, err := deps.CommandRunner.LookPath(editor)
	if err != nil {
		return fmt.Errorf("editor not found: %s", editor)
	}

	output.Info("Opening %s with %s...", configPath, editor)

	for {
		if err := deps.CommandRunner.RunInteractive(editorPath, configPath); err != nil {
			return fmt.Errorf("editor exited with error: %w", err)
		}

		store := openStore()
		if !store.IsOK() {
			return fmt.Errorf("configuration %s is unusable: %w", configPath, store.LoadError())
		}
		loadErr := store.LoadError()
		if loadErr == nil {
			break
		}

		output.Warn("The edited configuration cannot be loaded: %v", loadErr)
		output.Print("Re-open the editor? [Y/n]: ")
		if !input.ConfirmDefault(deps.StdinReader, true) {
			return fmt.Errorf("configuration %s is invalid: %w", configPath, loadErr)
		}
	}

	output.Success("Editor closed, configuration is valid")
	return nil
}

// getEditor returns the user's preferred editor
func getEditor() string {
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	return "vi"
}
