package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/suzu-editor/suzu/internal/config"
	suzuerrors "github.com/suzu-editor/suzu/internal/errors"
	"github.com/suzu-editor/suzu/internal/logger"
	"github.com/suzu-editor/suzu/internal/output"
)

// openStore loads the configuration file through the injected file I/O.
// A missing or malformed file still yields a usable, empty store; the
// reason is logged.
func openStore() *config.Store {
	store := config.Open(configPath, config.WithFileIO(deps.FileIO))
	if err := store.LoadError(); err != nil {
		logger.DebugFields("configuration not loaded", map[string]interface{}{
			"path":  configPath,
			"code":  suzuerrors.CodeOf(err),
			"error": err,
		})
	} else {
		logger.Debug("configuration loaded from %s", configPath)
	}
	return store
}

// openStoreForWrite loads the configuration for a command that writes it
// back. Only a missing file is acceptable; anything else would be
// overwritten with an empty document.
func openStoreForWrite() (*config.Store, error) {
	store := openStore()
	if !store.IsOK() {
		return nil, fmt.Errorf("configuration %s is unusable: %w", configPath, store.LoadError())
	}
	err := store.LoadError()
	if err == nil || suzuerrors.CodeOf(err) == suzuerrors.ErrCodeOpenFile {
		return store, nil
	}
	return nil, fmt.Errorf("refusing to overwrite %s (run 'suzu reset' to start over): %w", configPath, err)
}

// saveStore writes the store back to its file, creating the directory if needed
func saveStore(store *config.Store) error {
	if dir := filepath.Dir(store.BackingPath()); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create configuration directory: %w", err)
		}
	}
	if err := store.Flush("", false); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}
	logger.Debug("configuration saved to %s", store.BackingPath())
	return nil
}

// outputResult handles JSON or human-readable output
func outputResult(data interface{}, successMsg string, args ...interface{}) error {
	if jsonOutput {
		return output.JSON(data)
	}
	output.Success(successMsg, args...)
	return nil
}

// validatePointer checks the pointer syntax without touching any store
func validatePointer(ptr string) error {
	if _, err := config.JoinPointer(ptr); err != nil {
		return err
	}
	return nil
}

// commandContext returns the command's context, or Background when the
// command was invoked directly.
func commandContext(cmd *cobra.Command) context.Context {
	if cmd != nil && cmd.Context() != nil {
		return cmd.Context()
	}
	return context.Background()
}

// CommandResult represents a common result structure for CLI commands
type CommandResult struct {
	Success bool   `json:"success"`
	Pointer string `json:"pointer,omitempty"`
	Path    string `json:"path,omitempty"`
	Action  string `json:"action"`
	Message string `json:"message,omitempty"`
}

// newSuccessResult creates a success result
func newSuccessResult(action, pointer string) CommandResult {
	return CommandResult{
		Success: true,
		Pointer: pointer,
		Path:    configPath,
		Action:  action,
	}
}
