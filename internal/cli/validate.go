package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	suzuerrors "github.com/suzu-editor/suzu/internal/errors"
)

var validateSchema string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration file",
	Long: `Check that the configuration file parses and, with --schema, that it
satisfies a JSON Schema.

Examples:
  suzu validate
  suzu validate --schema suzu.schema.json`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "", "JSON Schema file to validate against")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	store := openStore()
	if !store.IsOK() {
		return fmt.Errorf("configuration %s is unusable: %w", configPath, store.LoadError())
	}
	if err := store.LoadError(); err != nil {
		if suzuerrors.CodeOf(err) == suzuerrors.ErrCodeOpenFile {
			return fmt.Errorf("configuration %s not found: %w", configPath, err)
		}
		return fmt.Errorf("configuration %s is invalid: %w", configPath, err)
	}

	if validateSchema != "" {
		schema, err := deps.FileIO.ReadAll(validateSchema)
		if err != nil {
			return fmt.Errorf("failed to read schema: %w", err)
		}
		if err := store.ValidateSchema(schema); err != nil {
			return fmt.Errorf("configuration %s does not match %s: %w", configPath, validateSchema, err)
		}
	}

	return outputResult(newSuccessResult("validate", ""), "Configuration %s is valid", configPath)
}
