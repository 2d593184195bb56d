package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/suzu-editor/suzu/internal/logger"
	"github.com/suzu-editor/suzu/internal/platform"
)

var (
	configPath string
	jsonOutput bool
	verbose    bool
	version    = "dev"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "suzu",
	Short: "Suzu configuration tool",
	Long: `suzu manages the JSON configuration of the Suzu diagram editor.

Values are addressed with slash-separated pointers such as /editor/grid or
/recent/0. The configuration file may contain comments and trailing commas.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	// Initialize logger based on verbose flag (parsed by cobra)
	cobra.OnInitialize(func() {
		logger.Init(verbose)
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// defaultConfigPath returns the per-user configuration file location.
func defaultConfigPath() string {
	paths, err := platform.DetectPaths()
	if err != nil {
		return platform.ConfigFileName
	}
	return paths.ConfigFile()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath(), "Path to the configuration file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging for debugging")
}
