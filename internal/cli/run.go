package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/suzu-editor/suzu/internal/app"
	"github.com/suzu-editor/suzu/internal/config"
	"github.com/suzu-editor/suzu/internal/output"
)

var runWatch bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the application with its configuration",
	Long: `Start the application: load the configuration, open the log file named by
/logfile and wait for Ctrl+C. On exit the configuration is written back.

With --watch the configuration is reloaded whenever its file changes.

Examples:
  suzu run
  suzu run --watch -v`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVarP(&runWatch, "watch", "w", false, "Reload the configuration when its file changes")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.New(configPath,
		app.WithWatch(runWatch),
		app.WithStoreOptions(config.WithFileIO(deps.FileIO)),
	)

	if !jsonOutput {
		output.Info("Running with %s, press Ctrl+C to stop", configPath)
	}
	return application.Run(ctx)
}
