package cli

import (
	"github.com/spf13/cobra"

	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
	"github.com/peopleops-labs/pir-analyzer/internal/core/ports/driven"
	"github.com/peopleops-labs/pir-analyzer/internal/core/ports/driving"
	"github.com/peopleops-labs/pir-analyzer/internal/core/services"
	"github.com/peopleops-labs/pir-analyzer/internal/logger"
	"github.com/peopleops-labs/pir-analyzer/internal/sources/localfolder"
)

const version = "0.1.0"

// Services used by the commands. Wired in Execute; tests swap them for
// mocks and call rootCmd directly.
var (
	analysisService driving.AnalysisRunner
	analysisSched   *services.Scheduler
	resultStore     driven.ResultStore
	localSource     *localfolder.Source
	appSettings     domain.Settings
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "pir-analyzer",
	Short: "Analyse individual development plan meeting records",
	Long: `pir-analyzer tracks employee development plan documents, detects
which ones changed, and analyses each changed record to determine whether
the planned development meeting actually took place.

Documents are read from a local folder or, when configured, from Google
Drive with automatic fallback to the local folder.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug output")
}

// Execute wires the application services and runs the root command.
func Execute() error {
	cleanup, err := wire()
	if err != nil {
		return err
	}
	defer cleanup()

	return rootCmd.Execute()
}
