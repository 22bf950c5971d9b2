package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
)

var syncForce bool

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronise documents from the active backend",
	Long: `Run one synchronisation pass: list documents from the active storage
backend, refresh change-detection state, and analyse what changed.

Equivalent to analyze; kept as a separate command for scripting against
the sync vocabulary. Use --force to resynchronise everything.`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVarP(&syncForce, "force", "f", false, "Resynchronise all documents")
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, _ []string) error {
	if analysisService == nil {
		return errors.New("analysis service not configured")
	}

	cmd.Printf("Synchronising documents...\n")

	summary, err := analysisService.Run(cmd.Context(), syncForce)
	if err != nil {
		if errors.Is(err, domain.ErrRunInProgress) {
			return errors.New("another run is already in progress")
		}
		return err
	}

	cmd.Printf("Synchronised: %d found, %d processed, %d skipped, %d errors\n",
		summary.Found, summary.Processed, summary.Skipped, summary.Errors)
	return nil
}
