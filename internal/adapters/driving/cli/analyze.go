package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
)

var analyzeForce bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyse changed meeting records",
	Long: `Run one analysis pass over the active storage backend.

Documents whose content is unchanged since the last run are skipped.
Use --force to reprocess every document regardless of change state.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVarP(&analyzeForce, "force", "f", false, "Reprocess all documents")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	if analysisService == nil {
		return errors.New("analysis service not configured")
	}

	cmd.Printf("Analysing documents (force=%t)...\n", analyzeForce)

	summary, err := analysisService.Run(cmd.Context(), analyzeForce)
	if err != nil {
		if errors.Is(err, domain.ErrRunInProgress) {
			return errors.New("another analysis run is already in progress")
		}
		printSummary(cmd, summary)
		return err
	}

	printSummary(cmd, summary)
	return nil
}

// printSummary renders a run report. Tolerates a nil summary so failed
// runs can still show what was collected before the abort.
func printSummary(cmd *cobra.Command, summary *domain.RunSummary) {
	if summary == nil {
		return
	}
	if summary.Aborted {
		cmd.Printf("Run aborted: %s backend unavailable\n", summary.Backend)
		return
	}

	cmd.Printf("\nBackend:   %s\n", summary.Backend)
	cmd.Printf("Found:     %d\n", summary.Found)
	cmd.Printf("Processed: %d\n", summary.Processed)
	cmd.Printf("Skipped:   %d\n", summary.Skipped)
	cmd.Printf("Errors:    %d\n", summary.Errors)
	if summary.Pruned > 0 {
		cmd.Printf("Pruned:    %d\n", summary.Pruned)
	}
	if summary.Processed > 0 {
		cmd.Printf("\nMeetings held:   %d\n", summary.MeetingsDetected)
		cmd.Printf("Meetings missed: %d\n", summary.MeetingsMissed)
	}

	if len(summary.AttentionCases) > 0 {
		cmd.Printf("\nHR attention required (%d):\n", summary.AttentionRequired)
		for _, c := range summary.AttentionCases {
			cmd.Printf("  - %s (%s): %s\n", c.Employee, c.Name, c.Reason)
		}
	}

	if len(summary.Failures) > 0 {
		cmd.Printf("\nFailures:\n")
		for _, f := range summary.Failures {
			cmd.Printf("  - %s: %s\n", f.Name, f.Reason)
		}
	}

	cmd.Printf("\nCompleted in %s\n", summary.FinishedAt.Sub(summary.StartedAt).Round(10 * time.Millisecond))
}
