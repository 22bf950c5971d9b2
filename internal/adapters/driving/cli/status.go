package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show storage backend and analysis status",
	Long: `Probe the storage backends and show which one is active, when the
last synchronisation ran, and which records currently need HR attention.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if analysisService == nil {
		return errors.New("analysis service not configured")
	}

	status, err := analysisService.Status(cmd.Context())
	if err != nil {
		return err
	}

	cmd.Printf("Backend:       %s\n", status.Backend)
	cmd.Printf("Connected:     %t\n", status.Connected)
	cmd.Printf("Drive enabled: %t\n", status.DriveEnabled)
	if status.Backend == domain.SourceLocal {
		cmd.Printf("Folder:        %s\n", status.LocalDir)
	}
	if status.LastSync.IsZero() {
		cmd.Printf("Last sync:     never\n")
	} else {
		cmd.Printf("Last sync:     %s\n", status.LastSync.Format("2006-01-02 15:04:05"))
	}

	if resultStore == nil {
		return nil
	}
	attention, err := resultStore.ListAttention(cmd.Context())
	if err != nil {
		return err
	}
	if len(attention) == 0 {
		cmd.Printf("\nNo records need HR attention.\n")
		return nil
	}

	cmd.Printf("\nHR attention required (%d):\n", len(attention))
	for _, r := range attention {
		cmd.Printf("  - %s: %s\n", r.EmployeeName, r.AttentionReason)
	}
	return nil
}
