package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/peopleops-labs/pir-analyzer/internal/logger"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run the analysis on a schedule",
	Long: `Start the scheduler and keep analysing documents at the configured
interval until interrupted.

When the local folder backend is in use, document changes are also picked
up by a folder watch and trigger an early run.`,
	RunE: runSchedule,
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, _ []string) error {
	if analysisSched == nil {
		return errors.New("scheduler not configured")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The folder watch blocks, so it runs alongside the scheduler loop.
	if localSource != nil {
		go func() {
			err := localSource.Watch(ctx, func() {
				logger.Info("Folder change detected, scheduling run")
				analysisSched.TriggerNow(ctx)
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("Folder watch stopped: %v", err)
			}
		}()
	}

	cmd.Printf("Scheduler started (interval %s). Press Ctrl+C to stop.\n", appSettings.SyncInterval)

	err := analysisSched.Start(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}

	cmd.Printf("Scheduler stopped.\n")
	return err
}
