package cli

import (
	"context"
	"fmt"

	"github.com/peopleops-labs/pir-analyzer/internal/adapters/driven/config/file"
	"github.com/peopleops-labs/pir-analyzer/internal/adapters/driven/storage/sqlite"
	"github.com/peopleops-labs/pir-analyzer/internal/analyzers"
	"github.com/peopleops-labs/pir-analyzer/internal/core/ports/driven"
	"github.com/peopleops-labs/pir-analyzer/internal/core/services"
	"github.com/peopleops-labs/pir-analyzer/internal/logger"
	"github.com/peopleops-labs/pir-analyzer/internal/parsers"
	"github.com/peopleops-labs/pir-analyzer/internal/parsers/docx"
	"github.com/peopleops-labs/pir-analyzer/internal/parsers/legacy"
	"github.com/peopleops-labs/pir-analyzer/internal/parsers/pdf"
	"github.com/peopleops-labs/pir-analyzer/internal/sources/gdrive"
	"github.com/peopleops-labs/pir-analyzer/internal/sources/localfolder"
)

// wire builds the service graph behind the commands. The returned cleanup
// closes the metadata store and source connections.
func wire() (func(), error) {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	appSettings = file.LoadSettings(configStore)
	if err := appSettings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	store, err := sqlite.NewStore("")
	if err != nil {
		return nil, fmt.Errorf("failed to open metadata store: %w", err)
	}

	localSource, err = localfolder.New(appSettings.DocsDir)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to open docs folder: %w", err)
	}

	// A Drive setup failure is not fatal: the selector falls back to the
	// local folder and status reports the backend as disconnected.
	var driveSource driven.DocumentSource
	if appSettings.DriveEnabled {
		driveSource = newDriveSource()
	}

	selector := services.NewStorageSelector(
		localSource,
		driveSource,
		appSettings.DriveEnabled,
		localSource.Dir(),
		store.SyncStore(),
	)

	registry := parsers.NewRegistry(docx.New(), pdf.New(), legacy.New())
	if err := pdf.CheckAvailable(); err != nil {
		logger.Warn("PDF support limited: %v", err)
		logger.Warn("%s", pdf.InstallInstructions())
	}

	resultStore = store.ResultStore()
	analysisService = services.NewAnalysisService(
		selector,
		store.SyncStore(),
		resultStore,
		registry,
		analyzers.New(appSettings),
		appSettings.PruneOrphans,
		appSettings.ConfidenceThreshold,
	)
	analysisSched = services.NewScheduler(appSettings.SyncInterval, store.SchedulerStore(), analysisService)

	cleanup := func() {
		if driveSource != nil {
			driveSource.Close()
		}
		localSource.Close()
		store.Close()
	}
	return cleanup, nil
}

// newDriveSource builds the Drive backend from the stored OAuth token.
// Returns nil when the token or the service cannot be set up.
func newDriveSource() driven.DocumentSource {
	ts, err := gdrive.TokenFromFile(appSettings.DriveTokenFile)
	if err != nil {
		logger.Warn("Google Drive disabled: %v", err)
		return nil
	}
	source, err := gdrive.New(context.Background(), ts, appSettings.DriveFolderID)
	if err != nil {
		logger.Warn("Google Drive disabled: %v", err)
		return nil
	}
	return source
}
