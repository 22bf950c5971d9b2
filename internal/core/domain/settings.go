package domain

import (
	"fmt"
	"time"
)

// Settings holds the application configuration.
// Loaded from the TOML config file with environment overrides; unset
// fields fall back to DefaultSettings values.
type Settings struct {
	// DocsDir is the local folder holding meeting-record documents.
	DocsDir string

	// DriveEnabled turns the Google Drive backend on.
	DriveEnabled bool

	// DriveFolderID limits Drive listing to one folder (optional).
	DriveFolderID string

	// DriveTokenFile is the path to the stored OAuth token.
	// Token acquisition is an external concern; the file is only consumed.
	DriveTokenFile string

	// SyncInterval is how often the scheduler triggers a run.
	SyncInterval time.Duration

	// PruneOrphans removes sync records whose document no longer appears
	// in the active listing. Off by default: orphans are retained for audit.
	PruneOrphans bool

	// OpenAIKey enables the AI-backed analyzer when set.
	// Empty key means the heuristic analyzer runs alone.
	OpenAIKey string

	// Model is the chat model used by the AI analyzer.
	Model string

	// MaxTokens bounds the AI completion size.
	MaxTokens int

	// Temperature is the AI sampling temperature.
	Temperature float32

	// ConfidenceThreshold below which a result is flagged for attention.
	ConfidenceThreshold float64
}

// DefaultSettings returns sensible defaults.
func DefaultSettings() Settings {
	return Settings{
		DocsDir:             "docs",
		DriveTokenFile:      "token.json",
		SyncInterval:        5 * time.Minute,
		Model:               "gpt-4o-mini",
		MaxTokens:           2000,
		Temperature:         0.3,
		ConfidenceThreshold: 0.7,
	}
}

// Validate checks the settings for inconsistencies.
func (s *Settings) Validate() error {
	if s.DocsDir == "" {
		return fmt.Errorf("%w: docs_dir must not be empty", ErrInvalidInput)
	}
	if s.SyncInterval < time.Second {
		return fmt.Errorf("%w: sync_interval must be at least 1s, got %s", ErrInvalidInput, s.SyncInterval)
	}
	if s.DriveEnabled && s.DriveTokenFile == "" {
		return fmt.Errorf("%w: drive enabled but drive_token_file not set", ErrInvalidInput)
	}
	if s.ConfidenceThreshold < 0 || s.ConfidenceThreshold > 1 {
		return fmt.Errorf("%w: confidence_threshold must be within [0,1]", ErrInvalidInput)
	}
	return nil
}
