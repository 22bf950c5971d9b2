package file

import (
	"os"
	"strconv"
	"time"

	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
	"github.com/peopleops-labs/pir-analyzer/internal/core/ports/driven"
)

// Configuration keys in dot notation.
const (
	KeyDocsDir             = "storage.docs_dir"
	KeyDriveEnabled        = "drive.enabled"
	KeyDriveFolderID       = "drive.folder_id"
	KeyDriveTokenFile      = "drive.token_file"
	KeySyncInterval        = "sync.interval_seconds"
	KeyPruneOrphans        = "sync.prune_orphans"
	KeyOpenAIKey           = "ai.openai_key"
	KeyModel               = "ai.model"
	KeyMaxTokens           = "ai.max_tokens"
	KeyTemperature         = "ai.temperature"
	KeyConfidenceThreshold = "ai.confidence_threshold"
)

// Environment variables that override file configuration.
const (
	EnvOpenAIKey     = "OPENAI_API_KEY"
	EnvDocsDir       = "PIR_DOCS_DIR"
	EnvDriveEnabled  = "PIR_DRIVE_ENABLED"
	EnvDriveFolderID = "GOOGLE_DRIVE_FOLDER_ID"
)

// LoadSettings assembles typed Settings from a config store.
// Unset keys fall back to defaults; environment variables win over the file.
func LoadSettings(store driven.ConfigStore) domain.Settings {
	settings := domain.DefaultSettings()

	if v := store.GetString(KeyDocsDir); v != "" {
		settings.DocsDir = v
	}
	if _, ok := store.Get(KeyDriveEnabled); ok {
		settings.DriveEnabled = store.GetBool(KeyDriveEnabled)
	}
	if v := store.GetString(KeyDriveFolderID); v != "" {
		settings.DriveFolderID = v
	}
	if v := store.GetString(KeyDriveTokenFile); v != "" {
		settings.DriveTokenFile = v
	}
	if v := store.GetInt(KeySyncInterval); v > 0 {
		settings.SyncInterval = time.Duration(v) * time.Second
	}
	if _, ok := store.Get(KeyPruneOrphans); ok {
		settings.PruneOrphans = store.GetBool(KeyPruneOrphans)
	}
	if v := store.GetString(KeyOpenAIKey); v != "" {
		settings.OpenAIKey = v
	}
	if v := store.GetString(KeyModel); v != "" {
		settings.Model = v
	}
	if v := store.GetInt(KeyMaxTokens); v > 0 {
		settings.MaxTokens = v
	}
	if v := store.GetFloat(KeyTemperature); v > 0 {
		settings.Temperature = float32(v)
	}
	if _, ok := store.Get(KeyConfidenceThreshold); ok {
		settings.ConfidenceThreshold = store.GetFloat(KeyConfidenceThreshold)
	}

	applyEnvOverrides(&settings)
	return settings
}

// SaveSettings writes typed Settings back to the config store.
// The OpenAI key is never written to the file; it comes from the
// environment or an explicit Set on the ai.openai_key key.
func SaveSettings(store driven.ConfigStore, settings domain.Settings) error {
	pairs := []struct {
		key   string
		value any
	}{
		{KeyDocsDir, settings.DocsDir},
		{KeyDriveEnabled, settings.DriveEnabled},
		{KeyDriveFolderID, settings.DriveFolderID},
		{KeyDriveTokenFile, settings.DriveTokenFile},
		{KeySyncInterval, int(settings.SyncInterval.Seconds())},
		{KeyPruneOrphans, settings.PruneOrphans},
		{KeyModel, settings.Model},
		{KeyMaxTokens, settings.MaxTokens},
		{KeyTemperature, float64(settings.Temperature)},
		{KeyConfidenceThreshold, settings.ConfidenceThreshold},
	}

	for _, p := range pairs {
		if err := store.Set(p.key, p.value); err != nil {
			return err
		}
	}
	return nil
}

func applyEnvOverrides(settings *domain.Settings) {
	if v := os.Getenv(EnvOpenAIKey); v != "" {
		settings.OpenAIKey = v
	}
	if v := os.Getenv(EnvDocsDir); v != "" {
		settings.DocsDir = v
	}
	if v := os.Getenv(EnvDriveEnabled); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			settings.DriveEnabled = b
		}
	}
	if v := os.Getenv(EnvDriveFolderID); v != "" {
		settings.DriveFolderID = v
	}
}
