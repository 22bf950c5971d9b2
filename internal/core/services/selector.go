package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
	"github.com/peopleops-labs/pir-analyzer/internal/core/ports/driven"
	"github.com/peopleops-labs/pir-analyzer/internal/logger"
)

// StorageSelector chooses the active document source.
//
// Selection policy: when the Drive integration is enabled AND the Drive
// source answers a probe, Drive is active; otherwise the local folder is
// active unconditionally. The selection is a snapshot: the orchestrator
// asks once per run and never switches backend mid-run.
type StorageSelector struct {
	local        driven.DocumentSource
	drive        driven.DocumentSource
	driveEnabled bool
	localDir     string
	syncStore    driven.SyncStore

	mu       sync.RWMutex
	status   domain.StorageStatus
	lastSync time.Time
}

// NewStorageSelector creates a selector over the two backends.
// drive may be nil when the integration is not configured.
func NewStorageSelector(
	local driven.DocumentSource,
	drive driven.DocumentSource,
	driveEnabled bool,
	localDir string,
	syncStore driven.SyncStore,
) *StorageSelector {
	return &StorageSelector{
		local:        local,
		drive:        drive,
		driveEnabled: driveEnabled,
		localDir:     localDir,
		syncStore:    syncStore,
	}
}

// ActiveSource returns the backend to use for one orchestration pass.
// Callers hold the returned source for the whole pass.
func (s *StorageSelector) ActiveSource(ctx context.Context) driven.DocumentSource {
	if s.driveEnabled && s.drive != nil && s.drive.Probe(ctx) {
		return s.drive
	}
	if s.driveEnabled {
		logger.Warn("Drive backend unreachable, falling back to local folder")
	}
	return s.local
}

// Refresh re-runs the probes and updates the process-wide status.
// Idempotent and safe to call concurrently with an in-flight run: it
// never swaps the source a run already snapshotted.
func (s *StorageSelector) Refresh(ctx context.Context) *domain.StorageStatus {
	status := domain.StorageStatus{
		Backend:      domain.SourceLocal,
		DriveEnabled: s.driveEnabled,
		LocalDir:     s.localDir,
	}

	if s.driveEnabled && s.drive != nil && s.drive.Probe(ctx) {
		status.Backend = domain.SourceDrive
		status.Connected = true
	} else {
		status.Connected = s.local.Probe(ctx)
	}

	status.LastSync = s.lastSyncTime(ctx)

	s.mu.Lock()
	s.status = status
	s.mu.Unlock()

	return &status
}

// MarkSynced records the completion time of a successful run.
func (s *StorageSelector) MarkSynced(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSync = t
}

// lastSyncTime returns the in-process last-sync time, falling back to the
// newest sync record so the display survives restarts.
func (s *StorageSelector) lastSyncTime(ctx context.Context) time.Time {
	s.mu.RLock()
	last := s.lastSync
	s.mu.RUnlock()

	if !last.IsZero() || s.syncStore == nil {
		return last
	}

	records, err := s.syncStore.List(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Debug("Failed to read sync records for status: %v", err)
		}
		return last
	}
	for _, rec := range records {
		if rec.LastSynced.After(last) {
			last = rec.LastSynced
		}
	}
	return last
}
