package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopleops-labs/pir-analyzer/internal/adapters/driven/storage/memory"
	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
)

func TestActiveSource_DriveWhenEnabledAndUp(t *testing.T) {
	local := newFakeSource(domain.SourceLocal)
	drive := newFakeSource(domain.SourceDrive)
	selector := NewStorageSelector(local, drive, true, "/docs", nil)

	source := selector.ActiveSource(context.Background())

	assert.Equal(t, domain.SourceDrive, source.Kind())
}

func TestActiveSource_FallbackWhenDriveDown(t *testing.T) {
	local := newFakeSource(domain.SourceLocal)
	drive := newFakeSource(domain.SourceDrive)
	drive.probeOK = false
	selector := NewStorageSelector(local, drive, true, "/docs", nil)

	source := selector.ActiveSource(context.Background())

	assert.Equal(t, domain.SourceLocal, source.Kind())
}

func TestActiveSource_LocalWhenDriveDisabled(t *testing.T) {
	local := newFakeSource(domain.SourceLocal)
	drive := newFakeSource(domain.SourceDrive)
	selector := NewStorageSelector(local, drive, false, "/docs", nil)

	source := selector.ActiveSource(context.Background())

	assert.Equal(t, domain.SourceLocal, source.Kind())
}

func TestActiveSource_NilDrive(t *testing.T) {
	local := newFakeSource(domain.SourceLocal)
	selector := NewStorageSelector(local, nil, true, "/docs", nil)

	source := selector.ActiveSource(context.Background())

	assert.Equal(t, domain.SourceLocal, source.Kind())
}

func TestRefresh_Status(t *testing.T) {
	local := newFakeSource(domain.SourceLocal)
	drive := newFakeSource(domain.SourceDrive)
	selector := NewStorageSelector(local, drive, true, "/docs", nil)

	status := selector.Refresh(context.Background())

	assert.Equal(t, domain.SourceDrive, status.Backend)
	assert.True(t, status.DriveEnabled)
	assert.True(t, status.Connected)
	assert.Equal(t, "/docs", status.LocalDir)

	// Drive goes down between refreshes.
	drive.probeOK = false
	status = selector.Refresh(context.Background())

	assert.Equal(t, domain.SourceLocal, status.Backend)
	assert.True(t, status.Connected)
}

func TestRefresh_LastSyncFallsBackToRecords(t *testing.T) {
	syncStore := memory.NewSyncStore()
	newest := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, syncStore.Save(context.Background(), domain.SyncRecord{
		DocumentID: "doc-1", Fingerprint: "a", LastSynced: newest.Add(-time.Hour),
	}))
	require.NoError(t, syncStore.Save(context.Background(), domain.SyncRecord{
		DocumentID: "doc-2", Fingerprint: "b", LastSynced: newest,
	}))

	local := newFakeSource(domain.SourceLocal)
	selector := NewStorageSelector(local, nil, false, "/docs", syncStore)

	status := selector.Refresh(context.Background())

	assert.True(t, newest.Equal(status.LastSync))
}

func TestRefresh_MarkSyncedWins(t *testing.T) {
	local := newFakeSource(domain.SourceLocal)
	selector := NewStorageSelector(local, nil, false, "/docs", memory.NewSyncStore())

	now := time.Now()
	selector.MarkSynced(now)

	status := selector.Refresh(context.Background())

	assert.True(t, now.Equal(status.LastSync))
}
