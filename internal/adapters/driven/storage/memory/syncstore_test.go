package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
)

func TestSyncStore_SaveAndGet(t *testing.T) {
	store := NewSyncStore()
	ctx := context.Background()

	record := domain.SyncRecord{
		DocumentID:  "/docs/plan.docx",
		Name:        "plan.docx",
		Fingerprint: domain.NewFingerprint([]byte("content")),
		ResultID:    "result-1",
		LastSynced:  time.Now(),
	}

	require.NoError(t, store.Save(ctx, record))

	got, err := store.Get(ctx, "/docs/plan.docx")
	require.NoError(t, err)
	assert.Equal(t, record.Fingerprint, got.Fingerprint)
	assert.Equal(t, "result-1", got.ResultID)
}

func TestSyncStore_GetMissing(t *testing.T) {
	store := NewSyncStore()

	_, err := store.Get(context.Background(), "unknown")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSyncStore_SaveOverwrites(t *testing.T) {
	store := NewSyncStore()
	ctx := context.Background()

	first := domain.SyncRecord{DocumentID: "a", Fingerprint: "old", ResultID: "r1"}
	second := domain.SyncRecord{DocumentID: "a", Fingerprint: "new", ResultID: "r2"}

	require.NoError(t, store.Save(ctx, first))
	require.NoError(t, store.Save(ctx, second))

	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, domain.Fingerprint("new"), got.Fingerprint)
	assert.Equal(t, "r2", got.ResultID)
}

func TestSyncStore_ListAndDelete(t *testing.T) {
	store := NewSyncStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.SyncRecord{DocumentID: "a"}))
	require.NoError(t, store.Save(ctx, domain.SyncRecord{DocumentID: "b"}))

	records, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	require.NoError(t, store.Delete(ctx, "a"))

	records, err = store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, "b", records[0].DocumentID)
}
