package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
)

func TestResultStore_SaveAndGet(t *testing.T) {
	store := NewResultStore()
	ctx := context.Background()

	result := &domain.AnalysisResult{
		ID:              "res-1",
		DocumentID:      "/docs/plan.docx",
		EmployeeName:    "Иванов Иван",
		MeetingDetected: true,
		Confidence:      0.9,
		Method:          domain.MethodHeuristic,
	}

	require.NoError(t, store.Save(ctx, result))

	got, err := store.Get(ctx, "res-1")
	require.NoError(t, err)
	assert.Equal(t, "Иванов Иван", got.EmployeeName)
	assert.True(t, got.MeetingDetected)
}

func TestResultStore_GetMissing(t *testing.T) {
	store := NewResultStore()

	_, err := store.Get(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResultStore_SaveRejectsInvalid(t *testing.T) {
	store := NewResultStore()
	ctx := context.Background()

	assert.ErrorIs(t, store.Save(ctx, nil), domain.ErrInvalidInput)
	assert.ErrorIs(t, store.Save(ctx, &domain.AnalysisResult{}), domain.ErrInvalidInput)
}

func TestResultStore_ListAttention(t *testing.T) {
	store := NewResultStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.AnalysisResult{ID: "a", AttentionRequired: true}))
	require.NoError(t, store.Save(ctx, &domain.AnalysisResult{ID: "b"}))
	require.NoError(t, store.Save(ctx, &domain.AnalysisResult{ID: "c", AttentionRequired: true}))

	flagged, err := store.ListAttention(ctx)
	require.NoError(t, err)
	assert.Len(t, flagged, 2)
}
