package driven

import (
	"context"

	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
)

// SyncStore persists per-document sync records.
type SyncStore interface {
	// Get retrieves the record for a document identity.
	// Returns domain.ErrNotFound when no record exists.
	Get(ctx context.Context, documentID string) (*domain.SyncRecord, error)

	// Save upserts the record for its document identity.
	// The write is atomic per record: a crash mid-write must not leave a
	// record with a mismatched fingerprint/result pointer.
	Save(ctx context.Context, record domain.SyncRecord) error

	// List returns all stored records.
	List(ctx context.Context) ([]domain.SyncRecord, error)

	// Delete removes the record for a document identity.
	Delete(ctx context.Context, documentID string) error
}
