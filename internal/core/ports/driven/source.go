package driven

import (
	"context"

	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
)

// DocumentSource enumerates and fetches meeting-record documents from one
// storage backend. Two implementations exist: the local docs folder and
// Google Drive.
type DocumentSource interface {
	// Kind returns the backend kind identifier.
	Kind() domain.SourceKind

	// List enumerates supported documents (docx, doc, pdf).
	// Ordering is not meaningful and must not be relied upon.
	// Returns domain.ErrSourceUnavailable when the backend is unreachable.
	List(ctx context.Context) ([]domain.DocumentRef, error)

	// Fetch returns the full content of a listed document.
	// Returns domain.ErrDocumentUnavailable when the file vanished or
	// became unreadable between listing and fetch; callers treat that as
	// a per-document failure, not a fatal run failure.
	Fetch(ctx context.Context, ref domain.DocumentRef) ([]byte, error)

	// Probe is a lightweight availability check used by the selector.
	// It never fails: any error is reported as false.
	Probe(ctx context.Context) bool

	// Close releases resources.
	Close() error
}
