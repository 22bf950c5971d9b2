package driven

import (
	"context"

	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
)

// ResultStore persists analysis results.
// The core stores full results but reads back only what reporting needs.
type ResultStore interface {
	// Save stores a result.
	Save(ctx context.Context, result *domain.AnalysisResult) error

	// Get retrieves a result by ID.
	// Returns domain.ErrNotFound when it does not exist.
	Get(ctx context.Context, id string) (*domain.AnalysisResult, error)

	// ListAttention returns results currently flagged for HR attention.
	ListAttention(ctx context.Context) ([]domain.AnalysisResult, error)
}
