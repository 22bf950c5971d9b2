package driven

import (
	"context"

	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
)

// Analyzer decides whether a parsed meeting record describes a held or
// missed meeting and whether the case needs HR attention.
// Implementations may be AI-backed or keyword heuristics; the factory
// wires the heuristic as a transparent fallback for the AI variant.
type Analyzer interface {
	// Analyze produces an AnalysisResult for one parsed document.
	// Returns domain.ErrAnalysisUnavailable when no verdict can be made.
	Analyze(ctx context.Context, doc *domain.ParsedDocument) (*domain.AnalysisResult, error)
}
