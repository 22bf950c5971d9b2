package driving

import (
	"context"

	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
)

// AnalysisRunner is the core's outward contract: run an analysis pass and
// report storage status. The web layer and the scheduler need nothing else.
type AnalysisRunner interface {
	// Run performs one analysis pass over the active source.
	// force bypasses change detection and reprocesses every document.
	// Returns domain.ErrRunInProgress when another run is active and
	// domain.ErrSourceUnavailable when no backend can list documents.
	Run(ctx context.Context, force bool) (*domain.RunSummary, error)

	// Status re-probes the backends and returns the storage status.
	Status(ctx context.Context) (*domain.StorageStatus, error)

	// Stop requests a cooperative stop of the in-flight run.
	// Honoured between documents; the current document finishes.
	Stop()
}
