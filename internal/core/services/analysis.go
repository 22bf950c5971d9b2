package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
	"github.com/peopleops-labs/pir-analyzer/internal/core/ports/driven"
	"github.com/peopleops-labs/pir-analyzer/internal/core/ports/driving"
	"github.com/peopleops-labs/pir-analyzer/internal/logger"
)

// Ensure AnalysisService implements the interface.
var _ driving.AnalysisRunner = (*AnalysisService)(nil)

// AnalysisService orchestrates one analysis pass: list documents from the
// active source, detect changes via content fingerprints, and analyse
// what changed.
//
// Per run: INIT -> LISTING -> per document CHECK -> [SKIP | FETCH ->
// PARSE -> ANALYZE -> STORE] -> AGGREGATE -> DONE. Only a listing failure
// aborts the run; per-document failures are counted and the loop continues.
type AnalysisService struct {
	selector    *StorageSelector
	syncStore   driven.SyncStore
	resultStore driven.ResultStore
	parser      driven.ParserRegistry
	analyzer    driven.Analyzer

	pruneOrphans        bool
	confidenceThreshold float64

	running atomic.Bool
	stopped atomic.Bool
}

// NewAnalysisService creates the orchestrator.
// Results below confidenceThreshold are flagged for HR attention even when
// the analyzer itself raised no flag.
func NewAnalysisService(
	selector *StorageSelector,
	syncStore driven.SyncStore,
	resultStore driven.ResultStore,
	parser driven.ParserRegistry,
	analyzer driven.Analyzer,
	pruneOrphans bool,
	confidenceThreshold float64,
) *AnalysisService {
	return &AnalysisService{
		selector:            selector,
		syncStore:           syncStore,
		resultStore:         resultStore,
		parser:              parser,
		analyzer:            analyzer,
		pruneOrphans:        pruneOrphans,
		confidenceThreshold: confidenceThreshold,
	}
}

// Run performs one analysis pass over the active source.
// At most one run is active at a time; concurrent invocations are
// rejected with domain.ErrRunInProgress before any state is touched.
func (s *AnalysisService) Run(ctx context.Context, force bool) (*domain.RunSummary, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, domain.ErrRunInProgress
	}
	defer s.running.Store(false)
	s.stopped.Store(false)

	summary := &domain.RunSummary{StartedAt: time.Now()}

	// The source is a snapshot for the whole pass; Refresh may run
	// concurrently but never swaps it under us.
	source := s.selector.ActiveSource(ctx)
	summary.Backend = source.Kind()

	logger.Section("Analysis run")
	logger.Info("Starting run on %s backend (force=%t)", source.Kind(), force)

	refs, err := source.List(ctx)
	if err != nil {
		summary.Aborted = true
		summary.FinishedAt = time.Now()
		return summary, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}

	summary.Found = len(refs)
	seen := make(map[string]bool, len(refs))

	for _, ref := range refs {
		seen[ref.ID] = true

		// Cooperative stop, honoured between documents.
		if s.stopped.Load() || ctx.Err() != nil {
			logger.Info("Run stopped before %s", ref.Name)
			break
		}

		s.processDocument(ctx, source, ref, force, summary)
	}

	if s.pruneOrphans && !s.stopped.Load() {
		summary.Pruned = s.pruneOrphanRecords(ctx, seen)
	}

	s.selector.MarkSynced(time.Now())
	summary.FinishedAt = time.Now()

	logger.Info("Run complete: %d found, %d processed, %d skipped, %d errors",
		summary.Found, summary.Processed, summary.Skipped, summary.Errors)
	return summary, nil
}

// Status re-probes the backends and returns the storage status.
func (s *AnalysisService) Status(ctx context.Context) (*domain.StorageStatus, error) {
	return s.selector.Refresh(ctx), nil
}

// Stop requests a cooperative stop of the in-flight run.
func (s *AnalysisService) Stop() {
	s.stopped.Store(true)
}

// processDocument handles CHECK -> [SKIP | FETCH -> PARSE -> ANALYZE ->
// STORE] for one document. Failures are folded into the summary; the
// caller moves on to the next document.
func (s *AnalysisService) processDocument(
	ctx context.Context,
	source driven.DocumentSource,
	ref domain.DocumentRef,
	force bool,
	summary *domain.RunSummary,
) {
	record, err := s.syncStore.Get(ctx, ref.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.recordFailure(summary, ref, fmt.Errorf("read sync record: %w", err))
		return
	}

	// Fast path: skip the fetch entirely when the backend-reported mtime
	// and size are unchanged. An optimisation only; the fingerprint below
	// stays the sole change signal whenever bytes are fetched.
	if !force && record != nil && !ref.ModifiedAt.IsZero() &&
		ref.ModifiedAt.Equal(record.ModifiedAt) && ref.Size == record.Size {
		logger.Debug("Unchanged (mtime): %s", ref.Name)
		summary.Skipped++
		return
	}

	content, err := source.Fetch(ctx, ref)
	if err != nil {
		s.recordFailure(summary, ref, fmt.Errorf("fetch: %w", err))
		return
	}

	fingerprint := domain.NewFingerprint(content)
	if !force && record.UpToDate(fingerprint) {
		logger.Debug("Unchanged: %s (hash %s)", ref.Name, fingerprint.Short())
		summary.Skipped++
		return
	}

	parsed, err := s.parser.Parse(ctx, content, ref.Name)
	if err != nil {
		s.recordFailure(summary, ref, fmt.Errorf("parse: %w", err))
		return
	}

	result, err := s.analyzer.Analyze(ctx, parsed)
	if err != nil {
		s.recordFailure(summary, ref, fmt.Errorf("analyze: %w", err))
		return
	}
	if result.ID == "" {
		result.ID = uuid.New().String()
	}
	result.DocumentID = ref.ID
	if result.AnalyzedAt.IsZero() {
		result.AnalyzedAt = time.Now()
	}
	if result.Confidence < s.confidenceThreshold && !result.AttentionRequired {
		result.AttentionRequired = true
		result.AttentionReason = "low confidence analysis"
	}

	// The result is stored before the sync record so a crash between the
	// two writes leaves the document "needs processing" rather than a
	// record pointing at a missing result.
	if err := s.resultStore.Save(ctx, result); err != nil {
		s.recordFailure(summary, ref, fmt.Errorf("save result: %w", err))
		return
	}

	if err := s.syncStore.Save(ctx, domain.SyncRecord{
		DocumentID:  ref.ID,
		Name:        ref.Name,
		Fingerprint: fingerprint,
		ResultID:    result.ID,
		ModifiedAt:  ref.ModifiedAt,
		Size:        ref.Size,
		LastSynced:  time.Now(),
	}); err != nil {
		s.recordFailure(summary, ref, fmt.Errorf("save sync record: %w", err))
		return
	}

	summary.Processed++
	if result.MeetingDetected {
		summary.MeetingsDetected++
	} else {
		summary.MeetingsMissed++
	}
	if result.AttentionRequired {
		summary.AttentionRequired++
		summary.AttentionCases = append(summary.AttentionCases, domain.AttentionCase{
			Employee: result.EmployeeName,
			Name:     ref.Name,
			Reason:   result.AttentionReason,
		})
	}
	logger.Debug("Processed: %s (hash %s)", ref.Name, fingerprint.Short())
}

// recordFailure counts a per-document failure and keeps its reason in the
// summary for user visibility.
func (s *AnalysisService) recordFailure(summary *domain.RunSummary, ref domain.DocumentRef, err error) {
	logger.Warn("Failed to process %s: %v", ref.Name, err)
	summary.Errors++
	summary.Failures = append(summary.Failures, domain.RunFailure{
		DocumentID: ref.ID,
		Name:       ref.Name,
		Reason:     err.Error(),
	})
}

// pruneOrphanRecords deletes sync records whose document was absent from
// this run's listing. Only runs when the prune policy is enabled.
func (s *AnalysisService) pruneOrphanRecords(ctx context.Context, seen map[string]bool) int {
	records, err := s.syncStore.List(ctx)
	if err != nil {
		logger.Warn("Failed to list sync records for pruning: %v", err)
		return 0
	}

	pruned := 0
	for _, rec := range records {
		if seen[rec.DocumentID] {
			continue
		}
		if err := s.syncStore.Delete(ctx, rec.DocumentID); err != nil {
			logger.Warn("Failed to prune record %s: %v", rec.DocumentID, err)
			continue
		}
		logger.Debug("Pruned orphaned record: %s", rec.Name)
		pruned++
	}
	return pruned
}
