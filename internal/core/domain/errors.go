package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Run Errors.

	// ErrSourceUnavailable indicates the storage backend cannot be reached.
	// Fatal to a run: the run aborts with no partial summary beyond zero.
	ErrSourceUnavailable = errors.New("document source unavailable")

	// ErrRunInProgress indicates an analysis run is already active.
	// Concurrent invocations are rejected immediately with no state change.
	ErrRunInProgress = errors.New("analysis run already in progress")

	// Per-Document Errors.
	// Recovered locally: the document is counted as an error and the
	// run continues with the next document.

	// ErrDocumentUnavailable indicates a listed document vanished or became
	// unreadable between listing and fetch.
	ErrDocumentUnavailable = errors.New("document unavailable")

	// ErrUnsupportedFormat indicates no parser handles the document format.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrCorruptDocument indicates the document bytes could not be parsed.
	ErrCorruptDocument = errors.New("corrupt document")

	// ErrAnalysisUnavailable indicates the analyzer could not produce a
	// result. The analyzer factory degrades to the heuristic fallback
	// before this surfaces to the orchestrator.
	ErrAnalysisUnavailable = errors.New("analysis unavailable")
)
