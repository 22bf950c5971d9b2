package domain

import "time"

// RunFailure records one per-document failure surfaced in the summary.
// Failures are never silently dropped.
type RunFailure struct {
	// DocumentID identifies the failed document.
	DocumentID string

	// Name is the document display name.
	Name string

	// Reason is the failure description.
	Reason string
}

// AttentionCase records one document flagged for HR follow-up.
type AttentionCase struct {
	// Employee is the employee name from the record.
	Employee string

	// Name is the document display name.
	Name string

	// Reason explains why the case needs attention.
	Reason string
}

// RunSummary aggregates the statistics of one analysis run.
// Created fresh per invocation; immutable once returned.
type RunSummary struct {
	// Found is the total number of documents listed.
	Found int

	// Processed is the number of documents analysed this run.
	Processed int

	// Skipped is the number of documents left untouched (unchanged).
	Skipped int

	// Errors is the number of per-document failures.
	Errors int

	// MeetingsDetected counts processed records describing a held meeting.
	MeetingsDetected int

	// MeetingsMissed counts processed records with no meeting evidence.
	MeetingsMissed int

	// AttentionRequired counts records flagged for HR follow-up.
	AttentionRequired int

	// AttentionCases lists the flagged cases for reporting.
	AttentionCases []AttentionCase

	// Failures lists the per-document failures for user visibility.
	Failures []RunFailure

	// Pruned is the number of orphaned sync records removed, when the
	// prune policy is enabled.
	Pruned int

	// Aborted reports that the run never reached the document loop.
	// Distinguishes "source unreachable" from "nothing changed".
	Aborted bool

	// Backend is the storage backend this run used.
	Backend SourceKind

	// StartedAt is when the run began.
	StartedAt time.Time

	// FinishedAt is when the run completed or aborted.
	FinishedAt time.Time
}
