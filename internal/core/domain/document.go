package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// SourceKind identifies which storage backend produced a document.
type SourceKind string

const (
	// SourceLocal is the local docs folder backend.
	SourceLocal SourceKind = "local"

	// SourceDrive is the Google Drive backend.
	SourceDrive SourceKind = "drive"
)

// SupportedExtensions lists the meeting-record formats the system ingests.
var SupportedExtensions = []string{".docx", ".doc", ".pdf"}

// IsSupportedFile reports whether a file name has a supported extension.
func IsSupportedFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range SupportedExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// DocumentRef is an immutable snapshot of a listed document.
// Identity is the path (local) or file ID (drive) at listing time.
type DocumentRef struct {
	// ID is the stable identity within the backend: an absolute path for
	// local files, a Drive file ID for remote files.
	ID string

	// Name is the display file name.
	Name string

	// Kind identifies the backend that listed this document.
	Kind SourceKind

	// ModifiedAt is the backend-reported modification time.
	ModifiedAt time.Time

	// Size is the content size in bytes, when the backend reports one.
	Size int64
}

// SyncRecord maps a document identity to its last-known state.
// Created on first successful processing, updated on every reprocessing.
// Records are never auto-deleted; pruning of orphans is a policy decision
// (see Settings.PruneOrphans).
type SyncRecord struct {
	// DocumentID is the document identity this record tracks.
	DocumentID string

	// Name is the display name at last processing, kept for reporting.
	Name string

	// Fingerprint is the content digest at last successful processing.
	// It is written only after the analysis step completed without error.
	Fingerprint Fingerprint

	// ResultID points at the AnalysisResult stored for this content.
	ResultID string

	// ModifiedAt is the backend-reported mtime at last processing.
	// Used only as a pre-fetch fast path; never as the change signal.
	ModifiedAt time.Time

	// Size is the content size at last processing.
	Size int64

	// LastSynced is when this record was last written.
	LastSynced time.Time
}

// UpToDate reports whether the recorded fingerprint matches the supplied one.
func (r *SyncRecord) UpToDate(fp Fingerprint) bool {
	return r != nil && r.Fingerprint == fp
}

// StorageStatus describes the active storage backend.
// Refreshed on each selector check; process-wide, not persisted.
type StorageStatus struct {
	// Backend is the currently selected backend kind.
	Backend SourceKind

	// DriveEnabled reports whether the Drive integration is configured on.
	DriveEnabled bool

	// Connected reports whether the active backend answered the last probe.
	Connected bool

	// LocalDir is the configured local docs folder.
	LocalDir string

	// LastSync is when the last successful run finished.
	// Falls back to the newest sync record for display continuity.
	LastSync time.Time
}
