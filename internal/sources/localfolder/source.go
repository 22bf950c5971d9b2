package localfolder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
	"github.com/peopleops-labs/pir-analyzer/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.DocumentSource = (*Source)(nil)

// Source lists and reads meeting-record documents from a local folder.
// Document identity is the absolute file path.
type Source struct {
	dir string
}

// New creates a local folder source rooted at dir.
// The directory does not need to exist yet; List reports
// domain.ErrSourceUnavailable until it does.
func New(dir string) (*Source, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: docs directory is required", domain.ErrInvalidInput)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving docs directory: %w", err)
	}
	return &Source{dir: abs}, nil
}

// Kind returns the backend kind identifier.
func (s *Source) Kind() domain.SourceKind {
	return domain.SourceLocal
}

// Dir returns the absolute docs directory path.
func (s *Source) Dir() string {
	return s.dir
}

// List enumerates supported documents in the folder.
// Hidden files and subdirectories are skipped.
func (s *Source) List(ctx context.Context) ([]domain.DocumentRef, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", domain.ErrSourceUnavailable, s.dir, err)
	}

	refs := make([]domain.DocumentRef, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "~$") {
			continue
		}
		if !domain.IsSupportedFile(name) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// File vanished between listing and stat; skip it.
			continue
		}

		refs = append(refs, domain.DocumentRef{
			ID:         filepath.Join(s.dir, name),
			Name:       name,
			Kind:       domain.SourceLocal,
			ModifiedAt: info.ModTime(),
			Size:       info.Size(),
		})
	}
	return refs, nil
}

// Fetch reads the full content of a listed document.
func (s *Source) Fetch(ctx context.Context, ref domain.DocumentRef) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(ref.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrDocumentUnavailable, ref.Name, err)
	}
	return data, nil
}

// Probe reports whether the docs directory is readable.
func (s *Source) Probe(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	info, err := os.Stat(s.dir)
	return err == nil && info.IsDir()
}

// Close releases resources. The local source holds none.
func (s *Source) Close() error {
	return nil
}
