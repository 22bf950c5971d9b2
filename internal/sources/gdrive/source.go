package gdrive

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
	"github.com/peopleops-labs/pir-analyzer/internal/core/ports/driven"
)

// MIME types of the supported meeting-record formats.
const (
	mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeDoc  = "application/msword"
	mimePDF  = "application/pdf"
)

// pageSize is the files.list page size.
const pageSize = 100

// maxFileSize bounds a single download (20MB).
const maxFileSize = 20 * 1024 * 1024

// Drive API quota is 12000 queries per minute per user; stay far below it.
const requestsPerSecond = 5

// Ensure Source implements the interface.
var _ driven.DocumentSource = (*Source)(nil)

// Source lists and downloads meeting-record documents from Google Drive.
// Document identity is the Drive file ID.
type Source struct {
	svc      *drive.Service
	folderID string
	limiter  *rate.Limiter
}

// New creates a Drive source from a stored OAuth token.
// folderID optionally restricts listing to one folder.
func New(ctx context.Context, ts oauth2.TokenSource, folderID string) (*Source, error) {
	svc, err := drive.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("%w: creating drive service: %w", domain.ErrSourceUnavailable, err)
	}

	return &Source{
		svc:      svc,
		folderID: folderID,
		limiter:  rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
	}, nil
}

// Kind returns the backend kind identifier.
func (s *Source) Kind() domain.SourceKind {
	return domain.SourceDrive
}

// List enumerates supported documents, following pagination.
func (s *Source) List(ctx context.Context) ([]domain.DocumentRef, error) {
	var refs []domain.DocumentRef

	pageToken := ""
	for {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		call := s.svc.Files.List().
			Q(listQuery(s.folderID)).
			Fields("nextPageToken, files(id, name, mimeType, modifiedTime, size)").
			PageSize(pageSize).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		page, err := call.Do()
		if err != nil {
			return nil, wrapListError(err)
		}

		for _, file := range page.Files {
			if !domain.IsSupportedFile(file.Name) {
				continue
			}
			refs = append(refs, fileToRef(file))
		}

		if page.NextPageToken == "" {
			return refs, nil
		}
		pageToken = page.NextPageToken
	}
}

// Fetch downloads the full content of a listed document.
func (s *Source) Fetch(ctx context.Context, ref domain.DocumentRef) ([]byte, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := s.svc.Files.Get(ref.ID).Context(ctx).Download()
	if err != nil {
		return nil, wrapFetchError(ref.Name, err)
	}
	defer resp.Body.Close()

	return readDocument(resp.Body, ref.Name)
}

// readDocument reads a download body, rejecting documents over maxFileSize.
// A truncated document would fingerprint and analyse as a different record,
// so oversized files fail the fetch instead.
func readDocument(r io.Reader, name string) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxFileSize+1))
	if err != nil {
		return nil, wrapFetchError(name, err)
	}
	if len(data) > maxFileSize {
		return nil, fmt.Errorf("%w: %s exceeds the %d MB size limit",
			domain.ErrDocumentUnavailable, name, maxFileSize/(1024*1024))
	}
	return data, nil
}

// Probe checks that the Drive API answers with the current credentials.
func (s *Source) Probe(ctx context.Context) bool {
	if err := s.limiter.Wait(ctx); err != nil {
		return false
	}

	_, err := s.svc.About.Get().Fields("user").Context(ctx).Do()
	return err == nil
}

// Close releases resources. The underlying HTTP client needs none.
func (s *Source) Close() error {
	return nil
}

// listQuery builds the files.list query for supported formats.
func listQuery(folderID string) string {
	var sb strings.Builder
	sb.WriteString("(mimeType = '" + mimeDocx + "'")
	sb.WriteString(" or mimeType = '" + mimeDoc + "'")
	sb.WriteString(" or mimeType = '" + mimePDF + "')")
	sb.WriteString(" and trashed = false")
	if folderID != "" {
		sb.WriteString(" and '" + folderID + "' in parents")
	}
	return sb.String()
}

// fileToRef converts a Drive file to a document reference.
func fileToRef(file *drive.File) domain.DocumentRef {
	modified, _ := time.Parse(time.RFC3339, file.ModifiedTime)
	return domain.DocumentRef{
		ID:         file.Id,
		Name:       file.Name,
		Kind:       domain.SourceDrive,
		ModifiedAt: modified,
		Size:       file.Size,
	}
}
