package gdrive

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"

	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
)

// wrapListError maps a Drive API error to the source-unavailable class.
// Any failure to enumerate means the backend cannot serve this run.
func wrapListError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: drive listing: %w", domain.ErrSourceUnavailable, describe(err))
}

// wrapFetchError maps a Drive API error for a single file download.
// A 404 means the file vanished between listing and fetch; auth and
// server errors also surface as per-document failures so the run
// continues with the remaining documents.
func wrapFetchError(name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrDocumentUnavailable, name, describe(err))
}

// describe replaces opaque googleapi errors with a short, stable message.
func describe(err error) error {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return err
	}

	switch gerr.Code {
	case http.StatusUnauthorized:
		return fmt.Errorf("unauthorised (invalid or expired token): %w", err)
	case http.StatusForbidden:
		return fmt.Errorf("forbidden (insufficient permissions): %w", err)
	case http.StatusNotFound:
		return fmt.Errorf("not found: %w", err)
	case http.StatusTooManyRequests:
		return fmt.Errorf("rate limit exceeded: %w", err)
	default:
		return err
	}
}
