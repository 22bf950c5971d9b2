package gdrive

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"

	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
)

// TokenFromFile loads a stored OAuth token and returns a TokenSource.
// The file is written by an external authorisation flow; this code only
// consumes it. A missing or unreadable file maps to ErrSourceUnavailable
// so the selector falls back to the local folder.
func TokenFromFile(path string) (oauth2.TokenSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading token file %s: %w", domain.ErrSourceUnavailable, path, err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("%w: parsing token file %s: %w", domain.ErrSourceUnavailable, path, err)
	}
	if token.AccessToken == "" && token.RefreshToken == "" {
		return nil, fmt.Errorf("%w: token file %s holds no credentials", domain.ErrSourceUnavailable, path)
	}

	return oauth2.StaticTokenSource(&token), nil
}
