package driven

import (
	"context"

	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
)

// DocumentParser extracts structured text from raw document bytes.
// Each parser handles specific file extensions; the registry dispatches
// by the document's name.
type DocumentParser interface {
	// SupportedExtensions returns the lowercase extensions this parser
	// handles (including the leading dot).
	SupportedExtensions() []string

	// Parse extracts text and structure from raw content.
	// Returns domain.ErrCorruptDocument when the bytes cannot be decoded.
	Parse(ctx context.Context, content []byte, name string) (*domain.ParsedDocument, error)
}

// ParserRegistry selects a parser for a document by name.
type ParserRegistry interface {
	// Parse dispatches to the parser registered for the document's
	// extension. Returns domain.ErrUnsupportedFormat when none matches.
	Parse(ctx context.Context, content []byte, name string) (*domain.ParsedDocument, error)
}
