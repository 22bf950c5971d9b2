package parsers

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
	"github.com/peopleops-labs/pir-analyzer/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.ParserRegistry = (*Registry)(nil)

// Registry dispatches documents to format-specific parsers by extension.
type Registry struct {
	byExt map[string]driven.DocumentParser
}

// NewRegistry creates a registry with the given parsers.
// Later parsers win when extensions overlap.
func NewRegistry(parsers ...driven.DocumentParser) *Registry {
	r := &Registry{byExt: make(map[string]driven.DocumentParser)}
	for _, p := range parsers {
		r.Register(p)
	}
	return r
}

// Register adds a parser for all its supported extensions.
func (r *Registry) Register(parser driven.DocumentParser) {
	for _, ext := range parser.SupportedExtensions() {
		r.byExt[strings.ToLower(ext)] = parser
	}
}

// Parse dispatches to the parser registered for the document's extension.
func (r *Registry) Parse(ctx context.Context, content []byte, name string) (*domain.ParsedDocument, error) {
	ext := strings.ToLower(filepath.Ext(name))
	parser, ok := r.byExt[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, name)
	}
	return parser.Parse(ctx, content, name)
}
