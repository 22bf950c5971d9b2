package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
)

// fakeSource is an in-memory document source for orchestrator tests.
type fakeSource struct {
	mu       sync.Mutex
	kind     domain.SourceKind
	docs     map[string][]byte
	mtimes   map[string]time.Time
	listErr  error
	fetchErr map[string]error
	probeOK  bool
	fetches  int
}

func newFakeSource(kind domain.SourceKind) *fakeSource {
	return &fakeSource{
		kind:     kind,
		docs:     make(map[string][]byte),
		mtimes:   make(map[string]time.Time),
		fetchErr: make(map[string]error),
		probeOK:  true,
	}
}

func (f *fakeSource) add(name string, content []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docs[name] = content
	f.mtimes[name] = time.Now()
}

func (f *fakeSource) Kind() domain.SourceKind { return f.kind }

func (f *fakeSource) List(_ context.Context) ([]domain.DocumentRef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	refs := make([]domain.DocumentRef, 0, len(f.docs))
	for name, content := range f.docs {
		refs = append(refs, domain.DocumentRef{
			ID:         "/docs/" + name,
			Name:       name,
			Kind:       f.kind,
			ModifiedAt: f.mtimes[name],
			Size:       int64(len(content)),
		})
	}
	return refs, nil
}

func (f *fakeSource) Fetch(_ context.Context, ref domain.DocumentRef) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	if err := f.fetchErr[ref.Name]; err != nil {
		return nil, err
	}
	content, ok := f.docs[ref.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrDocumentUnavailable, ref.Name)
	}
	return content, nil
}

func (f *fakeSource) Probe(_ context.Context) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.probeOK
}

func (f *fakeSource) Close() error { return nil }

// fakeParser treats content as plain text.
type fakeParser struct {
	failFor map[string]error
}

func newFakeParser() *fakeParser {
	return &fakeParser{failFor: make(map[string]error)}
}

func (p *fakeParser) Parse(_ context.Context, content []byte, name string) (*domain.ParsedDocument, error) {
	if err := p.failFor[name]; err != nil {
		return nil, err
	}
	text := string(content)
	return &domain.ParsedDocument{
		EmployeeName: strings.TrimSuffix(name, ".docx"),
		Text:         text,
		Sections:     map[string][]string{"intro": {text}},
		WordCount:    len(strings.Fields(text)),
	}, nil
}

// fakeAnalyzer detects a meeting when the text mentions one.
type fakeAnalyzer struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (a *fakeAnalyzer) Analyze(_ context.Context, doc *domain.ParsedDocument) (*domain.AnalysisResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls++
	if a.err != nil {
		return nil, a.err
	}
	detected := strings.Contains(strings.ToLower(doc.Text), "встреч")
	result := &domain.AnalysisResult{
		EmployeeName:    doc.EmployeeName,
		MeetingDetected: detected,
		Confidence:      0.9,
		Method:          domain.MethodHeuristic,
	}
	if !detected {
		result.AttentionRequired = true
		result.AttentionReason = "no meeting evidence"
	}
	return result, nil
}

func (a *fakeAnalyzer) callCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls
}
