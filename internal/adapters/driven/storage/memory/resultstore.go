package memory

import (
	"context"
	"sync"

	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
	"github.com/peopleops-labs/pir-analyzer/internal/core/ports/driven"
)

// Ensure ResultStore implements the interface.
var _ driven.ResultStore = (*ResultStore)(nil)

// ResultStore is an in-memory implementation of driven.ResultStore.
type ResultStore struct {
	mu      sync.RWMutex
	results map[string]domain.AnalysisResult
}

// NewResultStore creates a new in-memory result store.
func NewResultStore() *ResultStore {
	return &ResultStore{
		results: make(map[string]domain.AnalysisResult),
	}
}

// Save stores a result.
func (s *ResultStore) Save(_ context.Context, result *domain.AnalysisResult) error {
	if result == nil || result.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[result.ID] = *result
	return nil
}

// Get retrieves a result by ID.
func (s *ResultStore) Get(_ context.Context, id string) (*domain.AnalysisResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res, ok := s.results[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &res, nil
}

// ListAttention returns results currently flagged for HR attention.
func (s *ResultStore) ListAttention(_ context.Context) ([]domain.AnalysisResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var flagged []domain.AnalysisResult
	for _, res := range s.results {
		if res.AttentionRequired {
			flagged = append(flagged, res)
		}
	}
	return flagged, nil
}
