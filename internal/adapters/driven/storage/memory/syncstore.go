// Package memory provides in-memory store implementations used in tests.
package memory

import (
	"context"
	"sync"

	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
	"github.com/peopleops-labs/pir-analyzer/internal/core/ports/driven"
)

// Ensure SyncStore implements the interface.
var _ driven.SyncStore = (*SyncStore)(nil)

// SyncStore is an in-memory implementation of driven.SyncStore.
type SyncStore struct {
	mu      sync.RWMutex
	records map[string]domain.SyncRecord
}

// NewSyncStore creates a new in-memory sync store.
func NewSyncStore() *SyncStore {
	return &SyncStore{
		records: make(map[string]domain.SyncRecord),
	}
}

// Get retrieves the record for a document identity.
func (s *SyncStore) Get(_ context.Context, documentID string) (*domain.SyncRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[documentID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &rec, nil
}

// Save upserts the record for its document identity.
func (s *SyncStore) Save(_ context.Context, record domain.SyncRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.DocumentID] = record
	return nil
}

// List returns all stored records.
func (s *SyncStore) List(_ context.Context) ([]domain.SyncRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]domain.SyncRecord, 0, len(s.records))
	for _, rec := range s.records {
		records = append(records, rec)
	}
	return records, nil
}

// Delete removes the record for a document identity.
func (s *SyncStore) Delete(_ context.Context, documentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, documentID)
	return nil
}
