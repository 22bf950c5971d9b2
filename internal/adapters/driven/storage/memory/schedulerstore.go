package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
	"github.com/peopleops-labs/pir-analyzer/internal/core/ports/driven"
)

// Ensure SchedulerStore implements the interface.
var _ driven.SchedulerStore = (*SchedulerStore)(nil)

// SchedulerStore is an in-memory implementation of driven.SchedulerStore.
type SchedulerStore struct {
	mu      sync.RWMutex
	tasks   map[string]domain.ScheduledTask
	history []domain.TaskResult
}

// NewSchedulerStore creates a new in-memory scheduler store.
func NewSchedulerStore() *SchedulerStore {
	return &SchedulerStore{
		tasks: make(map[string]domain.ScheduledTask),
	}
}

// GetTask retrieves a scheduled task by ID.
func (s *SchedulerStore) GetTask(_ context.Context, taskID string) (*domain.ScheduledTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	task, ok := s.tasks[taskID]
	if !ok {
		return nil, nil
	}
	return &task, nil
}

// ListTasks returns all scheduled tasks.
func (s *SchedulerStore) ListTasks(_ context.Context) ([]domain.ScheduledTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tasks := make([]domain.ScheduledTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// SaveTask persists a task's state.
func (s *SchedulerStore) SaveTask(_ context.Context, task *domain.ScheduledTask) error {
	if task == nil || task.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[task.ID] = *task
	return nil
}

// RecordResult logs a task execution result.
func (s *SchedulerStore) RecordResult(_ context.Context, result *domain.TaskResult) error {
	if result == nil {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, *result)
	return nil
}

// GetTaskHistory returns recent results for a task, most recent first.
func (s *SchedulerStore) GetTaskHistory(_ context.Context, taskID string, limit int) ([]domain.TaskResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []domain.TaskResult
	for _, res := range s.history {
		if res.TaskID == taskID {
			results = append(results, res)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].StartedAt.After(results[j].StartedAt)
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// PruneHistory keeps the most recent 'keep' results per task.
func (s *SchedulerStore) PruneHistory(_ context.Context, keep int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byTask := make(map[string][]domain.TaskResult)
	for _, res := range s.history {
		byTask[res.TaskID] = append(byTask[res.TaskID], res)
	}

	var pruned []domain.TaskResult
	for _, results := range byTask {
		sort.Slice(results, func(i, j int) bool {
			return results[i].StartedAt.After(results[j].StartedAt)
		})
		if keep > 0 && len(results) > keep {
			results = results[:keep]
		}
		pruned = append(pruned, results...)
	}
	s.history = pruned
	return nil
}
