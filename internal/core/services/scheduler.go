package services

import (
	"context"
	"sync"
	"time"

	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
	"github.com/peopleops-labs/pir-analyzer/internal/core/ports/driven"
	"github.com/peopleops-labs/pir-analyzer/internal/core/ports/driving"
	"github.com/peopleops-labs/pir-analyzer/internal/logger"
)

// historyRetention is how many task results are kept per task.
const historyRetention = 100

// Scheduler runs the incremental analysis on a fixed interval.
// Task state and execution history are persisted for crash recovery.
type Scheduler struct {
	interval time.Duration
	store    driven.SchedulerStore
	runner   driving.AnalysisRunner

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	wg      sync.WaitGroup

	// tick controls how often due tasks are checked; overridable in tests.
	tick time.Duration
}

// NewScheduler creates a scheduler driving the analysis runner.
func NewScheduler(interval time.Duration, store driven.SchedulerStore, runner driving.AnalysisRunner) *Scheduler {
	return &Scheduler{
		interval: interval,
		store:    store,
		runner:   runner,
		tick:     time.Minute,
	}
}

// Start begins the scheduler loop. This method blocks until Stop is
// called or the context is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil // Already running
	}
	s.running = true
	s.stopCh = make(chan struct{})
	s.mu.Unlock()

	if err := s.ensureTask(ctx); err != nil {
		logger.Warn("Scheduler: failed to initialise task: %v", err)
	}

	return s.run(ctx)
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	close(s.stopCh)
	s.mu.Unlock()

	// Wait for a running task to complete
	s.wg.Wait()
	return nil
}

// TriggerNow schedules the analysis task to run at the next tick.
// Used by the folder watch to react to document changes.
func (s *Scheduler) TriggerNow(ctx context.Context) {
	task, err := s.store.GetTask(ctx, domain.TaskIDAnalysis)
	if err != nil || task == nil {
		return
	}
	task.NextRun = time.Now()
	if err := s.store.SaveTask(ctx, task); err != nil {
		logger.Warn("Scheduler: failed to reschedule task: %v", err)
	}
}

// ensureTask creates or updates the analysis task in the store.
func (s *Scheduler) ensureTask(ctx context.Context) error {
	task, err := s.store.GetTask(ctx, domain.TaskIDAnalysis)
	if err != nil {
		return err
	}

	if task == nil {
		task = &domain.ScheduledTask{
			ID:       domain.TaskIDAnalysis,
			Name:     "Document Analysis",
			Interval: s.interval,
			Enabled:  true,
			NextRun:  time.Now().Add(s.interval),
		}
	} else if task.Interval != s.interval {
		task.Interval = s.interval
		task.NextRun = time.Now().Add(s.interval)
	}

	return s.store.SaveTask(ctx, task)
}

// run is the main scheduler loop.
func (s *Scheduler) run(ctx context.Context) error {
	s.checkAndRunDueTasks(ctx)

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.stopCh:
			return nil
		case <-ticker.C:
			s.checkAndRunDueTasks(ctx)
		}
	}
}

// checkAndRunDueTasks finds and executes tasks that are due.
func (s *Scheduler) checkAndRunDueTasks(ctx context.Context) {
	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		logger.Warn("Scheduler: failed to list tasks: %v", err)
		return
	}

	now := time.Now()
	for i := range tasks {
		task := &tasks[i]
		if !task.Enabled {
			continue
		}
		if task.NextRun.IsZero() || !task.NextRun.After(now) {
			s.runTask(ctx, task)
		}
	}
}

// runTask executes a single task and records the outcome.
func (s *Scheduler) runTask(ctx context.Context, task *domain.ScheduledTask) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		result := &domain.TaskResult{
			TaskID:    task.ID,
			StartedAt: time.Now(),
		}

		summary, err := s.runner.Run(ctx, false)
		if summary != nil {
			result.ItemsProcessed = summary.Processed
		}

		result.EndedAt = time.Now()
		if err != nil {
			result.Success = false
			result.Error = err.Error()
			task.LastError = err.Error()
		} else {
			result.Success = true
			task.LastError = ""
			task.LastSuccess = result.EndedAt
		}

		task.LastRun = result.StartedAt
		task.NextRun = result.EndedAt.Add(task.Interval)

		if saveErr := s.store.SaveTask(ctx, task); saveErr != nil {
			logger.Warn("Scheduler: failed to save task %s: %v", task.ID, saveErr)
		}
		if recordErr := s.store.RecordResult(ctx, result); recordErr != nil {
			logger.Warn("Scheduler: failed to record result for %s: %v", task.ID, recordErr)
		}
		if pruneErr := s.store.PruneHistory(ctx, historyRetention); pruneErr != nil {
			logger.Warn("Scheduler: failed to prune history: %v", pruneErr)
		}
	}()
}
