package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopleops-labs/pir-analyzer/internal/adapters/driven/storage/memory"
	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
)

// fakeRunner counts Run invocations.
type fakeRunner struct {
	mu      sync.Mutex
	runs    int
	err     error
	summary *domain.RunSummary
}

func (f *fakeRunner) Run(_ context.Context, _ bool) (*domain.RunSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runs++
	if f.err != nil {
		return nil, f.err
	}
	if f.summary != nil {
		return f.summary, nil
	}
	return &domain.RunSummary{Processed: 3}, nil
}

func (f *fakeRunner) Status(_ context.Context) (*domain.StorageStatus, error) {
	return &domain.StorageStatus{}, nil
}

func (f *fakeRunner) Stop() {}

func (f *fakeRunner) runCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.runs
}

func TestScheduler_EnsuresTaskOnStart(t *testing.T) {
	store := memory.NewSchedulerStore()
	scheduler := NewScheduler(5*time.Minute, store, &fakeRunner{})
	scheduler.tick = 10 * time.Millisecond

	done := make(chan error, 1)
	go func() { done <- scheduler.Start(context.Background()) }()

	require.Eventually(t, func() bool {
		task, err := store.GetTask(context.Background(), domain.TaskIDAnalysis)
		return err == nil && task != nil
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, scheduler.Stop())
	assert.NoError(t, <-done)

	task, err := store.GetTask(context.Background(), domain.TaskIDAnalysis)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, task.Interval)
	assert.True(t, task.Enabled)
	assert.False(t, task.NextRun.IsZero())
}

func TestScheduler_RunsDueTask(t *testing.T) {
	store := memory.NewSchedulerStore()
	runner := &fakeRunner{}

	// Seed an overdue task so the first check fires immediately.
	require.NoError(t, store.SaveTask(context.Background(), &domain.ScheduledTask{
		ID:       domain.TaskIDAnalysis,
		Name:     "Document Analysis",
		Interval: 5 * time.Minute,
		NextRun:  time.Now().Add(-time.Minute),
		Enabled:  true,
	}))

	scheduler := NewScheduler(5*time.Minute, store, runner)
	scheduler.tick = 10 * time.Millisecond

	done := make(chan error, 1)
	go func() { done <- scheduler.Start(context.Background()) }()

	require.Eventually(t, func() bool {
		return runner.runCount() >= 1
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, scheduler.Stop())
	<-done

	task, err := store.GetTask(context.Background(), domain.TaskIDAnalysis)
	require.NoError(t, err)
	assert.False(t, task.LastRun.IsZero())
	assert.False(t, task.LastSuccess.IsZero())
	assert.Empty(t, task.LastError)
	assert.True(t, task.NextRun.After(time.Now()))

	history, err := store.GetTaskHistory(context.Background(), domain.TaskIDAnalysis, 10)
	require.NoError(t, err)
	require.NotEmpty(t, history)
	assert.True(t, history[0].Success)
	assert.Equal(t, 3, history[0].ItemsProcessed)
}

func TestScheduler_RecordsFailure(t *testing.T) {
	store := memory.NewSchedulerStore()
	runner := &fakeRunner{err: errors.New("source unavailable")}

	require.NoError(t, store.SaveTask(context.Background(), &domain.ScheduledTask{
		ID:       domain.TaskIDAnalysis,
		Interval: 5 * time.Minute,
		NextRun:  time.Now().Add(-time.Minute),
		Enabled:  true,
	}))

	scheduler := NewScheduler(5*time.Minute, store, runner)
	scheduler.tick = 10 * time.Millisecond

	done := make(chan error, 1)
	go func() { done <- scheduler.Start(context.Background()) }()

	require.Eventually(t, func() bool {
		task, err := store.GetTask(context.Background(), domain.TaskIDAnalysis)
		return err == nil && task != nil && task.LastError != ""
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, scheduler.Stop())
	<-done

	task, err := store.GetTask(context.Background(), domain.TaskIDAnalysis)
	require.NoError(t, err)
	assert.Contains(t, task.LastError, "source unavailable")
	assert.True(t, task.LastSuccess.IsZero())
}

func TestScheduler_SkipsDisabledTask(t *testing.T) {
	store := memory.NewSchedulerStore()
	runner := &fakeRunner{}

	require.NoError(t, store.SaveTask(context.Background(), &domain.ScheduledTask{
		ID:       "other-task",
		Interval: time.Minute,
		NextRun:  time.Now().Add(-time.Minute),
		Enabled:  false,
	}))

	scheduler := NewScheduler(5*time.Minute, store, runner)
	scheduler.tick = 10 * time.Millisecond
	scheduler.checkAndRunDueTasks(context.Background())
	scheduler.wg.Wait()

	assert.Zero(t, runner.runCount())
}

func TestScheduler_TriggerNow(t *testing.T) {
	store := memory.NewSchedulerStore()
	require.NoError(t, store.SaveTask(context.Background(), &domain.ScheduledTask{
		ID:       domain.TaskIDAnalysis,
		Interval: time.Hour,
		NextRun:  time.Now().Add(time.Hour),
		Enabled:  true,
	}))

	scheduler := NewScheduler(time.Hour, store, &fakeRunner{})
	scheduler.TriggerNow(context.Background())

	task, err := store.GetTask(context.Background(), domain.TaskIDAnalysis)
	require.NoError(t, err)
	assert.False(t, task.NextRun.After(time.Now()))
}

func TestScheduler_StopIdempotent(t *testing.T) {
	scheduler := NewScheduler(time.Minute, memory.NewSchedulerStore(), &fakeRunner{})

	assert.NoError(t, scheduler.Stop())
	assert.NoError(t, scheduler.Stop())
}
