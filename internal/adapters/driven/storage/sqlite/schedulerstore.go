package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
	"github.com/peopleops-labs/pir-analyzer/internal/core/ports/driven"
)

// schedulerStore implements driven.SchedulerStore backed by SQLite.
type schedulerStore struct {
	store *Store
}

var _ driven.SchedulerStore = (*schedulerStore)(nil)

func (s *schedulerStore) GetTask(ctx context.Context, taskID string) (*domain.ScheduledTask, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, name, interval_seconds, last_run, next_run, last_error, last_success, enabled
		FROM scheduled_tasks WHERE id = ?
	`, taskID)

	task, err := scanScheduledTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying task: %w", err)
	}
	return task, nil
}

func (s *schedulerStore) ListTasks(ctx context.Context) ([]domain.ScheduledTask, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, name, interval_seconds, last_run, next_run, last_error, last_success, enabled
		FROM scheduled_tasks ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.ScheduledTask
	for rows.Next() {
		task, err := scanScheduledTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

func (s *schedulerStore) SaveTask(ctx context.Context, task *domain.ScheduledTask) error {
	if task == nil || task.ID == "" {
		return fmt.Errorf("%w: task with ID is required", domain.ErrInvalidInput)
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO scheduled_tasks (id, name, interval_seconds, last_run, next_run, last_error, last_success, enabled)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			interval_seconds = excluded.interval_seconds,
			last_run = excluded.last_run,
			next_run = excluded.next_run,
			last_error = excluded.last_error,
			last_success = excluded.last_success,
			enabled = excluded.enabled
	`,
		task.ID,
		task.Name,
		int64(task.Interval.Seconds()),
		formatNullableTime(task.LastRun),
		formatNullableTime(task.NextRun),
		nullString(task.LastError),
		formatNullableTime(task.LastSuccess),
		boolToInt(task.Enabled),
	)
	if err != nil {
		return fmt.Errorf("saving task: %w", err)
	}
	return nil
}

func (s *schedulerStore) RecordResult(ctx context.Context, result *domain.TaskResult) error {
	if result == nil || result.TaskID == "" {
		return fmt.Errorf("%w: result with task ID is required", domain.ErrInvalidInput)
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO task_results (task_id, started_at, ended_at, success, error, items_processed)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		result.TaskID,
		result.StartedAt.UTC().Format(time.RFC3339),
		result.EndedAt.UTC().Format(time.RFC3339),
		boolToInt(result.Success),
		nullString(result.Error),
		result.ItemsProcessed,
	)
	if err != nil {
		return fmt.Errorf("recording task result: %w", err)
	}
	return nil
}

func (s *schedulerStore) GetTaskHistory(ctx context.Context, taskID string, limit int) ([]domain.TaskResult, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT task_id, started_at, ended_at, success, error, items_processed
		FROM task_results
		WHERE task_id = ?
		ORDER BY started_at DESC
		LIMIT ?
	`, taskID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying task history: %w", err)
	}
	defer rows.Close()

	var results []domain.TaskResult
	for rows.Next() {
		result, err := scanTaskResult(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task result: %w", err)
		}
		results = append(results, *result)
	}
	return results, rows.Err()
}

func (s *schedulerStore) PruneHistory(ctx context.Context, keep int) error {
	_, err := s.store.db.ExecContext(ctx, `
		DELETE FROM task_results WHERE id IN (
			SELECT id FROM (
				SELECT id, ROW_NUMBER() OVER (
					PARTITION BY task_id ORDER BY started_at DESC
				) AS rn
				FROM task_results
			) WHERE rn > ?
		)
	`, keep)
	if err != nil {
		return fmt.Errorf("pruning task history: %w", err)
	}
	return nil
}

func scanScheduledTask(row scanner) (*domain.ScheduledTask, error) {
	var (
		task            domain.ScheduledTask
		intervalSeconds int64
		lastRun         sql.NullString
		nextRun         sql.NullString
		lastError       sql.NullString
		lastSuccess     sql.NullString
		enabled         int
	)

	err := row.Scan(
		&task.ID,
		&task.Name,
		&intervalSeconds,
		&lastRun,
		&nextRun,
		&lastError,
		&lastSuccess,
		&enabled,
	)
	if err != nil {
		return nil, err
	}

	task.Interval = time.Duration(intervalSeconds) * time.Second
	task.LastRun = parseNullableTime(lastRun)
	task.NextRun = parseNullableTime(nextRun)
	task.LastError = lastError.String
	task.LastSuccess = parseNullableTime(lastSuccess)
	task.Enabled = enabled != 0
	return &task, nil
}

func scanTaskResult(row scanner) (*domain.TaskResult, error) {
	var (
		result    domain.TaskResult
		startedAt string
		endedAt   string
		success   int
		errMsg    sql.NullString
	)

	err := row.Scan(
		&result.TaskID,
		&startedAt,
		&endedAt,
		&success,
		&errMsg,
		&result.ItemsProcessed,
	)
	if err != nil {
		return nil, err
	}

	result.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
	result.EndedAt, _ = time.Parse(time.RFC3339, endedAt)
	result.Success = success != 0
	result.Error = errMsg.String
	return &result, nil
}

// formatNullableTime converts a time to an RFC3339 string, or NULL for zero times.
func formatNullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

// parseNullableTime converts a nullable RFC3339 string back to a time.
func parseNullableTime(s sql.NullString) time.Time {
	if !s.Valid || s.String == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return time.Time{}
	}
	return t
}

// nullString converts an empty string to NULL.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// boolToInt converts a bool to a SQLite integer.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
