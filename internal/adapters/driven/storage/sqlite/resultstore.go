package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
	"github.com/peopleops-labs/pir-analyzer/internal/core/ports/driven"
)

// resultStore implements driven.ResultStore backed by SQLite.
// Evidence fragments are stored as a JSON array in a text column.
type resultStore struct {
	store *Store
}

var _ driven.ResultStore = (*resultStore)(nil)

func (s *resultStore) Save(ctx context.Context, result *domain.AnalysisResult) error {
	if result == nil || result.ID == "" {
		return fmt.Errorf("%w: result with ID is required", domain.ErrInvalidInput)
	}

	evidence, err := json.Marshal(result.Evidence)
	if err != nil {
		return fmt.Errorf("encoding evidence: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO analysis_results (
			id, document_id, employee_name, meeting_detected,
			attention_required, attention_reason, evidence,
			confidence, method, analyzed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			document_id = excluded.document_id,
			employee_name = excluded.employee_name,
			meeting_detected = excluded.meeting_detected,
			attention_required = excluded.attention_required,
			attention_reason = excluded.attention_reason,
			evidence = excluded.evidence,
			confidence = excluded.confidence,
			method = excluded.method,
			analyzed_at = excluded.analyzed_at
	`,
		result.ID,
		result.DocumentID,
		result.EmployeeName,
		boolToInt(result.MeetingDetected),
		boolToInt(result.AttentionRequired),
		result.AttentionReason,
		string(evidence),
		result.Confidence,
		string(result.Method),
		formatNullableTime(result.AnalyzedAt),
	)
	if err != nil {
		return fmt.Errorf("saving analysis result: %w", err)
	}
	return nil
}

func (s *resultStore) Get(ctx context.Context, id string) (*domain.AnalysisResult, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: result ID is required", domain.ErrInvalidInput)
	}

	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, document_id, employee_name, meeting_detected,
		       attention_required, attention_reason, evidence,
		       confidence, method, analyzed_at
		FROM analysis_results WHERE id = ?
	`, id)

	result, err := scanAnalysisResult(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: analysis result %s", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("querying analysis result: %w", err)
	}
	return result, nil
}

func (s *resultStore) ListAttention(ctx context.Context) ([]domain.AnalysisResult, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, document_id, employee_name, meeting_detected,
		       attention_required, attention_reason, evidence,
		       confidence, method, analyzed_at
		FROM analysis_results
		WHERE attention_required = 1
		ORDER BY analyzed_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing attention results: %w", err)
	}
	defer rows.Close()

	var results []domain.AnalysisResult
	for rows.Next() {
		result, err := scanAnalysisResult(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning analysis result: %w", err)
		}
		results = append(results, *result)
	}
	return results, rows.Err()
}

func scanAnalysisResult(row scanner) (*domain.AnalysisResult, error) {
	var (
		result            domain.AnalysisResult
		meetingDetected   int
		attentionRequired int
		evidence          string
		method            string
		analyzedAt        sql.NullString
	)

	err := row.Scan(
		&result.ID,
		&result.DocumentID,
		&result.EmployeeName,
		&meetingDetected,
		&attentionRequired,
		&result.AttentionReason,
		&evidence,
		&result.Confidence,
		&method,
		&analyzedAt,
	)
	if err != nil {
		return nil, err
	}

	result.MeetingDetected = meetingDetected != 0
	result.AttentionRequired = attentionRequired != 0
	result.Method = domain.AnalysisMethod(method)
	result.AnalyzedAt = parseNullableTime(analyzedAt)

	if evidence != "" && evidence != jsonNull {
		if err := json.Unmarshal([]byte(evidence), &result.Evidence); err != nil {
			return nil, fmt.Errorf("decoding evidence: %w", err)
		}
	}
	return &result, nil
}
