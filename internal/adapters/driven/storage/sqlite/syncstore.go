package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
	"github.com/peopleops-labs/pir-analyzer/internal/core/ports/driven"
)

// syncStore implements driven.SyncStore backed by SQLite.
type syncStore struct {
	store *Store
}

var _ driven.SyncStore = (*syncStore)(nil)

func (s *syncStore) Get(ctx context.Context, documentID string) (*domain.SyncRecord, error) {
	if documentID == "" {
		return nil, fmt.Errorf("%w: document ID is required", domain.ErrInvalidInput)
	}

	row := s.store.db.QueryRowContext(ctx, `
		SELECT document_id, name, fingerprint, result_id, modified_at, size, last_synced
		FROM sync_records WHERE document_id = ?
	`, documentID)

	record, err := scanSyncRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: sync record %s", domain.ErrNotFound, documentID)
		}
		return nil, fmt.Errorf("querying sync record: %w", err)
	}
	return record, nil
}

func (s *syncStore) Save(ctx context.Context, record domain.SyncRecord) error {
	if record.DocumentID == "" {
		return fmt.Errorf("%w: document ID is required", domain.ErrInvalidInput)
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO sync_records (document_id, name, fingerprint, result_id, modified_at, size, last_synced)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(document_id) DO UPDATE SET
			name = excluded.name,
			fingerprint = excluded.fingerprint,
			result_id = excluded.result_id,
			modified_at = excluded.modified_at,
			size = excluded.size,
			last_synced = excluded.last_synced
	`,
		record.DocumentID,
		record.Name,
		string(record.Fingerprint),
		record.ResultID,
		formatNullableTime(record.ModifiedAt),
		record.Size,
		formatNullableTime(record.LastSynced),
	)
	if err != nil {
		return fmt.Errorf("saving sync record: %w", err)
	}
	return nil
}

func (s *syncStore) List(ctx context.Context) ([]domain.SyncRecord, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT document_id, name, fingerprint, result_id, modified_at, size, last_synced
		FROM sync_records ORDER BY document_id
	`)
	if err != nil {
		return nil, fmt.Errorf("listing sync records: %w", err)
	}
	defer rows.Close()

	var records []domain.SyncRecord
	for rows.Next() {
		record, err := scanSyncRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning sync record: %w", err)
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}

func (s *syncStore) Delete(ctx context.Context, documentID string) error {
	if documentID == "" {
		return fmt.Errorf("%w: document ID is required", domain.ErrInvalidInput)
	}

	_, err := s.store.db.ExecContext(ctx, "DELETE FROM sync_records WHERE document_id = ?", documentID)
	if err != nil {
		return fmt.Errorf("deleting sync record: %w", err)
	}
	return nil
}

// scanner abstracts sql.Row and sql.Rows for shared scan helpers.
type scanner interface {
	Scan(dest ...any) error
}

func scanSyncRecord(row scanner) (*domain.SyncRecord, error) {
	var (
		record      domain.SyncRecord
		fingerprint string
		modifiedAt  sql.NullString
		lastSynced  sql.NullString
	)

	err := row.Scan(
		&record.DocumentID,
		&record.Name,
		&fingerprint,
		&record.ResultID,
		&modifiedAt,
		&record.Size,
		&lastSynced,
	)
	if err != nil {
		return nil, err
	}

	record.Fingerprint = domain.Fingerprint(fingerprint)
	record.ModifiedAt = parseNullableTime(modifiedAt)
	record.LastSynced = parseNullableTime(lastSynced)
	return &record, nil
}
