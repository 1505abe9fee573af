package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/vitalog/internal/db"
	"github.com/alexanderramin/vitalog/internal/domain"
)

// SQLiteRecordRepo implements RecordRepo using a SQLite database.
// Record fields are stored as a JSON blob in the fields column.
type SQLiteRecordRepo struct {
	db db.DBTX
}

// NewSQLiteRecordRepo creates a new SQLiteRecordRepo.
func NewSQLiteRecordRepo(dbtx db.DBTX) *SQLiteRecordRepo {
	return &SQLiteRecordRepo{db: dbtx}
}

func (r *SQLiteRecordRepo) Append(ctx context.Context, d domain.Domain, rec *domain.Record) error {
	if !d.Valid() {
		return &domain.UnknownDomainError{Name: string(d)}
	}
	fields, err := json.Marshal(rec.Fields)
	if err != nil {
		return fmt.Errorf("encoding record fields: %w", err)
	}

	query := `INSERT INTO records (id, domain, created_at, fields) VALUES (?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		rec.ID,
		string(d),
		rec.CreatedAt.Format(time.RFC3339),
		string(fields),
	)
	if err != nil {
		return fmt.Errorf("inserting %s record: %w", d, err)
	}
	return nil
}

func (r *SQLiteRecordRepo) Latest(ctx context.Context, d domain.Domain) (*domain.Record, error) {
	query := `SELECT id, created_at, fields FROM records
		WHERE domain = ? ORDER BY created_at DESC, rowid DESC LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, string(d))
	rec, err := r.scanRecord(row)
	if err != nil {
		return nil, fmt.Errorf("%s record: %w", d, err)
	}
	return rec, nil
}

func (r *SQLiteRecordRepo) All(ctx context.Context, d domain.Domain) ([]*domain.Record, error) {
	query := `SELECT id, created_at, fields FROM records
		WHERE domain = ? ORDER BY created_at, rowid`
	rows, err := r.db.QueryContext(ctx, query, string(d))
	if err != nil {
		return nil, fmt.Errorf("listing %s records: %w", d, err)
	}
	defer rows.Close()
	return r.scanRecords(rows)
}

func (r *SQLiteRecordRepo) Since(ctx context.Context, d domain.Domain, cutoff time.Time) ([]*domain.Record, error) {
	query := `SELECT id, created_at, fields FROM records
		WHERE domain = ? AND created_at >= ? ORDER BY created_at, rowid`
	rows, err := r.db.QueryContext(ctx, query, string(d), cutoff.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing %s records since %s: %w", d, cutoff.Format(time.RFC3339), err)
	}
	defer rows.Close()
	return r.scanRecords(rows)
}

func (r *SQLiteRecordRepo) scanRecord(row *sql.Row) (*domain.Record, error) {
	var rec domain.Record
	var createdAtStr, fieldsStr string

	err := row.Scan(&rec.ID, &createdAtStr, &fieldsStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning record: %w", err)
	}
	return r.populateRecord(&rec, createdAtStr, fieldsStr)
}

func (r *SQLiteRecordRepo) scanRecords(rows *sql.Rows) ([]*domain.Record, error) {
	var records []*domain.Record
	for rows.Next() {
		var rec domain.Record
		var createdAtStr, fieldsStr string

		if err := rows.Scan(&rec.ID, &createdAtStr, &fieldsStr); err != nil {
			return nil, fmt.Errorf("scanning record row: %w", err)
		}
		record, err := r.populateRecord(&rec, createdAtStr, fieldsStr)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}
	return records, nil
}

func (r *SQLiteRecordRepo) populateRecord(rec *domain.Record, createdAtStr, fieldsStr string) (*domain.Record, error) {
	var err error
	rec.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if err := json.Unmarshal([]byte(fieldsStr), &rec.Fields); err != nil {
		return nil, fmt.Errorf("parsing record fields: %w", err)
	}
	return rec, nil
}
