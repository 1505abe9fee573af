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

// SQLiteSnapshotRepo implements SnapshotRepo using a SQLite database.
// Per-domain scores and levels are stored as JSON objects.
type SQLiteSnapshotRepo struct {
	db db.DBTX
}

// NewSQLiteSnapshotRepo creates a new SQLiteSnapshotRepo.
func NewSQLiteSnapshotRepo(dbtx db.DBTX) *SQLiteSnapshotRepo {
	return &SQLiteSnapshotRepo{db: dbtx}
}

func (r *SQLiteSnapshotRepo) Append(ctx context.Context, s *domain.Snapshot) error {
	scores, err := json.Marshal(s.Scores)
	if err != nil {
		return fmt.Errorf("encoding snapshot scores: %w", err)
	}
	levels, err := json.Marshal(s.Levels)
	if err != nil {
		return fmt.Errorf("encoding snapshot levels: %w", err)
	}

	query := `INSERT INTO snapshots (id, taken_at, scores, levels, whi, whi_level)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		s.ID,
		s.TakenAt.Format(time.RFC3339),
		string(scores),
		string(levels),
		s.WHI,
		string(s.WHILevel),
	)
	if err != nil {
		return fmt.Errorf("inserting snapshot: %w", err)
	}
	return nil
}

func (r *SQLiteSnapshotRepo) Latest(ctx context.Context) (*domain.Snapshot, error) {
	query := `SELECT id, taken_at, scores, levels, whi, whi_level FROM snapshots
		ORDER BY taken_at DESC, rowid DESC LIMIT 1`
	row := r.db.QueryRowContext(ctx, query)
	s, err := r.scanSnapshot(row)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	return s, nil
}

func (r *SQLiteSnapshotRepo) All(ctx context.Context) ([]*domain.Snapshot, error) {
	query := `SELECT id, taken_at, scores, levels, whi, whi_level FROM snapshots
		ORDER BY taken_at, rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	defer rows.Close()
	return r.scanSnapshots(rows)
}

func (r *SQLiteSnapshotRepo) Since(ctx context.Context, cutoff time.Time) ([]*domain.Snapshot, error) {
	query := `SELECT id, taken_at, scores, levels, whi, whi_level FROM snapshots
		WHERE taken_at >= ? ORDER BY taken_at, rowid`
	rows, err := r.db.QueryContext(ctx, query, cutoff.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing snapshots since %s: %w", cutoff.Format(time.RFC3339), err)
	}
	defer rows.Close()
	return r.scanSnapshots(rows)
}

func (r *SQLiteSnapshotRepo) scanSnapshot(row *sql.Row) (*domain.Snapshot, error) {
	var s domain.Snapshot
	var takenAtStr, scoresStr, levelsStr, levelStr string

	err := row.Scan(&s.ID, &takenAtStr, &scoresStr, &levelsStr, &s.WHI, &levelStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning snapshot: %w", err)
	}
	return r.populateSnapshot(&s, takenAtStr, scoresStr, levelsStr, levelStr)
}

func (r *SQLiteSnapshotRepo) scanSnapshots(rows *sql.Rows) ([]*domain.Snapshot, error) {
	var snaps []*domain.Snapshot
	for rows.Next() {
		var s domain.Snapshot
		var takenAtStr, scoresStr, levelsStr, levelStr string

		if err := rows.Scan(&s.ID, &takenAtStr, &scoresStr, &levelsStr, &s.WHI, &levelStr); err != nil {
			return nil, fmt.Errorf("scanning snapshot row: %w", err)
		}
		snap, err := r.populateSnapshot(&s, takenAtStr, scoresStr, levelsStr, levelStr)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snapshots: %w", err)
	}
	return snaps, nil
}

func (r *SQLiteSnapshotRepo) populateSnapshot(s *domain.Snapshot, takenAtStr, scoresStr, levelsStr, levelStr string) (*domain.Snapshot, error) {
	var err error
	s.TakenAt, err = time.Parse(time.RFC3339, takenAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing taken_at: %w", err)
	}
	if err := json.Unmarshal([]byte(scoresStr), &s.Scores); err != nil {
		return nil, fmt.Errorf("parsing snapshot scores: %w", err)
	}
	if err := json.Unmarshal([]byte(levelsStr), &s.Levels); err != nil {
		return nil, fmt.Errorf("parsing snapshot levels: %w", err)
	}
	s.WHILevel = domain.RiskLevel(levelStr)
	return s, nil
}
