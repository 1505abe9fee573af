package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/vitalog/internal/domain"
)

// RecordRepo is an append-only store of self-assessment records.
// Records are never updated or deleted; each submission appends a new one.
type RecordRepo interface {
	Append(ctx context.Context, d domain.Domain, rec *domain.Record) error
	Latest(ctx context.Context, d domain.Domain) (*domain.Record, error)
	All(ctx context.Context, d domain.Domain) ([]*domain.Record, error)
	Since(ctx context.Context, d domain.Domain, cutoff time.Time) ([]*domain.Record, error)
}

// SnapshotRepo stores the scored risk history, one snapshot per status run.
type SnapshotRepo interface {
	Append(ctx context.Context, s *domain.Snapshot) error
	Latest(ctx context.Context) (*domain.Snapshot, error)
	All(ctx context.Context) ([]*domain.Snapshot, error)
	Since(ctx context.Context, cutoff time.Time) ([]*domain.Snapshot, error)
}

// AdviceCache memoizes advice per (domain, record) pair so repeat calls
// against the same record do not hit the generator again.
type AdviceCache interface {
	Get(ctx context.Context, d domain.Domain, recordID string) (*domain.Advice, error)
	Put(ctx context.Context, a *domain.Advice) error
}

// Store bundles the three repositories behind one backend.
type Store struct {
	Records   RecordRepo
	Snapshots SnapshotRepo
	Advice    AdviceCache

	closeFn func() error
}

// Close releases backend resources. Safe to call on a JSON store (no-op).
func (s *Store) Close() error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}
