package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/vitalog/internal/domain"
)

// jsonSnapshotRepo stores the scored history as a single JSON array file.
type jsonSnapshotRepo struct {
	path string
	mu   sync.Mutex
}

func (r *jsonSnapshotRepo) load() ([]*domain.Snapshot, error) {
	var snaps []*domain.Snapshot
	if err := readJSONFile(r.path, &snaps); err != nil {
		return nil, err
	}
	return snaps, nil
}

func (r *jsonSnapshotRepo) Append(ctx context.Context, s *domain.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snaps, err := r.load()
	if err != nil {
		return err
	}
	snaps = append(snaps, s)
	if err := writeJSONFile(r.path, snaps); err != nil {
		return fmt.Errorf("appending snapshot: %w", err)
	}
	return nil
}

func (r *jsonSnapshotRepo) Latest(ctx context.Context) (*domain.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snaps, err := r.load()
	if err != nil {
		return nil, err
	}
	var latest *domain.Snapshot
	for _, s := range snaps {
		if latest == nil || !s.TakenAt.Before(latest.TakenAt) {
			latest = s
		}
	}
	if latest == nil {
		return nil, fmt.Errorf("snapshot: %w", ErrNotFound)
	}
	return latest, nil
}

func (r *jsonSnapshotRepo) All(ctx context.Context) ([]*domain.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *jsonSnapshotRepo) Since(ctx context.Context, cutoff time.Time) ([]*domain.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snaps, err := r.load()
	if err != nil {
		return nil, err
	}
	var out []*domain.Snapshot
	for _, s := range snaps {
		if !s.TakenAt.Before(cutoff) {
			out = append(out, s)
		}
	}
	return out, nil
}
