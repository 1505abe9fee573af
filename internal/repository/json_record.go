package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/alexanderramin/vitalog/internal/domain"
)

// jsonRecordRepo stores records as one JSON array per domain,
// in <dir>/<domain>_user_input.json.
type jsonRecordRepo struct {
	dir string
	mu  sync.Mutex
}

func (r *jsonRecordRepo) pathFor(d domain.Domain) string {
	return filepath.Join(r.dir, string(d)+"_user_input.json")
}

func (r *jsonRecordRepo) load(d domain.Domain) ([]*domain.Record, error) {
	var records []*domain.Record
	if err := readJSONFile(r.pathFor(d), &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *jsonRecordRepo) Append(ctx context.Context, d domain.Domain, rec *domain.Record) error {
	if !d.Valid() {
		return &domain.UnknownDomainError{Name: string(d)}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(d)
	if err != nil {
		return err
	}
	records = append(records, rec)
	if err := writeJSONFile(r.pathFor(d), records); err != nil {
		return fmt.Errorf("appending %s record: %w", d, err)
	}
	return nil
}

func (r *jsonRecordRepo) Latest(ctx context.Context, d domain.Domain) (*domain.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(d)
	if err != nil {
		return nil, err
	}
	var latest *domain.Record
	for _, rec := range records {
		// Later entries win ties so re-submissions within the same
		// second still surface the newest record.
		if latest == nil || !rec.CreatedAt.Before(latest.CreatedAt) {
			latest = rec
		}
	}
	if latest == nil {
		return nil, fmt.Errorf("%s record: %w", d, ErrNotFound)
	}
	return latest, nil
}

func (r *jsonRecordRepo) All(ctx context.Context, d domain.Domain) ([]*domain.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(d)
}

func (r *jsonRecordRepo) Since(ctx context.Context, d domain.Domain, cutoff time.Time) ([]*domain.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(d)
	if err != nil {
		return nil, err
	}
	var out []*domain.Record
	for _, rec := range records {
		if !rec.CreatedAt.Before(cutoff) {
			out = append(out, rec)
		}
	}
	return out, nil
}
