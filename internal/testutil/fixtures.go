package testutil

import (
	"time"

	"github.com/alexanderramin/vitalog/internal/domain"
	"github.com/google/uuid"
)

// Record options
type RecordOption func(*domain.Record)

func WithRecordID(id string) RecordOption {
	return func(r *domain.Record) {
		r.ID = id
	}
}

func WithCreatedAt(ts time.Time) RecordOption {
	return func(r *domain.Record) {
		r.CreatedAt = ts
	}
}

// NewTestRecord builds a record with the given fields.
func NewTestRecord(fields map[string]any, opts ...RecordOption) *domain.Record {
	r := &domain.Record{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Fields:    fields,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Snapshot options
type SnapshotOption func(*domain.Snapshot)

func WithTakenAt(ts time.Time) SnapshotOption {
	return func(s *domain.Snapshot) {
		s.TakenAt = ts
	}
}

func WithDomainScore(d domain.Domain, score int, level domain.RiskLevel) SnapshotOption {
	return func(s *domain.Snapshot) {
		s.Scores[d] = score
		s.Levels[d] = level
	}
}

// NewTestSnapshot builds a snapshot with the given aggregate index.
func NewTestSnapshot(whi int, level domain.RiskLevel, opts ...SnapshotOption) *domain.Snapshot {
	s := &domain.Snapshot{
		ID:       uuid.NewString(),
		TakenAt:  time.Now().UTC(),
		Scores:   make(map[domain.Domain]int),
		Levels:   make(map[domain.Domain]domain.RiskLevel),
		WHI:      whi,
		WHILevel: level,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewTestAdvice builds a fallback advice entry for the given record.
func NewTestAdvice(d domain.Domain, recordID string, actions ...string) *domain.Advice {
	return &domain.Advice{
		Domain:    d,
		RecordID:  recordID,
		Source:    domain.AdviceFallback,
		Narrative: "test narrative",
		Actions:   actions,
		CreatedAt: time.Now().UTC(),
	}
}
