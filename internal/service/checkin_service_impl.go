package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/vitalog/internal/advice"
	"github.com/alexanderramin/vitalog/internal/app"
	"github.com/alexanderramin/vitalog/internal/domain"
	"github.com/alexanderramin/vitalog/internal/repository"
	"github.com/alexanderramin/vitalog/internal/scoring"
)

type checkinService struct {
	records repository.RecordRepo
	scorer  *scoring.Scorer
}

func NewCheckinService(records repository.RecordRepo, scorer *scoring.Scorer) app.CheckinUseCase {
	return &checkinService{records: records, scorer: scorer}
}

// Submit validates the fields against the domain schema, appends the
// record, and scores it. A schema mismatch rejects the submission;
// nothing is persisted and no default score is produced.
func (s *checkinService) Submit(ctx context.Context, d domain.Domain, fields map[string]any) (*app.CheckinResult, error) {
	schema, err := domain.SchemaFor(d)
	if err != nil {
		return nil, err
	}

	rec := domain.NewRecord(fields)
	if err := schema.Validate(rec); err != nil {
		return nil, err
	}

	result, err := s.scorer.Score(d, rec)
	if err != nil {
		return nil, fmt.Errorf("scoring %s check-in: %w", d, err)
	}

	if err := s.records.Append(ctx, d, rec); err != nil {
		return nil, fmt.Errorf("saving %s check-in: %w", d, err)
	}

	return &app.CheckinResult{
		Domain:   d,
		Record:   rec,
		Result:   result,
		Warnings: advice.ScanNotes(schema, rec),
	}, nil
}

// History lists past records, most recent last. days <= 0 means all.
func (s *checkinService) History(ctx context.Context, d domain.Domain, days int) ([]*domain.Record, error) {
	if days <= 0 {
		return s.records.All(ctx, d)
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	return s.records.Since(ctx, d, cutoff)
}
