package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/vitalog/internal/advice"
	"github.com/alexanderramin/vitalog/internal/aggregate"
	"github.com/alexanderramin/vitalog/internal/app"
	"github.com/alexanderramin/vitalog/internal/domain"
	"github.com/alexanderramin/vitalog/internal/repository"
	"github.com/alexanderramin/vitalog/internal/scoring"
)

type adviceService struct {
	records   repository.RecordRepo
	cache     repository.AdviceCache
	scorer    *scoring.Scorer
	weights   aggregate.Weights
	narrative *advice.NarrativeService
}

func NewAdviceService(
	records repository.RecordRepo,
	cache repository.AdviceCache,
	scorer *scoring.Scorer,
	weights aggregate.Weights,
	narrative *advice.NarrativeService,
) app.AdviceUseCase {
	return &adviceService{
		records:   records,
		cache:     cache,
		scorer:    scorer,
		weights:   weights,
		narrative: narrative,
	}
}

// ForDomain returns advice for the latest record in a domain. Advice is
// memoized per (domain, record): a cache hit skips scoring and the
// generator entirely, since the same record always yields the same advice.
func (s *adviceService) ForDomain(ctx context.Context, d domain.Domain) (*domain.Advice, error) {
	rec, err := s.records.Latest(ctx, d)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("no %s check-ins yet: %w", d, err)
		}
		return nil, fmt.Errorf("loading latest %s record: %w", d, err)
	}

	cached, err := s.cache.Get(ctx, d, rec.ID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("reading advice cache: %w", err)
	}

	res, err := s.scorer.Score(d, rec)
	if err != nil {
		return nil, fmt.Errorf("scoring %s record %s: %w", d, rec.ID, err)
	}

	schema, err := domain.SchemaFor(d)
	if err != nil {
		return nil, err
	}

	actions := advice.ForDomain(d, res)
	narrative, source := s.narrative.ForDomain(ctx, d, res, actions)

	adv := &domain.Advice{
		Domain:    d,
		RecordID:  rec.ID,
		Source:    source,
		Narrative: narrative,
		Actions:   actions,
		Urgent:    advice.ScanNotes(schema, rec),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.cache.Put(ctx, adv); err != nil {
		return nil, fmt.Errorf("caching %s advice: %w", d, err)
	}
	return adv, nil
}

// Global computes the aggregate index over the latest records and pairs it
// with cross-domain recommendations and a narrative. It never persists a
// snapshot; that is the status overview's job.
func (s *adviceService) Global(ctx context.Context) (*app.GlobalAdvice, error) {
	results := make(map[domain.Domain]domain.ScoreResult)
	for _, d := range domain.AllDomains() {
		rec, err := s.records.Latest(ctx, d)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("loading latest %s record: %w", d, err)
		}

		res, err := s.scorer.Score(d, rec)
		if err != nil {
			return nil, fmt.Errorf("scoring %s record %s: %w", d, rec.ID, err)
		}
		results[d] = res
	}

	cctx := aggregate.BuildContext(results)
	whi, err := aggregate.ComputeWHI(results, cctx.Severity, s.weights)
	if err != nil {
		return nil, err
	}

	actions := advice.Global(whi, cctx)
	narrative, source := s.narrative.Global(ctx, whi, cctx, actions)

	return &app.GlobalAdvice{
		WHI:       whi,
		Patterns:  cctx.Patterns,
		Narrative: narrative,
		Source:    source,
		Actions:   actions,
	}, nil
}
