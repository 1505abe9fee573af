package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/vitalog/internal/advice"
	"github.com/alexanderramin/vitalog/internal/aggregate"
	"github.com/alexanderramin/vitalog/internal/app"
	"github.com/alexanderramin/vitalog/internal/domain"
	"github.com/alexanderramin/vitalog/internal/repository"
	"github.com/alexanderramin/vitalog/internal/scoring"
)

const topRiskCount = 3

type statusService struct {
	records   repository.RecordRepo
	snapshots repository.SnapshotRepo
	scorer    *scoring.Scorer
	weights   aggregate.Weights
}

func NewStatusService(
	records repository.RecordRepo,
	snapshots repository.SnapshotRepo,
	scorer *scoring.Scorer,
	weights aggregate.Weights,
) app.StatusUseCase {
	return &statusService{
		records:   records,
		snapshots: snapshots,
		scorer:    scorer,
		weights:   weights,
	}
}

// Overview scores the latest record of every domain that has one, builds
// the cross-domain context and index, and appends a snapshot to the risk
// history. Domains without a record are skipped, not defaulted.
func (s *statusService) Overview(ctx context.Context) (*app.Overview, error) {
	now := time.Now().UTC()

	results := make(map[domain.Domain]domain.ScoreResult)
	var views []app.DomainStatusView

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
		views = append(views, app.DomainStatusView{
			Domain:       d,
			Score:        res.Score,
			Level:        res.Level,
			Explanations: res.Explanations,
			RecordedAt:   rec.CreatedAt,
		})
	}

	if len(results) == 0 {
		return &app.Overview{GeneratedAt: now, InsufficientData: true}, nil
	}

	cctx := aggregate.BuildContext(results)
	whi, err := aggregate.ComputeWHI(results, cctx.Severity, s.weights)
	if err != nil {
		return nil, fmt.Errorf("computing workday health index: %w", err)
	}

	if err := s.snapshots.Append(ctx, domain.NewSnapshot(results, whi)); err != nil {
		return nil, fmt.Errorf("saving risk snapshot: %w", err)
	}

	return &app.Overview{
		GeneratedAt: now,
		Domains:     views,
		WHI:         whi,
		Patterns:    cctx.Patterns,
		TopRisks:    topRisks(views),
		Actions:     advice.Global(whi, cctx),
	}, nil
}

// topRisks returns up to three domains ordered by score, highest first.
// Ties keep canonical domain order.
func topRisks(views []app.DomainStatusView) []domain.Domain {
	sorted := make([]app.DomainStatusView, len(views))
	copy(sorted, views)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	n := topRiskCount
	if len(sorted) < n {
		n = len(sorted)
	}
	risks := make([]domain.Domain, 0, n)
	for _, v := range sorted[:n] {
		risks = append(risks, v.Domain)
	}
	return risks
}
