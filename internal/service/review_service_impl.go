package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/vitalog/internal/app"
	"github.com/alexanderramin/vitalog/internal/llm"
	"github.com/alexanderramin/vitalog/internal/repository"
	"github.com/alexanderramin/vitalog/internal/review"
)

type reviewService struct {
	analyzer *review.Analyzer
	client   llm.Client
}

// NewReviewService builds the weekly review use case. client may be nil,
// in which case the narrative is always the deterministic summary.
func NewReviewService(records repository.RecordRepo, snapshots repository.SnapshotRepo, client llm.Client) app.ReviewUseCase {
	return &reviewService{
		analyzer: review.NewAnalyzer(records, snapshots),
		client:   client,
	}
}

func (s *reviewService) Weekly(ctx context.Context) (*app.ReviewReport, error) {
	metrics, err := s.analyzer.Weekly(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("computing weekly metrics: %w", err)
	}

	narrative, source := review.Narrative(ctx, s.client, metrics)
	return &app.ReviewReport{
		Metrics:   metrics,
		Narrative: narrative,
		Source:    source,
	}, nil
}
