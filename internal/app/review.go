package app

import (
	"github.com/alexanderramin/vitalog/internal/domain"
	"github.com/alexanderramin/vitalog/internal/review"
)

// ReviewReport pairs the weekly metrics with their narrative summary.
type ReviewReport struct {
	Metrics   *review.Metrics
	Narrative string
	Source    domain.AdviceSource
}
