package app

import (
	"context"

	"github.com/alexanderramin/vitalog/internal/domain"
)

// CheckinUseCase records and scores daily check-ins.
type CheckinUseCase interface {
	Submit(ctx context.Context, d domain.Domain, fields map[string]any) (*CheckinResult, error)
	History(ctx context.Context, d domain.Domain, days int) ([]*domain.Record, error)
}

// StatusUseCase computes the cross-domain overview.
type StatusUseCase interface {
	Overview(ctx context.Context) (*Overview, error)
}

// AdviceUseCase produces per-domain and aggregate recommendations.
type AdviceUseCase interface {
	ForDomain(ctx context.Context, d domain.Domain) (*domain.Advice, error)
	Global(ctx context.Context) (*GlobalAdvice, error)
}

// ReviewUseCase summarizes the trailing week.
type ReviewUseCase interface {
	Weekly(ctx context.Context) (*ReviewReport, error)
}
