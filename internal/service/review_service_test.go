package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/vitalog/internal/domain"
	"github.com/alexanderramin/vitalog/internal/testutil"
)

func TestReviewService_Weekly_EmptyStore(t *testing.T) {
	store := newTestStore(t)
	svc := NewReviewService(store.Records, store.Snapshots, nil)

	report, err := svc.Weekly(context.Background())
	require.NoError(t, err)

	for d, n := range report.Metrics.Checkins {
		assert.Zero(t, n, "unexpected %s check-ins", d)
	}
	assert.Equal(t, domain.AdviceFallback, report.Source)
	assert.NotEmpty(t, report.Narrative)
}

func TestReviewService_Weekly(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, store.Records.Append(ctx, domain.DomainHydration,
		testutil.NewTestRecord(map[string]any{"water_intake": 9},
			testutil.WithCreatedAt(now.AddDate(0, 0, -1)))))
	require.NoError(t, store.Records.Append(ctx, domain.DomainRecoverySleep,
		testutil.NewTestRecord(map[string]any{"sleep_hours": 7.5},
			testutil.WithCreatedAt(now.AddDate(0, 0, -2)))))
	require.NoError(t, store.Snapshots.Append(ctx,
		testutil.NewTestSnapshot(72, domain.RiskVeryHigh,
			testutil.WithTakenAt(now.AddDate(0, 0, -1)))))

	svc := NewReviewService(store.Records, store.Snapshots, nil)
	report, err := svc.Weekly(ctx)
	require.NoError(t, err)

	m := report.Metrics
	assert.Equal(t, 1, m.Checkins[domain.DomainHydration])
	assert.Equal(t, 1, m.Checkins[domain.DomainRecoverySleep])
	assert.Equal(t, 100.0, m.HydrationCompliancePct)
	assert.InDelta(t, 7.5, m.SleepAvgHours, 0.01)
	assert.Equal(t, 1, m.HighRiskDays)

	gen := &countingGenerator{text: "a solid week overall"}
	svc = NewReviewService(store.Records, store.Snapshots, gen)
	report, err = svc.Weekly(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.AdviceGenerated, report.Source)
	assert.Equal(t, "a solid week overall", report.Narrative)
}
