package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/vitalog/internal/domain"
	"github.com/alexanderramin/vitalog/internal/repository"
	"github.com/alexanderramin/vitalog/internal/scoring"
	"github.com/alexanderramin/vitalog/internal/testutil"
)

func TestCheckinService_Submit(t *testing.T) {
	store := newTestStore(t)
	svc := NewCheckinService(store.Records, scoring.NewScorer())

	result, err := svc.Submit(context.Background(), domain.DomainHydration, dehydratedDay)
	require.NoError(t, err)

	assert.Equal(t, domain.DomainHydration, result.Domain)
	assert.Equal(t, 86, result.Result.Score)
	assert.Equal(t, domain.RiskVeryHigh, result.Result.Level)
	assert.NotEmpty(t, result.Record.ID)
	assert.Empty(t, result.Warnings)

	latest, err := store.Records.Latest(context.Background(), domain.DomainHydration)
	require.NoError(t, err)
	assert.Equal(t, result.Record.ID, latest.ID)
}

func TestCheckinService_Submit_SchemaMismatchRejected(t *testing.T) {
	store := newTestStore(t)
	svc := NewCheckinService(store.Records, scoring.NewScorer())

	// Missing the required water_intake field.
	_, err := svc.Submit(context.Background(), domain.DomainHydration, map[string]any{
		"thirst_level": domain.ThirstHigh,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSchemaMismatch)

	var schemaErr *domain.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "water_intake", schemaErr.Field)

	// The rejected submission must not have been persisted.
	_, err = store.Records.Latest(context.Background(), domain.DomainHydration)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCheckinService_Submit_UnknownDomain(t *testing.T) {
	store := newTestStore(t)
	svc := NewCheckinService(store.Records, scoring.NewScorer())

	_, err := svc.Submit(context.Background(), domain.Domain("astrology"), map[string]any{})
	assert.ErrorIs(t, err, domain.ErrUnknownDomain)
}

func TestCheckinService_Submit_GuardrailWarning(t *testing.T) {
	store := newTestStore(t)
	svc := NewCheckinService(store.Records, scoring.NewScorer())

	fields := map[string]any{
		"water_intake": 8,
		"notes":        "felt some numbness in my left hand after lunch",
	}
	result, err := svc.Submit(context.Background(), domain.DomainHydration, fields)
	require.NoError(t, err)

	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "URGENT")
	assert.Contains(t, result.Warnings[0], "numbness")
	// A low score does not suppress the warning.
	assert.Equal(t, domain.RiskLow, result.Result.Level)
}

func TestCheckinService_History(t *testing.T) {
	store := newTestStore(t)
	svc := NewCheckinService(store.Records, scoring.NewScorer())
	ctx := context.Background()

	now := time.Now().UTC()
	old := testutil.NewTestRecord(map[string]any{"water_intake": 4},
		testutil.WithCreatedAt(now.AddDate(0, 0, -30)))
	recent := testutil.NewTestRecord(map[string]any{"water_intake": 6},
		testutil.WithCreatedAt(now.AddDate(0, 0, -2)))
	require.NoError(t, store.Records.Append(ctx, domain.DomainHydration, old))
	require.NoError(t, store.Records.Append(ctx, domain.DomainHydration, recent))

	all, err := svc.History(ctx, domain.DomainHydration, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	week, err := svc.History(ctx, domain.DomainHydration, 7)
	require.NoError(t, err)
	require.Len(t, week, 1)
	assert.Equal(t, recent.ID, week[0].ID)
}
