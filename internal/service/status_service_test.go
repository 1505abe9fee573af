package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/vitalog/internal/domain"
	"github.com/alexanderramin/vitalog/internal/repository"
	"github.com/alexanderramin/vitalog/internal/scoring"
	"github.com/alexanderramin/vitalog/internal/testutil"
)

func TestStatusService_Overview_InsufficientData(t *testing.T) {
	store := newTestStore(t)
	svc := NewStatusService(store.Records, store.Snapshots, scoring.NewScorer(), nil)

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.True(t, overview.InsufficientData)
	assert.Empty(t, overview.Domains)

	// No snapshot is written when there is nothing to score.
	_, err = store.Snapshots.Latest(context.Background())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStatusService_Overview(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Records.Append(ctx, domain.DomainHydration,
		testutil.NewTestRecord(dehydratedDay)))
	require.NoError(t, store.Records.Append(ctx, domain.DomainWorkspace,
		testutil.NewTestRecord(poorWorkspace)))

	svc := NewStatusService(store.Records, store.Snapshots, scoring.NewScorer(), nil)
	overview, err := svc.Overview(ctx)
	require.NoError(t, err)

	assert.False(t, overview.InsufficientData)
	require.Len(t, overview.Domains, 2)
	assert.ElementsMatch(t,
		[]domain.Domain{domain.DomainHydration, domain.DomainWorkspace},
		overview.WHI.ScoredDomains)

	// Hydration (86) outranks workspace (68).
	require.NotEmpty(t, overview.TopRisks)
	assert.Equal(t, domain.DomainHydration, overview.TopRisks[0])

	assert.Greater(t, overview.WHI.Score, 0)
	assert.NotEmpty(t, overview.Actions)

	// Each overview appends one snapshot to the risk history.
	snap, err := store.Snapshots.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, overview.WHI.Score, snap.WHI)
	assert.Equal(t, overview.WHI.Level, snap.WHILevel)
	assert.Len(t, snap.Scores, 2)
	assert.Equal(t, 86, snap.Scores[domain.DomainHydration])
	assert.Equal(t, 68, snap.Scores[domain.DomainWorkspace])
}

func TestStatusService_Overview_OnlyLatestRecordCounts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Records.Append(ctx, domain.DomainHydration,
		testutil.NewTestRecord(dehydratedDay)))
	require.NoError(t, store.Records.Append(ctx, domain.DomainHydration,
		testutil.NewTestRecord(map[string]any{
			"water_intake": 10,
			"urine_color":  domain.UrinePale,
			"thirst_level": domain.ThirstNone,
		})))

	svc := NewStatusService(store.Records, store.Snapshots, scoring.NewScorer(), nil)
	overview, err := svc.Overview(ctx)
	require.NoError(t, err)

	require.Len(t, overview.Domains, 1)
	assert.Equal(t, domain.RiskLow, overview.Domains[0].Level)
}
