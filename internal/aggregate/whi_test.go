package aggregate

import (
	"testing"

	"github.com/alexanderramin/vitalog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeWHI_NoScores_InsufficientData(t *testing.T) {
	_, err := ComputeWHI(map[domain.Domain]domain.ScoreResult{}, 0, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientData)

	_, err = ComputeWHI(nil, 50, nil)
	assert.ErrorIs(t, err, domain.ErrInsufficientData)
}

func TestComputeWHI_EqualWeightsByDefault(t *testing.T) {
	scores := map[domain.Domain]domain.ScoreResult{
		domain.DomainWorkspace: result(domain.DomainWorkspace, 60),
		domain.DomainHydration: result(domain.DomainHydration, 20),
	}
	// mean = 40, severity 0 => whi = round(0.7*40) = 28
	whi, err := ComputeWHI(scores, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 28, whi.Score)
	assert.Equal(t, domain.RiskModerate, whi.Level)
	assert.Equal(t, []domain.Domain{domain.DomainWorkspace, domain.DomainHydration}, whi.ScoredDomains)
}

func TestComputeWHI_LinkageSeverityShare(t *testing.T) {
	scores := map[domain.Domain]domain.ScoreResult{
		domain.DomainMSK: result(domain.DomainMSK, 50),
	}
	// whi = round(0.7*50 + 0.3*40) = round(47) = 47
	whi, err := ComputeWHI(scores, 40, nil)
	require.NoError(t, err)
	assert.Equal(t, 47, whi.Score)
}

func TestComputeWHI_MissingDomainsExcludedFromMean(t *testing.T) {
	// One domain at 80 must yield a mean of 80, not 80/9.
	scores := map[domain.Domain]domain.ScoreResult{
		domain.DomainMental: result(domain.DomainMental, 80),
	}
	whi, err := ComputeWHI(scores, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 56, whi.Score) // round(0.7*80)
}

func TestComputeWHI_CustomWeights(t *testing.T) {
	scores := map[domain.Domain]domain.ScoreResult{
		domain.DomainMental:    result(domain.DomainMental, 90),
		domain.DomainWorkspace: result(domain.DomainWorkspace, 10),
	}
	weights := Weights{
		domain.DomainMental:    3,
		domain.DomainWorkspace: 1,
	}
	// mean = (90*3 + 10*1)/4 = 70, whi = round(0.7*70) = 49
	whi, err := ComputeWHI(scores, 0, weights)
	require.NoError(t, err)
	assert.Equal(t, 49, whi.Score)
}

func TestComputeWHI_AllZeroWeightsFallBackToEqual(t *testing.T) {
	scores := map[domain.Domain]domain.ScoreResult{
		domain.DomainEye: result(domain.DomainEye, 40),
		domain.DomainMSK: result(domain.DomainMSK, 60),
	}
	whi, err := ComputeWHI(scores, 0, Weights{})
	require.NoError(t, err)
	assert.Equal(t, 35, whi.Score) // round(0.7*50)
}

func TestComputeWHI_OrderIndependent(t *testing.T) {
	// Building the same score set in different insertion orders must give
	// identical output.
	forward := map[domain.Domain]domain.ScoreResult{}
	backward := map[domain.Domain]domain.ScoreResult{}
	all := domain.AllDomains()
	for i, d := range all {
		forward[d] = result(d, 10*i)
	}
	for i := len(all) - 1; i >= 0; i-- {
		backward[all[i]] = result(all[i], 10*i)
	}

	a, err := ComputeWHI(forward, 25, nil)
	require.NoError(t, err)
	b, err := ComputeWHI(backward, 25, nil)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestComputeWHI_ClampsToValidRange(t *testing.T) {
	scores := map[domain.Domain]domain.ScoreResult{
		domain.DomainMental: result(domain.DomainMental, 100),
	}
	whi, err := ComputeWHI(scores, 250, nil)
	require.NoError(t, err)
	assert.Equal(t, 100, whi.Score) // 0.7*100 + 0.3*clamp(250)=100
	assert.Equal(t, domain.RiskCritical, whi.Level)
}
