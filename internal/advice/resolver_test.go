package advice

import (
	"testing"

	"github.com/alexanderramin/vitalog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForDomain_MatchesTriggeredRules(t *testing.T) {
	res := domain.ScoreResult{
		Domain: domain.DomainHydration,
		Score:  62,
		Level:  domain.RiskHigh,
		Explanations: []string{
			"Only 2 cups of water today",
			"Heavy caffeine intake (5 cups)",
		},
	}

	actions := ForDomain(domain.DomainHydration, res)
	require.NotEmpty(t, actions)
	assert.Contains(t, actions, "Keep a filled bottle in reach and drink a glass each hour")
	assert.Contains(t, actions, "Swap the next coffee for water or herbal tea")
	assert.NotContains(t, actions, "Replace sugary drinks with water")
}

func TestForDomain_LevelGate(t *testing.T) {
	// The thirst rule requires at least high; at moderate it stays silent
	// even though the explanation matches.
	res := domain.ScoreResult{
		Domain:       domain.DomainHydration,
		Score:        30,
		Level:        domain.RiskModerate,
		Explanations: []string{"Feeling very thirsty or parched"},
	}

	actions := ForDomain(domain.DomainHydration, res)
	assert.NotContains(t, actions, "Rehydrate now with water, adding electrolytes if symptoms persist")
}

func TestForDomain_MostSevereFirst(t *testing.T) {
	res := domain.ScoreResult{
		Domain: domain.DomainWorkspace,
		Score:  68,
		Level:  domain.RiskHigh,
		Explanations: []string{
			"Posture was poor for most of the day",
			"No breaks taken during the workday",
		},
	}

	actions := ForDomain(domain.DomainWorkspace, res)
	require.GreaterOrEqual(t, len(actions), 2)
	assert.Equal(t, "Reset the chair and screen so ears, shoulders and hips stack vertically", actions[0])
}

func TestForDomain_CaseInsensitiveMatch(t *testing.T) {
	res := domain.ScoreResult{
		Domain:       domain.DomainWorkspace,
		Score:        40,
		Level:        domain.RiskModerate,
		Explanations: []string{"Breaks taken only occasionally"},
	}

	actions := ForDomain(domain.DomainWorkspace, res)
	assert.Contains(t, actions, "Stand up and move for two minutes every half hour")
}

func TestForDomain_LowRiskNoMatches(t *testing.T) {
	res := domain.ScoreResult{
		Domain: domain.DomainEye,
		Score:  5,
		Level:  domain.RiskLow,
	}
	assert.Empty(t, ForDomain(domain.DomainEye, res))
}

func TestForDomain_CoversEveryRegisteredDomain(t *testing.T) {
	for _, d := range domain.AllDomains() {
		assert.NotEmpty(t, domainActions[d], "domain %s has no action table", d)
	}
}

func TestGlobal_LevelAction(t *testing.T) {
	tests := []struct {
		name  string
		level domain.RiskLevel
		want  string
	}{
		{"critical", domain.RiskCritical, "Treat today as a recovery day: shorten the work block and address the highest-risk domain first"},
		{"very_high", domain.RiskVeryHigh, "Pick the single highest-risk domain and act on its first recommendation before anything else"},
		{"high", domain.RiskHigh, "Work through the top recommendation in each high-risk domain today"},
		{"moderate", domain.RiskModerate, "Tackle one flagged habit today before it compounds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			whi := domain.WHI{Score: 50, Level: tt.level}
			actions := Global(whi, domain.CrossDomainContext{})
			require.NotEmpty(t, actions)
			assert.Equal(t, tt.want, actions[0])
		})
	}
}

func TestGlobal_LowLevelNoLevelAction(t *testing.T) {
	whi := domain.WHI{Score: 10, Level: domain.RiskLow}
	assert.Empty(t, Global(whi, domain.CrossDomainContext{}))
}

func TestGlobal_AppendsLinkageActions(t *testing.T) {
	whi := domain.WHI{Score: 55, Level: domain.RiskHigh}
	cctx := domain.CrossDomainContext{
		Patterns: []domain.LinkagePattern{
			{Name: "fatigue_loop", Description: "Dehydration is feeding eye strain and mental fatigue"},
			{Name: "stress_sleep_cycle", Description: "High stress and poor sleep are reinforcing each other"},
		},
	}

	actions := Global(whi, cctx)
	require.Len(t, actions, 3)
	assert.Equal(t, "Rehydrate before reaching for more caffeine; fatigue here tracks fluid intake", actions[1])
	assert.Equal(t, "Protect tonight's sleep window; stress and short sleep are feeding each other", actions[2])
}

func TestGlobal_EveryLinkageHasAnAction(t *testing.T) {
	names := []string{
		"fatigue_loop", "ergonomic_strain", "stress_sleep_cycle",
		"visual_overload", "burnout_signal", "systemic_load", "metabolic_drift",
	}
	for _, name := range names {
		_, ok := linkageActions[name]
		assert.True(t, ok, "linkage %s has no action", name)
	}
}
