package scoring

import (
	"testing"

	"github.com/alexanderramin/vitalog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The scenarios below pin the end-to-end banding of two reference check-ins
// so rule-table tuning cannot silently shift their outcomes.

func TestScenario_PoorWorkspaceLandsInHighBand(t *testing.T) {
	s := NewScorer()
	result, err := s.Score(domain.DomainWorkspace, domain.NewRecord(map[string]any{
		"good_posture":   false,
		"breaks":         domain.BreaksNone,
		"monitor_height": domain.MonitorBelowEye,
		"lumbar_support": false,
		"noise_level":    "Distracting/Loud",
		"temperature":    "Hot",
		"clutter":        "Cluttered",
	}))
	require.NoError(t, err)
	assert.Equal(t, 68, result.Score)
	assert.Equal(t, domain.RiskHigh, result.Level)
	assert.Len(t, result.Explanations, 7)
}

func TestScenario_DehydratedDayLandsInVeryHighBand(t *testing.T) {
	s := NewScorer()
	result, err := s.Score(domain.DomainHydration, domain.NewRecord(map[string]any{
		"water_intake":    2,
		"caffeine_intake": 5,
		"urine_color":     domain.UrineDark,
		"thirst_level":    domain.ThirstHigh,
		"symptoms":        []string{"Dry Mouth/Lips", "Headache"},
	}))
	require.NoError(t, err)
	assert.Equal(t, 86, result.Score)
	assert.Equal(t, domain.RiskVeryHigh, result.Level)
}

func TestScenario_HealthyRecordsStayLow(t *testing.T) {
	s := NewScorer()

	tests := []struct {
		d      domain.Domain
		fields map[string]any
	}{
		{domain.DomainWorkspace, map[string]any{
			"good_posture": true, "breaks": domain.BreaksRegular,
			"monitor_height": domain.MonitorAtEye, "lumbar_support": true,
		}},
		{domain.DomainHydration, map[string]any{
			"water_intake": 10, "urine_color": domain.UrinePale,
			"thirst_level": domain.ThirstNone, "bottle_on_desk": true,
		}},
		{domain.DomainRecoverySleep, map[string]any{
			"sleep_hours": 8.0, "sleep_quality": "Restful",
			"wake_refreshed": true,
		}},
		{domain.DomainProductivity, map[string]any{
			"focus_level": 9, "deep_work_blocks": 3, "interruptions": "Rare",
		}},
	}
	for _, tt := range tests {
		result, err := s.Score(tt.d, domain.NewRecord(tt.fields))
		require.NoError(t, err, "domain %s", tt.d)
		assert.Equal(t, domain.RiskLow, result.Level,
			"domain %s scored %d", tt.d, result.Score)
	}
}

func TestScenario_LabPanelGrading(t *testing.T) {
	s := NewScorer()

	result, err := s.Score(domain.DomainLongitudinal, domain.NewRecord(map[string]any{
		"glucose": 110.0,
		"hba1c":   5.9,
	}))
	require.NoError(t, err)
	assert.Equal(t, 19, result.Score)
	assert.Equal(t, domain.RiskLow, result.Level)

	result, err = s.Score(domain.DomainLongitudinal, domain.NewRecord(map[string]any{
		"glucose":       130.0,
		"hba1c":         6.8,
		"triglycerides": 250.0,
	}))
	require.NoError(t, err)
	assert.Equal(t, 54, result.Score)
	assert.Equal(t, domain.RiskHigh, result.Level)
}
