package review

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexanderramin/vitalog/internal/domain"
	"github.com/alexanderramin/vitalog/internal/llm"
)

// reviewSystemPrompt instructs the generator to summarize the weekly rollup.
const reviewSystemPrompt = `You are a health-habit assistant inside a CLI tool called vitalog.
You will receive a JSON document with one week of rollup metrics: check-in
counts, sedentary hours, hydration compliance, sleep averages and trend, and
high-risk day counts.

Write 3-5 plain sentences reviewing the week.

CRITICAL RULES:
1. Base every statement on the metrics in the JSON; invent no numbers
2. Call out the sleep trend and any high-risk days explicitly
3. Never diagnose a condition or mention medication
4. No markdown, no bullet points, no JSON; plain sentences only`

type metricsPayload struct {
	Checkins               map[string]int `json:"checkins"`
	SedentaryHours         float64        `json:"sedentary_hours"`
	HydrationCompliancePct float64        `json:"hydration_compliance_pct"`
	HydrationDays          int            `json:"hydration_days"`
	SleepAvgHours          float64        `json:"sleep_avg_hours"`
	PrevSleepAvgHours      float64        `json:"prev_sleep_avg_hours"`
	SleepTrend             string         `json:"sleep_trend"`
	HighRiskDays           int            `json:"high_risk_days"`
}

// Narrative produces a prose summary of the weekly metrics, falling back to
// a deterministic summary when the generator is disabled or fails.
func Narrative(ctx context.Context, client llm.Client, m *Metrics) (string, domain.AdviceSource) {
	fallback := DeterministicNarrative(m)
	if client == nil {
		return fallback, domain.AdviceFallback
	}

	checkins := make(map[string]int, len(m.Checkins))
	for d, n := range m.Checkins {
		checkins[string(d)] = n
	}
	payload, err := json.MarshalIndent(metricsPayload{
		Checkins:               checkins,
		SedentaryHours:         m.SedentaryHours,
		HydrationCompliancePct: m.HydrationCompliancePct,
		HydrationDays:          m.HydrationDays,
		SleepAvgHours:          m.SleepAvgHours,
		PrevSleepAvgHours:      m.PrevSleepAvgHours,
		SleepTrend:             string(m.SleepTrend),
		HighRiskDays:           m.HighRiskDays,
	}, "", "  ")
	if err != nil {
		return fallback, domain.AdviceFallback
	}

	resp, err := client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskReview,
		SystemPrompt: reviewSystemPrompt,
		UserPrompt:   "Here is this week's rollup:\n\n" + string(payload),
	})
	if err != nil {
		return fallback, domain.AdviceFallback
	}
	return resp.Text, domain.AdviceGenerated
}

// DeterministicNarrative summarizes the metrics without the generator.
func DeterministicNarrative(m *Metrics) string {
	var b strings.Builder

	total := 0
	for _, n := range m.Checkins {
		total += n
	}
	fmt.Fprintf(&b, "Past week: %d check-in(s).", total)

	if m.SedentaryHours > 0 {
		fmt.Fprintf(&b, " Roughly %.1f deskbound hours in unbroken seated blocks.", m.SedentaryHours)
	}
	if m.HydrationDays > 0 {
		fmt.Fprintf(&b, " Hydration target met on %.0f%% of logged days.", m.HydrationCompliancePct)
	}
	switch m.SleepTrend {
	case TrendUnknown:
		b.WriteString(" Not enough sleep data for a trend.")
	default:
		fmt.Fprintf(&b, " Sleep averaged %.1f hours (%s week over week).", m.SleepAvgHours, m.SleepTrend)
	}
	if m.HighRiskDays > 0 {
		fmt.Fprintf(&b, " %d day(s) hit a high-risk index.", m.HighRiskDays)
	}
	return b.String()
}
