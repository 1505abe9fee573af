package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/vitalog/internal/app"
	"github.com/alexanderramin/vitalog/internal/domain"
	"github.com/alexanderramin/vitalog/internal/review"
)

// FormatReview renders the weekly review: metrics table plus narrative.
func FormatReview(r *app.ReviewReport) string {
	m := r.Metrics

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Week in review (%s - %s)",
		m.From.Format("Jan 2"), m.To.Format("Jan 2"))))
	b.WriteString("\n\n")

	total := 0
	for _, n := range m.Checkins {
		total += n
	}
	if total == 0 {
		b.WriteString(Dim("No check-ins this week."))
		b.WriteString("\n\n")
	} else {
		rows := [][]string{
			{"Check-ins", fmt.Sprintf("%d", total)},
			{"Sedentary hours", fmt.Sprintf("%.1f", m.SedentaryHours)},
		}
		if m.HydrationDays > 0 {
			rows = append(rows, []string{"Hydration target met",
				fmt.Sprintf("%.0f%% of %d day(s)", m.HydrationCompliancePct, m.HydrationDays)})
		}
		if m.SleepAvgHours > 0 {
			rows = append(rows, []string{"Average sleep",
				fmt.Sprintf("%.1f h (%s)", m.SleepAvgHours, sleepTrendLabel(m.SleepTrend))})
		}
		rows = append(rows, []string{"High-risk days",
			highRiskCell(m.HighRiskDays)})

		b.WriteString(RenderTable([]string{"Metric", "Value"}, rows))
		b.WriteString("\n")
	}

	b.WriteString(r.Narrative)
	b.WriteString("\n")

	if r.Source == domain.AdviceFallback {
		b.WriteString("\n")
		b.WriteString(Dim("(deterministic summary; narrative generator unavailable or disabled)"))
		b.WriteString("\n")
	}
	return b.String()
}

func sleepTrendLabel(t review.Trend) string {
	switch t {
	case review.TrendImproving:
		return StyleGreen.Render("improving")
	case review.TrendDeclining:
		return StyleRed.Render("declining")
	case review.TrendStable:
		return "stable"
	default:
		return Dim("no prior week to compare")
	}
}

func highRiskCell(days int) string {
	s := fmt.Sprintf("%d", days)
	if days > 0 {
		return StyleRed.Render(s)
	}
	return StyleGreen.Render(s)
}
