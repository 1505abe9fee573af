package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/vitalog/internal/app"
)

// FormatCheckinResult renders the outcome of a log command: the score the
// new record produced, why, and any guardrail warnings.
func FormatCheckinResult(r *app.CheckinResult) string {
	var b strings.Builder

	for _, w := range r.Warnings {
		fmt.Fprintf(&b, "%s\n\n", Urgent(w))
	}

	fmt.Fprintf(&b, "%s check-in saved.\n\n", Bold(r.Domain.Title()))
	fmt.Fprintf(&b, "  %s  %s\n",
		RenderGauge(r.Result.Score, gaugeWidth, r.Result.Level),
		RiskIndicator(r.Result.Level))

	if len(r.Result.Explanations) > 0 {
		b.WriteString("\n")
		for _, e := range r.Result.Explanations {
			fmt.Fprintf(&b, "  %s %s\n", Dim("·"), e)
		}
	}
	return b.String()
}
