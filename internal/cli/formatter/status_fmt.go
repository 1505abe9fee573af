package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/vitalog/internal/app"
)

const gaugeWidth = 20

// FormatOverview renders the status command output: the index, one row per
// scored domain, detected linkage patterns, and global recommendations.
func FormatOverview(o *app.Overview) string {
	if o.InsufficientData {
		return Dim("Not enough data yet. Log a check-in first: vitalog log <domain>") + "\n"
	}

	var b strings.Builder

	b.WriteString(Header("Workday Health Index"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "  %s  %s\n\n",
		RenderGauge(o.WHI.Score, gaugeWidth, o.WHI.Level),
		RiskIndicator(o.WHI.Level))

	rows := make([][]string, 0, len(o.Domains))
	for _, v := range o.Domains {
		rows = append(rows, []string{
			v.Domain.Title(),
			RenderGauge(v.Score, gaugeWidth, v.Level),
			RiskIndicator(v.Level),
			Dim(HumanTimestamp(v.RecordedAt)),
		})
	}
	b.WriteString(RenderTable([]string{"Domain", "Score", "Risk", "Logged"}, rows))

	if len(o.Patterns) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Linkage patterns"))
		b.WriteString("\n")
		for _, p := range o.Patterns {
			fmt.Fprintf(&b, "  %s %s\n", StyleYellow.Render("▲"), p.Description)
		}
	}

	if len(o.Actions) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Recommendations"))
		b.WriteString("\n")
		for _, a := range o.Actions {
			fmt.Fprintf(&b, "  • %s\n", a)
		}
	}

	return b.String()
}
