package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/vitalog/internal/domain"
)

// FormatHistory renders past check-ins for one domain, oldest first, with
// each record's score recomputed by the caller.
func FormatHistory(d domain.Domain, records []*domain.Record, results []domain.ScoreResult) string {
	if len(records) == 0 {
		return Dim(fmt.Sprintf("No %s check-ins yet.", d.Title())) + "\n"
	}

	var b strings.Builder
	b.WriteString(Header(d.Title() + " history"))
	b.WriteString("\n")

	rows := make([][]string, 0, len(records))
	for i, rec := range records {
		row := []string{rec.CreatedAt.Format("Jan 2 15:04"), "", ""}
		if i < len(results) {
			row[1] = RenderGauge(results[i].Score, gaugeWidth, results[i].Level)
			row[2] = RiskIndicator(results[i].Level)
		}
		rows = append(rows, row)
	}
	b.WriteString(RenderTable([]string{"When", "Score", "Risk"}, rows))
	return b.String()
}
