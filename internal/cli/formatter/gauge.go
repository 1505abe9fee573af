package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/vitalog/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderGauge renders a 0-100 risk score as a colored bar like
// [███████░░░] 68. Higher scores are worse, so the bar color follows
// the risk band of the score, not a progress convention.
func RenderGauge(score int, width int, level domain.RiskLevel) string {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	if width < 2 {
		width = 2
	}

	filled := score * width / 100
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	return fmt.Sprintf("[%s] %3d", RiskColor(level).Render(bar), score)
}
