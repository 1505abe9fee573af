package scoring

import (
	"fmt"

	"github.com/alexanderramin/vitalog/internal/domain"
)

// productivityRules scores focus erosion. Unlike the other domains, the
// anchor field is inverted: high focus is good, so risk grows as it drops.
var productivityRules = []ruleFunc{
	func(r *domain.Record) (int, string) {
		focus := r.Int("focus_level")
		if focus < 0 {
			focus = 0
		}
		if focus > 10 {
			focus = 10
		}
		deficit := 10 - focus
		if deficit == 0 {
			return 0, ""
		}
		return deficit * 3, fmt.Sprintf("Focus quality at %d/10", focus)
	},
	func(r *domain.Record) (int, string) {
		if !r.Has("deep_work_blocks") {
			return 0, ""
		}
		switch r.Int("deep_work_blocks") {
		case 0:
			return 10, "No deep work blocks completed"
		case 1:
			return 5, "Only one deep work block completed"
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		switch r.Str("interruptions") {
		case "Constant":
			return 14, "Constant interruptions"
		case "Frequent":
			return 10, "Frequent interruptions"
		case "Occasional":
			return 4, ""
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		switch r.Str("task_switching") {
		case "High":
			return 10, "Heavy task switching"
		case "Moderate":
			return 4, ""
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		if r.Bool("afternoon_slump") {
			return 6, "Afternoon energy slump"
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		overtime := r.Float("overtime_hours")
		switch {
		case overtime >= 3:
			return 12, fmt.Sprintf("%.1f hours of overtime", overtime)
		case overtime >= 1:
			return 6, fmt.Sprintf("%.1f hours of overtime", overtime)
		}
		return 0, ""
	},
}
