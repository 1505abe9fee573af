package scoring

import (
	"fmt"

	"github.com/alexanderramin/vitalog/internal/domain"
)

var mentalSymptomPoints = map[string]int{
	"Racing thoughts":          8,
	"Difficulty concentrating": 7,
	"Tension headache":         7,
	"Irritability":             6,
	"Low motivation":           6,
}

// mentalRules scores stress and mood load for the workday.
var mentalRules = []ruleFunc{
	func(r *domain.Record) (int, string) {
		stress := r.Int("stress_level")
		if stress <= 0 {
			return 0, ""
		}
		if stress > 10 {
			stress = 10
		}
		return stress * 4, fmt.Sprintf("Self-rated stress at %d/10", stress)
	},
	func(r *domain.Record) (int, string) {
		switch r.Str("mood") {
		case "Anxious":
			return 10, "Anxious mood"
		case "Low":
			return 10, "Low mood"
		case "Irritable":
			return 8, "Irritable mood"
		case "Flat":
			return 4, "Flat mood"
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		switch r.Str("workload") {
		case "Overwhelming":
			return 14, "Workload felt overwhelming"
		case "Heavy":
			return 8, "Workload felt heavy"
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		if v, ok := r.BoolSet("breaks_taken"); ok && !v {
			return 6, "No real breaks away from the desk"
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		switch r.Str("social_interaction") {
		case "None":
			return 8, "No social interaction today"
		case "Some":
			return 3, ""
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		pts := symptomPoints(r.StrList("symptoms"), mentalSymptomPoints, 18)
		if pts == 0 {
			return 0, ""
		}
		return pts, "Stress symptoms reported"
	},
}
