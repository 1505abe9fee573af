package scoring

import (
	"fmt"

	"github.com/alexanderramin/vitalog/internal/domain"
)

var hydrationSymptomPoints = map[string]int{
	"Dizziness":     9,
	"Headache":      8,
	"Dry Mouth/Lips": 6,
	"Fatigue":       6,
}

// hydrationRules scores fluid intake against dehydration signals. Water
// intake is the anchor; urine color and thirst are the strongest signals.
var hydrationRules = []ruleFunc{
	func(r *domain.Record) (int, string) {
		water := r.Int("water_intake")
		switch {
		case water <= 2:
			return 28, fmt.Sprintf("Only %d cups of water today", water)
		case water <= 4:
			return 20, fmt.Sprintf("Low water intake (%d cups)", water)
		case water <= 6:
			return 12, fmt.Sprintf("Below-target water intake (%d cups)", water)
		case water <= 9:
			return 5, ""
		case water <= 13:
			return 2, ""
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		caffeine := r.Int("caffeine_intake")
		switch {
		case caffeine >= 5:
			return 16, fmt.Sprintf("Heavy caffeine intake (%d cups)", caffeine)
		case caffeine == 4:
			return 12, "High caffeine intake (4 cups)"
		case caffeine == 3:
			return 8, "Moderate caffeine intake (3 cups)"
		case caffeine == 2:
			return 4, ""
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		sugary := r.Int("sugary_drinks")
		switch {
		case sugary >= 4:
			return 14, fmt.Sprintf("Heavy sugary drink intake (%d)", sugary)
		case sugary == 3:
			return 10, "High sugary drink intake (3)"
		case sugary == 2:
			return 7, "Some sugary drinks (2)"
		case sugary == 1:
			return 4, ""
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		if v, ok := r.BoolSet("bottle_on_desk"); ok && !v {
			return 4, "No water bottle within reach"
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		switch r.Str("urine_color") {
		case domain.UrineAmber:
			return 20, "Amber or brown urine color"
		case domain.UrineDark:
			return 12, "Dark yellow urine color"
		case domain.UrineOkay:
			return 5, ""
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		switch r.Str("thirst_level") {
		case domain.ThirstHigh:
			return 16, "Feeling very thirsty or parched"
		case domain.ThirstMild:
			return 7, "Mild thirst through the day"
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		pts := symptomPoints(r.StrList("symptoms"), hydrationSymptomPoints, 15)
		if pts == 0 {
			return 0, ""
		}
		return pts, "Dehydration symptoms reported"
	},
}
