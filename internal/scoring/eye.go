package scoring

import (
	"fmt"

	"github.com/alexanderramin/vitalog/internal/domain"
)

var eyeSymptomPoints = map[string]int{
	"Headache (behind eyes)":      10,
	"Blurred Vision (end of day)": 8,
	"Difficulty focusing":         8,
	"Dryness / Gritty feeling":    6,
	"Burning / Irritation":        6,
	"Eye Twitching":               6,
	"Watery Eyes":                 4,
}

// eyeRules scores digital eye strain from the self-rated strain level,
// session habits, symptoms, and viewing conditions.
var eyeRules = []ruleFunc{
	func(r *domain.Record) (int, string) {
		strain := r.Int("strain_level")
		if strain <= 0 {
			return 0, ""
		}
		if strain > 10 {
			strain = 10
		}
		return strain * 3, fmt.Sprintf("Self-rated eye strain at %d/10", strain)
	},
	func(r *domain.Record) (int, string) {
		switch r.Str("session_length") {
		case "4+ hours":
			return 18, "Unbroken screen sessions over four hours"
		case "2-4 hours":
			return 12, "Unbroken screen sessions of two to four hours"
		case "1-2 hours":
			return 6, "Unbroken screen sessions of one to two hours"
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		pts := symptomPoints(r.StrList("symptoms"), eyeSymptomPoints, 24)
		if pts == 0 {
			return 0, ""
		}
		return pts, "Visual symptoms reported"
	},
	func(r *domain.Record) (int, string) {
		switch r.Str("lighting") {
		case "Dim":
			return 8, "Working in dim lighting"
		case "Harsh/Overhead":
			return 8, "Harsh overhead lighting"
		case "Mixed":
			return 4, "Uneven mixed lighting"
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		switch r.Str("screen_brightness") {
		case "Brighter than room":
			return 6, "Screen brighter than the room"
		case "Too dim":
			return 4, "Screen dimmer than comfortable"
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		if r.Bool("glare") {
			return 8, "Noticeable glare on the screen"
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		if v, ok := r.BoolSet("distance_check"); ok && !v {
			return 4, "Screen closer than arm's length"
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		switch r.Str("rule_20_20_20") {
		case "Never":
			return 12, "Never taking 20-20-20 eye breaks"
		case "Occasionally":
			return 8, "Rarely taking 20-20-20 eye breaks"
		case "Often":
			return 3, "20-20-20 eye breaks inconsistent"
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		// Small credit: lubricating drops relieve surface symptoms.
		if r.Bool("used_drops") {
			return -2, ""
		}
		return 0, ""
	},
}
