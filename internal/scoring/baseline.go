package scoring

import (
	"fmt"

	"github.com/alexanderramin/vitalog/internal/domain"
)

// baselineRules scores the slow-moving physiological profile: BMI, blood
// pressure, resting heart rate, activity, and waist circumference.
var baselineRules = []ruleFunc{
	func(r *domain.Record) (int, string) {
		height := r.Float("height")
		weight := r.Float("weight")
		if height <= 0 || weight <= 0 {
			return 0, ""
		}
		m := height / 100.0
		bmi := weight / (m * m)
		switch {
		case bmi >= 35:
			return 26, fmt.Sprintf("BMI %.1f (obese class II+)", bmi)
		case bmi >= 30:
			return 18, fmt.Sprintf("BMI %.1f (obese)", bmi)
		case bmi >= 25:
			return 8, fmt.Sprintf("BMI %.1f (overweight)", bmi)
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		sys := r.Float("bp_systolic")
		dia := r.Float("bp_diastolic")
		if sys <= 0 && dia <= 0 {
			return 0, ""
		}
		switch {
		case sys >= 140 || dia >= 90:
			return 20, fmt.Sprintf("Blood pressure %.0f/%.0f (stage 2 range)", sys, dia)
		case sys >= 130 || dia >= 80:
			return 12, fmt.Sprintf("Blood pressure %.0f/%.0f (stage 1 range)", sys, dia)
		case sys >= 120 && dia < 80:
			return 5, fmt.Sprintf("Blood pressure %.0f/%.0f (elevated)", sys, dia)
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		rhr := r.Float("rhr")
		switch {
		case rhr >= 100:
			return 14, fmt.Sprintf("Resting heart rate %.0f bpm", rhr)
		case rhr >= 90:
			return 9, fmt.Sprintf("Resting heart rate %.0f bpm", rhr)
		case rhr >= 80:
			return 5, fmt.Sprintf("Resting heart rate %.0f bpm", rhr)
		case rhr > 0 && rhr < 60:
			return 2, ""
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		switch r.Str("activity_level") {
		case "Sedentary":
			return 12, "Sedentary activity level"
		case "Moderately active":
			return 3, ""
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		waist := r.Float("waist_cm")
		switch {
		case waist >= 102:
			return 12, fmt.Sprintf("Waist circumference %.0f cm", waist)
		case waist >= 94:
			return 8, fmt.Sprintf("Waist circumference %.0f cm", waist)
		}
		return 0, ""
	},
}
