package scoring

import (
	"fmt"

	"github.com/alexanderramin/vitalog/internal/domain"
)

// longitudinalRules scores periodic lab panel values. Every field is
// optional; absent labs contribute nothing rather than reading as healthy.
var longitudinalRules = []ruleFunc{
	func(r *domain.Record) (int, string) {
		glucose := r.Float("glucose")
		switch {
		case glucose >= 126:
			return 18, fmt.Sprintf("Fasting glucose %.0f mg/dL (diabetic range)", glucose)
		case glucose >= 100:
			return 9, fmt.Sprintf("Fasting glucose %.0f mg/dL (prediabetic range)", glucose)
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		hba1c := r.Float("hba1c")
		switch {
		case hba1c >= 6.5:
			return 21, fmt.Sprintf("HbA1c %.1f%% (diabetic range)", hba1c)
		case hba1c >= 5.7:
			return 10, fmt.Sprintf("HbA1c %.1f%% (prediabetic range)", hba1c)
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		chol := r.Float("cholesterol")
		switch {
		case chol >= 240:
			return 15, fmt.Sprintf("Total cholesterol %.0f mg/dL (high)", chol)
		case chol >= 200:
			return 7, fmt.Sprintf("Total cholesterol %.0f mg/dL (borderline)", chol)
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		tg := r.Float("triglycerides")
		switch {
		case tg >= 500:
			return 22, fmt.Sprintf("Triglycerides %.0f mg/dL (very high)", tg)
		case tg >= 200:
			return 15, fmt.Sprintf("Triglycerides %.0f mg/dL (high)", tg)
		case tg >= 150:
			return 7, fmt.Sprintf("Triglycerides %.0f mg/dL (borderline)", tg)
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		vitD := r.Float("vit_d")
		if vitD > 0 && vitD < 20 {
			return 7, fmt.Sprintf("Vitamin D %.0f ng/mL (deficient)", vitD)
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		b12 := r.Float("vit_b12")
		if b12 > 0 && b12 < 200 {
			return 7, fmt.Sprintf("Vitamin B12 %.0f pg/mL (deficient)", b12)
		}
		return 0, ""
	},
}
