package scoring

import (
	"fmt"

	"github.com/alexanderramin/vitalog/internal/domain"
)

// mskRules scores musculoskeletal pain and its drivers. Pain level anchors
// the score; relief methods earn a small credit.
var mskRules = []ruleFunc{
	func(r *domain.Record) (int, string) {
		pain := r.Int("pain_level")
		if pain <= 0 {
			return 0, ""
		}
		if pain > 10 {
			pain = 10
		}
		return pain * 4, fmt.Sprintf("Self-rated pain at %d/10", pain)
	},
	func(r *domain.Record) (int, string) {
		switch r.Str("onset_timing") {
		case "Morning / On waking":
			return 12, "Pain present on waking"
		case "End of Workday":
			return 10, "Pain building by end of workday"
		case "During Work":
			return 7, "Pain appearing during work"
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		areas := len(r.StrList("focus_area"))
		if areas == 0 {
			return 0, ""
		}
		pts := areas * 4
		if pts > 12 {
			pts = 12
		}
		return pts, fmt.Sprintf("Pain in %d body areas", areas)
	},
	func(r *domain.Record) (int, string) {
		switch r.Str("pain_nature") {
		case "Numbness/Tingling":
			return 16, "Numbness or tingling reported"
		case "Sharp Pain":
			return 12, "Sharp pain reported"
		case "Stiffness/Tightness":
			return 7, "Stiffness or tightness reported"
		case "Mild Ache":
			return 3, "Mild ache reported"
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		switch r.Str("neck_rom") {
		case "Painful Movement":
			return 10, "Neck movement is painful"
		case "Limited (Stiff)":
			return 7, "Neck range of motion limited"
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		switch r.Str("seated_duration") {
		case "3+ hours":
			return 12, "Seated blocks over three hours"
		case "2 hours":
			return 8, "Seated blocks of two hours"
		case "1 hour":
			return 4, ""
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		if r.Bool("morning_stiffness") {
			return 6, "Morning stiffness"
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		if v, ok := r.BoolSet("good_posture"); ok && !v {
			return 6, "Poor posture through the day"
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		triggers := len(r.StrList("triggers"))
		if triggers == 0 {
			return 0, ""
		}
		pts := triggers * 3
		if pts > 9 {
			pts = 9
		}
		return pts, fmt.Sprintf("%d distinct pain triggers", triggers)
	},
	func(r *domain.Record) (int, string) {
		if r.Bool("impact_work") {
			return 6, "Pain interfering with work"
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		if r.Bool("impact_sleep") {
			return 8, "Pain interfering with sleep"
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		// Active relief methods earn a credit, floored so they cannot mask
		// genuine pain signals.
		relief := len(r.StrList("relief_methods"))
		if relief == 0 {
			return 0, ""
		}
		pts := relief * -2
		if pts < -6 {
			pts = -6
		}
		return pts, ""
	},
}
