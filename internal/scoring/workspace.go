package scoring

import "github.com/alexanderramin/vitalog/internal/domain"

// workspaceRules scores desk ergonomics and environment. Point values are
// tuned so a fully poor setup saturates near 100.
var workspaceRules = []ruleFunc{
	func(r *domain.Record) (int, string) {
		if v, ok := r.BoolSet("good_posture"); ok && !v {
			return 14, "Posture was poor for most of the day"
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		switch r.Str("breaks") {
		case domain.BreaksNone:
			return 18, "No breaks taken during the workday"
		case domain.BreaksFew:
			return 12, "Very few breaks taken"
		case domain.BreaksSome:
			return 6, "Breaks taken only occasionally"
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		switch r.Str("monitor_height") {
		case domain.MonitorBelowEye:
			return 10, "Monitor well below eye level (looking down)"
		case domain.MonitorAboveEye:
			return 7, "Monitor above eye level"
		case domain.MonitorSlightlyLow:
			return 4, "Monitor slightly below eye level"
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		if v, ok := r.BoolSet("lumbar_support"); ok && !v {
			return 8, "No lumbar support on the chair"
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		switch r.Str("feet_position") {
		case "Not Supported / Dangling":
			return 6, "Feet unsupported while seated"
		case "Crossed / Tucked":
			return 4, "Feet crossed or tucked while seated"
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		switch r.Str("input_device") {
		case "Trackpad":
			return 7, "Trackpad as the primary input device"
		case "Standard Mouse":
			return 3, "Non-ergonomic mouse in use"
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		if r.Str("keyboard_type") == "Laptop Keyboard" {
			return 6, "Typing on the laptop keyboard"
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		if v, ok := r.BoolSet("wrist_support"); ok && !v {
			return 4, "No wrist support in use"
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		switch r.Str("armrests") {
		case "Too low", "Too high", "None":
			return 4, "Armrests missing or badly positioned"
		case "Level with desk":
			return 2, "Armrests level with the desk"
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		if r.Bool("eat_at_desk") {
			return 4, "Lunch eaten at the desk"
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		switch r.Str("noise_level") {
		case "Distracting/Loud":
			return 8, "Loud, distracting noise environment"
		case "Hum/White Noise":
			return 2, "Constant background hum"
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		switch r.Str("temperature") {
		case "Cold":
			return 4, "Workspace uncomfortably cold"
		case "Hot":
			return 4, "Workspace uncomfortably hot"
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		switch r.Str("clutter") {
		case "Cluttered":
			return 6, "Desk heavily cluttered"
		case "Average":
			return 2, "Some desk clutter"
		}
		return 0, ""
	},
}
