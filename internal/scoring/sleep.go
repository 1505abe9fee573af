package scoring

import (
	"fmt"

	"github.com/alexanderramin/vitalog/internal/domain"
)

// recoverySleepRules scores last night's sleep and recovery habits.
var recoverySleepRules = []ruleFunc{
	func(r *domain.Record) (int, string) {
		hours := r.Float("sleep_hours")
		switch {
		case hours <= 0:
			return 0, ""
		case hours < 5:
			return 30, fmt.Sprintf("Severely short sleep (%.1f hours)", hours)
		case hours < 6:
			return 22, fmt.Sprintf("Short sleep (%.1f hours)", hours)
		case hours < 7:
			return 12, fmt.Sprintf("Slightly short sleep (%.1f hours)", hours)
		case hours < 7.5:
			return 6, ""
		case hours > 9.5:
			return 8, fmt.Sprintf("Unusually long sleep (%.1f hours)", hours)
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		switch r.Str("sleep_quality") {
		case "Poor":
			return 14, "Poor sleep quality"
		case "Restless":
			return 10, "Restless sleep"
		case "Average":
			return 4, ""
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		switch r.Str("time_to_fall_asleep") {
		case "1 hour+":
			return 10, "Over an hour to fall asleep"
		case "30-60 min":
			return 7, "30-60 minutes to fall asleep"
		case "15-30 min":
			return 3, ""
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		wakes := r.Int("night_wakes")
		switch {
		case wakes >= 3:
			return 10, fmt.Sprintf("Woke %d times during the night", wakes)
		case wakes == 2:
			return 6, "Woke twice during the night"
		case wakes == 1:
			return 3, ""
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		if r.Bool("screen_before_bed") {
			return 6, "Screen use in the hour before bed"
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		if r.Bool("caffeine_after_3pm") {
			return 6, "Caffeine after 3pm"
		}
		return 0, ""
	},
	func(r *domain.Record) (int, string) {
		if v, ok := r.BoolSet("wake_refreshed"); ok && !v {
			return 8, "Woke unrefreshed"
		}
		return 0, ""
	},
}
