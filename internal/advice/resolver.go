package advice

import (
	"strings"

	"github.com/alexanderramin/vitalog/internal/domain"
)

// actionRule maps a triggered scoring explanation to a concrete action.
// A rule fires when the result is at or above minLevel and, when match is
// non-empty, some explanation contains match (case-insensitive). Tables are
// declared most severe first; output preserves table order.
type actionRule struct {
	minLevel domain.RiskLevel
	match    string
	action   string
}

var domainActions = map[domain.Domain][]actionRule{
	domain.DomainWorkspace: {
		{domain.RiskHigh, "posture", "Reset the chair and screen so ears, shoulders and hips stack vertically"},
		{domain.RiskModerate, "breaks", "Stand up and move for two minutes every half hour"},
		{domain.RiskModerate, "monitor", "Raise the monitor so the top third of the screen sits at eye level"},
		{domain.RiskModerate, "lumbar", "Add a lumbar cushion or adjust the chair backrest"},
		{domain.RiskModerate, "feet", "Rest feet flat on the floor or a footrest"},
		{domain.RiskModerate, "trackpad", "Switch to an external ergonomic mouse"},
		{domain.RiskModerate, "laptop keyboard", "Use an external keyboard and raise the laptop"},
		{domain.RiskModerate, "noise", "Use noise-isolating headphones or relocate for focus work"},
		{domain.RiskLow, "lunch eaten", "Eat lunch away from the desk"},
	},
	domain.DomainEye: {
		{domain.RiskHigh, "eye strain", "Take a fifteen-minute screen-free break now"},
		{domain.RiskModerate, "unbroken screen", "Split long screen sessions with short distance breaks"},
		{domain.RiskModerate, "20-20-20", "Every 20 minutes, look 20 feet away for 20 seconds"},
		{domain.RiskModerate, "dim lighting", "Add indirect ambient lighting behind the screen"},
		{domain.RiskModerate, "glare", "Reposition the screen or close blinds to remove glare"},
		{domain.RiskModerate, "brighter than the room", "Match screen brightness to the room"},
		{domain.RiskLow, "visual symptoms", "Blink deliberately and consider lubricating eye drops"},
	},
	domain.DomainHydration: {
		{domain.RiskHigh, "thirsty", "Rehydrate now with water, adding electrolytes if symptoms persist"},
		{domain.RiskModerate, "water", "Keep a filled bottle in reach and drink a glass each hour"},
		{domain.RiskModerate, "urine", "Increase water intake until urine runs pale"},
		{domain.RiskModerate, "caffeine", "Swap the next coffee for water or herbal tea"},
		{domain.RiskModerate, "sugary", "Replace sugary drinks with water"},
		{domain.RiskLow, "dehydration symptoms", "Track symptoms against intake for the rest of the day"},
	},
	domain.DomainMSK: {
		{domain.RiskHigh, "pain at", "Arrange a physiotherapy assessment if pain persists this week"},
		{domain.RiskModerate, "numbness", "Stop and change position the moment numbness appears"},
		{domain.RiskModerate, "seated blocks", "Break seated blocks with a short walk every hour"},
		{domain.RiskModerate, "stiffness", "Start the day with five minutes of mobility work"},
		{domain.RiskModerate, "neck", "Do slow neck rotations and chin tucks twice a day"},
		{domain.RiskModerate, "interfering with sleep", "Review pillow and mattress support"},
		{domain.RiskModerate, "posture", "Set an hourly posture reset reminder"},
	},
	domain.DomainBaseline: {
		{domain.RiskModerate, "blood pressure", "Re-check blood pressure at rest and discuss readings with a clinician"},
		{domain.RiskModerate, "bmi", "Add a daily thirty-minute walk and review portion sizes"},
		{domain.RiskModerate, "heart rate", "Build in light cardio and re-measure resting heart rate weekly"},
		{domain.RiskModerate, "waist", "Prioritise daily movement and fibre-forward meals"},
		{domain.RiskModerate, "sedentary", "Schedule short movement breaks through the workday"},
	},
	domain.DomainLongitudinal: {
		{domain.RiskModerate, "glucose", "Discuss fasting glucose results with your GP"},
		{domain.RiskModerate, "hba1c", "Discuss HbA1c results with your GP"},
		{domain.RiskModerate, "cholesterol", "Review diet and cholesterol results with a clinician"},
		{domain.RiskModerate, "triglycerides", "Cut refined sugar and alcohol; recheck triglycerides"},
		{domain.RiskModerate, "vitamin d", "Consider vitamin D supplementation after medical advice"},
		{domain.RiskModerate, "b12", "Consider B12 supplementation after medical advice"},
	},
	domain.DomainMental: {
		{domain.RiskHigh, "stress at", "Insert a genuine off-screen break before the next commitment"},
		{domain.RiskModerate, "workload", "Renegotiate today's scope or defer one task"},
		{domain.RiskModerate, "mood", "Name the mood and take a ten-minute walk outside"},
		{domain.RiskModerate, "breaks", "Take one real break away from all screens"},
		{domain.RiskModerate, "social", "Plan one real conversation away from work today"},
		{domain.RiskLow, "stress symptoms", "Try two minutes of slow breathing between tasks"},
	},
	domain.DomainProductivity: {
		{domain.RiskModerate, "interruptions", "Block a no-meeting focus window tomorrow morning"},
		{domain.RiskModerate, "deep work", "Protect at least one ninety-minute deep work block"},
		{domain.RiskModerate, "task switching", "Batch small tasks instead of interleaving them"},
		{domain.RiskModerate, "overtime", "Set a hard stop time tonight"},
		{domain.RiskModerate, "slump", "Take a daylight break mid-afternoon"},
		{domain.RiskModerate, "focus quality", "Match the hardest task to your best energy window"},
	},
	domain.DomainRecoverySleep: {
		{domain.RiskHigh, "short sleep", "Set a consistent bedtime tonight and aim for seven to nine hours"},
		{domain.RiskModerate, "fall asleep", "Wind down without screens for the last hour of the day"},
		{domain.RiskModerate, "screen use", "Move screens out of the hour before bed"},
		{domain.RiskModerate, "caffeine", "Cut caffeine after lunch"},
		{domain.RiskModerate, "woke", "Keep the bedroom cool, dark and quiet"},
		{domain.RiskModerate, "quality", "Keep wake time fixed even after a poor night"},
		{domain.RiskModerate, "unrefreshed", "Get daylight within an hour of waking"},
	},
}

// ForDomain resolves the deterministic actions for one scored domain.
// Actions come out most severe first, de-duplicated, in table order.
func ForDomain(d domain.Domain, res domain.ScoreResult) []string {
	var out []string
	seen := make(map[string]bool)
	for _, rule := range domainActions[d] {
		if !res.Level.AtLeast(rule.minLevel) {
			continue
		}
		if rule.match != "" && !anyExplanationContains(res.Explanations, rule.match) {
			continue
		}
		if seen[rule.action] {
			continue
		}
		seen[rule.action] = true
		out = append(out, rule.action)
	}
	return out
}

func anyExplanationContains(explanations []string, match string) bool {
	for _, e := range explanations {
		if strings.Contains(strings.ToLower(e), strings.ToLower(match)) {
			return true
		}
	}
	return false
}

var globalLevelActions = []struct {
	minLevel domain.RiskLevel
	action   string
}{
	{domain.RiskCritical, "Treat today as a recovery day: shorten the work block and address the highest-risk domain first"},
	{domain.RiskVeryHigh, "Pick the single highest-risk domain and act on its first recommendation before anything else"},
	{domain.RiskHigh, "Work through the top recommendation in each high-risk domain today"},
	{domain.RiskModerate, "Tackle one flagged habit today before it compounds"},
}

// Actions attached to triggered cross-domain patterns, keyed by pattern name.
var linkageActions = map[string]string{
	"fatigue_loop":       "Rehydrate before reaching for more caffeine; fatigue here tracks fluid intake",
	"ergonomic_strain":   "Fix the workstation setup first; the pain pattern points at the desk",
	"stress_sleep_cycle": "Protect tonight's sleep window; stress and short sleep are feeding each other",
	"visual_overload":    "Cut continuous screen time today, not just total hours",
	"burnout_signal":     "Reduce today's scope and book real recovery time this week",
	"systemic_load":      "Prioritise the basics this week: movement, water, and a fixed bedtime",
	"metabolic_drift":    "Pair the lab trends with daily movement and review them with a clinician",
}

// Global resolves workday-level actions from the aggregate index and the
// triggered cross-domain patterns.
func Global(whi domain.WHI, cctx domain.CrossDomainContext) []string {
	var out []string
	for _, rule := range globalLevelActions {
		if whi.Level.AtLeast(rule.minLevel) {
			out = append(out, rule.action)
			break
		}
	}
	for _, p := range cctx.Patterns {
		if action, ok := linkageActions[p.Name]; ok {
			out = append(out, action)
		}
	}
	return out
}
