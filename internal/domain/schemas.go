package domain

// Enum vocabularies shared between schemas, scoring rules, and forms.
// The exact strings are part of the stored record format.
const (
	BreaksRegular = "Regular breaks"
	BreaksSome    = "Some breaks"
	BreaksFew     = "Few breaks"
	BreaksNone    = "No breaks"

	MonitorAtEye        = "At Eye Level"
	MonitorSlightlyLow  = "Slightly Below Eye Level"
	MonitorBelowEye     = "Below Eye Level (Looking Down)"
	MonitorAboveEye     = "Above Eye Level"

	UrinePale  = "Pale Yellow (Good)"
	UrineOkay  = "Yellow (Okay)"
	UrineDark  = "Dark Yellow"
	UrineAmber = "Amber/Brown"

	ThirstNone = "Not Thirsty"
	ThirstMild = "Mildly Thirsty"
	ThirstHigh = "Very Thirsty / Parched"
)

var schemas = map[Domain]Schema{
	DomainWorkspace: {
		Domain: DomainWorkspace,
		Fields: []Field{
			{Key: "good_posture", Title: "Maintained good posture today?", Kind: FieldBool, Required: true},
			{Key: "breaks", Title: "Break frequency", Kind: FieldEnum, Required: true,
				Options: []string{BreaksRegular, BreaksSome, BreaksFew, BreaksNone}},
			{Key: "monitor_height", Title: "Monitor height", Kind: FieldEnum,
				Options: []string{MonitorAtEye, MonitorSlightlyLow, MonitorBelowEye, MonitorAboveEye}},
			{Key: "lumbar_support", Title: "Chair has lumbar support?", Kind: FieldBool},
			{Key: "feet_position", Title: "Feet position", Kind: FieldEnum,
				Options: []string{"Flat on Floor", "Not Supported / Dangling", "Crossed / Tucked"}},
			{Key: "input_device", Title: "Primary input device", Kind: FieldEnum,
				Options: []string{"Ergonomic Mouse", "Standard Mouse", "Trackpad"}},
			{Key: "keyboard_type", Title: "Keyboard", Kind: FieldEnum,
				Options: []string{"External Keyboard", "Laptop Keyboard"}},
			{Key: "wrist_support", Title: "Wrist support in use?", Kind: FieldBool},
			{Key: "armrests", Title: "Armrest position", Kind: FieldEnum,
				Options: []string{"Level with desk", "Too low", "Too high", "None"}},
			{Key: "eat_at_desk", Title: "Ate lunch at the desk?", Kind: FieldBool},
			{Key: "noise_level", Title: "Noise level", Kind: FieldEnum,
				Options: []string{"Quiet", "Hum/White Noise", "Distracting/Loud"}},
			{Key: "temperature", Title: "Room temperature", Kind: FieldEnum,
				Options: []string{"Comfortable", "Cold", "Hot"}},
			{Key: "clutter", Title: "Desk clutter", Kind: FieldEnum,
				Options: []string{"Tidy", "Average", "Cluttered"}},
			{Key: "notes", Title: "Notes", Kind: FieldText},
		},
	},
	DomainEye: {
		Domain: DomainEye,
		Fields: []Field{
			{Key: "strain_level", Title: "Eye strain right now (0-10)", Kind: FieldInt, Required: true, Min: 0, Max: 10},
			{Key: "session_length", Title: "Longest unbroken screen session", Kind: FieldEnum,
				Options: []string{"<1 hour", "1-2 hours", "2-4 hours", "4+ hours"}},
			{Key: "symptoms", Title: "Symptoms today", Kind: FieldMultiEnum,
				Options: []string{
					"Dryness / Gritty feeling", "Blurred Vision (end of day)", "Headache (behind eyes)",
					"Eye Twitching", "Watery Eyes", "Burning / Irritation", "Difficulty focusing",
				}},
			{Key: "lighting", Title: "Room lighting", Kind: FieldEnum,
				Options: []string{"Natural", "Mixed", "Dim", "Harsh/Overhead"}},
			{Key: "screen_brightness", Title: "Screen brightness vs room", Kind: FieldEnum,
				Options: []string{"Matched to room", "Brighter than room", "Too dim"}},
			{Key: "glare", Title: "Noticeable glare on screen?", Kind: FieldBool},
			{Key: "distance_check", Title: "Screen at arm's length?", Kind: FieldBool},
			{Key: "rule_20_20_20", Title: "20-20-20 rule followed", Kind: FieldEnum,
				Options: []string{"Always", "Often", "Occasionally", "Never"}},
			{Key: "used_drops", Title: "Used lubricating drops?", Kind: FieldBool},
			{Key: "notes", Title: "Notes", Kind: FieldText},
		},
	},
	DomainHydration: {
		Domain: DomainHydration,
		Fields: []Field{
			{Key: "water_intake", Title: "Water today (cups)", Kind: FieldInt, Required: true, Min: 0, Max: 30},
			{Key: "caffeine_intake", Title: "Caffeinated drinks (cups)", Kind: FieldInt, Min: 0, Max: 20},
			{Key: "sugary_drinks", Title: "Sugary drinks (cups)", Kind: FieldInt, Min: 0, Max: 20},
			{Key: "bottle_on_desk", Title: "Water bottle on the desk?", Kind: FieldBool},
			{Key: "urine_color", Title: "Urine color", Kind: FieldEnum,
				Options: []string{UrinePale, UrineOkay, UrineDark, UrineAmber}},
			{Key: "thirst_level", Title: "Thirst level", Kind: FieldEnum,
				Options: []string{ThirstNone, ThirstMild, ThirstHigh}},
			{Key: "symptoms", Title: "Symptoms today", Kind: FieldMultiEnum,
				Options: []string{"Dry Mouth/Lips", "Headache", "Dizziness", "Fatigue"}},
			{Key: "notes", Title: "Notes", Kind: FieldText},
		},
	},
	DomainMSK: {
		Domain: DomainMSK,
		Fields: []Field{
			{Key: "pain_level", Title: "Pain level right now (0-10)", Kind: FieldInt, Required: true, Min: 0, Max: 10},
			{Key: "onset_timing", Title: "When does pain appear", Kind: FieldEnum,
				Options: []string{"No Pain", "During Work", "End of Workday", "Morning / On waking"}},
			{Key: "focus_area", Title: "Affected areas", Kind: FieldMultiEnum,
				Options: []string{"Neck", "Shoulders", "Upper Back", "Lower Back", "Wrists", "Hips", "Knees"}},
			{Key: "pain_nature", Title: "Nature of the pain", Kind: FieldEnum,
				Options: []string{"Mild Ache", "Stiffness/Tightness", "Sharp Pain", "Numbness/Tingling"}},
			{Key: "neck_rom", Title: "Neck range of motion", Kind: FieldEnum,
				Options: []string{"Full & Painless", "Limited (Stiff)", "Painful Movement"}},
			{Key: "seated_duration", Title: "Longest unbroken seated block", Kind: FieldEnum,
				Options: []string{"30 min", "1 hour", "2 hours", "3+ hours"}},
			{Key: "morning_stiffness", Title: "Morning stiffness?", Kind: FieldBool},
			{Key: "good_posture", Title: "Maintained good posture?", Kind: FieldBool},
			{Key: "triggers", Title: "Pain triggers", Kind: FieldMultiEnum,
				Options: []string{"Typing", "Mouse use", "Sitting", "Standing", "Looking down", "Reaching"}},
			{Key: "impact_work", Title: "Pain interfered with work?", Kind: FieldBool},
			{Key: "impact_sleep", Title: "Pain interfered with sleep?", Kind: FieldBool},
			{Key: "relief_methods", Title: "Relief methods used", Kind: FieldMultiEnum,
				Options: []string{"Stretching", "Walking", "Heat", "Cold pack", "Massage"}},
			{Key: "notes", Title: "Notes", Kind: FieldText},
		},
	},
	DomainBaseline: {
		Domain: DomainBaseline,
		Fields: []Field{
			{Key: "height", Title: "Height (cm)", Kind: FieldFloat, Required: true},
			{Key: "weight", Title: "Weight (kg)", Kind: FieldFloat, Required: true},
			{Key: "bp_systolic", Title: "Blood pressure, systolic", Kind: FieldFloat},
			{Key: "bp_diastolic", Title: "Blood pressure, diastolic", Kind: FieldFloat},
			{Key: "rhr", Title: "Resting heart rate (bpm)", Kind: FieldFloat},
			{Key: "activity_level", Title: "Activity level", Kind: FieldEnum,
				Options: []string{"Sedentary", "Lightly active", "Moderately active", "Very active"}},
			{Key: "waist_cm", Title: "Waist circumference (cm)", Kind: FieldFloat},
			{Key: "notes", Title: "Notes", Kind: FieldText},
		},
	},
	DomainLongitudinal: {
		Domain: DomainLongitudinal,
		Fields: []Field{
			{Key: "glucose", Title: "Fasting glucose (mg/dL)", Kind: FieldFloat},
			{Key: "hba1c", Title: "HbA1c (%)", Kind: FieldFloat},
			{Key: "cholesterol", Title: "Total cholesterol (mg/dL)", Kind: FieldFloat},
			{Key: "triglycerides", Title: "Triglycerides (mg/dL)", Kind: FieldFloat},
			{Key: "vit_d", Title: "Vitamin D (ng/mL)", Kind: FieldFloat},
			{Key: "vit_b12", Title: "Vitamin B12 (pg/mL)", Kind: FieldFloat},
			{Key: "notes", Title: "Notes", Kind: FieldText},
		},
	},
	DomainMental: {
		Domain: DomainMental,
		Fields: []Field{
			{Key: "stress_level", Title: "Stress level right now (0-10)", Kind: FieldInt, Required: true, Min: 0, Max: 10},
			{Key: "mood", Title: "Overall mood", Kind: FieldEnum,
				Options: []string{"Good", "Flat", "Low", "Irritable", "Anxious"}},
			{Key: "workload", Title: "Today's workload felt", Kind: FieldEnum,
				Options: []string{"Light", "Manageable", "Heavy", "Overwhelming"}},
			{Key: "breaks_taken", Title: "Took real breaks away from the desk?", Kind: FieldBool},
			{Key: "social_interaction", Title: "Social interaction", Kind: FieldEnum,
				Options: []string{"Regular", "Some", "None"}},
			{Key: "symptoms", Title: "Symptoms today", Kind: FieldMultiEnum,
				Options: []string{
					"Racing thoughts", "Difficulty concentrating", "Irritability",
					"Low motivation", "Tension headache",
				}},
			{Key: "notes", Title: "Notes", Kind: FieldText},
		},
	},
	DomainProductivity: {
		Domain: DomainProductivity,
		Fields: []Field{
			{Key: "focus_level", Title: "Focus quality today (0-10)", Kind: FieldInt, Required: true, Min: 0, Max: 10},
			{Key: "deep_work_blocks", Title: "Deep work blocks completed", Kind: FieldInt, Min: 0, Max: 12},
			{Key: "interruptions", Title: "Interruption frequency", Kind: FieldEnum,
				Options: []string{"Rare", "Occasional", "Frequent", "Constant"}},
			{Key: "task_switching", Title: "Task switching", Kind: FieldEnum,
				Options: []string{"Low", "Moderate", "High"}},
			{Key: "afternoon_slump", Title: "Hit an afternoon slump?", Kind: FieldBool},
			{Key: "overtime_hours", Title: "Overtime hours today", Kind: FieldFloat},
			{Key: "notes", Title: "Notes", Kind: FieldText},
		},
	},
	DomainRecoverySleep: {
		Domain: DomainRecoverySleep,
		Fields: []Field{
			{Key: "sleep_hours", Title: "Sleep last night (hours)", Kind: FieldFloat, Required: true},
			{Key: "sleep_quality", Title: "Sleep quality", Kind: FieldEnum,
				Options: []string{"Restful", "Average", "Restless", "Poor"}},
			{Key: "time_to_fall_asleep", Title: "Time to fall asleep", Kind: FieldEnum,
				Options: []string{"<15 min", "15-30 min", "30-60 min", "1 hour+"}},
			{Key: "night_wakes", Title: "Times woken during the night", Kind: FieldInt, Min: 0, Max: 10},
			{Key: "screen_before_bed", Title: "Screen in the hour before bed?", Kind: FieldBool},
			{Key: "caffeine_after_3pm", Title: "Caffeine after 3pm?", Kind: FieldBool},
			{Key: "wake_refreshed", Title: "Woke feeling refreshed?", Kind: FieldBool},
			{Key: "notes", Title: "Notes", Kind: FieldText},
		},
	},
}
