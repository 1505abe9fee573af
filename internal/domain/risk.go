package domain

import "fmt"

// RiskLevel is an ordered severity scale for scores and aggregates.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskVeryHigh RiskLevel = "very_high"
	RiskCritical RiskLevel = "critical"
)

var riskRanks = map[RiskLevel]int{
	RiskLow:      0,
	RiskModerate: 1,
	RiskHigh:     2,
	RiskVeryHigh: 3,
	RiskCritical: 4,
}

// Rank returns the position of the level on the ordered scale, low first.
func (l RiskLevel) Rank() int {
	return riskRanks[l]
}

// AtLeast reports whether l is at or above other on the ordered scale.
func (l RiskLevel) AtLeast(other RiskLevel) bool {
	return l.Rank() >= other.Rank()
}

// Display returns a human-readable label for the level.
func (l RiskLevel) Display() string {
	switch l {
	case RiskLow:
		return "Low"
	case RiskModerate:
		return "Moderate"
	case RiskHigh:
		return "High"
	case RiskVeryHigh:
		return "Very High"
	case RiskCritical:
		return "Critical"
	}
	return string(l)
}

// Breakpoint marks the inclusive lower bound of a risk band.
type Breakpoint struct {
	Min   int
	Level RiskLevel
}

// Breakpoints maps scores to risk levels. Bands must start at 0, ascend in
// both score and level, and partition [0,100] with no gaps. A score equal to
// a band boundary belongs to the higher band.
type Breakpoints []Breakpoint

// DefaultBreakpoints returns the standard banding used by every domain and
// by the Workday Health Index.
func DefaultBreakpoints() Breakpoints {
	return Breakpoints{
		{Min: 0, Level: RiskLow},
		{Min: 25, Level: RiskModerate},
		{Min: 50, Level: RiskHigh},
		{Min: 75, Level: RiskVeryHigh},
		{Min: 90, Level: RiskCritical},
	}
}

// LevelFor returns the band containing score. Scores are clamped to [0,100]
// before lookup so the mapping is total.
func (b Breakpoints) LevelFor(score int) RiskLevel {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	level := b[0].Level
	for _, bp := range b {
		if score >= bp.Min {
			level = bp.Level
		}
	}
	return level
}

// Validate checks that the bands form a monotonic, gapless partition of
// [0,100] with inclusive lower bounds.
func (b Breakpoints) Validate() error {
	if len(b) == 0 {
		return fmt.Errorf("breakpoints: empty")
	}
	if b[0].Min != 0 {
		return fmt.Errorf("breakpoints: first band must start at 0, got %d", b[0].Min)
	}
	for i := 1; i < len(b); i++ {
		if b[i].Min <= b[i-1].Min {
			return fmt.Errorf("breakpoints: band %d min %d not above previous %d", i, b[i].Min, b[i-1].Min)
		}
		if b[i].Min > 100 {
			return fmt.Errorf("breakpoints: band %d min %d outside [0,100]", i, b[i].Min)
		}
		if b[i].Level.Rank() <= b[i-1].Level.Rank() {
			return fmt.Errorf("breakpoints: band %d level %s not above previous %s", i, b[i].Level, b[i-1].Level)
		}
	}
	return nil
}

// Clamp bounds a raw point total to the valid score range.
func Clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
