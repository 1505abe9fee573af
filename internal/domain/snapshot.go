package domain

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot is one scored point in the risk history: the per-domain scores
// that were available at the time plus the aggregate index computed from them.
// Domains with no record yet are simply absent from Scores.
type Snapshot struct {
	ID       string               `json:"id"`
	TakenAt  time.Time            `json:"timestamp"`
	Scores   map[Domain]int       `json:"scores"`
	Levels   map[Domain]RiskLevel `json:"levels"`
	WHI      int                  `json:"whi"`
	WHILevel RiskLevel            `json:"whi_level"`
}

// NewSnapshot builds a snapshot from score results and a computed index.
func NewSnapshot(results map[Domain]ScoreResult, whi WHI) *Snapshot {
	s := &Snapshot{
		ID:       uuid.NewString(),
		TakenAt:  time.Now().UTC(),
		Scores:   make(map[Domain]int, len(results)),
		Levels:   make(map[Domain]RiskLevel, len(results)),
		WHI:      whi.Score,
		WHILevel: whi.Level,
	}
	for d, r := range results {
		s.Scores[d] = r.Score
		s.Levels[d] = r.Level
	}
	return s
}

// AdviceSource records whether a narrative came from the generator
// or from the deterministic fallback path.
type AdviceSource string

const (
	AdviceGenerated AdviceSource = "generated"
	AdviceFallback  AdviceSource = "fallback"
)

// Advice is the recommendation bundle for one domain record: deterministic
// actions from the rule tables, any urgent warnings, and an optional narrative.
type Advice struct {
	Domain    Domain       `json:"domain"`
	RecordID  string       `json:"record_id"`
	Source    AdviceSource `json:"source"`
	Narrative string       `json:"narrative"`
	Actions   []string     `json:"actions"`
	Urgent    []string     `json:"urgent,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}
