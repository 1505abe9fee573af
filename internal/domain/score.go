package domain

// ScoreResult is the derived risk assessment for one domain at one point in
// time. It is recomputed on demand from the current record and never stored
// as ground truth.
type ScoreResult struct {
	Domain Domain    `json:"domain"`
	Score  int       `json:"score"`
	Level  RiskLevel `json:"level"`
	// Explanations lists triggered rule descriptions in rule-declaration
	// order, which keeps output ordering reproducible.
	Explanations []string `json:"explanations,omitempty"`
	// Actions holds resolved recommendations, highest severity first.
	Actions []string `json:"actions,omitempty"`
}

// LinkagePattern is one detected cross-domain co-occurrence of elevated risk.
type LinkagePattern struct {
	Name        string   `json:"name"`
	Domains     []Domain `json:"domains"`
	Description string   `json:"description"`
	Severity    int      `json:"severity"`
}

// CrossDomainContext is the derived, non-persisted aggregate over all domains
// with a current score.
type CrossDomainContext struct {
	Scores   map[Domain]ScoreResult `json:"scores"`
	Patterns []LinkagePattern       `json:"patterns,omitempty"`
	// Severity is the clamped sum of triggered pattern contributions.
	Severity int `json:"severity"`
}

// WHI is the Workday Health Index: one weighted global score across all
// domains plus cross-domain linkage severity.
type WHI struct {
	Score int       `json:"score"`
	Level RiskLevel `json:"level"`
	// ScoredDomains lists the domains that contributed, in canonical order.
	ScoredDomains []Domain `json:"scored_domains"`
}
