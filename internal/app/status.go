package app

import (
	"time"

	"github.com/alexanderramin/vitalog/internal/domain"
)

// DomainStatusView is one domain's row in the status overview.
type DomainStatusView struct {
	Domain       domain.Domain
	Score        int
	Level        domain.RiskLevel
	Explanations []string
	RecordedAt   time.Time
}

// Overview is the full status picture: every domain with a current
// record, the aggregate index, detected linkage patterns, and the
// global recommendations derived from them.
//
// InsufficientData is set when no domain has been checked in yet; the
// WHI field is zero-valued in that case and must not be rendered as a
// score.
type Overview struct {
	GeneratedAt      time.Time
	Domains          []DomainStatusView
	WHI              domain.WHI
	Patterns         []domain.LinkagePattern
	TopRisks         []domain.Domain
	Actions          []string
	InsufficientData bool
}

// GlobalAdvice is the aggregate advise output: the index, a narrative
// (generated or deterministic), and the ordered action list.
type GlobalAdvice struct {
	WHI       domain.WHI
	Patterns  []domain.LinkagePattern
	Narrative string
	Source    domain.AdviceSource
	Actions   []string
}
