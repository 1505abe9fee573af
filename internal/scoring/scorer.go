package scoring

import (
	"fmt"

	"github.com/alexanderramin/vitalog/internal/domain"
)

// ruleFunc is one scoring rule: it inspects the record and, when triggered,
// returns a point delta and an explanation string. A zero delta with an empty
// explanation means the rule did not trigger. Rules are independent and are
// evaluated in declaration order; the explanation list preserves that order.
type ruleFunc func(r *domain.Record) (int, string)

// ruleSets maps each registered domain to its fixed, ordered rule list.
var ruleSets = map[domain.Domain][]ruleFunc{
	domain.DomainWorkspace:     workspaceRules,
	domain.DomainEye:           eyeRules,
	domain.DomainHydration:     hydrationRules,
	domain.DomainMSK:           mskRules,
	domain.DomainBaseline:      baselineRules,
	domain.DomainLongitudinal:  longitudinalRules,
	domain.DomainMental:        mentalRules,
	domain.DomainProductivity:  productivityRules,
	domain.DomainRecoverySleep: recoverySleepRules,
}

// Scorer computes risk scores for submitted records. It holds per-domain
// breakpoint overrides; scoring itself is pure and side-effect free.
type Scorer struct {
	breakpoints map[domain.Domain]domain.Breakpoints
}

// NewScorer creates a Scorer using the default breakpoints for every domain.
func NewScorer() *Scorer {
	return &Scorer{breakpoints: map[domain.Domain]domain.Breakpoints{}}
}

// SetBreakpoints overrides the risk bands for one domain. The bands must be
// monotonic and partition [0,100].
func (s *Scorer) SetBreakpoints(d domain.Domain, bps domain.Breakpoints) error {
	if !d.Valid() {
		return &domain.UnknownDomainError{Name: string(d)}
	}
	if err := bps.Validate(); err != nil {
		return fmt.Errorf("breakpoints for %s: %w", d, err)
	}
	s.breakpoints[d] = bps
	return nil
}

// Breakpoints returns the effective bands for a domain.
func (s *Scorer) Breakpoints(d domain.Domain) domain.Breakpoints {
	if bps, ok := s.breakpoints[d]; ok {
		return bps
	}
	return domain.DefaultBreakpoints()
}

// Score evaluates a domain's rule list against one record. Deterministic and
// total over records conforming to the schema: missing optional fields are
// neutral, a missing required field fails with a SchemaError, and an
// unregistered domain fails with ErrUnknownDomain.
func (s *Scorer) Score(d domain.Domain, rec *domain.Record) (domain.ScoreResult, error) {
	schema, err := domain.SchemaFor(d)
	if err != nil {
		return domain.ScoreResult{}, err
	}
	if err := schema.Validate(rec); err != nil {
		return domain.ScoreResult{}, err
	}

	var total int
	var explanations []string
	for _, rule := range ruleSets[d] {
		delta, explanation := rule(rec)
		total += delta
		if explanation != "" {
			explanations = append(explanations, explanation)
		}
	}

	score := domain.Clamp(total)
	return domain.ScoreResult{
		Domain:       d,
		Score:        score,
		Level:        s.Breakpoints(d).LevelFor(score),
		Explanations: explanations,
	}, nil
}

// symptomPoints sums per-symptom contributions up to a cap, so long symptom
// lists cannot dominate a domain's score.
func symptomPoints(symptoms []string, points map[string]int, cap int) int {
	total := 0
	for _, s := range symptoms {
		total += points[s]
	}
	if total > cap {
		return cap
	}
	return total
}
