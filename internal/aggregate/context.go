package aggregate

import (
	"github.com/alexanderramin/vitalog/internal/domain"
)

// linkage is one cross-domain pattern predicate. Predicates are evaluated
// independently in declaration order; overlapping patterns may co-occur.
// A predicate whose referenced domains lack a current score simply does not
// trigger; that is not an error.
type linkage struct {
	name        string
	domains     []domain.Domain
	description string
	severity    int
	test        func(s scoreSet) bool
}

type scoreSet map[domain.Domain]domain.ScoreResult

// at reports whether the domain has a current score at or above level.
// Missing domains read as false, which skips any predicate that needs them.
func (s scoreSet) at(d domain.Domain, level domain.RiskLevel) bool {
	result, ok := s[d]
	return ok && result.Level.AtLeast(level)
}

// linkages is the fixed pattern table. Order here is output order.
var linkages = []linkage{
	{
		name:        "fatigue_loop",
		domains:     []domain.Domain{domain.DomainHydration, domain.DomainEye, domain.DomainMental},
		description: "Dehydration is compounding fatigue signals from the eyes or mood",
		severity:    20,
		test: func(s scoreSet) bool {
			return s.at(domain.DomainHydration, domain.RiskHigh) &&
				(s.at(domain.DomainEye, domain.RiskHigh) || s.at(domain.DomainMental, domain.RiskHigh))
		},
	},
	{
		name:        "ergonomic_strain",
		domains:     []domain.Domain{domain.DomainWorkspace, domain.DomainMSK},
		description: "Poor workstation setup is reinforcing musculoskeletal pain",
		severity:    25,
		test: func(s scoreSet) bool {
			return s.at(domain.DomainWorkspace, domain.RiskHigh) &&
				s.at(domain.DomainMSK, domain.RiskHigh)
		},
	},
	{
		name:        "stress_sleep_cycle",
		domains:     []domain.Domain{domain.DomainMental, domain.DomainRecoverySleep},
		description: "Stress and poor sleep are feeding each other",
		severity:    25,
		test: func(s scoreSet) bool {
			return s.at(domain.DomainMental, domain.RiskHigh) &&
				s.at(domain.DomainRecoverySleep, domain.RiskHigh)
		},
	},
	{
		name:        "visual_overload",
		domains:     []domain.Domain{domain.DomainEye, domain.DomainWorkspace},
		description: "Eye strain is aggravated by the viewing environment",
		severity:    15,
		test: func(s scoreSet) bool {
			return s.at(domain.DomainEye, domain.RiskHigh) &&
				s.at(domain.DomainWorkspace, domain.RiskModerate)
		},
	},
	{
		name:        "burnout_signal",
		domains:     []domain.Domain{domain.DomainMental, domain.DomainProductivity, domain.DomainRecoverySleep},
		description: "Combined stress, focus erosion, and short sleep suggest early burnout",
		severity:    30,
		test: func(s scoreSet) bool {
			return s.at(domain.DomainMental, domain.RiskHigh) &&
				s.at(domain.DomainProductivity, domain.RiskHigh) &&
				s.at(domain.DomainRecoverySleep, domain.RiskModerate)
		},
	},
	{
		name:        "systemic_load",
		domains:     []domain.Domain{domain.DomainBaseline, domain.DomainMSK, domain.DomainMental},
		description: "Baseline physiology is amplifying day-to-day strain",
		severity:    20,
		test: func(s scoreSet) bool {
			return s.at(domain.DomainBaseline, domain.RiskHigh) &&
				(s.at(domain.DomainMSK, domain.RiskHigh) || s.at(domain.DomainMental, domain.RiskHigh))
		},
	},
	{
		name:        "metabolic_drift",
		domains:     []domain.Domain{domain.DomainLongitudinal, domain.DomainBaseline},
		description: "Lab markers and baseline vitals are drifting together",
		severity:    15,
		test: func(s scoreSet) bool {
			return s.at(domain.DomainLongitudinal, domain.RiskModerate) &&
				s.at(domain.DomainBaseline, domain.RiskModerate)
		},
	},
}

// BuildContext evaluates the linkage table over the current per-domain
// scores. Pure and deterministic; pattern order follows table declaration
// order, and the aggregate severity is the clamped sum of contributions.
func BuildContext(scores map[domain.Domain]domain.ScoreResult) domain.CrossDomainContext {
	ctx := domain.CrossDomainContext{Scores: scores}

	set := scoreSet(scores)
	severity := 0
	for _, l := range linkages {
		if !l.test(set) {
			continue
		}
		ctx.Patterns = append(ctx.Patterns, domain.LinkagePattern{
			Name:        l.name,
			Domains:     l.domains,
			Description: l.description,
			Severity:    l.severity,
		})
		severity += l.severity
	}
	ctx.Severity = domain.Clamp(severity)
	return ctx
}
