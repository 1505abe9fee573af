package domain

// Domain identifies one category of daily self-reported health data.
// Domains are registered statically; there is no dynamic creation.
type Domain string

const (
	DomainBaseline      Domain = "baseline"
	DomainWorkspace     Domain = "workspace"
	DomainLongitudinal  Domain = "longitudinal"
	DomainMSK           Domain = "msk"
	DomainEye           Domain = "eye"
	DomainMental        Domain = "mental"
	DomainHydration     Domain = "hydration"
	DomainProductivity  Domain = "productivity"
	DomainRecoverySleep Domain = "recovery_sleep"
)

// AllDomains returns every registered domain in canonical display order.
func AllDomains() []Domain {
	return []Domain{
		DomainBaseline,
		DomainWorkspace,
		DomainLongitudinal,
		DomainMSK,
		DomainEye,
		DomainMental,
		DomainHydration,
		DomainProductivity,
		DomainRecoverySleep,
	}
}

// Title returns the human-readable name used in output and narratives.
func (d Domain) Title() string {
	switch d {
	case DomainBaseline:
		return "Baseline"
	case DomainWorkspace:
		return "Workspace"
	case DomainLongitudinal:
		return "Lab trend"
	case DomainMSK:
		return "Musculoskeletal"
	case DomainEye:
		return "Eye strain"
	case DomainMental:
		return "Mental load"
	case DomainHydration:
		return "Hydration"
	case DomainProductivity:
		return "Productivity"
	case DomainRecoverySleep:
		return "Sleep recovery"
	}
	return string(d)
}

// Valid reports whether d is a registered domain.
func (d Domain) Valid() bool {
	for _, known := range AllDomains() {
		if d == known {
			return true
		}
	}
	return false
}

// ParseDomain resolves a user-supplied string to a registered domain.
func ParseDomain(s string) (Domain, error) {
	d := Domain(s)
	if !d.Valid() {
		return "", &UnknownDomainError{Name: s}
	}
	return d, nil
}
