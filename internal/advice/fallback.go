package advice

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/vitalog/internal/domain"
)

// DeterministicDomainNarrative builds a narrative directly from the score
// result without the generator. Used whenever generation is disabled,
// unavailable, or produces nothing usable.
func DeterministicDomainNarrative(d domain.Domain, res domain.ScoreResult, actions []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s risk is %s (%d/100).", d.Title(), strings.ToLower(res.Level.Display()), res.Score)

	if len(res.Explanations) > 0 {
		b.WriteString(" Driven by: ")
		b.WriteString(strings.Join(topN(res.Explanations, 3), "; "))
		b.WriteString(".")
	}
	if len(actions) > 0 {
		fmt.Fprintf(&b, " Start with: %s.", actions[0])
	}
	return b.String()
}

// DeterministicGlobalNarrative builds an overview narrative from the index
// and cross-domain context.
func DeterministicGlobalNarrative(whi domain.WHI, cctx domain.CrossDomainContext, actions []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Workday Health Index is %d/100 (%s) across %d domain(s).",
		whi.Score, strings.ToLower(whi.Level.Display()), len(whi.ScoredDomains))

	for _, p := range topPatterns(cctx.Patterns, 2) {
		b.WriteString(" ")
		b.WriteString(p.Description)
		b.WriteString(".")
	}
	if len(actions) > 0 {
		fmt.Fprintf(&b, " Start with: %s.", actions[0])
	}
	return b.String()
}

func topN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

func topPatterns(patterns []domain.LinkagePattern, n int) []domain.LinkagePattern {
	if len(patterns) <= n {
		return patterns
	}
	return patterns[:n]
}
