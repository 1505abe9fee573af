package aggregate

import (
	"math"

	"github.com/alexanderramin/vitalog/internal/domain"
)

// Weights holds optional per-domain weighting for the WHI mean. A nil map
// means equal weighting across every domain with a current score.
type Weights map[domain.Domain]float64

// WHI blend: 70% weighted per-domain mean, 30% cross-domain linkage severity.
const (
	domainShare  = 0.7
	linkageShare = 0.3
)

// ComputeWHI combines all current domain scores and the linkage severity
// into the Workday Health Index. Domains without a submission are excluded
// from the mean, never treated as zero. With no scored domains at all the
// index is undefined and ErrInsufficientData is returned, so an empty day
// can never masquerade as "no risk".
//
// The result depends only on the set of current scores, not on submission
// order.
func ComputeWHI(scores map[domain.Domain]domain.ScoreResult, severity int, weights Weights) (domain.WHI, error) {
	if len(scores) == 0 {
		return domain.WHI{}, domain.ErrInsufficientData
	}

	var weightedSum, totalWeight float64
	for d, result := range scores {
		w := 1.0
		if weights != nil {
			w = weights[d]
		}
		if w <= 0 {
			continue
		}
		weightedSum += float64(result.Score) * w
		totalWeight += w
	}
	// A weight table that zeroes out every scored domain falls back to the
	// equal-weight default rather than dividing by zero.
	if totalWeight <= 0 {
		weightedSum, totalWeight = 0, 0
		for _, result := range scores {
			weightedSum += float64(result.Score)
			totalWeight++
		}
	}
	mean := weightedSum / totalWeight

	raw := domainShare*mean + linkageShare*float64(domain.Clamp(severity))
	score := domain.Clamp(int(math.Round(raw)))

	return domain.WHI{
		Score:         score,
		Level:         domain.DefaultBreakpoints().LevelFor(score),
		ScoredDomains: scoredDomains(scores),
	}, nil
}

// scoredDomains lists contributing domains in canonical order, keeping the
// output stable regardless of map iteration order.
func scoredDomains(scores map[domain.Domain]domain.ScoreResult) []domain.Domain {
	var out []domain.Domain
	for _, d := range domain.AllDomains() {
		if _, ok := scores[d]; ok {
			out = append(out, d)
		}
	}
	return out
}
