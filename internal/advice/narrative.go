package advice

import (
	"context"
	"encoding/json"

	"github.com/alexanderramin/vitalog/internal/domain"
	"github.com/alexanderramin/vitalog/internal/llm"
)

// NarrativeService turns scored results into short prose via the local
// generator. Every failure path falls back to a deterministic narrative;
// callers never see a generator error and scores are computed before any
// generation starts.
type NarrativeService struct {
	client llm.Client
}

// NewNarrativeService creates a NarrativeService backed by a generator client.
// A nil client disables generation entirely; only the fallback is used.
func NewNarrativeService(client llm.Client) *NarrativeService {
	return &NarrativeService{client: client}
}

type domainPayload struct {
	Domain       string   `json:"domain"`
	Score        int      `json:"score"`
	Level        string   `json:"level"`
	Explanations []string `json:"explanations"`
	Actions      []string `json:"actions"`
}

// ForDomain produces a narrative for one scored domain.
func (s *NarrativeService) ForDomain(ctx context.Context, d domain.Domain, res domain.ScoreResult, actions []string) (string, domain.AdviceSource) {
	fallback := DeterministicDomainNarrative(d, res, actions)
	if s.client == nil {
		return fallback, domain.AdviceFallback
	}

	payload, err := json.MarshalIndent(domainPayload{
		Domain:       string(d),
		Score:        res.Score,
		Level:        string(res.Level),
		Explanations: res.Explanations,
		Actions:      actions,
	}, "", "  ")
	if err != nil {
		return fallback, domain.AdviceFallback
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskAdvise,
		SystemPrompt: adviseSystemPrompt,
		UserPrompt:   "Here is today's assessment for one domain:\n\n" + string(payload),
	})
	if err != nil {
		return fallback, domain.AdviceFallback
	}
	return resp.Text, domain.AdviceGenerated
}

type globalPayload struct {
	WHI      int              `json:"whi"`
	Level    string           `json:"level"`
	Scores   map[string]int   `json:"scores"`
	Patterns []patternPayload `json:"patterns"`
	Actions  []string         `json:"actions"`
}

type patternPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Global produces a narrative for the whole-workday overview.
func (s *NarrativeService) Global(ctx context.Context, whi domain.WHI, cctx domain.CrossDomainContext, actions []string) (string, domain.AdviceSource) {
	fallback := DeterministicGlobalNarrative(whi, cctx, actions)
	if s.client == nil {
		return fallback, domain.AdviceFallback
	}

	scores := make(map[string]int, len(cctx.Scores))
	for d, r := range cctx.Scores {
		scores[string(d)] = r.Score
	}
	patterns := make([]patternPayload, 0, len(cctx.Patterns))
	for _, p := range cctx.Patterns {
		patterns = append(patterns, patternPayload{Name: p.Name, Description: p.Description})
	}

	payload, err := json.MarshalIndent(globalPayload{
		WHI:      whi.Score,
		Level:    string(whi.Level),
		Scores:   scores,
		Patterns: patterns,
		Actions:  actions,
	}, "", "  ")
	if err != nil {
		return fallback, domain.AdviceFallback
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskDaily,
		SystemPrompt: globalSystemPrompt,
		UserPrompt:   "Here is today's full assessment:\n\n" + string(payload),
	})
	if err != nil {
		return fallback, domain.AdviceFallback
	}
	return resp.Text, domain.AdviceGenerated
}
