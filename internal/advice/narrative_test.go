package advice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alexanderramin/vitalog/internal/domain"
	"github.com/alexanderramin/vitalog/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generatorStub(t *testing.T, response string) llm.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"model":    "llama3.2",
			"response": response,
		})
	}))
	t.Cleanup(srv.Close)

	cfg := llm.DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = srv.URL
	return llm.NewOllamaClient(cfg, llm.NoopObserver{})
}

func deadGenerator(t *testing.T) llm.Client {
	t.Helper()
	cfg := llm.DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = "http://127.0.0.1:1"
	cfg.MaxRetries = 0
	return llm.NewOllamaClient(cfg, llm.NoopObserver{})
}

func hydrationResult() domain.ScoreResult {
	return domain.ScoreResult{
		Domain:       domain.DomainHydration,
		Score:        86,
		Level:        domain.RiskVeryHigh,
		Explanations: []string{"Only 2 cups of water today", "Heavy caffeine intake (5 cups)"},
	}
}

func TestNarrative_ForDomain_Generated(t *testing.T) {
	svc := NewNarrativeService(generatorStub(t, "Hydration is running very low today."))

	text, source := svc.ForDomain(context.Background(), domain.DomainHydration,
		hydrationResult(), []string{"Keep a filled bottle in reach and drink a glass each hour"})

	assert.Equal(t, domain.AdviceGenerated, source)
	assert.Equal(t, "Hydration is running very low today.", text)
}

func TestNarrative_ForDomain_FallbackWhenUnavailable(t *testing.T) {
	svc := NewNarrativeService(deadGenerator(t))

	text, source := svc.ForDomain(context.Background(), domain.DomainHydration,
		hydrationResult(), []string{"Keep a filled bottle in reach and drink a glass each hour"})

	assert.Equal(t, domain.AdviceFallback, source)
	assert.Contains(t, text, "Hydration risk is very high (86/100)")
	assert.Contains(t, text, "Only 2 cups of water today")
}

func TestNarrative_ForDomain_FallbackWithNilClient(t *testing.T) {
	svc := NewNarrativeService(nil)

	text, source := svc.ForDomain(context.Background(), domain.DomainHydration, hydrationResult(), nil)

	assert.Equal(t, domain.AdviceFallback, source)
	assert.NotEmpty(t, text)
}

func TestNarrative_ForDomain_FallbackOnEmptyOutput(t *testing.T) {
	svc := NewNarrativeService(generatorStub(t, "   \n"))

	_, source := svc.ForDomain(context.Background(), domain.DomainHydration, hydrationResult(), nil)
	assert.Equal(t, domain.AdviceFallback, source)
}

func TestNarrative_Global_Generated(t *testing.T) {
	svc := NewNarrativeService(generatorStub(t, "A heavy day overall; hydration is the lever."))

	whi := domain.WHI{Score: 55, Level: domain.RiskHigh,
		ScoredDomains: []domain.Domain{domain.DomainHydration, domain.DomainEye}}
	cctx := domain.CrossDomainContext{
		Scores: map[domain.Domain]domain.ScoreResult{
			domain.DomainHydration: hydrationResult(),
		},
		Patterns: []domain.LinkagePattern{
			{Name: "fatigue_loop", Description: "Dehydration is feeding eye strain and mental fatigue"},
		},
	}

	text, source := svc.Global(context.Background(), whi, cctx, nil)
	assert.Equal(t, domain.AdviceGenerated, source)
	assert.NotEmpty(t, text)
}

func TestNarrative_Global_FallbackMentionsIndexAndPattern(t *testing.T) {
	svc := NewNarrativeService(nil)

	whi := domain.WHI{Score: 61, Level: domain.RiskHigh,
		ScoredDomains: []domain.Domain{domain.DomainHydration, domain.DomainEye, domain.DomainMental}}
	cctx := domain.CrossDomainContext{
		Patterns: []domain.LinkagePattern{
			{Name: "fatigue_loop", Description: "Dehydration is feeding eye strain and mental fatigue"},
		},
	}

	text, source := svc.Global(context.Background(), whi, cctx,
		[]string{"Work through the top recommendation in each high-risk domain today"})

	assert.Equal(t, domain.AdviceFallback, source)
	assert.Contains(t, text, "61/100")
	assert.Contains(t, text, "Dehydration is feeding eye strain")
	assert.True(t, strings.HasSuffix(text, "Work through the top recommendation in each high-risk domain today."))
}

func TestNarrative_ScoresComputedBeforeGeneration(t *testing.T) {
	// The narrative layer receives already-computed results; even a dead
	// generator leaves the numbers untouched.
	svc := NewNarrativeService(deadGenerator(t))
	res := hydrationResult()

	text, _ := svc.ForDomain(context.Background(), domain.DomainHydration, res, nil)
	require.Contains(t, text, "86/100")
	assert.Equal(t, 86, res.Score)
}
