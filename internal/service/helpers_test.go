package service

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/vitalog/internal/domain"
	"github.com/alexanderramin/vitalog/internal/llm"
	"github.com/alexanderramin/vitalog/internal/repository"
)

func newTestStore(t *testing.T) *repository.Store {
	t.Helper()
	store, err := repository.NewJSONStore(t.TempDir())
	require.NoError(t, err)
	return store
}

// countingGenerator is an llm.Client that returns a canned narrative and
// counts Generate calls, for asserting cache behavior.
type countingGenerator struct {
	calls atomic.Int64
	text  string
}

func (g *countingGenerator) Generate(_ context.Context, _ llm.GenerateRequest) (*llm.GenerateResponse, error) {
	g.calls.Add(1)
	return &llm.GenerateResponse{Text: g.text, Model: "test"}, nil
}

func (g *countingGenerator) Available(_ context.Context) bool { return true }

var dehydratedDay = map[string]any{
	"water_intake":    2,
	"caffeine_intake": 5,
	"urine_color":     domain.UrineDark,
	"thirst_level":    domain.ThirstHigh,
	"symptoms":        []string{"Dry Mouth/Lips", "Headache"},
}

var poorWorkspace = map[string]any{
	"good_posture":   false,
	"breaks":         domain.BreaksNone,
	"monitor_height": domain.MonitorBelowEye,
	"lumbar_support": false,
	"noise_level":    "Distracting/Loud",
	"temperature":    "Hot",
	"clutter":        "Cluttered",
}
