package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/vitalog/internal/advice"
	"github.com/alexanderramin/vitalog/internal/repository"
	"github.com/alexanderramin/vitalog/internal/scoring"
	"github.com/alexanderramin/vitalog/internal/service"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	store, err := repository.NewJSONStore(t.TempDir())
	require.NoError(t, err)

	scorer := scoring.NewScorer()
	narrative := advice.NewNarrativeService(nil)

	return &App{
		Checkins:      service.NewCheckinService(store.Records, scorer),
		Status:        service.NewStatusService(store.Records, store.Snapshots, scorer, nil),
		Advice:        service.NewAdviceService(store.Records, store.Advice, scorer, nil, narrative),
		Review:        service.NewReviewService(store.Records, store.Snapshots, nil),
		IsInteractive: func() bool { return false },
	}
}

func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestLogCmd_JSONInput(t *testing.T) {
	app := newTestApp(t)

	out, err := execute(t, app, "log", "hydration",
		"--json", `{"water_intake": 2, "caffeine_intake": 5}`)
	require.NoError(t, err)

	assert.Contains(t, out, "Hydration check-in saved.")
	assert.Contains(t, out, "Only 2 cups of water today")
}

func TestLogCmd_NonInteractiveWithoutJSON(t *testing.T) {
	app := newTestApp(t)

	_, err := execute(t, app, "log", "hydration")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--json")
}

func TestLogCmd_UnknownDomain(t *testing.T) {
	app := newTestApp(t)

	_, err := execute(t, app, "log", "astrology", "--json", `{}`)
	assert.Error(t, err)
}

func TestLogCmd_MissingRequiredField(t *testing.T) {
	app := newTestApp(t)

	_, err := execute(t, app, "log", "hydration", "--json", `{"thirst_level": "High"}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "water_intake")
}

func TestStatusCmd_EmptyStore(t *testing.T) {
	app := newTestApp(t)

	out, err := execute(t, app, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Not enough data yet")
}

func TestStatusCmd_AfterCheckin(t *testing.T) {
	app := newTestApp(t)

	_, err := execute(t, app, "log", "hydration", "--json", `{"water_intake": 2}`)
	require.NoError(t, err)

	out, err := execute(t, app, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "WORKDAY HEALTH INDEX")
	assert.Contains(t, out, "Hydration")
}

func TestStatusCmd_JSONOutput(t *testing.T) {
	app := newTestApp(t)

	_, err := execute(t, app, "log", "hydration", "--json", `{"water_intake": 9}`)
	require.NoError(t, err)

	out, err := execute(t, app, "status", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"WHI"`)
	assert.Contains(t, out, `"hydration"`)
}

func TestAdviseCmd_Domain(t *testing.T) {
	app := newTestApp(t)

	_, err := execute(t, app, "log", "hydration", "--json", `{"water_intake": 2}`)
	require.NoError(t, err)

	out, err := execute(t, app, "advise", "hydration")
	require.NoError(t, err)
	assert.Contains(t, out, "HYDRATION ADVICE")
	assert.Contains(t, out, "deterministic summary")
}

func TestAdviseCmd_Global(t *testing.T) {
	app := newTestApp(t)

	_, err := execute(t, app, "log", "hydration", "--json", `{"water_intake": 2}`)
	require.NoError(t, err)

	out, err := execute(t, app, "advise")
	require.NoError(t, err)
	assert.Contains(t, out, "OVERALL ADVICE")
}

func TestHistoryCmd(t *testing.T) {
	app := newTestApp(t)

	_, err := execute(t, app, "log", "hydration", "--json", `{"water_intake": 2}`)
	require.NoError(t, err)
	_, err = execute(t, app, "log", "hydration", "--json", `{"water_intake": 9}`)
	require.NoError(t, err)

	out, err := execute(t, app, "history", "hydration")
	require.NoError(t, err)
	assert.Contains(t, out, "HYDRATION HISTORY")
}

func TestReviewCmd(t *testing.T) {
	app := newTestApp(t)

	out, err := execute(t, app, "review")
	require.NoError(t, err)
	assert.Contains(t, out, "WEEK IN REVIEW")
}

func TestDomainsCmd(t *testing.T) {
	app := newTestApp(t)

	out, err := execute(t, app, "domains")
	require.NoError(t, err)
	assert.Contains(t, out, "recovery_sleep")
	assert.Contains(t, out, "Sleep recovery")
}
