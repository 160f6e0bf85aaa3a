package cli

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlevkov/punchclock/internal/repository"
	"github.com/mlevkov/punchclock/internal/testutil"
	"github.com/mlevkov/punchclock/internal/tracker"
)

func newTestApp(t *testing.T) (*App, *testutil.ManualClock) {
	t.Helper()
	clk := testutil.NewManualClock(time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC))
	trk := tracker.New(repository.NewMemorySnapshotRepo(), clk, &testutil.SeqIDs{}, slog.New(slog.DiscardHandler))
	trk.Load(context.Background())
	return &App{Tracker: trk}, clk
}

// addReport records one finished session and returns its report.
func addReport(t *testing.T, app *App, clk *testutil.ManualClock, categoryID string, d time.Duration) string {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, app.Tracker.Start(ctx, categoryID))
	clk.Advance(d)
	require.NoError(t, app.Tracker.Stop(ctx))
	return app.Tracker.Reports()[0].ID
}

func TestResolveCategory_ByExactID(t *testing.T) {
	app, _ := newTestApp(t)
	c, err := app.Tracker.AddCategory(context.Background(), "Acme", 20)
	require.NoError(t, err)

	got, err := resolveCategory(app, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
}

func TestResolveCategory_ByNameCaseInsensitive(t *testing.T) {
	app, _ := newTestApp(t)
	c, err := app.Tracker.AddCategory(context.Background(), "Acme", 20)
	require.NoError(t, err)
	_, err = app.Tracker.AddCategory(context.Background(), "Globex", 35)
	require.NoError(t, err)

	got, err := resolveCategory(app, "acme")
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
}

func TestResolveCategory_AmbiguousName(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()
	_, err := app.Tracker.AddCategory(ctx, "Acme", 20)
	require.NoError(t, err)
	_, err = app.Tracker.AddCategory(ctx, "ACME", 35)
	require.NoError(t, err)

	_, err = resolveCategory(app, "acme")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")
}

func TestResolveCategory_ByUniqueIDPrefix(t *testing.T) {
	app, _ := newTestApp(t)
	c, err := app.Tracker.AddCategory(context.Background(), "Acme", 20)
	require.NoError(t, err)

	got, err := resolveCategory(app, "id")
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
}

func TestResolveCategory_AmbiguousIDPrefix(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()
	_, err := app.Tracker.AddCategory(ctx, "Acme", 20)
	require.NoError(t, err)
	_, err = app.Tracker.AddCategory(ctx, "Globex", 35)
	require.NoError(t, err)

	_, err = resolveCategory(app, "id")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")
}

func TestResolveCategory_NoMatch(t *testing.T) {
	app, _ := newTestApp(t)
	_, err := resolveCategory(app, "nothing")
	assert.Error(t, err)
}

func TestResolveReport_ByExactID(t *testing.T) {
	app, clk := newTestApp(t)
	c, err := app.Tracker.AddCategory(context.Background(), "Acme", 20)
	require.NoError(t, err)
	id := addReport(t, app, clk, c.ID, 10*time.Second)

	got, err := resolveReport(app, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
}

func TestResolveReport_ByUniqueIDPrefix(t *testing.T) {
	app, clk := newTestApp(t)
	c, err := app.Tracker.AddCategory(context.Background(), "Acme", 20)
	require.NoError(t, err)
	id := addReport(t, app, clk, c.ID, 10*time.Second)

	got, err := resolveReport(app, "id")
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
}

func TestResolveReport_AmbiguousIDPrefix(t *testing.T) {
	app, clk := newTestApp(t)
	c, err := app.Tracker.AddCategory(context.Background(), "Acme", 20)
	require.NoError(t, err)
	addReport(t, app, clk, c.ID, 10*time.Second)
	addReport(t, app, clk, c.ID, 20*time.Second)

	_, err = resolveReport(app, "id")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")
}

func TestResolveReport_NoMatch(t *testing.T) {
	app, _ := newTestApp(t)
	_, err := resolveReport(app, "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no report matches")
}
