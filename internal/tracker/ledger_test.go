package tracker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReports_MostRecentFirst(t *testing.T) {
	trk, clk := newTestTracker(t)
	ctx := context.Background()
	acme := addCategory(t, trk, "Acme", 20)
	globex := addCategory(t, trk, "Globex", 35)

	require.NoError(t, trk.Start(ctx, acme.ID))
	clk.Advance(10 * time.Second)
	require.NoError(t, trk.Start(ctx, globex.ID))
	clk.Advance(20 * time.Second)
	require.NoError(t, trk.Stop(ctx))

	reports := trk.Reports()
	require.Len(t, reports, 2)
	assert.Equal(t, globex.ID, reports[0].CategoryID)
	assert.Equal(t, acme.ID, reports[1].CategoryID)
}

func TestDeleteReport(t *testing.T) {
	trk, clk := newTestTracker(t)
	ctx := context.Background()
	acme := addCategory(t, trk, "Acme", 20)

	require.NoError(t, trk.Start(ctx, acme.ID))
	clk.Advance(10 * time.Second)
	require.NoError(t, trk.Stop(ctx))
	require.NoError(t, trk.Start(ctx, acme.ID))
	clk.Advance(20 * time.Second)
	require.NoError(t, trk.Stop(ctx))

	reports := trk.Reports()
	require.Len(t, reports, 2)

	require.NoError(t, trk.DeleteReport(ctx, reports[1].ID))

	remaining := trk.Reports()
	require.Len(t, remaining, 1)
	assert.Equal(t, reports[0].ID, remaining[0].ID)
}

func TestDeleteReport_NotFound(t *testing.T) {
	trk, _ := newTestTracker(t)
	err := trk.DeleteReport(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrReportNotFound)
}
