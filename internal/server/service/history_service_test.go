package service

import (
	"context"
	"testing"

	"golang-portfolio-tracker/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordHistoryForDate(t *testing.T) {
	ctx := context.Background()
	holdings := newFakeHoldingRepo(
		holding("A", entity.HoldingTypeStock, 10, 100, 110, "Tech"), // cost 1000, value 1100
	)
	history := newFakeHistoryRepo()
	svc := NewHistoryService(holdings, history, newTestLogger())

	require.NoError(t, svc.RecordHistoryForDate(ctx, date("2025-03-10")))

	point, err := history.FindByDate(ctx, date("2025-03-10"))
	require.NoError(t, err)
	assert.Equal(t, 1100.0, point.TotalValue)
	assert.Equal(t, 1000.0, point.TotalCost)
	assert.Equal(t, 100.0, point.TotalGainLoss)
	assert.Equal(t, 10.0, point.GainLossPercent)
	// first recorded day has no previous value to compare against
	assert.Equal(t, 0.0, point.DailyChange)
}

func TestRecordHistoryForDate_DailyChange(t *testing.T) {
	ctx := context.Background()
	holdings := newFakeHoldingRepo(
		holding("A", entity.HoldingTypeStock, 10, 100, 110, "Tech"),
	)
	history := newFakeHistoryRepo()
	require.NoError(t, history.Upsert(ctx, &entity.PortfolioHistory{
		Date:       date("2025-03-09"),
		TotalValue: 1060,
	}))
	svc := NewHistoryService(holdings, history, newTestLogger())

	require.NoError(t, svc.RecordHistoryForDate(ctx, date("2025-03-10")))

	point, err := history.FindByDate(ctx, date("2025-03-10"))
	require.NoError(t, err)
	assert.Equal(t, 40.0, point.DailyChange)
}

func TestRecordHistoryForDate_GapInHistory(t *testing.T) {
	ctx := context.Background()
	holdings := newFakeHoldingRepo(
		holding("A", entity.HoldingTypeStock, 10, 100, 110, "Tech"),
	)
	history := newFakeHistoryRepo()
	// last recorded row is three days back, not yesterday
	require.NoError(t, history.Upsert(ctx, &entity.PortfolioHistory{
		Date:       date("2025-03-07"),
		TotalValue: 900,
	}))
	svc := NewHistoryService(holdings, history, newTestLogger())

	require.NoError(t, svc.RecordHistoryForDate(ctx, date("2025-03-10")))

	point, err := history.FindByDate(ctx, date("2025-03-10"))
	require.NoError(t, err)
	// only exactly one day back counts as "previous"
	assert.Equal(t, 0.0, point.DailyChange)
}

func TestRecordHistoryForDate_Idempotent(t *testing.T) {
	ctx := context.Background()
	holdings := newFakeHoldingRepo(
		holding("A", entity.HoldingTypeStock, 10, 100, 110, "Tech"),
	)
	history := newFakeHistoryRepo()
	svc := NewHistoryService(holdings, history, newTestLogger())

	require.NoError(t, svc.RecordHistoryForDate(ctx, date("2025-03-10")))

	// price moves intraday, the day is re-recorded
	_, err := holdings.UpdateCurrentPrice(ctx, "A", 120)
	require.NoError(t, err)
	require.NoError(t, svc.RecordHistoryForDate(ctx, date("2025-03-10")))

	points, err := history.FindRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, 1200.0, points[0].TotalValue)
}

func TestRecordHistoryForDate_NoHoldings(t *testing.T) {
	ctx := context.Background()
	history := newFakeHistoryRepo()
	svc := NewHistoryService(newFakeHoldingRepo(), history, newTestLogger())

	require.NoError(t, svc.RecordHistoryForDate(ctx, date("2025-03-10")))

	points, err := history.FindRecent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestRecordHistoryForDate_ZeroValue(t *testing.T) {
	ctx := context.Background()
	holdings := newFakeHoldingRepo(
		holding("A", entity.HoldingTypeStock, 10, 100, 0, "Tech"),
	)
	history := newFakeHistoryRepo()
	svc := NewHistoryService(holdings, history, newTestLogger())

	require.NoError(t, svc.RecordHistoryForDate(ctx, date("2025-03-10")))

	points, err := history.FindRecent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestRecentHistory_OldestFirst(t *testing.T) {
	ctx := context.Background()
	history := newFakeHistoryRepo()
	for _, d := range []string{"2025-03-08", "2025-03-09", "2025-03-10"} {
		require.NoError(t, history.Upsert(ctx, &entity.PortfolioHistory{Date: date(d), TotalValue: 100}))
	}
	svc := NewHistoryService(newFakeHoldingRepo(), history, newTestLogger())

	points, err := svc.RecentHistory(ctx, 2)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, date("2025-03-09"), points[0].Date)
	assert.Equal(t, date("2025-03-10"), points[1].Date)
}
