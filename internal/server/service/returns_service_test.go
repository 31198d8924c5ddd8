package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputeReturn(t *testing.T) {
	ctx := context.Background()

	t.Run("basic window", func(t *testing.T) {
		prices := newFakePriceRepo()
		prices.add("VTSAX", "2024-06-03", 100)
		prices.add("VTSAX", "2024-12-02", 110)

		svc := NewReturnsService(prices, newTestLogger())
		value, err := svc.ComputeReturn(ctx, "VTSAX", date("2024-12-02"), date("2024-06-01"))
		require.NoError(t, err)
		assert.Equal(t, 10.0, value)
	})

	t.Run("no snapshot before reference date", func(t *testing.T) {
		prices := newFakePriceRepo()
		prices.add("VTSAX", "2025-01-02", 100)

		svc := NewReturnsService(prices, newTestLogger())
		value, err := svc.ComputeReturn(ctx, "VTSAX", date("2024-12-31"), date("2024-06-01"))
		require.NoError(t, err)
		assert.Equal(t, 0.0, value)
	})

	t.Run("unknown symbol", func(t *testing.T) {
		svc := NewReturnsService(newFakePriceRepo(), newTestLogger())
		value, err := svc.ComputeReturn(ctx, "NOPE", date("2024-12-31"), date("2024-06-01"))
		require.NoError(t, err)
		assert.Equal(t, 0.0, value)
	})

	t.Run("zero base price", func(t *testing.T) {
		prices := newFakePriceRepo()
		prices.add("BAD", "2024-06-03", 0)
		prices.add("BAD", "2024-12-02", 50)

		svc := NewReturnsService(prices, newTestLogger())
		value, err := svc.ComputeReturn(ctx, "BAD", date("2024-12-02"), date("2024-06-01"))
		require.NoError(t, err)
		assert.Equal(t, 0.0, value)
	})

	t.Run("result rounded to two decimals", func(t *testing.T) {
		prices := newFakePriceRepo()
		prices.add("VTSAX", "2024-06-03", 3)
		prices.add("VTSAX", "2024-12-02", 4)

		svc := NewReturnsService(prices, newTestLogger())
		value, err := svc.ComputeReturn(ctx, "VTSAX", date("2024-12-02"), date("2024-06-01"))
		require.NoError(t, err)
		assert.Equal(t, 33.33, value)
	})
}

// A snapshot dated exactly at the window start is its own base, so a YTD
// window whose only January snapshot is the latest snapshot reads 0%.
func TestComputeReturns_WindowStartQuirk(t *testing.T) {
	ctx := context.Background()
	prices := newFakePriceRepo()
	prices.add("ABC", "2024-01-01", 100)
	prices.add("ABC", "2024-04-01", 110)
	prices.add("ABC", "2025-01-01", 121)

	svc := NewReturnsService(prices, newTestLogger())
	returns, err := svc.ComputeReturns(ctx, "ABC", date("2025-01-01"))
	require.NoError(t, err)

	// YTD window starts 2025-01-01; the earliest snapshot at or after it is
	// the 2025-01-01 row itself.
	assert.Equal(t, 0.0, returns.Ytd)
	// 3m/6m windows start in late 2024; their base is also the 2025-01-01 row.
	assert.Equal(t, 0.0, returns.Return3M)
	assert.Equal(t, 0.0, returns.Return6M)
	// 1y window starts 2024-01-01, base 100, current 121.
	assert.Equal(t, 21.0, returns.Return1Y)
	assert.Equal(t, 21.0, returns.Return3Y)
}

func TestComputeReturns_AnchorsOnLatestSnapshot(t *testing.T) {
	ctx := context.Background()
	prices := newFakePriceRepo()
	prices.add("XYZ", "2024-01-02", 100)
	prices.add("XYZ", "2024-07-01", 120)

	svc := NewReturnsService(prices, newTestLogger())

	// asOf far in the future; windows anchor on 2024-07-01, not the clock.
	returns, err := svc.ComputeReturns(ctx, "XYZ", date("2026-03-15"))
	require.NoError(t, err)
	assert.Equal(t, 20.0, returns.Return1Y)
	// YTD window starts 2024-01-01, base is the 2024-01-02 snapshot.
	assert.Equal(t, 20.0, returns.Ytd)
}

func TestComputeReturns_NoData(t *testing.T) {
	svc := NewReturnsService(newFakePriceRepo(), newTestLogger())
	returns, err := svc.ComputeReturns(context.Background(), "EMPTY", date("2025-01-01"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, returns.Ytd)
	assert.Equal(t, 0.0, returns.Return3M)
	assert.Equal(t, 0.0, returns.Return6M)
	assert.Equal(t, 0.0, returns.Return1Y)
	assert.Equal(t, 0.0, returns.Return3Y)
}

func TestComputeReturns_Deterministic(t *testing.T) {
	ctx := context.Background()
	prices := newFakePriceRepo()
	prices.add("DET", "2023-02-01", 80)
	prices.add("DET", "2024-02-01", 92)
	prices.add("DET", "2025-02-03", 103.5)

	svc := NewReturnsService(prices, newTestLogger())
	first, err := svc.ComputeReturns(ctx, "DET", date("2025-02-03"))
	require.NoError(t, err)
	second, err := svc.ComputeReturns(ctx, "DET", date("2025-02-03"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
