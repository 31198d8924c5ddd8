package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetQuote_CachesResult(t *testing.T) {
	ctx := context.Background()
	provider := &fakeQuoteProvider{prices: map[string]float64{"VTSAX": 100}}
	svc := NewMarketService(provider, nil, "1m", newTestLogger())

	quote, err := svc.GetQuote(ctx, "VTSAX")
	require.NoError(t, err)
	assert.Equal(t, 100.0, quote.CurrentPrice)

	// within the TTL the cached quote is served even after the upstream moves
	provider.prices["VTSAX"] = 120
	cached, err := svc.GetQuote(ctx, "VTSAX")
	require.NoError(t, err)
	assert.Equal(t, 100.0, cached.CurrentPrice)
}

func TestGetQuote_UnknownSymbol(t *testing.T) {
	svc := NewMarketService(&fakeQuoteProvider{}, nil, "1m", newTestLogger())
	_, err := svc.GetQuote(context.Background(), "NOPE")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetQuotes(t *testing.T) {
	ctx := context.Background()
	provider := &fakeQuoteProvider{prices: map[string]float64{"VTSAX": 100, "SWPPX": 55}}
	svc := NewMarketService(provider, nil, "1m", newTestLogger())

	responses, err := svc.GetQuotes(ctx, []string{"VTSAX", "SWPPX", "NOPE"})
	require.NoError(t, err)
	// unknown symbols are skipped, not errors
	assert.Len(t, responses, 2)
}

func TestGetQuotes_EmptyInput(t *testing.T) {
	svc := NewMarketService(&fakeQuoteProvider{}, nil, "1m", newTestLogger())
	_, err := svc.GetQuotes(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetTrending_SortedByChange(t *testing.T) {
	ctx := context.Background()
	provider := &fakeQuoteProvider{prices: map[string]float64{}}
	for _, symbol := range trendingSymbols {
		provider.prices[symbol] = 100
	}
	svc := NewMarketService(provider, nil, "1m", newTestLogger())

	trending, err := svc.GetTrending(ctx)
	require.NoError(t, err)
	assert.Len(t, trending, len(trendingSymbols))
	for i := 1; i < len(trending); i++ {
		assert.GreaterOrEqual(t, trending[i-1].ChangePercent, trending[i].ChangePercent)
	}
}
