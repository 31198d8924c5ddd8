package service

import (
	"context"
	"testing"

	"golang-portfolio-tracker/internal/entity"
	"golang-portfolio-tracker/internal/server/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHoldingService(holdings *fakeHoldingRepo, provider *fakeQuoteProvider) HoldingService {
	prices := newFakePriceRepo()
	history := newFakeHistoryRepo()
	log := newTestLogger()
	historySvc := NewHistoryService(holdings, history, log)
	return NewHoldingService(holdings, prices, provider, historySvc, log)
}

func TestCreateHolding(t *testing.T) {
	ctx := context.Background()
	repo := newFakeHoldingRepo()
	provider := &fakeQuoteProvider{prices: map[string]float64{"VTSAX": 95.5}}
	svc := newHoldingService(repo, provider)

	created, err := svc.CreateHolding(ctx, &dto.CreateHoldingRequest{
		Symbol:        "vtsax",
		Name:          "Vanguard Total Stock Market",
		Type:          "fund",
		Quantity:      10,
		PurchasePrice: 90,
		PurchaseDate:  "2024-06-15",
		Sector:        "Index",
	})
	require.NoError(t, err)
	assert.Equal(t, "VTSAX", created.Symbol)
	assert.Equal(t, 95.5, created.CurrentPrice)
	assert.True(t, created.IsActive)
}

func TestCreateHolding_FallsBackToPurchasePrice(t *testing.T) {
	ctx := context.Background()
	repo := newFakeHoldingRepo()
	provider := &fakeQuoteProvider{prices: map[string]float64{}}
	svc := newHoldingService(repo, provider)

	created, err := svc.CreateHolding(ctx, &dto.CreateHoldingRequest{
		Symbol:        "OBSCURE",
		Name:          "Obscure Fund",
		Type:          "fund",
		Quantity:      5,
		PurchasePrice: 42,
		PurchaseDate:  "2024-06-15",
	})
	require.NoError(t, err)
	assert.Equal(t, 42.0, created.CurrentPrice)
}

func TestCreateHolding_Validation(t *testing.T) {
	ctx := context.Background()
	svc := newHoldingService(newFakeHoldingRepo(), &fakeQuoteProvider{})

	cases := []struct {
		name string
		req  dto.CreateHoldingRequest
	}{
		{"empty symbol", dto.CreateHoldingRequest{Name: "x", Type: "fund", Quantity: 1, PurchasePrice: 1, PurchaseDate: "2024-01-01"}},
		{"symbol too long", dto.CreateHoldingRequest{Symbol: "TOOLONGSYMBOL", Name: "x", Type: "fund", Quantity: 1, PurchasePrice: 1, PurchaseDate: "2024-01-01"}},
		{"bad type", dto.CreateHoldingRequest{Symbol: "A", Name: "x", Type: "yacht", Quantity: 1, PurchasePrice: 1, PurchaseDate: "2024-01-01"}},
		{"zero quantity", dto.CreateHoldingRequest{Symbol: "A", Name: "x", Type: "fund", Quantity: 0, PurchasePrice: 1, PurchaseDate: "2024-01-01"}},
		{"negative price", dto.CreateHoldingRequest{Symbol: "A", Name: "x", Type: "fund", Quantity: 1, PurchasePrice: -1, PurchaseDate: "2024-01-01"}},
		{"bad date", dto.CreateHoldingRequest{Symbol: "A", Name: "x", Type: "fund", Quantity: 1, PurchasePrice: 1, PurchaseDate: "15/06/2024"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateHolding(ctx, &tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGetHoldingByID_NotFound(t *testing.T) {
	svc := newHoldingService(newFakeHoldingRepo(), &fakeQuoteProvider{})
	_, err := svc.GetHoldingByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteHolding(t *testing.T) {
	ctx := context.Background()
	repo := newFakeHoldingRepo(
		holding("VTSAX", entity.HoldingTypeFund, 10, 90, 100, "Index"),
	)
	svc := newHoldingService(repo, &fakeQuoteProvider{})

	require.NoError(t, svc.DeleteHolding(ctx, 1))

	active, err := repo.FindAllActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	// the row survives, only flagged inactive
	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestExecuteTrade_BuyOpensPosition(t *testing.T) {
	ctx := context.Background()
	repo := newFakeHoldingRepo()
	svc := newHoldingService(repo, &fakeQuoteProvider{})

	err := svc.ExecuteTrade(ctx, &dto.TradeRequest{Symbol: "swppx", Action: "buy", Quantity: 10, Price: 50})
	require.NoError(t, err)

	pos, err := repo.FindActiveBySymbolAndType(ctx, "SWPPX", entity.HoldingTypeFund)
	require.NoError(t, err)
	assert.Equal(t, 10.0, pos.Quantity)
	assert.Equal(t, 50.0, pos.PurchasePrice)
	assert.Equal(t, "Unknown", pos.Sector)
}

func TestExecuteTrade_BuyAveragesCostBasis(t *testing.T) {
	ctx := context.Background()
	repo := newFakeHoldingRepo(
		holding("SWPPX", entity.HoldingTypeFund, 10, 50, 55, "Index"),
	)
	svc := newHoldingService(repo, &fakeQuoteProvider{})

	err := svc.ExecuteTrade(ctx, &dto.TradeRequest{Symbol: "SWPPX", Action: "buy", Quantity: 10, Price: 60})
	require.NoError(t, err)

	pos, err := repo.FindActiveBySymbolAndType(ctx, "SWPPX", entity.HoldingTypeFund)
	require.NoError(t, err)
	assert.Equal(t, 20.0, pos.Quantity)
	// (10*50 + 10*60) / 20
	assert.Equal(t, 55.0, pos.PurchasePrice)
	assert.Equal(t, 60.0, pos.CurrentPrice)
}

func TestExecuteTrade_SellReducesPosition(t *testing.T) {
	ctx := context.Background()
	repo := newFakeHoldingRepo(
		holding("SWPPX", entity.HoldingTypeFund, 10, 50, 55, "Index"),
	)
	svc := newHoldingService(repo, &fakeQuoteProvider{})

	err := svc.ExecuteTrade(ctx, &dto.TradeRequest{Symbol: "SWPPX", Action: "sell", Quantity: 4, Price: 58})
	require.NoError(t, err)

	pos, err := repo.FindActiveBySymbolAndType(ctx, "SWPPX", entity.HoldingTypeFund)
	require.NoError(t, err)
	assert.Equal(t, 6.0, pos.Quantity)
	assert.Equal(t, 58.0, pos.CurrentPrice)
	// cost basis untouched by sells
	assert.Equal(t, 50.0, pos.PurchasePrice)
}

func TestExecuteTrade_SellFullQuantityClosesPosition(t *testing.T) {
	ctx := context.Background()
	repo := newFakeHoldingRepo(
		holding("SWPPX", entity.HoldingTypeFund, 10, 50, 55, "Index"),
	)
	svc := newHoldingService(repo, &fakeQuoteProvider{})

	err := svc.ExecuteTrade(ctx, &dto.TradeRequest{Symbol: "SWPPX", Action: "sell", Quantity: 10, Price: 58})
	require.NoError(t, err)

	_, err = repo.FindActiveBySymbolAndType(ctx, "SWPPX", entity.HoldingTypeFund)
	assert.Error(t, err)
}

func TestExecuteTrade_SellErrors(t *testing.T) {
	ctx := context.Background()
	repo := newFakeHoldingRepo(
		holding("SWPPX", entity.HoldingTypeFund, 10, 50, 55, "Index"),
	)
	svc := newHoldingService(repo, &fakeQuoteProvider{})

	err := svc.ExecuteTrade(ctx, &dto.TradeRequest{Symbol: "SWPPX", Action: "sell", Quantity: 11, Price: 58})
	assert.ErrorIs(t, err, ErrInsufficientQuantity)

	err = svc.ExecuteTrade(ctx, &dto.TradeRequest{Symbol: "NOPE", Action: "sell", Quantity: 1, Price: 58})
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.ExecuteTrade(ctx, &dto.TradeRequest{Symbol: "SWPPX", Action: "hold", Quantity: 1, Price: 58})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateCurrentPrices(t *testing.T) {
	ctx := context.Background()
	repo := newFakeHoldingRepo(
		holding("VTSAX", entity.HoldingTypeFund, 10, 90, 100, "Index"),
		holding("SWPPX", entity.HoldingTypeFund, 5, 50, 55, "Index"),
	)
	provider := &fakeQuoteProvider{prices: map[string]float64{"VTSAX": 102, "SWPPX": 54}}
	svc := newHoldingService(repo, provider)

	result, err := svc.UpdateCurrentPrices(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.UpdatedCount)
	assert.Equal(t, 0, result.FailedCount)

	pos, err := repo.FindActiveBySymbolAndType(ctx, "VTSAX", entity.HoldingTypeFund)
	require.NoError(t, err)
	assert.Equal(t, 102.0, pos.CurrentPrice)
}

func TestUpdateCurrentPrices_PartialFailure(t *testing.T) {
	ctx := context.Background()
	repo := newFakeHoldingRepo(
		holding("VTSAX", entity.HoldingTypeFund, 10, 90, 100, "Index"),
		holding("GONE", entity.HoldingTypeFund, 5, 50, 55, "Index"),
	)
	provider := &fakeQuoteProvider{prices: map[string]float64{"VTSAX": 102}}
	svc := newHoldingService(repo, provider)

	result, err := svc.UpdateCurrentPrices(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.UpdatedCount)
	assert.Equal(t, 1, result.FailedCount)
}

func TestUpdateCurrentPrices_NoHoldings(t *testing.T) {
	svc := newHoldingService(newFakeHoldingRepo(), &fakeQuoteProvider{})
	result, err := svc.UpdateCurrentPrices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.UpdatedCount)
	assert.Empty(t, result.Updates)
}

func TestGetPortfolioSummary(t *testing.T) {
	ctx := context.Background()
	repo := newFakeHoldingRepo(
		holding("A", entity.HoldingTypeStock, 10, 100, 120, "Tech"),  // +20%
		holding("B", entity.HoldingTypeFund, 10, 100, 110, "Index"),  // +10%
		holding("C", entity.HoldingTypeFund, 10, 100, 105, "Index"),  // +5%
		holding("D", entity.HoldingTypeStock, 10, 100, 90, "Energy"), // -10%
	)
	svc := newHoldingService(repo, &fakeQuoteProvider{})

	summary, err := svc.GetPortfolioSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, summary.Summary.TotalHoldings)
	assert.Equal(t, 4250.0, summary.Summary.TotalValue)
	assert.Equal(t, 250.0, summary.Summary.TotalGain)
	assert.Equal(t, 6.25, summary.Summary.AvgGainPercent)

	require.Len(t, summary.TopPerformers, 3)
	assert.Equal(t, "A", summary.TopPerformers[0].Symbol)
	assert.Equal(t, "B", summary.TopPerformers[1].Symbol)
	assert.Equal(t, "C", summary.TopPerformers[2].Symbol)
}
