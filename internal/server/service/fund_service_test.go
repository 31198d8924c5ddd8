package service

import (
	"context"
	"testing"

	"golang-portfolio-tracker/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFundService(holdings *fakeHoldingRepo, prices *fakePriceRepo) FundService {
	log := newTestLogger()
	returnsSvc := NewReturnsService(prices, log)
	return NewFundService(holdings, returnsSvc, NewSyntheticDataGenerator(), log)
}

func TestGetFunds_OnlyFundType(t *testing.T) {
	ctx := context.Background()
	repo := newFakeHoldingRepo(
		holding("VTSAX", entity.HoldingTypeFund, 10, 90, 100, "Index"),
		holding("AAPL", entity.HoldingTypeStock, 5, 150, 175, "Tech"),
	)
	svc := newFundService(repo, newFakePriceRepo())

	funds, err := svc.GetFunds(ctx)
	require.NoError(t, err)
	require.Len(t, funds, 1)
	assert.Equal(t, "VTSAX", funds[0].Symbol)
	assert.NotEmpty(t, funds[0].FundType)
	assert.Greater(t, funds[0].ExpenseRatio, 0.0)
}

func TestSearchFunds(t *testing.T) {
	ctx := context.Background()
	repo := newFakeHoldingRepo(
		entity.Holding{Symbol: "VTSAX", Name: "Vanguard Total Stock Market", Type: entity.HoldingTypeFund, Quantity: 10, PurchasePrice: 90, CurrentPrice: 100, IsActive: true},
		entity.Holding{Symbol: "SWPPX", Name: "Schwab S&P 500", Type: entity.HoldingTypeFund, Quantity: 5, PurchasePrice: 50, CurrentPrice: 55, IsActive: true},
	)
	svc := newFundService(repo, newFakePriceRepo())

	funds, err := svc.SearchFunds(ctx, "vanguard")
	require.NoError(t, err)
	require.Len(t, funds, 1)
	assert.Equal(t, "VTSAX", funds[0].Symbol)
}

func TestGetCategories(t *testing.T) {
	ctx := context.Background()
	repo := newFakeHoldingRepo(
		holding("VTSAX", entity.HoldingTypeFund, 10, 90, 100, "Index"), // 1000
		holding("SWPPX", entity.HoldingTypeFund, 5, 50, 60, "Index"),   // 300
		holding("VBTLX", entity.HoldingTypeFund, 10, 10, 10, ""),       // 100, unknown sector
	)
	svc := newFundService(repo, newFakePriceRepo())

	categories, err := svc.GetCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)

	// biggest category first
	assert.Equal(t, "Index", categories[0].Type)
	assert.Equal(t, 2, categories[0].Count)
	assert.Equal(t, 1300.0, categories[0].Value)
	assert.Equal(t, "Unknown", categories[1].Type)

	totalPercent := categories[0].Percentage + categories[1].Percentage
	assert.InDelta(t, 100.0, totalPercent, 0.1)
}

func TestGetPerformance(t *testing.T) {
	ctx := context.Background()
	repo := newFakeHoldingRepo(
		holding("VTSAX", entity.HoldingTypeFund, 10, 90, 100, "Index"),
	)
	prices := newFakePriceRepo()
	prices.add("VTSAX", "2024-01-02", 80)
	prices.add("VTSAX", "2025-01-02", 100)

	svc := newFundService(repo, prices)
	performance, err := svc.GetPerformance(ctx)
	require.NoError(t, err)
	require.Len(t, performance, 1)
	assert.Equal(t, "VTSAX", performance[0].Symbol)
	assert.Equal(t, 1000.0, performance[0].CurrentValue)
	assert.Equal(t, 25.0, performance[0].Return1Y)
}

func TestGetVolatility(t *testing.T) {
	ctx := context.Background()
	repo := newFakeHoldingRepo(
		holding("VTSAX", entity.HoldingTypeFund, 10, 90, 100, "Index"),
	)
	svc := newFundService(repo, newFakePriceRepo())

	volatility, err := svc.GetVolatility(ctx, "VTSAX")
	require.NoError(t, err)
	assert.Greater(t, volatility.Volatility3Y, 0.0)

	// same symbol always yields the same figures
	again, err := svc.GetVolatility(ctx, "VTSAX")
	require.NoError(t, err)
	assert.Equal(t, volatility, again)
}

func TestGetVolatility_UnknownSymbol(t *testing.T) {
	svc := newFundService(newFakeHoldingRepo(), newFakePriceRepo())
	volatility, err := svc.GetVolatility(context.Background(), "NOPE")
	require.NoError(t, err)
	assert.Equal(t, 0.0, volatility.Volatility3Y)
	assert.Equal(t, 0.0, volatility.Volatility1Y)
}
