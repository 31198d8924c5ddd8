package service

import (
	"context"
	"math"
	"sort"
	"time"

	"golang-portfolio-tracker/internal/entity"
	"golang-portfolio-tracker/internal/server/dto"
	"golang-portfolio-tracker/internal/server/repository"
	"golang-portfolio-tracker/pkg/logger"
	"golang-portfolio-tracker/pkg/utils"
)

// riskFreeRate is the fixed annual rate used in the simplified Sharpe ratio.
const riskFreeRate = 0.02

// PortfolioService rolls active holdings up into allocation, sector and
// performance views.
type PortfolioService interface {
	AllocationByType(ctx context.Context) ([]dto.AllocationItem, error)
	AllocationBySector(ctx context.Context) ([]dto.SectorItem, error)
	PerformanceSummary(ctx context.Context) (*dto.PerformanceSummary, error)
	RealtimeMetrics(ctx context.Context) (*dto.RealtimeMetrics, error)
}

// NewPortfolioService creates a new portfolio aggregation service.
func NewPortfolioService(holdingRepo repository.HoldingRepository, logger *logger.Logger) PortfolioService {
	return &portfolioService{
		holdingRepo: holdingRepo,
		logger:      logger,
	}
}

type portfolioService struct {
	holdingRepo repository.HoldingRepository
	logger      *logger.Logger
}

// AllocationByType groups active holdings by asset type and expresses each
// group's market value as a share of the whole portfolio.
func (s *portfolioService) AllocationByType(ctx context.Context) ([]dto.AllocationItem, error) {
	holdings, err := s.holdingRepo.FindAllActive(ctx)
	if err != nil {
		s.logger.Error("Failed to load holdings for allocation", logger.ErrorField(err))
		return nil, err
	}

	type group struct {
		count int
		value float64
	}
	groups := make(map[string]*group)
	total := 0.0
	for i := range holdings {
		h := &holdings[i]
		g, ok := groups[string(h.Type)]
		if !ok {
			g = &group{}
			groups[string(h.Type)] = g
		}
		g.count++
		g.value += h.CurrentValue()
		total += h.CurrentValue()
	}

	items := make([]dto.AllocationItem, 0, len(groups))
	for name, g := range groups {
		percentage := 0.0
		if total > 0 {
			percentage = utils.Round2(g.value / total * 100)
		}
		items = append(items, dto.AllocationItem{
			Type:       name,
			Count:      g.count,
			TotalValue: utils.Round2(g.value),
			Percentage: percentage,
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].TotalValue > items[j].TotalValue })
	return items, nil
}

// AllocationBySector groups active holdings by sector, skipping holdings
// with no sector set.
func (s *portfolioService) AllocationBySector(ctx context.Context) ([]dto.SectorItem, error) {
	holdings, err := s.holdingRepo.FindAllActive(ctx)
	if err != nil {
		s.logger.Error("Failed to load holdings for sector analysis", logger.ErrorField(err))
		return nil, err
	}

	type group struct {
		count int
		value float64
	}
	groups := make(map[string]*group)
	total := 0.0
	for i := range holdings {
		h := &holdings[i]
		if h.Sector == "" {
			continue
		}
		g, ok := groups[h.Sector]
		if !ok {
			g = &group{}
			groups[h.Sector] = g
		}
		g.count++
		g.value += h.CurrentValue()
		total += h.CurrentValue()
	}

	items := make([]dto.SectorItem, 0, len(groups))
	for name, g := range groups {
		percentage := 0.0
		if total > 0 {
			percentage = utils.Round2(g.value / total * 100)
		}
		items = append(items, dto.SectorItem{
			Sector:     name,
			Count:      g.count,
			TotalValue: utils.Round2(g.value),
			Percentage: percentage,
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].TotalValue > items[j].TotalValue })
	return items, nil
}

// PerformanceSummary computes the single aggregate valuation row over all
// active holdings. A zero cost basis yields a 0 gain percent rather than a
// division blowup.
func (s *portfolioService) PerformanceSummary(ctx context.Context) (*dto.PerformanceSummary, error) {
	holdings, err := s.holdingRepo.FindAllActive(ctx)
	if err != nil {
		s.logger.Error("Failed to load holdings for performance summary", logger.ErrorField(err))
		return nil, err
	}
	return summarize(holdings), nil
}

// RealtimeMetrics computes the approximate CAGR, Sharpe ratio and max
// drawdown for the portfolio.
//
// These are deliberately simplified stand-ins, reproduced from the system
// being replaced, not textbook financial formulas: Sharpe uses |return| as a
// volatility proxy instead of a standard deviation of periodic returns, and
// drawdown assumes a hypothetical peak of 1.5x cost because no peak-tracking
// series is retained. See DESIGN.md.
func (s *portfolioService) RealtimeMetrics(ctx context.Context) (*dto.RealtimeMetrics, error) {
	holdings, err := s.holdingRepo.FindAllActive(ctx)
	if err != nil {
		s.logger.Error("Failed to load holdings for realtime metrics", logger.ErrorField(err))
		return nil, err
	}

	summary := summarize(holdings)
	metrics := &dto.RealtimeMetrics{
		TotalValue:      summary.CurrentValue,
		TotalCost:       summary.TotalCost,
		TotalGainLoss:   summary.TotalGainLoss,
		GainLossPercent: summary.GainLossPercent,
	}
	if len(holdings) == 0 {
		return metrics, nil
	}

	metrics.CAGR = utils.Round2(computeCAGR(holdings, summary))
	metrics.SharpeRatio = utils.Round2(computeSharpe(summary))
	metrics.MaxDrawdown = utils.Round2(computeMaxDrawdown(summary))
	return metrics, nil
}

func summarize(holdings []entity.Holding) *dto.PerformanceSummary {
	currentValue := 0.0
	totalCost := 0.0
	for i := range holdings {
		currentValue += holdings[i].CurrentValue()
		totalCost += holdings[i].CostBasis()
	}

	gainLoss := currentValue - totalCost
	gainLossPercent := 0.0
	if totalCost > 0 {
		gainLossPercent = utils.Round2(gainLoss / totalCost * 100)
	}

	return &dto.PerformanceSummary{
		CurrentValue:    utils.Round2(currentValue),
		TotalCost:       utils.Round2(totalCost),
		TotalGainLoss:   utils.Round2(gainLoss),
		GainLossPercent: gainLossPercent,
	}
}

// computeCAGR annualizes the portfolio return over the time elapsed since
// the earliest purchase across active holdings.
func computeCAGR(holdings []entity.Holding, summary *dto.PerformanceSummary) float64 {
	if summary.TotalCost <= 0 {
		return 0
	}

	earliest := holdings[0].PurchaseDate
	for i := range holdings[1:] {
		if holdings[i+1].PurchaseDate.Before(earliest) {
			earliest = holdings[i+1].PurchaseDate
		}
	}

	years := time.Since(earliest).Hours() / 24 / 365.25
	if years <= 0 {
		return 0
	}
	return math.Pow(summary.CurrentValue/summary.TotalCost, 1/years) - 1
}

func computeSharpe(summary *dto.PerformanceSummary) float64 {
	ret := summary.GainLossPercent / 100
	volatilityProxy := math.Abs(ret)
	if volatilityProxy == 0 {
		return 0
	}
	return (ret - riskFreeRate) / volatilityProxy
}

func computeMaxDrawdown(summary *dto.PerformanceSummary) float64 {
	peak := 1.5 * summary.TotalCost
	if peak == 0 {
		return 0
	}
	return math.Max(0, (peak-summary.CurrentValue)/peak)
}
