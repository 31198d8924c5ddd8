package service

import (
	"context"
	"errors"
	"time"

	"golang-portfolio-tracker/internal/entity"
	"golang-portfolio-tracker/internal/server/dto"
	"golang-portfolio-tracker/internal/server/repository"
	"golang-portfolio-tracker/pkg/logger"
	"golang-portfolio-tracker/pkg/utils"

	"gorm.io/gorm"
)

// HistoryService records daily portfolio valuations. Recording is
// idempotent: re-running for the same date overwrites that date's row.
type HistoryService interface {
	RecordTodaysHistory(ctx context.Context) error
	RecordHistoryForDate(ctx context.Context, date time.Time) error
	RecentHistory(ctx context.Context, limit int) ([]dto.HistoryPointResponse, error)
}

// NewHistoryService creates a new history recording service.
func NewHistoryService(holdingRepo repository.HoldingRepository, historyRepo repository.PortfolioHistoryRepository, logger *logger.Logger) HistoryService {
	return &historyService{
		holdingRepo: holdingRepo,
		historyRepo: historyRepo,
		logger:      logger,
	}
}

type historyService struct {
	holdingRepo repository.HoldingRepository
	historyRepo repository.PortfolioHistoryRepository
	logger      *logger.Logger
}

// RecordTodaysHistory records the valuation for the current UTC day.
func (s *historyService) RecordTodaysHistory(ctx context.Context) error {
	return s.RecordHistoryForDate(ctx, utils.DateOnly(time.Now().UTC()))
}

// RecordHistoryForDate computes the portfolio's total value and cost and
// upserts the history row for the given day. An empty portfolio is a no-op:
// no zero-value row is written.
func (s *historyService) RecordHistoryForDate(ctx context.Context, date time.Time) error {
	holdings, err := s.holdingRepo.FindAllActive(ctx)
	if err != nil {
		s.logger.Error("Failed to load holdings for history recording", logger.ErrorField(err))
		return err
	}
	if len(holdings) == 0 {
		s.logger.Info("No active holdings, skipping portfolio history update")
		return nil
	}

	totalValue := 0.0
	totalCost := 0.0
	for i := range holdings {
		totalValue += holdings[i].CurrentValue()
		totalCost += holdings[i].CostBasis()
	}
	totalValue = utils.Round2(totalValue)
	totalCost = utils.Round2(totalCost)
	if totalValue == 0 {
		s.logger.Info("Portfolio value is zero, skipping portfolio history update")
		return nil
	}

	// dailyChange compares against exactly one calendar day earlier; on the
	// first run or after a gap the previous value defaults to today's and
	// the change is 0.
	previousValue := totalValue
	previous, err := s.historyRepo.FindByDate(ctx, date.AddDate(0, 0, -1))
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("Failed to load previous day's history", logger.ErrorField(err))
		return err
	}
	if previous != nil {
		previousValue = previous.TotalValue
	}

	totalGainLoss := utils.Round2(totalValue - totalCost)
	gainLossPercent := 0.0
	if totalCost > 0 {
		gainLossPercent = utils.Round2(totalGainLoss / totalCost * 100)
	}

	point := &entity.PortfolioHistory{
		Date:            date,
		TotalValue:      totalValue,
		DailyChange:     utils.Round2(totalValue - previousValue),
		TotalCost:       totalCost,
		TotalGainLoss:   totalGainLoss,
		GainLossPercent: gainLossPercent,
	}
	if err := s.historyRepo.Upsert(ctx, point); err != nil {
		s.logger.Error("Failed to upsert portfolio history", logger.ErrorField(err), logger.Field("date", date))
		return err
	}

	s.logger.Info("Portfolio history updated",
		logger.Field("date", date.Format("2006-01-02")),
		logger.Field("total_value", totalValue),
		logger.Field("daily_change", point.DailyChange))
	return nil
}

// RecentHistory returns the last recorded valuation rows, oldest first.
func (s *historyService) RecentHistory(ctx context.Context, limit int) ([]dto.HistoryPointResponse, error) {
	points, err := s.historyRepo.FindRecent(ctx, limit)
	if err != nil {
		s.logger.Error("Failed to load portfolio history", logger.ErrorField(err))
		return nil, err
	}

	responses := make([]dto.HistoryPointResponse, 0, len(points))
	for _, p := range points {
		responses = append(responses, dto.HistoryPointResponse{
			Date:            p.Date,
			TotalValue:      p.TotalValue,
			DailyChange:     p.DailyChange,
			TotalCost:       p.TotalCost,
			TotalGainLoss:   p.TotalGainLoss,
			GainLossPercent: p.GainLossPercent,
		})
	}
	return responses, nil
}
