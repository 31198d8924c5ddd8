package service

import (
	"context"
	"errors"
	"time"

	"golang-portfolio-tracker/internal/server/dto"
	"golang-portfolio-tracker/internal/server/repository"
	"golang-portfolio-tracker/pkg/logger"
	"golang-portfolio-tracker/pkg/utils"

	"gorm.io/gorm"
)

// ReturnsService computes percentage returns over fixed look-back windows
// from the price snapshot history. Missing data never surfaces as an error:
// any lookup that finds no snapshot resolves to a 0% return, so callers
// cannot distinguish "no data" from "flat".
type ReturnsService interface {
	ComputeReturn(ctx context.Context, symbol string, referenceDate, windowStart time.Time) (float64, error)
	ComputeReturns(ctx context.Context, symbol string, asOf time.Time) (*dto.HoldingReturns, error)
}

// NewReturnsService creates a new returns service.
func NewReturnsService(priceRepo repository.FundPriceRepository, logger *logger.Logger) ReturnsService {
	return &returnsService{
		priceRepo: priceRepo,
		logger:    logger,
	}
}

type returnsService struct {
	priceRepo repository.FundPriceRepository
	logger    *logger.Logger
}

// ComputeReturn computes the percentage return for a symbol between the
// window start and the reference date, using only snapshots recorded on or
// before the reference date.
//
// The base price is the EARLIEST snapshot at or after the window start, not
// the latest one before it. With sparse data the realized window is shorter
// than the nominal one, and a snapshot dated exactly at the window start
// compares against itself. This matches the system being replaced and is
// kept for output compatibility; see DESIGN.md before changing it.
func (s *returnsService) ComputeReturn(ctx context.Context, symbol string, referenceDate, windowStart time.Time) (float64, error) {
	current, err := s.priceRepo.LatestAtOrBefore(ctx, symbol, referenceDate)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Debug("No snapshot at or before reference date", logger.Field("symbol", symbol))
			return 0, nil
		}
		return 0, err
	}

	base, err := s.priceRepo.EarliestAtOrAfter(ctx, symbol, windowStart)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Debug("No snapshot at or after window start", logger.Field("symbol", symbol))
			return 0, nil
		}
		return 0, err
	}

	// a zero reference price is bad data, not a total loss
	if base.Price == 0 {
		return 0, nil
	}

	return utils.Round2((current.Price - base.Price) / base.Price * 100), nil
}

// ComputeReturns computes the YTD, 3-month, 6-month, 1-year and 3-year
// returns for a symbol. Windows are anchored on the date of the latest
// snapshot at or before asOf, not on the wall clock, so a stale price table
// never produces future-relative windows.
func (s *returnsService) ComputeReturns(ctx context.Context, symbol string, asOf time.Time) (*dto.HoldingReturns, error) {
	latest, err := s.priceRepo.LatestAtOrBefore(ctx, symbol, asOf)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.HoldingReturns{}, nil
		}
		return nil, err
	}

	ref := utils.DateOnly(latest.RecordDate)
	returns := &dto.HoldingReturns{}

	type window struct {
		target *float64
		start  time.Time
	}
	windows := []window{
		{&returns.Ytd, utils.StartOfYear(ref)},
		{&returns.Return3M, utils.SubtractMonths(ref, 3)},
		{&returns.Return6M, utils.SubtractMonths(ref, 6)},
		{&returns.Return1Y, utils.SubtractMonths(ref, 12)},
		{&returns.Return3Y, utils.SubtractMonths(ref, 36)},
	}

	for _, w := range windows {
		value, err := s.ComputeReturn(ctx, symbol, ref, w.start)
		if err != nil {
			return nil, err
		}
		*w.target = value
	}

	return returns, nil
}
