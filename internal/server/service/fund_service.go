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

// FundService exposes fund-typed holdings with their historical returns and
// demo attributes.
type FundService interface {
	GetFunds(ctx context.Context) ([]*dto.FundResponse, error)
	SearchFunds(ctx context.Context, query string) ([]*dto.FundResponse, error)
	GetCategories(ctx context.Context) ([]dto.FundCategory, error)
	GetPerformance(ctx context.Context) ([]dto.FundPerformance, error)
	GetVolatility(ctx context.Context, symbol string) (*dto.FundVolatility, error)
}

// NewFundService creates a new fund service.
func NewFundService(holdingRepo repository.HoldingRepository, returnsSvc ReturnsService, synthetic *SyntheticDataGenerator, logger *logger.Logger) FundService {
	return &fundService{
		holdingRepo: holdingRepo,
		returnsSvc:  returnsSvc,
		synthetic:   synthetic,
		logger:      logger,
	}
}

type fundService struct {
	holdingRepo repository.HoldingRepository
	returnsSvc  ReturnsService
	synthetic   *SyntheticDataGenerator
	logger      *logger.Logger
}

// GetFunds retrieves all active fund holdings.
func (s *fundService) GetFunds(ctx context.Context) ([]*dto.FundResponse, error) {
	funds, err := s.holdingRepo.FindActiveByType(ctx, entity.HoldingTypeFund)
	if err != nil {
		s.logger.Error("Failed to get funds", logger.ErrorField(err))
		return nil, err
	}
	return s.mapToFundResponses(funds), nil
}

// SearchFunds retrieves active funds matching the query by name or symbol.
func (s *fundService) SearchFunds(ctx context.Context, query string) ([]*dto.FundResponse, error) {
	funds, err := s.holdingRepo.SearchActiveByType(ctx, entity.HoldingTypeFund, query)
	if err != nil {
		s.logger.Error("Failed to search funds", logger.ErrorField(err), logger.Field("query", query))
		return nil, err
	}
	return s.mapToFundResponses(funds), nil
}

// GetCategories aggregates active funds by sector, each with its share of
// the total fund value. Funds without a sector fall into "Unknown".
func (s *fundService) GetCategories(ctx context.Context) ([]dto.FundCategory, error) {
	funds, err := s.holdingRepo.FindActiveByType(ctx, entity.HoldingTypeFund)
	if err != nil {
		s.logger.Error("Failed to load funds for categories", logger.ErrorField(err))
		return nil, err
	}

	type group struct {
		count           int
		value           float64
		expenseRatioSum float64
	}
	groups := make(map[string]*group)
	total := 0.0
	for i := range funds {
		f := &funds[i]
		sector := f.Sector
		if sector == "" {
			sector = "Unknown"
		}
		g, ok := groups[sector]
		if !ok {
			g = &group{}
			groups[sector] = g
		}
		g.count++
		g.value += f.CurrentValue()
		g.expenseRatioSum += s.synthetic.ExpenseRatio(f.Symbol)
		total += f.CurrentValue()
	}

	categories := make([]dto.FundCategory, 0, len(groups))
	for sector, g := range groups {
		percentage := 0.0
		if total > 0 {
			percentage = utils.Round2(g.value / total * 100)
		}
		categories = append(categories, dto.FundCategory{
			Type:         sector,
			Count:        g.count,
			Value:        utils.Round2(g.value),
			ExpenseRatio: utils.Round2(g.expenseRatioSum / float64(g.count)),
			Percentage:   percentage,
		})
	}
	sortFundCategories(categories)
	return categories, nil
}

// GetPerformance retrieves active funds with their YTD, 1-year and 3-year
// returns computed from the price snapshot history.
func (s *fundService) GetPerformance(ctx context.Context) ([]dto.FundPerformance, error) {
	funds, err := s.holdingRepo.FindActiveByType(ctx, entity.HoldingTypeFund)
	if err != nil {
		s.logger.Error("Failed to load funds for performance", logger.ErrorField(err))
		return nil, err
	}

	now := time.Now().UTC()
	performances := make([]dto.FundPerformance, 0, len(funds))
	for i := range funds {
		f := &funds[i]
		returns, err := s.returnsSvc.ComputeReturns(ctx, f.Symbol, now)
		if err != nil {
			return nil, err
		}
		performances = append(performances, dto.FundPerformance{
			Symbol:        f.Symbol,
			Name:          f.Name,
			Sector:        f.Sector,
			Quantity:      f.Quantity,
			CurrentPrice:  f.CurrentPrice,
			PurchasePrice: f.PurchasePrice,
			CurrentValue:  utils.Round2(f.CurrentValue()),
			ExpenseRatio:  s.synthetic.ExpenseRatio(f.Symbol),
			Ytd:           returns.Ytd,
			Return1Y:      returns.Return1Y,
			Return3Y:      returns.Return3Y,
		})
	}

	// biggest positions first
	for i := 1; i < len(performances); i++ {
		for j := i; j > 0 && performances[j].CurrentValue > performances[j-1].CurrentValue; j-- {
			performances[j], performances[j-1] = performances[j-1], performances[j]
		}
	}
	return performances, nil
}

// GetVolatility returns the demo volatility figures for a fund. An unknown
// symbol yields zeros rather than an error.
func (s *fundService) GetVolatility(ctx context.Context, symbol string) (*dto.FundVolatility, error) {
	_, err := s.holdingRepo.FindActiveBySymbolAndType(ctx, symbol, entity.HoldingTypeFund)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.FundVolatility{}, nil
		}
		return nil, err
	}
	volatility := s.synthetic.Volatility(symbol)
	return &volatility, nil
}

func (s *fundService) mapToFundResponses(funds []entity.Holding) []*dto.FundResponse {
	responses := make([]*dto.FundResponse, 0, len(funds))
	for i := range funds {
		f := &funds[i]
		responses = append(responses, &dto.FundResponse{
			ID:             f.ID,
			Symbol:         f.Symbol,
			Name:           f.Name,
			Type:           string(f.Type),
			Quantity:       f.Quantity,
			PurchasePrice:  f.PurchasePrice,
			PurchaseDate:   f.PurchaseDate,
			CurrentPrice:   f.CurrentPrice,
			Sector:         f.Sector,
			Notes:          f.Notes,
			IsActive:       f.IsActive,
			FundType:       s.synthetic.FundType(f.Symbol),
			ExpenseRatio:   s.synthetic.ExpenseRatio(f.Symbol),
			UnrealizedGain: utils.Round2(f.UnrealizedGain()),
			GainPercent:    utils.Round2(f.GainPercent()),
			CurrentValue:   utils.Round2(f.CurrentValue()),
		})
	}
	return responses
}

func sortFundCategories(categories []dto.FundCategory) {
	for i := 1; i < len(categories); i++ {
		for j := i; j > 0 && categories[j].Value > categories[j-1].Value; j-- {
			categories[j], categories[j-1] = categories[j-1], categories[j]
		}
	}
}
