package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"golang-portfolio-tracker/internal/entity"
	"golang-portfolio-tracker/internal/server/dto"
	"golang-portfolio-tracker/internal/server/repository"
	"golang-portfolio-tracker/pkg/logger"
	"golang-portfolio-tracker/pkg/quotes"
	"golang-portfolio-tracker/pkg/utils"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

var symbolPattern = regexp.MustCompile(`^[A-Za-z0-9.-]{1,10}$`)

// HoldingService manages portfolio positions.
type HoldingService interface {
	GetAllHoldings(ctx context.Context) ([]*dto.HoldingResponse, error)
	GetHoldingByID(ctx context.Context, id uint) (*dto.HoldingResponse, error)
	CreateHolding(ctx context.Context, req *dto.CreateHoldingRequest) (*dto.HoldingResponse, error)
	UpdateHolding(ctx context.Context, id uint, req *dto.UpdateHoldingRequest) (*dto.HoldingResponse, error)
	DeleteHolding(ctx context.Context, id uint) error
	GetPortfolioSummary(ctx context.Context) (*dto.PortfolioSummaryResponse, error)
	ExecuteTrade(ctx context.Context, req *dto.TradeRequest) error
	UpdateCurrentPrices(ctx context.Context) (*dto.PriceUpdateResult, error)
}

// NewHoldingService creates a new holding service.
func NewHoldingService(holdingRepo repository.HoldingRepository, priceRepo repository.FundPriceRepository, provider quotes.Provider, historySvc HistoryService, logger *logger.Logger) HoldingService {
	return &holdingService{
		holdingRepo: holdingRepo,
		priceRepo:   priceRepo,
		provider:    provider,
		historySvc:  historySvc,
		logger:      logger,
	}
}

type holdingService struct {
	holdingRepo repository.HoldingRepository
	priceRepo   repository.FundPriceRepository
	provider    quotes.Provider
	historySvc  HistoryService
	logger      *logger.Logger
}

// GetAllHoldings retrieves every holding with derived valuation fields.
func (s *holdingService) GetAllHoldings(ctx context.Context) ([]*dto.HoldingResponse, error) {
	holdings, err := s.holdingRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to get holdings", logger.ErrorField(err))
		return nil, err
	}

	responses := make([]*dto.HoldingResponse, 0, len(holdings))
	for i := range holdings {
		responses = append(responses, mapToHoldingResponse(&holdings[i]))
	}
	return responses, nil
}

// GetHoldingByID retrieves a single holding.
func (s *holdingService) GetHoldingByID(ctx context.Context, id uint) (*dto.HoldingResponse, error) {
	holding, err := s.holdingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: holding %d", ErrNotFound, id)
		}
		return nil, err
	}
	return mapToHoldingResponse(holding), nil
}

// CreateHolding validates and creates a new position. The current price is
// fetched from the quote provider; when no quote is available the purchase
// price is used.
func (s *holdingService) CreateHolding(ctx context.Context, req *dto.CreateHoldingRequest) (*dto.HoldingResponse, error) {
	symbol := strings.ToUpper(req.Symbol)
	purchaseDate, err := validateHoldingInput(symbol, req.Name, req.Type, req.Quantity, req.PurchasePrice, req.PurchaseDate)
	if err != nil {
		return nil, err
	}

	currentPrice := req.PurchasePrice
	if quote, err := s.provider.GetQuote(ctx, symbol); err == nil && quote.CurrentPrice > 0 {
		currentPrice = quote.CurrentPrice
	} else if err != nil {
		s.logger.Warn("Could not fetch current price, using purchase price",
			logger.Field("symbol", symbol), logger.ErrorField(err))
	}

	holding := &entity.Holding{
		Symbol:        symbol,
		Name:          req.Name,
		Type:          entity.HoldingType(req.Type),
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
		PurchaseDate:  purchaseDate,
		CurrentPrice:  currentPrice,
		Sector:        req.Sector,
		Notes:         req.Notes,
		IsActive:      true,
	}
	if err := s.holdingRepo.Create(ctx, holding); err != nil {
		s.logger.Error("Failed to create holding", logger.ErrorField(err))
		return nil, err
	}

	s.logger.Info("Holding created", logger.Field("holding_id", holding.ID), logger.Field("symbol", symbol))
	return mapToHoldingResponse(holding), nil
}

// UpdateHolding validates and updates an existing position.
func (s *holdingService) UpdateHolding(ctx context.Context, id uint, req *dto.UpdateHoldingRequest) (*dto.HoldingResponse, error) {
	symbol := strings.ToUpper(req.Symbol)
	purchaseDate, err := validateHoldingInput(symbol, req.Name, req.Type, req.Quantity, req.PurchasePrice, req.PurchaseDate)
	if err != nil {
		return nil, err
	}
	if req.CurrentPrice <= 0 {
		return nil, fmt.Errorf("%w: current price must be positive", ErrInvalidInput)
	}

	holding, err := s.holdingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: holding %d", ErrNotFound, id)
		}
		return nil, err
	}

	holding.Symbol = symbol
	holding.Name = req.Name
	holding.Type = entity.HoldingType(req.Type)
	holding.Quantity = req.Quantity
	holding.PurchasePrice = req.PurchasePrice
	holding.PurchaseDate = purchaseDate
	holding.CurrentPrice = req.CurrentPrice
	holding.Sector = req.Sector
	holding.Notes = req.Notes

	if err := s.holdingRepo.Update(ctx, holding); err != nil {
		s.logger.Error("Failed to update holding", logger.ErrorField(err), logger.Field("holding_id", id))
		return nil, err
	}
	return mapToHoldingResponse(holding), nil
}

// DeleteHolding soft-deletes a position.
func (s *holdingService) DeleteHolding(ctx context.Context, id uint) error {
	if _, err := s.holdingRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: holding %d", ErrNotFound, id)
		}
		return err
	}
	if err := s.holdingRepo.SoftDelete(ctx, id); err != nil {
		s.logger.Error("Failed to delete holding", logger.ErrorField(err), logger.Field("holding_id", id))
		return err
	}
	s.logger.Info("Holding deleted", logger.Field("holding_id", id))
	return nil
}

// GetPortfolioSummary aggregates active holdings for the dashboard header.
func (s *holdingService) GetPortfolioSummary(ctx context.Context) (*dto.PortfolioSummaryResponse, error) {
	holdings, err := s.holdingRepo.FindAllActive(ctx)
	if err != nil {
		s.logger.Error("Failed to load holdings for summary", logger.ErrorField(err))
		return nil, err
	}

	summary := dto.PortfolioSummary{TotalHoldings: len(holdings)}
	gainPercentSum := 0.0
	for i := range holdings {
		h := &holdings[i]
		summary.TotalValue += h.CurrentValue()
		summary.TotalGain += h.UnrealizedGain()
		gainPercentSum += h.GainPercent()
	}
	summary.TotalValue = utils.Round2(summary.TotalValue)
	summary.TotalGain = utils.Round2(summary.TotalGain)
	if len(holdings) > 0 {
		summary.AvgGainPercent = utils.Round2(gainPercentSum / float64(len(holdings)))
	}

	sorted := make([]entity.Holding, len(holdings))
	copy(sorted, holdings)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].GainPercent() > sorted[j].GainPercent() })
	top := make([]dto.TopPerformer, 0, 3)
	for i := range sorted {
		if i == 3 {
			break
		}
		top = append(top, dto.TopPerformer{
			Symbol:       sorted[i].Symbol,
			Name:         sorted[i].Name,
			CurrentPrice: sorted[i].CurrentPrice,
			GainPercent:  utils.Round2(sorted[i].GainPercent()),
		})
	}

	return &dto.PortfolioSummaryResponse{Summary: summary, TopPerformers: top}, nil
}

// ExecuteTrade applies a buy or sell to the fund position for a symbol.
// Buys average the cost basis into an existing position or open a new one;
// a sell of the full quantity soft-deletes the position.
func (s *holdingService) ExecuteTrade(ctx context.Context, req *dto.TradeRequest) error {
	symbol := strings.ToUpper(req.Symbol)
	if symbol == "" || req.Quantity <= 0 || req.Price <= 0 {
		return fmt.Errorf("%w: symbol, positive quantity and positive price are required", ErrInvalidInput)
	}

	existing, err := s.holdingRepo.FindActiveBySymbolAndType(ctx, symbol, entity.HoldingTypeFund)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	switch req.Action {
	case "buy":
		if existing == nil {
			holding := &entity.Holding{
				Symbol:        symbol,
				Name:          symbol, // refreshed with the real name on the next quote update
				Type:          entity.HoldingTypeFund,
				Quantity:      req.Quantity,
				PurchasePrice: req.Price,
				PurchaseDate:  utils.DateOnly(time.Now().UTC()),
				CurrentPrice:  req.Price,
				Sector:        "Unknown",
				Notes:         req.Notes,
				IsActive:      true,
			}
			if err := s.holdingRepo.Create(ctx, holding); err != nil {
				return err
			}
			s.logger.Info("Buy opened new position", logger.Field("symbol", symbol), logger.Field("quantity", req.Quantity))
			return nil
		}

		newQuantity := existing.Quantity + req.Quantity
		existing.PurchasePrice = (existing.Quantity*existing.PurchasePrice + req.Quantity*req.Price) / newQuantity
		existing.Quantity = newQuantity
		existing.CurrentPrice = req.Price
		if err := s.holdingRepo.Update(ctx, existing); err != nil {
			return err
		}
		s.logger.Info("Buy averaged into position", logger.Field("symbol", symbol), logger.Field("quantity", newQuantity))
		return nil

	case "sell":
		if existing == nil {
			return fmt.Errorf("%w: no active position for %s", ErrNotFound, symbol)
		}
		if existing.Quantity < req.Quantity {
			return ErrInsufficientQuantity
		}
		if existing.Quantity == req.Quantity {
			if err := s.holdingRepo.SoftDelete(ctx, existing.ID); err != nil {
				return err
			}
			s.logger.Info("Sell closed position", logger.Field("symbol", symbol))
			return nil
		}
		existing.Quantity -= req.Quantity
		existing.CurrentPrice = req.Price
		if err := s.holdingRepo.Update(ctx, existing); err != nil {
			return err
		}
		s.logger.Info("Sell reduced position", logger.Field("symbol", symbol), logger.Field("quantity", existing.Quantity))
		return nil

	default:
		return fmt.Errorf("%w: action must be \"buy\" or \"sell\"", ErrInvalidInput)
	}
}

// UpdateCurrentPrices refreshes current prices for all active symbols from
// the quote provider, appends a price snapshot per refreshed symbol and
// re-records today's history point.
func (s *holdingService) UpdateCurrentPrices(ctx context.Context) (*dto.PriceUpdateResult, error) {
	holdings, err := s.holdingRepo.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}

	oldPrices := make(map[string]float64)
	symbols := make([]string, 0, len(holdings))
	for i := range holdings {
		if _, seen := oldPrices[holdings[i].Symbol]; seen {
			continue
		}
		oldPrices[holdings[i].Symbol] = holdings[i].CurrentPrice
		symbols = append(symbols, holdings[i].Symbol)
	}

	result := &dto.PriceUpdateResult{Timestamp: time.Now().UTC()}
	if len(symbols) == 0 {
		return result, nil
	}

	quoteList, err := s.provider.GetQuotes(ctx, symbols)
	if err != nil {
		s.logger.Error("Failed to fetch quotes", logger.ErrorField(err))
		return nil, err
	}

	today := utils.DateOnly(time.Now().UTC())
	for _, quote := range quoteList {
		if quote.CurrentPrice <= 0 {
			continue
		}
		rows, err := s.holdingRepo.UpdateCurrentPrice(ctx, quote.Symbol, quote.CurrentPrice)
		if err != nil {
			s.logger.Error("Failed to update price", logger.ErrorField(err), logger.Field("symbol", quote.Symbol))
			continue
		}
		if rows == 0 {
			continue
		}

		snapshot := &entity.FundPrice{Symbol: quote.Symbol, RecordDate: today, Price: quote.CurrentPrice}
		if err := s.priceRepo.Create(ctx, snapshot); err != nil {
			s.logger.Error("Failed to append price snapshot", logger.ErrorField(err), logger.Field("symbol", quote.Symbol))
		}

		result.UpdatedCount++
		result.Updates = append(result.Updates, dto.PriceUpdateItem{
			Symbol:        quote.Symbol,
			OldPrice:      oldPrices[quote.Symbol],
			NewPrice:      quote.CurrentPrice,
			Change:        quote.Change,
			ChangePercent: quote.ChangePercent,
		})
	}

	result.FailedCount = len(symbols) - result.UpdatedCount

	if result.UpdatedCount > 0 {
		if err := s.historySvc.RecordTodaysHistory(ctx); err != nil {
			s.logger.Error("Failed to record history after price refresh", logger.ErrorField(err))
		}
	}
	return result, nil
}

func validateHoldingInput(symbol, name, holdingType string, quantity, purchasePrice float64, purchaseDate string) (time.Time, error) {
	if !symbolPattern.MatchString(symbol) {
		return time.Time{}, fmt.Errorf("%w: symbol must be 1-10 characters of letters, numbers, dots and hyphens", ErrInvalidInput)
	}
	if name == "" || len(name) > 255 {
		return time.Time{}, fmt.Errorf("%w: name must be between 1 and 255 characters", ErrInvalidInput)
	}
	if !entity.ValidHoldingType(entity.HoldingType(holdingType)) {
		return time.Time{}, fmt.Errorf("%w: type must be one of stock, bond, cash, fund, crypto", ErrInvalidInput)
	}
	if quantity <= 0 {
		return time.Time{}, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}
	if purchasePrice <= 0 {
		return time.Time{}, fmt.Errorf("%w: purchase price must be positive", ErrInvalidInput)
	}

	parsed, err := time.ParseInLocation(dateLayout, purchaseDate, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: purchase date must be formatted YYYY-MM-DD", ErrInvalidInput)
	}
	if parsed.After(time.Now().UTC()) {
		return time.Time{}, fmt.Errorf("%w: purchase date cannot be in the future", ErrInvalidInput)
	}
	return parsed, nil
}

func mapToHoldingResponse(h *entity.Holding) *dto.HoldingResponse {
	return &dto.HoldingResponse{
		ID:             h.ID,
		Symbol:         h.Symbol,
		Name:           h.Name,
		Type:           string(h.Type),
		Quantity:       h.Quantity,
		PurchasePrice:  h.PurchasePrice,
		PurchaseDate:   h.PurchaseDate,
		CurrentPrice:   h.CurrentPrice,
		Sector:         h.Sector,
		Notes:          h.Notes,
		IsActive:       h.IsActive,
		UnrealizedGain: utils.Round2(h.UnrealizedGain()),
		GainPercent:    utils.Round2(h.GainPercent()),
		CurrentValue:   utils.Round2(h.CurrentValue()),
		CreatedAt:      h.CreatedAt,
		UpdatedAt:      h.UpdatedAt,
	}
}
