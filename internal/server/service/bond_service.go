package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang-portfolio-tracker/internal/entity"
	"golang-portfolio-tracker/internal/server/dto"
	"golang-portfolio-tracker/internal/server/repository"
	"golang-portfolio-tracker/pkg/logger"
	"golang-portfolio-tracker/pkg/utils"

	"gorm.io/gorm"
)

// BondService manages bond positions. A bond is stored as a pair of rows, a
// holding carrying the position and a bond carrying the fixed-income
// attributes, and the two are kept in sync.
type BondService interface {
	GetAll(ctx context.Context) ([]*dto.BondResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.BondResponse, error)
	Create(ctx context.Context, req *dto.CreateBondRequest) (*dto.BondResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateBondRequest) (*dto.BondResponse, error)
	Delete(ctx context.Context, id uint) error
	GetStats(ctx context.Context) ([]dto.BondStats, error)
}

// NewBondService creates a new bond service.
func NewBondService(bondRepo repository.BondRepository, holdingRepo repository.HoldingRepository, logger *logger.Logger) BondService {
	return &bondService{
		bondRepo:    bondRepo,
		holdingRepo: holdingRepo,
		logger:      logger,
	}
}

type bondService struct {
	bondRepo    repository.BondRepository
	holdingRepo repository.HoldingRepository
	logger      *logger.Logger
}

// GetAll retrieves all active bonds with their holding positions.
func (s *bondService) GetAll(ctx context.Context) ([]*dto.BondResponse, error) {
	rows, err := s.bondRepo.FindAllWithHolding(ctx)
	if err != nil {
		s.logger.Error("Failed to get bonds", logger.ErrorField(err))
		return nil, err
	}
	bonds := make([]*dto.BondResponse, 0, len(rows))
	for i := range rows {
		bonds = append(bonds, mapBondRow(&rows[i]))
	}
	return bonds, nil
}

// GetByID retrieves a single active bond with its holding position.
func (s *bondService) GetByID(ctx context.Context, id uint) (*dto.BondResponse, error) {
	row, err := s.bondRepo.FindByIDWithHolding(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: bond %d", ErrNotFound, id)
		}
		return nil, err
	}
	return mapBondRow(row), nil
}

// Create records a bond purchase, inserting the holding row first and then
// the bond row pointing at it.
func (s *bondService) Create(ctx context.Context, req *dto.CreateBondRequest) (*dto.BondResponse, error) {
	maturityDate, purchaseDate, err := parseBondDates(req.MaturityDate, req.PurchaseDate)
	if err != nil {
		return nil, err
	}
	if err := validateBondInput(req.Symbol, req.Name, req.BondType, req.Quantity, req.PurchasePrice, req.FaceValue); err != nil {
		return nil, err
	}

	currentPrice := req.CurrentPrice
	if currentPrice == 0 {
		currentPrice = req.PurchasePrice
	}
	holding := &entity.Holding{
		Symbol:        req.Symbol,
		Name:          req.Name,
		Type:          entity.HoldingTypeBond,
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
		PurchaseDate:  purchaseDate,
		CurrentPrice:  currentPrice,
		Sector:        req.Sector,
		Notes:         req.Notes,
		IsActive:      true,
	}
	if err := s.holdingRepo.Create(ctx, holding); err != nil {
		s.logger.Error("Failed to create bond holding", logger.ErrorField(err))
		return nil, err
	}

	bond := &entity.Bond{
		HoldingID:    holding.ID,
		Symbol:       req.Symbol,
		Name:         req.Name,
		BondType:     req.BondType,
		CouponRate:   req.CouponRate,
		MaturityDate: maturityDate,
		FaceValue:    req.FaceValue,
		CurrentYield: req.CurrentYield,
		CreditRating: req.CreditRating,
		Issuer:       req.Issuer,
		IsActive:     true,
	}
	if err := s.bondRepo.Create(ctx, bond); err != nil {
		s.logger.Error("Failed to create bond", logger.ErrorField(err))
		return nil, err
	}

	s.logger.Info("Bond created",
		logger.Field("bond_id", bond.ID),
		logger.Field("holding_id", holding.ID),
		logger.Field("symbol", bond.Symbol))
	return s.GetByID(ctx, bond.ID)
}

// Update rewrites both the bond attributes and the backing holding position.
func (s *bondService) Update(ctx context.Context, id uint, req *dto.UpdateBondRequest) (*dto.BondResponse, error) {
	maturityDate, purchaseDate, err := parseBondDates(req.MaturityDate, req.PurchaseDate)
	if err != nil {
		return nil, err
	}
	if err := validateBondInput(req.Symbol, req.Name, req.BondType, req.Quantity, req.PurchasePrice, req.FaceValue); err != nil {
		return nil, err
	}

	bond, err := s.bondRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: bond %d", ErrNotFound, id)
		}
		return nil, err
	}
	holding, err := s.holdingRepo.FindByID(ctx, bond.HoldingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: holding %d for bond %d", ErrNotFound, bond.HoldingID, id)
		}
		return nil, err
	}

	bond.Symbol = req.Symbol
	bond.Name = req.Name
	bond.BondType = req.BondType
	bond.CouponRate = req.CouponRate
	bond.MaturityDate = maturityDate
	bond.FaceValue = req.FaceValue
	bond.CurrentYield = req.CurrentYield
	bond.CreditRating = req.CreditRating
	bond.Issuer = req.Issuer
	if err := s.bondRepo.Update(ctx, bond); err != nil {
		return nil, err
	}

	holding.Symbol = req.Symbol
	holding.Name = req.Name
	holding.Quantity = req.Quantity
	holding.PurchasePrice = req.PurchasePrice
	holding.PurchaseDate = purchaseDate
	if req.CurrentPrice > 0 {
		holding.CurrentPrice = req.CurrentPrice
	}
	holding.Sector = req.Sector
	holding.Notes = req.Notes
	if err := s.holdingRepo.Update(ctx, holding); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// Delete soft-deletes the bond and its backing holding.
func (s *bondService) Delete(ctx context.Context, id uint) error {
	bond, err := s.bondRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: bond %d", ErrNotFound, id)
		}
		return err
	}
	if err := s.bondRepo.SoftDelete(ctx, id); err != nil {
		return err
	}
	if err := s.holdingRepo.SoftDelete(ctx, bond.HoldingID); err != nil {
		return err
	}
	s.logger.Info("Bond deleted", logger.Field("bond_id", id), logger.Field("holding_id", bond.HoldingID))
	return nil
}

// GetStats aggregates active bond positions per bond type.
func (s *bondService) GetStats(ctx context.Context) ([]dto.BondStats, error) {
	rows, err := s.bondRepo.StatsByType(ctx)
	if err != nil {
		s.logger.Error("Failed to aggregate bond stats", logger.ErrorField(err))
		return nil, err
	}
	stats := make([]dto.BondStats, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, dto.BondStats{
			BondType:           row.BondType,
			Count:              row.Count,
			AvgCouponRate:      utils.Round2(row.AvgCouponRate),
			AvgCurrentYield:    utils.Round2(row.AvgCurrentYield),
			AvgYearsToMaturity: utils.Round2(row.AvgYearsToMaturity),
			TotalValue:         utils.Round2(row.TotalValue),
		})
	}
	return stats, nil
}

func parseBondDates(maturity, purchase string) (time.Time, time.Time, error) {
	maturityDate, err := time.Parse(dateLayout, maturity)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: maturity_date must be YYYY-MM-DD", ErrInvalidInput)
	}
	purchaseDate, err := time.Parse(dateLayout, purchase)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: purchase_date must be YYYY-MM-DD", ErrInvalidInput)
	}
	return maturityDate, purchaseDate, nil
}

func validateBondInput(symbol, name, bondType string, quantity, purchasePrice, faceValue float64) error {
	if !symbolPattern.MatchString(symbol) {
		return fmt.Errorf("%w: symbol must be 1-10 alphanumeric characters", ErrInvalidInput)
	}
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if bondType == "" {
		return fmt.Errorf("%w: bond_type is required", ErrInvalidInput)
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}
	if purchasePrice <= 0 {
		return fmt.Errorf("%w: purchase_price must be positive", ErrInvalidInput)
	}
	if faceValue <= 0 {
		return fmt.Errorf("%w: face_value must be positive", ErrInvalidInput)
	}
	return nil
}

func mapBondRow(row *repository.BondHoldingRow) *dto.BondResponse {
	return &dto.BondResponse{
		ID:            row.ID,
		HoldingID:     row.HoldingID,
		Symbol:        row.Symbol,
		Name:          row.Name,
		BondType:      row.BondType,
		CouponRate:    row.CouponRate,
		MaturityDate:  row.MaturityDate,
		FaceValue:     row.FaceValue,
		CurrentYield:  row.CurrentYield,
		CreditRating:  row.CreditRating,
		Issuer:        row.Issuer,
		Quantity:      row.Quantity,
		PurchasePrice: row.PurchasePrice,
		PurchaseDate:  row.PurchaseDate,
		CurrentPrice:  row.CurrentPrice,
		Sector:        row.Sector,
		Notes:         row.Notes,
	}
}
