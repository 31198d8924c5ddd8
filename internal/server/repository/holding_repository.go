package repository

import (
	"context"

	"golang-portfolio-tracker/internal/entity"

	"gorm.io/gorm"
)

// HoldingRepository defines the interface for holding data operations.
type HoldingRepository interface {
	Create(ctx context.Context, holding *entity.Holding) error
	FindByID(ctx context.Context, id uint) (*entity.Holding, error)
	FindAll(ctx context.Context) ([]entity.Holding, error)
	FindAllActive(ctx context.Context) ([]entity.Holding, error)
	FindActiveByType(ctx context.Context, holdingType entity.HoldingType) ([]entity.Holding, error)
	FindActiveBySymbolAndType(ctx context.Context, symbol string, holdingType entity.HoldingType) (*entity.Holding, error)
	SearchActiveByType(ctx context.Context, holdingType entity.HoldingType, query string) ([]entity.Holding, error)
	Update(ctx context.Context, holding *entity.Holding) error
	UpdateCurrentPrice(ctx context.Context, symbol string, price float64) (int64, error)
	SoftDelete(ctx context.Context, id uint) error
}

// NewHoldingRepository creates a new GORM-based holding repository.
func NewHoldingRepository(db *gorm.DB) HoldingRepository {
	return &holdingRepository{db: db}
}

type holdingRepository struct {
	db *gorm.DB
}

// Create inserts a new holding.
func (r *holdingRepository) Create(ctx context.Context, holding *entity.Holding) error {
	return r.db.WithContext(ctx).Create(holding).Error
}

// FindByID retrieves a holding by its ID.
func (r *holdingRepository) FindByID(ctx context.Context, id uint) (*entity.Holding, error) {
	var holding entity.Holding
	if err := r.db.WithContext(ctx).First(&holding, id).Error; err != nil {
		return nil, err
	}
	return &holding, nil
}

// FindAll retrieves all holdings, most recently created first.
func (r *holdingRepository) FindAll(ctx context.Context) ([]entity.Holding, error) {
	var holdings []entity.Holding
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&holdings).Error; err != nil {
		return nil, err
	}
	return holdings, nil
}

// FindAllActive retrieves holdings that have not been soft-deleted.
func (r *holdingRepository) FindAllActive(ctx context.Context) ([]entity.Holding, error) {
	var holdings []entity.Holding
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&holdings).Error
	if err != nil {
		return nil, err
	}
	return holdings, nil
}

// FindActiveByType retrieves active holdings of the given asset type.
func (r *holdingRepository) FindActiveByType(ctx context.Context, holdingType entity.HoldingType) ([]entity.Holding, error) {
	var holdings []entity.Holding
	err := r.db.WithContext(ctx).
		Where("type = ? AND is_active = ?", holdingType, true).
		Order("created_at DESC").
		Find(&holdings).Error
	if err != nil {
		return nil, err
	}
	return holdings, nil
}

// FindActiveBySymbolAndType retrieves a single active holding by symbol and type.
func (r *holdingRepository) FindActiveBySymbolAndType(ctx context.Context, symbol string, holdingType entity.HoldingType) (*entity.Holding, error) {
	var holding entity.Holding
	err := r.db.WithContext(ctx).
		Where("symbol = ? AND type = ? AND is_active = ?", symbol, holdingType, true).
		Take(&holding).Error
	if err != nil {
		return nil, err
	}
	return &holding, nil
}

// SearchActiveByType retrieves active holdings of a type whose name or symbol
// matches the query.
func (r *holdingRepository) SearchActiveByType(ctx context.Context, holdingType entity.HoldingType, query string) ([]entity.Holding, error) {
	var holdings []entity.Holding
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("type = ? AND is_active = ? AND (name ILIKE ? OR symbol ILIKE ?)", holdingType, true, pattern, pattern).
		Order("name ASC").
		Find(&holdings).Error
	if err != nil {
		return nil, err
	}
	return holdings, nil
}

// Update saves all fields of a holding.
func (r *holdingRepository) Update(ctx context.Context, holding *entity.Holding) error {
	return r.db.WithContext(ctx).Save(holding).Error
}

// UpdateCurrentPrice sets the current price on every holding row for a symbol
// and returns the number of rows touched.
func (r *holdingRepository) UpdateCurrentPrice(ctx context.Context, symbol string, price float64) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.Holding{}).
		Where("symbol = ?", symbol).
		Update("current_price", price)
	return result.RowsAffected, result.Error
}

// SoftDelete marks a holding inactive. Rows are never removed so history
// stays reconstructible.
func (r *holdingRepository) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&entity.Holding{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
