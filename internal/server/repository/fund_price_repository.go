package repository

import (
	"context"
	"time"

	"golang-portfolio-tracker/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FundPriceRepository defines the interface for price snapshot operations.
// Snapshots are append-only; both lookups return gorm.ErrRecordNotFound when
// no snapshot matches.
type FundPriceRepository interface {
	Create(ctx context.Context, price *entity.FundPrice) error
	LatestAtOrBefore(ctx context.Context, symbol string, date time.Time) (*entity.FundPrice, error)
	EarliestAtOrAfter(ctx context.Context, symbol string, date time.Time) (*entity.FundPrice, error)
}

// NewFundPriceRepository creates a new GORM-based fund price repository.
func NewFundPriceRepository(db *gorm.DB) FundPriceRepository {
	return &fundPriceRepository{db: db}
}

type fundPriceRepository struct {
	db *gorm.DB
}

// Create appends a new price snapshot. A snapshot already recorded for the
// same symbol and day is left untouched; rows are never mutated.
func (r *fundPriceRepository) Create(ctx context.Context, price *entity.FundPrice) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "symbol"}, {Name: "record_date"}},
			DoNothing: true,
		}).
		Create(price).Error
}

// LatestAtOrBefore retrieves the most recent snapshot on or before the given
// date. Duplicate dates are resolved to the highest id.
func (r *fundPriceRepository) LatestAtOrBefore(ctx context.Context, symbol string, date time.Time) (*entity.FundPrice, error) {
	var price entity.FundPrice
	err := r.db.WithContext(ctx).
		Where("symbol = ? AND record_date <= ?", symbol, date).
		Order("record_date DESC, id DESC").
		Take(&price).Error
	if err != nil {
		return nil, err
	}
	return &price, nil
}

// EarliestAtOrAfter retrieves the first snapshot on or after the given date.
func (r *fundPriceRepository) EarliestAtOrAfter(ctx context.Context, symbol string, date time.Time) (*entity.FundPrice, error) {
	var price entity.FundPrice
	err := r.db.WithContext(ctx).
		Where("symbol = ? AND record_date >= ?", symbol, date).
		Order("record_date ASC, id ASC").
		Take(&price).Error
	if err != nil {
		return nil, err
	}
	return &price, nil
}
