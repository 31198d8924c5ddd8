package repository

import (
	"context"
	"time"

	"golang-portfolio-tracker/internal/entity"

	"gorm.io/gorm"
)

// BondHoldingRow is a bond joined with its backing holding position.
type BondHoldingRow struct {
	ID            uint      `gorm:"column:id"`
	HoldingID     uint      `gorm:"column:holding_id"`
	Symbol        string    `gorm:"column:symbol"`
	Name          string    `gorm:"column:name"`
	BondType      string    `gorm:"column:bond_type"`
	CouponRate    float64   `gorm:"column:coupon_rate"`
	MaturityDate  time.Time `gorm:"column:maturity_date"`
	FaceValue     float64   `gorm:"column:face_value"`
	CurrentYield  float64   `gorm:"column:current_yield"`
	CreditRating  string    `gorm:"column:credit_rating"`
	Issuer        string    `gorm:"column:issuer"`
	Quantity      float64   `gorm:"column:quantity"`
	PurchasePrice float64   `gorm:"column:purchase_price"`
	PurchaseDate  time.Time `gorm:"column:purchase_date"`
	CurrentPrice  float64   `gorm:"column:current_price"`
	Sector        string    `gorm:"column:sector"`
	Notes         string    `gorm:"column:notes"`
}

// BondTypeStatsRow aggregates bond positions per bond type.
type BondTypeStatsRow struct {
	BondType           string  `gorm:"column:bond_type"`
	Count              int     `gorm:"column:count"`
	AvgCouponRate      float64 `gorm:"column:avg_coupon_rate"`
	AvgCurrentYield    float64 `gorm:"column:avg_current_yield"`
	AvgYearsToMaturity float64 `gorm:"column:avg_years_to_maturity"`
	TotalValue         float64 `gorm:"column:total_value"`
}

// BondRepository defines the interface for bond data operations.
type BondRepository interface {
	Create(ctx context.Context, bond *entity.Bond) error
	FindByID(ctx context.Context, id uint) (*entity.Bond, error)
	FindAllWithHolding(ctx context.Context) ([]BondHoldingRow, error)
	FindByIDWithHolding(ctx context.Context, id uint) (*BondHoldingRow, error)
	Update(ctx context.Context, bond *entity.Bond) error
	SoftDelete(ctx context.Context, id uint) error
	StatsByType(ctx context.Context) ([]BondTypeStatsRow, error)
}

// NewBondRepository creates a new GORM-based bond repository.
func NewBondRepository(db *gorm.DB) BondRepository {
	return &bondRepository{db: db}
}

type bondRepository struct {
	db *gorm.DB
}

const bondHoldingSelect = `
	b.id, b.holding_id, b.symbol, b.name, b.bond_type, b.coupon_rate,
	b.maturity_date, b.face_value, b.current_yield, b.credit_rating, b.issuer,
	h.quantity, h.purchase_price, h.purchase_date, h.current_price, h.sector, h.notes`

// Create inserts a new bond record.
func (r *bondRepository) Create(ctx context.Context, bond *entity.Bond) error {
	return r.db.WithContext(ctx).Create(bond).Error
}

// FindByID retrieves a bond by its ID.
func (r *bondRepository) FindByID(ctx context.Context, id uint) (*entity.Bond, error) {
	var bond entity.Bond
	if err := r.db.WithContext(ctx).First(&bond, id).Error; err != nil {
		return nil, err
	}
	return &bond, nil
}

// FindAllWithHolding retrieves every active bond joined with its holding,
// grouped by type and ordered by maturity.
func (r *bondRepository) FindAllWithHolding(ctx context.Context) ([]BondHoldingRow, error) {
	var rows []BondHoldingRow
	err := r.db.WithContext(ctx).
		Table("bonds b").
		Select(bondHoldingSelect).
		Joins("LEFT JOIN holdings h ON b.holding_id = h.id").
		Where("b.is_active = ? AND h.is_active = ?", true, true).
		Order("b.bond_type, b.maturity_date").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByIDWithHolding retrieves a single active bond joined with its holding.
func (r *bondRepository) FindByIDWithHolding(ctx context.Context, id uint) (*BondHoldingRow, error) {
	var row BondHoldingRow
	err := r.db.WithContext(ctx).
		Table("bonds b").
		Select(bondHoldingSelect).
		Joins("LEFT JOIN holdings h ON b.holding_id = h.id").
		Where("b.id = ? AND b.is_active = ?", id, true).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Update saves all fields of a bond.
func (r *bondRepository) Update(ctx context.Context, bond *entity.Bond) error {
	return r.db.WithContext(ctx).Save(bond).Error
}

// SoftDelete marks a bond inactive.
func (r *bondRepository) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&entity.Bond{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

// StatsByType aggregates active bond positions per bond type.
func (r *bondRepository) StatsByType(ctx context.Context) ([]BondTypeStatsRow, error) {
	var rows []BondTypeStatsRow
	err := r.db.WithContext(ctx).
		Table("bonds b").
		Select(`b.bond_type,
			COUNT(*) AS count,
			AVG(b.coupon_rate) AS avg_coupon_rate,
			AVG(b.current_yield) AS avg_current_yield,
			AVG((b.maturity_date - CURRENT_DATE) / 365.25) AS avg_years_to_maturity,
			COALESCE(SUM(h.quantity * h.current_price), 0) AS total_value`).
		Joins("LEFT JOIN holdings h ON b.holding_id = h.id").
		Where("b.is_active = ? AND h.is_active = ?", true, true).
		Group("b.bond_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
