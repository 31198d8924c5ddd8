package repository

import (
	"context"
	"time"

	"golang-portfolio-tracker/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PortfolioHistoryRepository defines the interface for daily valuation rows.
type PortfolioHistoryRepository interface {
	Upsert(ctx context.Context, point *entity.PortfolioHistory) error
	FindByDate(ctx context.Context, date time.Time) (*entity.PortfolioHistory, error)
	FindRecent(ctx context.Context, limit int) ([]entity.PortfolioHistory, error)
}

// NewPortfolioHistoryRepository creates a new GORM-based history repository.
func NewPortfolioHistoryRepository(db *gorm.DB) PortfolioHistoryRepository {
	return &portfolioHistoryRepository{db: db}
}

type portfolioHistoryRepository struct {
	db *gorm.DB
}

// Upsert inserts the day's valuation, overwriting an existing row for the
// same date. Last write wins, which is safe because rows are keyed by
// calendar day.
func (r *portfolioHistoryRepository) Upsert(ctx context.Context, point *entity.PortfolioHistory) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"total_value", "daily_change", "total_cost",
				"total_gain_loss", "gain_loss_percent", "updated_at",
			}),
		}).
		Create(point).Error
}

// FindByDate retrieves the valuation recorded for a specific calendar day.
func (r *portfolioHistoryRepository) FindByDate(ctx context.Context, date time.Time) (*entity.PortfolioHistory, error) {
	var point entity.PortfolioHistory
	err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Take(&point).Error
	if err != nil {
		return nil, err
	}
	return &point, nil
}

// FindRecent retrieves the most recent valuation rows, oldest first.
func (r *portfolioHistoryRepository) FindRecent(ctx context.Context, limit int) ([]entity.PortfolioHistory, error) {
	var points []entity.PortfolioHistory
	err := r.db.WithContext(ctx).
		Order("date DESC").
		Limit(limit).
		Find(&points).Error
	if err != nil {
		return nil, err
	}
	// callers chart these left to right
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
	return points, nil
}
