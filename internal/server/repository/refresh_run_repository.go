package repository

import (
	"context"

	"golang-portfolio-tracker/internal/entity"

	"gorm.io/gorm"
)

// RefreshRunRepository defines the interface for scheduled-run audit records.
type RefreshRunRepository interface {
	Create(ctx context.Context, run *entity.RefreshRun) error
	Update(ctx context.Context, run *entity.RefreshRun) error
	FindRecent(ctx context.Context, limit int) ([]entity.RefreshRun, error)
}

// NewRefreshRunRepository creates a new GORM-based refresh run repository.
func NewRefreshRunRepository(db *gorm.DB) RefreshRunRepository {
	return &refreshRunRepository{db: db}
}

type refreshRunRepository struct {
	db *gorm.DB
}

// Create inserts a new run record.
func (r *refreshRunRepository) Create(ctx context.Context, run *entity.RefreshRun) error {
	return r.db.WithContext(ctx).Create(run).Error
}

// Update saves all fields of a run record.
func (r *refreshRunRepository) Update(ctx context.Context, run *entity.RefreshRun) error {
	return r.db.WithContext(ctx).Save(run).Error
}

// FindRecent retrieves the most recent run records, newest first.
func (r *refreshRunRepository) FindRecent(ctx context.Context, limit int) ([]entity.RefreshRun, error) {
	var runs []entity.RefreshRun
	err := r.db.WithContext(ctx).
		Order("started_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, err
	}
	return runs, nil
}
