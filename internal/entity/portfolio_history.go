package entity

import "time"

// PortfolioHistory is the end-of-day valuation of the whole portfolio, one
// row per calendar day. Re-recording a day overwrites the existing row.
type PortfolioHistory struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Date            time.Time `gorm:"type:date;not null;uniqueIndex" json:"date"`
	TotalValue      float64   `gorm:"not null" json:"total_value"`
	DailyChange     float64   `gorm:"not null" json:"daily_change"`
	TotalCost       float64   `gorm:"not null" json:"total_cost"`
	TotalGainLoss   float64   `gorm:"not null" json:"total_gain_loss"`
	GainLossPercent float64   `gorm:"not null" json:"gain_loss_percent"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the PortfolioHistory model.
func (PortfolioHistory) TableName() string {
	return "portfolio_history"
}
