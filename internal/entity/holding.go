package entity

import "time"

// HoldingType enumerates the supported asset classes.
type HoldingType string

const (
	HoldingTypeStock  HoldingType = "stock"
	HoldingTypeBond   HoldingType = "bond"
	HoldingTypeCash   HoldingType = "cash"
	HoldingTypeFund   HoldingType = "fund"
	HoldingTypeCrypto HoldingType = "crypto"
)

// ValidHoldingType reports whether t is one of the supported asset classes.
func ValidHoldingType(t HoldingType) bool {
	switch t {
	case HoldingTypeStock, HoldingTypeBond, HoldingTypeCash, HoldingTypeFund, HoldingTypeCrypto:
		return true
	}
	return false
}

// Holding represents a single owned position. Positions are soft-deleted by
// flipping IsActive; aggregate queries must filter on it.
type Holding struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	Symbol        string      `gorm:"type:varchar(10);not null" json:"symbol"`
	Name          string      `gorm:"type:varchar(255);not null" json:"name"`
	Type          HoldingType `gorm:"type:varchar(10);not null" json:"type"`
	Quantity      float64     `gorm:"not null" json:"quantity"`
	PurchasePrice float64     `gorm:"not null" json:"purchase_price"`
	PurchaseDate  time.Time   `gorm:"type:date;not null" json:"purchase_date"`
	CurrentPrice  float64     `gorm:"not null" json:"current_price"`
	Sector        string      `gorm:"type:varchar(100)" json:"sector"`
	Notes         string      `gorm:"type:text" json:"notes"`
	IsActive      bool        `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Holding model.
func (Holding) TableName() string {
	return "holdings"
}

// CurrentValue is the market value of the position.
func (h *Holding) CurrentValue() float64 {
	return h.CurrentPrice * h.Quantity
}

// CostBasis is the total amount paid for the position.
func (h *Holding) CostBasis() float64 {
	return h.PurchasePrice * h.Quantity
}

// UnrealizedGain is the paper profit or loss on the position.
func (h *Holding) UnrealizedGain() float64 {
	return (h.CurrentPrice - h.PurchasePrice) * h.Quantity
}

// GainPercent is the percentage gain against the purchase price. A zero
// purchase price is a data error and yields 0 rather than a division blowup.
func (h *Holding) GainPercent() float64 {
	if h.PurchasePrice == 0 {
		return 0
	}
	return (h.CurrentPrice - h.PurchasePrice) / h.PurchasePrice * 100
}
