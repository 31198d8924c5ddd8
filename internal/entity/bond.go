package entity

import (
	"database/sql"
	"time"
)

// Bond carries the fixed-income attributes of a bond position. The position
// itself (quantity, prices, dates) lives on the joined Holding row.
type Bond struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	HoldingID    uint            `gorm:"not null;index" json:"holding_id"`
	Symbol       string          `gorm:"type:varchar(10);not null" json:"symbol"`
	Name         string          `gorm:"type:varchar(255);not null" json:"name"`
	BondType     string          `gorm:"type:varchar(50);not null" json:"bond_type"`
	CouponRate   float64         `gorm:"not null" json:"coupon_rate"`
	MaturityDate time.Time       `gorm:"type:date;not null" json:"maturity_date"`
	FaceValue    float64         `gorm:"not null" json:"face_value"`
	CurrentYield float64         `json:"current_yield"`
	CreditRating string          `gorm:"type:varchar(10)" json:"credit_rating"`
	Issuer       string          `gorm:"type:varchar(255)" json:"issuer"`
	Callable     bool            `gorm:"not null;default:false" json:"callable"`
	CallDate     sql.NullTime    `gorm:"type:date" json:"call_date" swaggertype:"string" format:"date"`
	CallPrice    sql.NullFloat64 `json:"call_price" swaggertype:"number"`
	IsActive     bool            `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Bond model.
func (Bond) TableName() string {
	return "bonds"
}
