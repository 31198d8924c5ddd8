package entity

import "time"

// FundPrice is one historical price observation for a symbol on a trading
// day. Rows are append-only: the refresh job inserts, nothing updates them.
// (symbol, record_date) is unique; should duplicates ever sneak in, lookups
// break ties on the highest id.
type FundPrice struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Symbol     string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_fund_prices_symbol_date" json:"symbol"`
	RecordDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_fund_prices_symbol_date" json:"record_date"`
	Price      float64   `gorm:"not null" json:"price"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the FundPrice model.
func (FundPrice) TableName() string {
	return "fund_prices"
}
