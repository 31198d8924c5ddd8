package dto

import "time"

// CreateBondRequest defines the DTO for purchasing a bond. It creates both
// the holding row and the bond row.
type CreateBondRequest struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	BondType      string  `json:"bond_type"`
	CouponRate    float64 `json:"coupon_rate"`
	MaturityDate  string  `json:"maturity_date"`
	FaceValue     float64 `json:"face_value"`
	CurrentYield  float64 `json:"current_yield"`
	CreditRating  string  `json:"credit_rating"`
	Issuer        string  `json:"issuer"`
	Quantity      float64 `json:"quantity"`
	PurchasePrice float64 `json:"purchase_price"`
	PurchaseDate  string  `json:"purchase_date"`
	CurrentPrice  float64 `json:"current_price"`
	Sector        string  `json:"sector"`
	Notes         string  `json:"notes"`
}

// UpdateBondRequest defines the DTO for updating an existing bond.
type UpdateBondRequest struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	BondType      string  `json:"bond_type"`
	CouponRate    float64 `json:"coupon_rate"`
	MaturityDate  string  `json:"maturity_date"`
	FaceValue     float64 `json:"face_value"`
	CurrentYield  float64 `json:"current_yield"`
	CreditRating  string  `json:"credit_rating"`
	Issuer        string  `json:"issuer"`
	Quantity      float64 `json:"quantity"`
	PurchasePrice float64 `json:"purchase_price"`
	PurchaseDate  string  `json:"purchase_date"`
	CurrentPrice  float64 `json:"current_price"`
	Sector        string  `json:"sector"`
	Notes         string  `json:"notes"`
}

// BondResponse joins bond attributes with the backing holding position.
type BondResponse struct {
	ID            uint      `json:"id"`
	HoldingID     uint      `json:"holding_id"`
	Symbol        string    `json:"symbol"`
	Name          string    `json:"name"`
	BondType      string    `json:"bond_type"`
	CouponRate    float64   `json:"coupon_rate"`
	MaturityDate  time.Time `json:"maturity_date"`
	FaceValue     float64   `json:"face_value"`
	CurrentYield  float64   `json:"current_yield"`
	CreditRating  string    `json:"credit_rating"`
	Issuer        string    `json:"issuer"`
	Quantity      float64   `json:"quantity"`
	PurchasePrice float64   `json:"purchase_price"`
	PurchaseDate  time.Time `json:"purchase_date"`
	CurrentPrice  float64   `json:"current_price"`
	Sector        string    `json:"sector"`
	Notes         string    `json:"notes"`
}

// BondStats aggregates bond positions per bond type.
type BondStats struct {
	BondType           string  `json:"bond_type"`
	Count              int     `json:"count"`
	AvgCouponRate      float64 `json:"avg_coupon_rate"`
	AvgCurrentYield    float64 `json:"avg_current_yield"`
	AvgYearsToMaturity float64 `json:"avg_years_to_maturity"`
	TotalValue         float64 `json:"total_value"`
}
