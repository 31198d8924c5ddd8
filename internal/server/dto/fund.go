package dto

import "time"

// FundResponse is a fund-typed holding enriched with fund attributes. The
// expense ratio and volatility figures are synthetic demo values, not
// market data.
type FundResponse struct {
	ID             uint      `json:"id"`
	Symbol         string    `json:"symbol"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	Quantity       float64   `json:"quantity"`
	PurchasePrice  float64   `json:"purchase_price"`
	PurchaseDate   time.Time `json:"purchase_date"`
	CurrentPrice   float64   `json:"current_price"`
	Sector         string    `json:"sector"`
	Notes          string    `json:"notes"`
	IsActive       bool      `json:"is_active"`
	FundType       string    `json:"fund_type"`
	ExpenseRatio   float64   `json:"expense_ratio"`
	UnrealizedGain float64   `json:"unrealized_gain"`
	GainPercent    float64   `json:"gain_percent"`
	CurrentValue   float64   `json:"current_value"`
}

// FundCategory aggregates fund holdings by sector.
type FundCategory struct {
	Type         string  `json:"type"`
	Count        int     `json:"count"`
	Value        float64 `json:"value"`
	ExpenseRatio float64 `json:"expense_ratio"`
	Percentage   float64 `json:"percentage"`
}

// FundPerformance is one fund's valuation plus its historical returns.
type FundPerformance struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Sector        string  `json:"sector"`
	Quantity      float64 `json:"quantity"`
	CurrentPrice  float64 `json:"current_price"`
	PurchasePrice float64 `json:"purchase_price"`
	CurrentValue  float64 `json:"current_value"`
	ExpenseRatio  float64 `json:"expense_ratio"`
	Ytd           float64 `json:"ytd"`
	Return1Y      float64 `json:"return_1y"`
	Return3Y      float64 `json:"return_3y"`
}

// FundVolatility carries the synthetic volatility figures for one fund.
type FundVolatility struct {
	Volatility3Y float64 `json:"volatility_3y"`
	Volatility1Y float64 `json:"volatility_1y"`
	Volatility6M float64 `json:"volatility_6m"`
	Volatility3M float64 `json:"volatility_3m"`
}
