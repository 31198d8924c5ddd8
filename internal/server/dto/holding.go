package dto

import "time"

// CreateHoldingRequest defines the DTO for creating a new holding.
type CreateHoldingRequest struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Quantity      float64 `json:"quantity"`
	PurchasePrice float64 `json:"purchase_price"`
	PurchaseDate  string  `json:"purchase_date"`
	Sector        string  `json:"sector"`
	Notes         string  `json:"notes"`
}

// UpdateHoldingRequest defines the DTO for updating an existing holding.
type UpdateHoldingRequest struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Quantity      float64 `json:"quantity"`
	PurchasePrice float64 `json:"purchase_price"`
	PurchaseDate  string  `json:"purchase_date"`
	CurrentPrice  float64 `json:"current_price"`
	Sector        string  `json:"sector"`
	Notes         string  `json:"notes"`
}

// HoldingResponse is the DTO for API responses containing a holding and its
// derived valuation fields.
type HoldingResponse struct {
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
	UnrealizedGain float64   `json:"unrealized_gain"`
	GainPercent    float64   `json:"gain_percent"`
	CurrentValue   float64   `json:"current_value"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TopPerformer is one of the best positions in the portfolio summary.
type TopPerformer struct {
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	CurrentPrice float64 `json:"current_price"`
	GainPercent  float64 `json:"gain_percent"`
}

// PortfolioSummary aggregates the whole portfolio for the dashboard header.
type PortfolioSummary struct {
	TotalHoldings  int     `json:"total_holdings"`
	TotalValue     float64 `json:"total_value"`
	TotalGain      float64 `json:"total_gain"`
	AvgGainPercent float64 `json:"avg_gain_percent"`
}

// PortfolioSummaryResponse is the DTO for the holdings summary endpoint.
type PortfolioSummaryResponse struct {
	Summary       PortfolioSummary `json:"summary"`
	TopPerformers []TopPerformer   `json:"top_performers"`
}

// TradeRequest defines the DTO for executing a buy or sell.
type TradeRequest struct {
	Symbol   string  `json:"symbol"`
	Action   string  `json:"action"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
	Notes    string  `json:"notes"`
}

// PriceUpdateResult reports the outcome of a bulk price refresh.
type PriceUpdateResult struct {
	UpdatedCount int               `json:"updated_count"`
	FailedCount  int               `json:"failed_count"`
	Updates      []PriceUpdateItem `json:"updates"`
	Timestamp    time.Time         `json:"timestamp"`
}

// PriceUpdateItem is one symbol's price change within a refresh.
type PriceUpdateItem struct {
	Symbol        string  `json:"symbol"`
	OldPrice      float64 `json:"old_price"`
	NewPrice      float64 `json:"new_price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
}
