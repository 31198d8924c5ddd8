package dto

import "time"

// AllocationItem is one asset-type group's share of the portfolio.
type AllocationItem struct {
	Type       string  `json:"type"`
	Count      int     `json:"count"`
	TotalValue float64 `json:"total_value"`
	Percentage float64 `json:"percentage"`
}

// SectorItem is one sector group's share of the portfolio.
type SectorItem struct {
	Sector     string  `json:"sector"`
	Count      int     `json:"count"`
	TotalValue float64 `json:"total_value"`
	Percentage float64 `json:"percentage"`
}

// PerformanceSummary is the single aggregate valuation row.
type PerformanceSummary struct {
	CurrentValue    float64 `json:"current_value"`
	TotalCost       float64 `json:"total_cost"`
	TotalGainLoss   float64 `json:"total_gain_loss"`
	GainLossPercent float64 `json:"gain_loss_percent"`
}

// RealtimeMetrics carries the approximate performance indicators. CAGR,
// Sharpe and max drawdown are expressed as fractions, not percentages.
type RealtimeMetrics struct {
	CAGR            float64 `json:"cagr"`
	SharpeRatio     float64 `json:"sharpe_ratio"`
	MaxDrawdown     float64 `json:"max_drawdown"`
	TotalValue      float64 `json:"total_value"`
	TotalCost       float64 `json:"total_cost"`
	TotalGainLoss   float64 `json:"total_gain_loss"`
	GainLossPercent float64 `json:"gain_loss_percent"`
}

// HoldingReturns holds the fixed-window percentage returns for one symbol.
type HoldingReturns struct {
	Ytd      float64 `json:"ytd"`
	Return3M float64 `json:"return_3m"`
	Return6M float64 `json:"return_6m"`
	Return1Y float64 `json:"return_1y"`
	Return3Y float64 `json:"return_3y"`
}

// HistoryPointResponse is one recorded day of portfolio valuation.
type HistoryPointResponse struct {
	Date            time.Time `json:"date"`
	TotalValue      float64   `json:"total_value"`
	DailyChange     float64   `json:"daily_change"`
	TotalCost       float64   `json:"total_cost"`
	TotalGainLoss   float64   `json:"total_gain_loss"`
	GainLossPercent float64   `json:"gain_loss_percent"`
}
