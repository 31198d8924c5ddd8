// Package quotes fetches market quotes for the tracker. Two providers exist:
// an HTTP provider for a real quote API and a synthetic provider that serves
// deterministic demo prices for offline use.
package quotes

import "context"

// Quote is a single market quote for a symbol.
type Quote struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	CurrentPrice  float64 `json:"current_price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
	Volume        int64   `json:"volume"`
	Currency      string  `json:"currency"`
}

// Provider fetches quotes for symbols. GetQuote returns ErrSymbolNotFound
// for symbols the provider does not know.
type Provider interface {
	GetQuote(ctx context.Context, symbol string) (*Quote, error)
	GetQuotes(ctx context.Context, symbols []string) ([]Quote, error)
}
