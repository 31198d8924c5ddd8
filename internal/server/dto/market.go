package dto

// QuotesRequest defines the DTO for fetching multiple quotes at once.
type QuotesRequest struct {
	Symbols []string `json:"symbols"`
}

// QuoteResponse is a single market quote.
type QuoteResponse struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	CurrentPrice  float64 `json:"current_price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
	Volume        int64   `json:"volume"`
	Currency      string  `json:"currency"`
}
