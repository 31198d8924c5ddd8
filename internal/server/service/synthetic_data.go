package service

import (
	"math/rand"

	"golang-portfolio-tracker/internal/server/dto"
	"golang-portfolio-tracker/pkg/quotes"
	"golang-portfolio-tracker/pkg/utils"
)

// SyntheticDataGenerator produces the demo-only fund attributes (expense
// ratio, fund type, volatility) that the real system never computed; the
// data source carried them as hard-coded placeholder columns. Values are
// deterministic per symbol so the UI stays stable across restarts, but they
// are NOT financial computations and must never be treated as market data.
type SyntheticDataGenerator struct{}

// NewSyntheticDataGenerator creates a new generator.
func NewSyntheticDataGenerator() *SyntheticDataGenerator {
	return &SyntheticDataGenerator{}
}

var syntheticFundTypes = []string{"index", "active", "etf", "bond", "money_market"}

// FundType returns a stable demo fund type classification for a symbol.
func (g *SyntheticDataGenerator) FundType(symbol string) string {
	rng := rand.New(rand.NewSource(quotes.SymbolSeed(symbol)))
	return syntheticFundTypes[rng.Intn(len(syntheticFundTypes))]
}

// ExpenseRatio returns a stable demo expense ratio between 0.03% and 0.95%.
func (g *SyntheticDataGenerator) ExpenseRatio(symbol string) float64 {
	rng := rand.New(rand.NewSource(quotes.SymbolSeed(symbol) + 1))
	return utils.Round2(0.03 + rng.Float64()*0.92)
}

// Volatility returns stable demo volatility figures per window. Longer
// windows get higher values, mirroring the placeholder table the original
// data source shipped (12/10/8/5).
func (g *SyntheticDataGenerator) Volatility(symbol string) dto.FundVolatility {
	rng := rand.New(rand.NewSource(quotes.SymbolSeed(symbol) + 2))
	base := 4 + rng.Float64()*4
	return dto.FundVolatility{
		Volatility3Y: utils.Round2(base * 2.4),
		Volatility1Y: utils.Round2(base * 2.0),
		Volatility6M: utils.Round2(base * 1.6),
		Volatility3M: utils.Round2(base),
	}
}
