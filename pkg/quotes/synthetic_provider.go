package quotes

import (
	"context"
	"hash/fnv"
	"math"
	"math/rand"
	"sync"
	"time"
)

// syntheticBase holds the reference price and daily change for a known demo
// symbol. These are fixtures, not market data.
type syntheticBase struct {
	name   string
	price  float64
	change float64
}

var syntheticUniverse = map[string]syntheticBase{
	"VTSAX": {"Vanguard Total Stock Market Index Fund", 92.45, 0.85},
	"FXAIX": {"Fidelity 500 Index Fund", 89.30, 0.72},
	"AGTHX": {"American Funds Growth Fund of America", 52.80, 0.45},
	"VTIAX": {"Vanguard Total International Stock Index Fund", 35.20, -0.15},
	"VBMFX": {"Vanguard Total Bond Market Index Fund", 11.25, 0.03},
	"VGT":   {"Vanguard Information Technology ETF", 245.30, 2.15},
	"VNQ":   {"Vanguard Real Estate ETF", 85.60, -0.40},
	"VHT":   {"Vanguard Health Care ETF", 245.80, 1.20},
	"VEMAX": {"Vanguard Emerging Markets Stock Index Fund", 28.75, -0.25},
	"FSKAX": {"Fidelity Total Market Index Fund", 95.60, 0.80},
	"SWPPX": {"Schwab S&P 500 Index Fund", 58.90, 0.45},
	"PRGFX": {"T. Rowe Price Growth Stock Fund", 67.20, 0.60},
	"FSPSX": {"Fidelity International Index Fund", 42.15, -0.20},
	"VBISX": {"Vanguard Short-Term Bond Index Fund", 10.85, 0.02},
	"QQQ":   {"Invesco QQQ Trust", 385.20, 3.45},
	"VMFXX": {"Vanguard Federal Money Market Fund", 1.00, 0.00},
	"DBC":   {"Invesco DB Commodity Index Tracking Fund", 22.45, 0.15},
}

// SyntheticProvider serves generated demo quotes: a fixed base price per
// known symbol with a small pseudo-random walk on top. It exists so the
// service can run without a quote API; nothing it returns is a real market
// observation.
type SyntheticProvider struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSyntheticProvider creates a synthetic provider.
func NewSyntheticProvider() *SyntheticProvider {
	return &SyntheticProvider{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// GetQuote returns a demo quote for a known symbol.
func (p *SyntheticProvider) GetQuote(_ context.Context, symbol string) (*Quote, error) {
	base, ok := syntheticUniverse[symbol]
	if !ok {
		return nil, ErrSymbolNotFound
	}

	p.mu.Lock()
	jitter := 0.995 + p.rng.Float64()*0.01 // within half a percent of base
	volume := 500000 + p.rng.Int63n(1000000)
	p.mu.Unlock()

	price := round2(base.price * jitter)
	change := round2(price - base.price + base.change)
	changePercent := round2(change / base.price * 100)

	return &Quote{
		Symbol:        symbol,
		Name:          base.name,
		CurrentPrice:  price,
		Change:        change,
		ChangePercent: changePercent,
		Volume:        volume,
		Currency:      "USD",
	}, nil
}

// GetQuotes returns demo quotes for the known subset of the given symbols.
func (p *SyntheticProvider) GetQuotes(ctx context.Context, symbols []string) ([]Quote, error) {
	quotes := make([]Quote, 0, len(symbols))
	for _, symbol := range symbols {
		quote, err := p.GetQuote(ctx, symbol)
		if err != nil {
			continue
		}
		quotes = append(quotes, *quote)
	}
	return quotes, nil
}

// Seed reseeds the generator; tests use it to make quotes reproducible.
func (p *SyntheticProvider) Seed(seed int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rng = rand.New(rand.NewSource(seed))
}

// SymbolSeed derives a stable per-symbol seed; the synthetic metrics
// generator shares it so demo values stay consistent across restarts.
func SymbolSeed(symbol string) int64 {
	h := fnv.New64a()
	h.Write([]byte(symbol))
	return int64(h.Sum64() & math.MaxInt64)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
