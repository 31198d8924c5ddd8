package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang-portfolio-tracker/internal/entity"
	"golang-portfolio-tracker/pkg/logger"
	"golang-portfolio-tracker/pkg/quotes"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestLogger() *logger.Logger {
	return &logger.Logger{Logger: zap.NewNop()}
}

// fakeHoldingRepo is an in-memory HoldingRepository.
type fakeHoldingRepo struct {
	holdings []entity.Holding
	nextID   uint
}

func newFakeHoldingRepo(holdings ...entity.Holding) *fakeHoldingRepo {
	repo := &fakeHoldingRepo{nextID: 1}
	for _, h := range holdings {
		h := h
		_ = repo.Create(context.Background(), &h)
	}
	return repo
}

func (r *fakeHoldingRepo) Create(ctx context.Context, holding *entity.Holding) error {
	if holding.ID == 0 {
		holding.ID = r.nextID
	}
	if holding.ID >= r.nextID {
		r.nextID = holding.ID + 1
	}
	r.holdings = append(r.holdings, *holding)
	return nil
}

func (r *fakeHoldingRepo) FindByID(ctx context.Context, id uint) (*entity.Holding, error) {
	for i := range r.holdings {
		if r.holdings[i].ID == id {
			h := r.holdings[i]
			return &h, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeHoldingRepo) FindAll(ctx context.Context) ([]entity.Holding, error) {
	return append([]entity.Holding(nil), r.holdings...), nil
}

func (r *fakeHoldingRepo) FindAllActive(ctx context.Context) ([]entity.Holding, error) {
	var out []entity.Holding
	for _, h := range r.holdings {
		if h.IsActive {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *fakeHoldingRepo) FindActiveByType(ctx context.Context, holdingType entity.HoldingType) ([]entity.Holding, error) {
	var out []entity.Holding
	for _, h := range r.holdings {
		if h.IsActive && h.Type == holdingType {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *fakeHoldingRepo) FindActiveBySymbolAndType(ctx context.Context, symbol string, holdingType entity.HoldingType) (*entity.Holding, error) {
	for i := range r.holdings {
		h := r.holdings[i]
		if h.IsActive && h.Symbol == symbol && h.Type == holdingType {
			return &h, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeHoldingRepo) SearchActiveByType(ctx context.Context, holdingType entity.HoldingType, query string) ([]entity.Holding, error) {
	q := strings.ToLower(query)
	var out []entity.Holding
	for _, h := range r.holdings {
		if !h.IsActive || h.Type != holdingType {
			continue
		}
		if strings.Contains(strings.ToLower(h.Symbol), q) || strings.Contains(strings.ToLower(h.Name), q) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *fakeHoldingRepo) Update(ctx context.Context, holding *entity.Holding) error {
	for i := range r.holdings {
		if r.holdings[i].ID == holding.ID {
			r.holdings[i] = *holding
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeHoldingRepo) UpdateCurrentPrice(ctx context.Context, symbol string, price float64) (int64, error) {
	var rows int64
	for i := range r.holdings {
		if r.holdings[i].Symbol == symbol {
			r.holdings[i].CurrentPrice = price
			rows++
		}
	}
	return rows, nil
}

func (r *fakeHoldingRepo) SoftDelete(ctx context.Context, id uint) error {
	for i := range r.holdings {
		if r.holdings[i].ID == id {
			r.holdings[i].IsActive = false
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// fakePriceRepo is an in-memory FundPriceRepository.
type fakePriceRepo struct {
	prices []entity.FundPrice
	nextID uint
}

func newFakePriceRepo() *fakePriceRepo {
	return &fakePriceRepo{nextID: 1}
}

func (r *fakePriceRepo) add(symbol, date string, price float64) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	_ = r.Create(context.Background(), &entity.FundPrice{Symbol: symbol, RecordDate: day, Price: price})
}

func (r *fakePriceRepo) Create(ctx context.Context, price *entity.FundPrice) error {
	for _, p := range r.prices {
		if p.Symbol == price.Symbol && p.RecordDate.Equal(price.RecordDate) {
			return nil
		}
	}
	price.ID = r.nextID
	r.nextID++
	r.prices = append(r.prices, *price)
	return nil
}

func (r *fakePriceRepo) LatestAtOrBefore(ctx context.Context, symbol string, date time.Time) (*entity.FundPrice, error) {
	var best *entity.FundPrice
	for i := range r.prices {
		p := r.prices[i]
		if p.Symbol != symbol || p.RecordDate.After(date) {
			continue
		}
		if best == nil || p.RecordDate.After(best.RecordDate) || (p.RecordDate.Equal(best.RecordDate) && p.ID > best.ID) {
			best = &r.prices[i]
		}
	}
	if best == nil {
		return nil, gorm.ErrRecordNotFound
	}
	out := *best
	return &out, nil
}

func (r *fakePriceRepo) EarliestAtOrAfter(ctx context.Context, symbol string, date time.Time) (*entity.FundPrice, error) {
	var best *entity.FundPrice
	for i := range r.prices {
		p := r.prices[i]
		if p.Symbol != symbol || p.RecordDate.Before(date) {
			continue
		}
		if best == nil || p.RecordDate.Before(best.RecordDate) {
			best = &r.prices[i]
		}
	}
	if best == nil {
		return nil, gorm.ErrRecordNotFound
	}
	out := *best
	return &out, nil
}

// fakeHistoryRepo is an in-memory PortfolioHistoryRepository.
type fakeHistoryRepo struct {
	points map[string]entity.PortfolioHistory
}

func newFakeHistoryRepo() *fakeHistoryRepo {
	return &fakeHistoryRepo{points: make(map[string]entity.PortfolioHistory)}
}

func (r *fakeHistoryRepo) Upsert(ctx context.Context, point *entity.PortfolioHistory) error {
	key := point.Date.Format("2006-01-02")
	if existing, ok := r.points[key]; ok {
		point.ID = existing.ID
	} else {
		point.ID = uint(len(r.points) + 1)
	}
	r.points[key] = *point
	return nil
}

func (r *fakeHistoryRepo) FindByDate(ctx context.Context, date time.Time) (*entity.PortfolioHistory, error) {
	point, ok := r.points[date.Format("2006-01-02")]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &point, nil
}

func (r *fakeHistoryRepo) FindRecent(ctx context.Context, limit int) ([]entity.PortfolioHistory, error) {
	all := make([]entity.PortfolioHistory, 0, len(r.points))
	for _, p := range r.points {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Date.Before(all[j].Date) })
	if len(all) > limit {
		all = all[len(all)-limit:]
	}
	return all, nil
}

// fakeQuoteProvider serves a fixed price table.
type fakeQuoteProvider struct {
	prices map[string]float64
}

func (p *fakeQuoteProvider) GetQuote(ctx context.Context, symbol string) (*quotes.Quote, error) {
	price, ok := p.prices[symbol]
	if !ok {
		return nil, fmt.Errorf("quote %q: %w", symbol, quotes.ErrSymbolNotFound)
	}
	return &quotes.Quote{Symbol: symbol, CurrentPrice: price, Currency: "USD"}, nil
}

func (p *fakeQuoteProvider) GetQuotes(ctx context.Context, symbols []string) ([]quotes.Quote, error) {
	var out []quotes.Quote
	for _, symbol := range symbols {
		if price, ok := p.prices[symbol]; ok {
			out = append(out, quotes.Quote{Symbol: symbol, CurrentPrice: price, Currency: "USD"})
		}
	}
	return out, nil
}
