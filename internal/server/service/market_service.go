package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"golang-portfolio-tracker/internal/server/dto"
	"golang-portfolio-tracker/pkg/common"
	"golang-portfolio-tracker/pkg/logger"
	"golang-portfolio-tracker/pkg/quotes"
	"golang-portfolio-tracker/pkg/redis"

	gocache "github.com/patrickmn/go-cache"
)

const defaultQuoteCacheTTL = time.Minute

// trendingSymbols is the fixed watchlist served by the trending endpoint.
var trendingSymbols = []string{"VTSAX", "FXAIX", "SWPPX", "QQQ", "VGT", "VNQ", "VTIAX", "FSKAX"}

// MarketService serves market quotes. Quotes are cached in-process for a
// short TTL to shield the upstream provider, and the latest price of each
// symbol is mirrored into redis for other consumers.
type MarketService interface {
	GetQuote(ctx context.Context, symbol string) (*dto.QuoteResponse, error)
	GetQuotes(ctx context.Context, symbols []string) ([]dto.QuoteResponse, error)
	GetTrending(ctx context.Context) ([]dto.QuoteResponse, error)
}

// NewMarketService creates a new market service. cacheTTL is parsed as a
// duration string; an empty or invalid value falls back to one minute.
func NewMarketService(provider quotes.Provider, redisClient *redis.Client, cacheTTL string, logger *logger.Logger) MarketService {
	ttl, err := time.ParseDuration(cacheTTL)
	if err != nil || ttl <= 0 {
		ttl = defaultQuoteCacheTTL
	}
	return &marketService{
		provider: provider,
		redis:    redisClient,
		cache:    gocache.New(ttl, 2*ttl),
		logger:   logger,
	}
}

type marketService struct {
	provider quotes.Provider
	redis    *redis.Client
	cache    *gocache.Cache
	logger   *logger.Logger
}

// GetQuote fetches a single quote, serving from the cache when possible.
func (s *marketService) GetQuote(ctx context.Context, symbol string) (*dto.QuoteResponse, error) {
	if cached, found := s.cache.Get(symbol); found {
		quote := cached.(quotes.Quote)
		resp := mapQuote(&quote)
		return &resp, nil
	}

	quote, err := s.provider.GetQuote(ctx, symbol)
	if err != nil {
		if errors.Is(err, quotes.ErrSymbolNotFound) {
			return nil, fmt.Errorf("%w: symbol %s", ErrNotFound, symbol)
		}
		s.logger.Error("Failed to fetch quote", logger.ErrorField(err), logger.Field("symbol", symbol))
		return nil, err
	}

	s.cache.Set(symbol, *quote, gocache.DefaultExpiration)
	s.mirrorLastPrice(ctx, quote)
	resp := mapQuote(quote)
	return &resp, nil
}

// GetQuotes fetches quotes for multiple symbols. Symbols already cached are
// served locally and only cache misses hit the provider. Unknown symbols are
// skipped, matching the provider behavior.
func (s *marketService) GetQuotes(ctx context.Context, symbols []string) ([]dto.QuoteResponse, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("%w: symbols is required", ErrInvalidInput)
	}

	responses := make([]dto.QuoteResponse, 0, len(symbols))
	var misses []string
	for _, symbol := range symbols {
		if cached, found := s.cache.Get(symbol); found {
			quote := cached.(quotes.Quote)
			responses = append(responses, mapQuote(&quote))
			continue
		}
		misses = append(misses, symbol)
	}

	if len(misses) > 0 {
		fetched, err := s.provider.GetQuotes(ctx, misses)
		if err != nil {
			s.logger.Error("Failed to fetch quotes", logger.ErrorField(err), logger.Field("symbols", misses))
			return nil, err
		}
		for i := range fetched {
			quote := fetched[i]
			s.cache.Set(quote.Symbol, quote, gocache.DefaultExpiration)
			s.mirrorLastPrice(ctx, &quote)
			responses = append(responses, mapQuote(&quote))
		}
	}
	return responses, nil
}

// GetTrending returns quotes for a fixed watchlist, biggest movers first.
func (s *marketService) GetTrending(ctx context.Context) ([]dto.QuoteResponse, error) {
	responses, err := s.GetQuotes(ctx, trendingSymbols)
	if err != nil {
		return nil, err
	}
	sort.Slice(responses, func(i, j int) bool {
		return responses[i].ChangePercent > responses[j].ChangePercent
	})
	return responses, nil
}

// mirrorLastPrice writes the latest price into redis. Failures are logged
// and swallowed; the mirror is advisory.
func (s *marketService) mirrorLastPrice(ctx context.Context, quote *quotes.Quote) {
	if s.redis == nil {
		return
	}
	key := fmt.Sprintf(common.RedisKeyLastPrice, quote.Symbol)
	value := strconv.FormatFloat(quote.CurrentPrice, 'f', -1, 64)
	if err := s.redis.Client.Set(ctx, key, value, 24*time.Hour).Err(); err != nil {
		s.logger.Warn("Failed to mirror last price to redis",
			logger.ErrorField(err),
			logger.Field("symbol", quote.Symbol))
	}
}

func mapQuote(q *quotes.Quote) dto.QuoteResponse {
	return dto.QuoteResponse{
		Symbol:        q.Symbol,
		Name:          q.Name,
		CurrentPrice:  q.CurrentPrice,
		Change:        q.Change,
		ChangePercent: q.ChangePercent,
		Volume:        q.Volume,
		Currency:      q.Currency,
	}
}
