package quotes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// ErrSymbolNotFound is returned when a provider has no quote for a symbol.
var ErrSymbolNotFound = errors.New("symbol not found")

// HTTPConfig holds the settings for the HTTP quote provider.
type HTTPConfig struct {
	BaseURL             string
	MaxRequestPerMinute int
}

type httpProvider struct {
	cfg            HTTPConfig
	httpClient     *http.Client
	requestLimiter *rate.Limiter
}

// NewHTTPProvider creates a rate-limited provider backed by a quote API.
func NewHTTPProvider(cfg HTTPConfig) Provider {
	if cfg.MaxRequestPerMinute <= 0 {
		cfg.MaxRequestPerMinute = 60
	}
	secondsPerRequest := time.Minute / time.Duration(cfg.MaxRequestPerMinute)
	return &httpProvider{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
	}
}

// GetQuote fetches a single quote.
func (p *httpProvider) GetQuote(ctx context.Context, symbol string) (*Quote, error) {
	result, err := p.GetQuotes(ctx, []string{symbol})
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, ErrSymbolNotFound
	}
	return &result[0], nil
}

// GetQuotes fetches quotes for multiple symbols in one request. Symbols the
// upstream does not know are silently omitted from the result.
func (p *httpProvider) GetQuotes(ctx context.Context, symbols []string) ([]Quote, error) {
	if len(symbols) == 0 {
		return nil, nil
	}

	reqURL := fmt.Sprintf("%s/v1/quotes?symbols=%s",
		strings.TrimRight(p.cfg.BaseURL, "/"),
		url.QueryEscape(strings.Join(symbols, ",")))

	body, err := p.sendRequest(ctx, http.MethodGet, reqURL)
	if err != nil {
		return nil, err
	}

	var response struct {
		Quotes []Quote `json:"quotes"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to decode quote response: %w", err)
	}
	return response.Quotes, nil
}

func (p *httpProvider) sendRequest(ctx context.Context, method, reqURL string) ([]byte, error) {
	if err := p.requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote API returned status %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
