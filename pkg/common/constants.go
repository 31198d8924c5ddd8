package common

const (
	RedisKeyLastPrice = "portfolio:last_price:%s"

	QuoteProviderHTTP      = "http"
	QuoteProviderSynthetic = "synthetic"
)
