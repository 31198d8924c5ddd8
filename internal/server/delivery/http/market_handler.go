package http

import (
	"net/http"

	"golang-portfolio-tracker/internal/server/dto"
	"golang-portfolio-tracker/internal/server/service"
	"golang-portfolio-tracker/pkg/logger"

	"github.com/labstack/echo/v4"
)

// MarketHandler handles HTTP requests for market quotes.
type MarketHandler struct {
	marketService service.MarketService
	logger        *logger.Logger
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(marketService service.MarketService, logger *logger.Logger) *MarketHandler {
	return &MarketHandler{marketService: marketService, logger: logger}
}

// RegisterRoutes registers the market routes to the Echo group.
func (h *MarketHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/quote/:symbol", h.GetQuote)
	g.POST("/quotes", h.GetQuotes)
	g.GET("/trending", h.GetTrending)
}

// GetQuote godoc
// @Summary Get a quote
// @Description Get the current market quote for a symbol
// @Tags market
// @Produce  json
// @Param   symbol  path    string true    "Symbol"
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /market/quote/{symbol} [get]
func (h *MarketHandler) GetQuote(c echo.Context) error {
	quote, err := h.marketService.GetQuote(c.Request().Context(), c.Param("symbol"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, quote)
}

// GetQuotes godoc
// @Summary Get multiple quotes
// @Description Get current market quotes for a batch of symbols
// @Tags market
// @Accept  json
// @Produce  json
// @Param   symbols  body    dto.QuotesRequest   true    "Symbols to quote"
// @Success 200 {array} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /market/quotes [post]
func (h *MarketHandler) GetQuotes(c echo.Context) error {
	var req dto.QuotesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	quotes, err := h.marketService.GetQuotes(c.Request().Context(), req.Symbols)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, quotes)
}

// GetTrending godoc
// @Summary Get trending quotes
// @Description Get quotes for the fixed watchlist, biggest movers first
// @Tags market
// @Produce  json
// @Success 200 {array} dto.QuoteResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /market/trending [get]
func (h *MarketHandler) GetTrending(c echo.Context) error {
	trending, err := h.marketService.GetTrending(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get trending quotes", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get trending quotes"})
	}
	return c.JSON(http.StatusOK, trending)
}
