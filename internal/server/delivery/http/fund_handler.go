package http

import (
	"net/http"

	"golang-portfolio-tracker/internal/server/service"
	"golang-portfolio-tracker/pkg/logger"

	"github.com/labstack/echo/v4"
)

// FundHandler handles HTTP requests for fund-typed holdings.
type FundHandler struct {
	fundService service.FundService
	logger      *logger.Logger
}

// NewFundHandler creates a new FundHandler.
func NewFundHandler(fundService service.FundService, logger *logger.Logger) *FundHandler {
	return &FundHandler{fundService: fundService, logger: logger}
}

// RegisterRoutes registers the fund routes to the Echo group.
func (h *FundHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetFunds)
	g.GET("/search", h.SearchFunds)
	g.GET("/categories", h.GetCategories)
	g.GET("/performance", h.GetPerformance)
	g.GET("/:symbol/volatility", h.GetVolatility)
}

// GetFunds godoc
// @Summary Get all funds
// @Description Get every active fund holding with fund attributes
// @Tags funds
// @Produce  json
// @Success 200 {array} dto.FundResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /funds [get]
func (h *FundHandler) GetFunds(c echo.Context) error {
	funds, err := h.fundService.GetFunds(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get funds", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get funds"})
	}
	return c.JSON(http.StatusOK, funds)
}

// SearchFunds godoc
// @Summary Search funds
// @Description Search active funds by symbol or name
// @Tags funds
// @Produce  json
// @Param   q  query    string true    "Search query"
// @Success 200 {array} dto.FundResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /funds/search [get]
func (h *FundHandler) SearchFunds(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Query parameter q is required"})
	}

	funds, err := h.fundService.SearchFunds(c.Request().Context(), query)
	if err != nil {
		h.logger.Error("Failed to search funds", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to search funds"})
	}
	return c.JSON(http.StatusOK, funds)
}

// GetCategories godoc
// @Summary Get fund categories
// @Description Get active funds aggregated by sector
// @Tags funds
// @Produce  json
// @Success 200 {array} dto.FundCategory
// @Failure 500 {object} dto.ErrorResponse
// @Router /funds/categories [get]
func (h *FundHandler) GetCategories(c echo.Context) error {
	categories, err := h.fundService.GetCategories(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get fund categories", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get categories"})
	}
	return c.JSON(http.StatusOK, categories)
}

// GetPerformance godoc
// @Summary Get fund performance
// @Description Get active funds with their YTD, 1-year and 3-year returns
// @Tags funds
// @Produce  json
// @Success 200 {array} dto.FundPerformance
// @Failure 500 {object} dto.ErrorResponse
// @Router /funds/performance [get]
func (h *FundHandler) GetPerformance(c echo.Context) error {
	performance, err := h.fundService.GetPerformance(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get fund performance", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get performance"})
	}
	return c.JSON(http.StatusOK, performance)
}

// GetVolatility godoc
// @Summary Get fund volatility
// @Description Get the volatility figures for a fund; unknown symbols yield zeros
// @Tags funds
// @Produce  json
// @Param   symbol  path    string true    "Fund symbol"
// @Success 200 {object} dto.FundVolatility
// @Failure 500 {object} dto.ErrorResponse
// @Router /funds/{symbol}/volatility [get]
func (h *FundHandler) GetVolatility(c echo.Context) error {
	volatility, err := h.fundService.GetVolatility(c.Request().Context(), c.Param("symbol"))
	if err != nil {
		h.logger.Error("Failed to get fund volatility", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get volatility"})
	}
	return c.JSON(http.StatusOK, volatility)
}
