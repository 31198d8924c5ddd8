package http

import (
	"net/http"

	"golang-portfolio-tracker/internal/server/service"
	"golang-portfolio-tracker/pkg/logger"

	"github.com/labstack/echo/v4"
)

// PortfolioHandler handles HTTP requests for portfolio-level aggregations.
type PortfolioHandler struct {
	portfolioService service.PortfolioService
	historyService   service.HistoryService
	logger           *logger.Logger
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioService service.PortfolioService, historyService service.HistoryService, logger *logger.Logger) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService, historyService: historyService, logger: logger}
}

// RegisterRoutes registers the portfolio routes to the Echo group.
func (h *PortfolioHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/allocation", h.GetAllocation)
	g.GET("/sector-allocation", h.GetSectorAllocation)
	g.GET("/performance", h.GetPerformance)
	g.GET("/metrics", h.GetMetrics)
	g.POST("/history/record", h.RecordHistory)
}

// GetAllocation godoc
// @Summary Get allocation by asset type
// @Description Get the portfolio value grouped by asset type
// @Tags portfolio
// @Produce  json
// @Success 200 {array} dto.AllocationItem
// @Failure 500 {object} dto.ErrorResponse
// @Router /portfolio/allocation [get]
func (h *PortfolioHandler) GetAllocation(c echo.Context) error {
	allocation, err := h.portfolioService.AllocationByType(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get allocation", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get allocation"})
	}
	return c.JSON(http.StatusOK, allocation)
}

// GetSectorAllocation godoc
// @Summary Get allocation by sector
// @Description Get the portfolio value grouped by sector
// @Tags portfolio
// @Produce  json
// @Success 200 {array} dto.SectorItem
// @Failure 500 {object} dto.ErrorResponse
// @Router /portfolio/sector-allocation [get]
func (h *PortfolioHandler) GetSectorAllocation(c echo.Context) error {
	sectors, err := h.portfolioService.AllocationBySector(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get sector allocation", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get sector allocation"})
	}
	return c.JSON(http.StatusOK, sectors)
}

// GetPerformance godoc
// @Summary Get the aggregate performance summary
// @Description Get the portfolio's total value, cost and gain
// @Tags portfolio
// @Produce  json
// @Success 200 {object} dto.PerformanceSummary
// @Failure 500 {object} dto.ErrorResponse
// @Router /portfolio/performance [get]
func (h *PortfolioHandler) GetPerformance(c echo.Context) error {
	summary, err := h.portfolioService.PerformanceSummary(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get performance summary", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get performance"})
	}
	return c.JSON(http.StatusOK, summary)
}

// GetMetrics godoc
// @Summary Get approximate performance metrics
// @Description Get CAGR, Sharpe ratio and max drawdown estimates for the portfolio
// @Tags portfolio
// @Produce  json
// @Success 200 {object} dto.RealtimeMetrics
// @Failure 500 {object} dto.ErrorResponse
// @Router /portfolio/metrics [get]
func (h *PortfolioHandler) GetMetrics(c echo.Context) error {
	metrics, err := h.portfolioService.RealtimeMetrics(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get realtime metrics", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get metrics"})
	}
	return c.JSON(http.StatusOK, metrics)
}

// RecordHistory godoc
// @Summary Record today's valuation
// @Description Record or overwrite the portfolio history point for today
// @Tags portfolio
// @Produce  json
// @Success 200 {object} map[string]string
// @Failure 500 {object} dto.ErrorResponse
// @Router /portfolio/history/record [post]
func (h *PortfolioHandler) RecordHistory(c echo.Context) error {
	if err := h.historyService.RecordTodaysHistory(c.Request().Context()); err != nil {
		h.logger.Error("Failed to record history", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to record history"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "History recorded"})
}
