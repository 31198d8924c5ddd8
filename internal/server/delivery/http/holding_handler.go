package http

import (
	"net/http"
	"strconv"

	"golang-portfolio-tracker/internal/server/dto"
	"golang-portfolio-tracker/internal/server/service"
	"golang-portfolio-tracker/pkg/logger"

	"github.com/labstack/echo/v4"
)

// HoldingHandler handles HTTP requests for holdings.
type HoldingHandler struct {
	holdingService service.HoldingService
	historyService service.HistoryService
	logger         *logger.Logger
}

// NewHoldingHandler creates a new HoldingHandler.
func NewHoldingHandler(holdingService service.HoldingService, historyService service.HistoryService, logger *logger.Logger) *HoldingHandler {
	return &HoldingHandler{holdingService: holdingService, historyService: historyService, logger: logger}
}

// RegisterRoutes registers the holding routes to the Echo group.
func (h *HoldingHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetAllHoldings)
	g.POST("", h.CreateHolding)
	g.GET("/summary", h.GetSummary)
	g.GET("/historical", h.GetHistorical)
	g.POST("/update-prices", h.UpdatePrices)
	g.POST("/trade", h.ExecuteTrade)
	g.GET("/:id", h.GetHoldingByID)
	g.PUT("/:id", h.UpdateHolding)
	g.DELETE("/:id", h.DeleteHolding)
}

// GetAllHoldings godoc
// @Summary Get all holdings
// @Description Get every holding with derived valuation fields
// @Tags holdings
// @Produce  json
// @Success 200 {array} dto.HoldingResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /holdings [get]
func (h *HoldingHandler) GetAllHoldings(c echo.Context) error {
	holdings, err := h.holdingService.GetAllHoldings(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get all holdings", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get holdings"})
	}
	return c.JSON(http.StatusOK, holdings)
}

// GetHoldingByID godoc
// @Summary Get a holding by ID
// @Description Get a single holding by its ID
// @Tags holdings
// @Produce  json
// @Param   id  path    int true    "Holding ID"
// @Success 200 {object} dto.HoldingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /holdings/{id} [get]
func (h *HoldingHandler) GetHoldingByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid holding ID"})
	}

	holding, err := h.holdingService.GetHoldingByID(c.Request().Context(), uint(id))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, holding)
}

// CreateHolding godoc
// @Summary Create a new holding
// @Description Create a new holding; the current price is fetched from the quote provider
// @Tags holdings
// @Accept  json
// @Produce  json
// @Param   holding  body    dto.CreateHoldingRequest   true    "Holding to create"
// @Success 201 {object} dto.HoldingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /holdings [post]
func (h *HoldingHandler) CreateHolding(c echo.Context) error {
	var req dto.CreateHoldingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	holding, err := h.holdingService.CreateHolding(c.Request().Context(), &req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, holding)
}

// UpdateHolding godoc
// @Summary Update an existing holding
// @Description Update an existing holding with the given details
// @Tags holdings
// @Accept  json
// @Produce  json
// @Param   id  path    int true    "Holding ID"
// @Param   holding  body    dto.UpdateHoldingRequest   true    "Holding to update"
// @Success 200 {object} dto.HoldingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /holdings/{id} [put]
func (h *HoldingHandler) UpdateHolding(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid holding ID"})
	}

	var req dto.UpdateHoldingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	holding, err := h.holdingService.UpdateHolding(c.Request().Context(), uint(id), &req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, holding)
}

// DeleteHolding godoc
// @Summary Delete a holding
// @Description Soft-delete a holding by its ID
// @Tags holdings
// @Produce  json
// @Param   id  path    int true    "Holding ID"
// @Success 204 {object} nil
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /holdings/{id} [delete]
func (h *HoldingHandler) DeleteHolding(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid holding ID"})
	}

	if err := h.holdingService.DeleteHolding(c.Request().Context(), uint(id)); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetSummary godoc
// @Summary Get the portfolio summary
// @Description Get the aggregate summary and the top performing positions
// @Tags holdings
// @Produce  json
// @Success 200 {object} dto.PortfolioSummaryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /holdings/summary [get]
func (h *HoldingHandler) GetSummary(c echo.Context) error {
	summary, err := h.holdingService.GetPortfolioSummary(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get portfolio summary", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get summary"})
	}
	return c.JSON(http.StatusOK, summary)
}

// GetHistorical godoc
// @Summary Get recent portfolio history
// @Description Get the last recorded daily valuations, oldest first
// @Tags holdings
// @Produce  json
// @Param   days  query    int false    "Number of days"  default(7)
// @Success 200 {array} dto.HistoryPointResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /holdings/historical [get]
func (h *HoldingHandler) GetHistorical(c echo.Context) error {
	days := 7
	if raw := c.QueryParam("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid days parameter"})
		}
		days = parsed
	}

	history, err := h.historyService.RecentHistory(c.Request().Context(), days)
	if err != nil {
		h.logger.Error("Failed to get historical valuations", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get history"})
	}
	return c.JSON(http.StatusOK, history)
}

// UpdatePrices godoc
// @Summary Refresh current prices
// @Description Fetch fresh quotes for every active symbol and update current prices
// @Tags holdings
// @Produce  json
// @Success 200 {object} dto.PriceUpdateResult
// @Failure 500 {object} dto.ErrorResponse
// @Router /holdings/update-prices [post]
func (h *HoldingHandler) UpdatePrices(c echo.Context) error {
	result, err := h.holdingService.UpdateCurrentPrices(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to update prices", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update prices"})
	}
	return c.JSON(http.StatusOK, result)
}

// ExecuteTrade godoc
// @Summary Execute a trade
// @Description Buy into or sell out of a fund position
// @Tags holdings
// @Accept  json
// @Produce  json
// @Param   trade  body    dto.TradeRequest   true    "Trade to execute"
// @Success 200 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /holdings/trade [post]
func (h *HoldingHandler) ExecuteTrade(c echo.Context) error {
	var req dto.TradeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	if err := h.holdingService.ExecuteTrade(c.Request().Context(), &req); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Trade executed successfully"})
}
