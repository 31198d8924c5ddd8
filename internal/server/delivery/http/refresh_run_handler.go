package http

import (
	"net/http"

	"golang-portfolio-tracker/internal/server/service"
	"golang-portfolio-tracker/pkg/logger"

	"github.com/labstack/echo/v4"
)

// RefreshRunHandler handles HTTP requests for scheduled-run audit records.
type RefreshRunHandler struct {
	schedulerService service.SchedulerService
	logger           *logger.Logger
}

// NewRefreshRunHandler creates a new RefreshRunHandler.
func NewRefreshRunHandler(schedulerService service.SchedulerService, logger *logger.Logger) *RefreshRunHandler {
	return &RefreshRunHandler{schedulerService: schedulerService, logger: logger}
}

// RegisterRoutes registers the refresh run routes to the Echo group.
func (h *RefreshRunHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetRecentRuns)
	g.POST("/trigger", h.TriggerRun)
}

// GetRecentRuns godoc
// @Summary Get recent refresh runs
// @Description Get the latest scheduled-run audit records, newest first
// @Tags refresh-runs
// @Produce  json
// @Success 200 {array} entity.RefreshRun
// @Failure 500 {object} dto.ErrorResponse
// @Router /refresh-runs [get]
func (h *RefreshRunHandler) GetRecentRuns(c echo.Context) error {
	runs, err := h.schedulerService.RecentRuns(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get refresh runs", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get refresh runs"})
	}
	return c.JSON(http.StatusOK, runs)
}

// TriggerRun godoc
// @Summary Trigger a refresh run
// @Description Run the price update and history record jobs immediately
// @Tags refresh-runs
// @Produce  json
// @Success 200 {object} map[string]string
// @Failure 500 {object} dto.ErrorResponse
// @Router /refresh-runs/trigger [post]
func (h *RefreshRunHandler) TriggerRun(c echo.Context) error {
	if err := h.schedulerService.RunOnce(c.Request().Context()); err != nil {
		h.logger.Error("Manual refresh run failed", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Refresh run failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Refresh completed"})
}
