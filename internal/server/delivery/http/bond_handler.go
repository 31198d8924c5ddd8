package http

import (
	"net/http"
	"strconv"

	"golang-portfolio-tracker/internal/server/dto"
	"golang-portfolio-tracker/internal/server/service"
	"golang-portfolio-tracker/pkg/logger"

	"github.com/labstack/echo/v4"
)

// BondHandler handles HTTP requests for bonds.
type BondHandler struct {
	bondService service.BondService
	logger      *logger.Logger
}

// NewBondHandler creates a new BondHandler.
func NewBondHandler(bondService service.BondService, logger *logger.Logger) *BondHandler {
	return &BondHandler{bondService: bondService, logger: logger}
}

// RegisterRoutes registers the bond routes to the Echo group.
func (h *BondHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetAllBonds)
	g.POST("", h.CreateBond)
	g.GET("/stats", h.GetStats)
	g.GET("/:id", h.GetBondByID)
	g.PUT("/:id", h.UpdateBond)
	g.DELETE("/:id", h.DeleteBond)
}

// GetAllBonds godoc
// @Summary Get all bonds
// @Description Get every active bond with its holding position
// @Tags bonds
// @Produce  json
// @Success 200 {array} dto.BondResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bonds [get]
func (h *BondHandler) GetAllBonds(c echo.Context) error {
	bonds, err := h.bondService.GetAll(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get all bonds", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get bonds"})
	}
	return c.JSON(http.StatusOK, bonds)
}

// GetBondByID godoc
// @Summary Get a bond by ID
// @Description Get a single bond with its holding position
// @Tags bonds
// @Produce  json
// @Param   id  path    int true    "Bond ID"
// @Success 200 {object} dto.BondResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /bonds/{id} [get]
func (h *BondHandler) GetBondByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid bond ID"})
	}

	bond, err := h.bondService.GetByID(c.Request().Context(), uint(id))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, bond)
}

// CreateBond godoc
// @Summary Create a new bond
// @Description Record a bond purchase, creating both the holding and the bond
// @Tags bonds
// @Accept  json
// @Produce  json
// @Param   bond  body    dto.CreateBondRequest   true    "Bond to create"
// @Success 201 {object} dto.BondResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bonds [post]
func (h *BondHandler) CreateBond(c echo.Context) error {
	var req dto.CreateBondRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	bond, err := h.bondService.Create(c.Request().Context(), &req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, bond)
}

// UpdateBond godoc
// @Summary Update an existing bond
// @Description Update both the bond attributes and the backing holding
// @Tags bonds
// @Accept  json
// @Produce  json
// @Param   id  path    int true    "Bond ID"
// @Param   bond  body    dto.UpdateBondRequest   true    "Bond to update"
// @Success 200 {object} dto.BondResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /bonds/{id} [put]
func (h *BondHandler) UpdateBond(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid bond ID"})
	}

	var req dto.UpdateBondRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	bond, err := h.bondService.Update(c.Request().Context(), uint(id), &req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, bond)
}

// DeleteBond godoc
// @Summary Delete a bond
// @Description Soft-delete a bond and its backing holding
// @Tags bonds
// @Produce  json
// @Param   id  path    int true    "Bond ID"
// @Success 204 {object} nil
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /bonds/{id} [delete]
func (h *BondHandler) DeleteBond(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid bond ID"})
	}

	if err := h.bondService.Delete(c.Request().Context(), uint(id)); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetStats godoc
// @Summary Get bond statistics
// @Description Get aggregate bond statistics grouped by bond type
// @Tags bonds
// @Produce  json
// @Success 200 {array} dto.BondStats
// @Failure 500 {object} dto.ErrorResponse
// @Router /bonds/stats [get]
func (h *BondHandler) GetStats(c echo.Context) error {
	stats, err := h.bondService.GetStats(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get bond stats", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get bond stats"})
	}
	return c.JSON(http.StatusOK, stats)
}
