package http

import (
	"errors"
	"net/http"

	"golang-portfolio-tracker/internal/server/service"

	"github.com/labstack/echo/v4"
)

// errorJSON maps service errors to HTTP status codes. Validation and trade
// errors come back as 400, missing records as 404, everything else as 500.
func errorJSON(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrInsufficientQuantity):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
}
