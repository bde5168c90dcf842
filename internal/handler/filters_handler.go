package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lunchmates/restaurant-picker/internal/filter"
)

// FiltersHandler exposes the filter schema for API consumers.
type FiltersHandler struct{}

// NewFiltersHandler creates a new handler instance.
func NewFiltersHandler() *FiltersHandler {
	return &FiltersHandler{}
}

// List handles GET /filters requests.
func (h *FiltersHandler) List(c echo.Context) error {
	return Success(c, http.StatusOK, "", filter.DescribeSchema())
}
