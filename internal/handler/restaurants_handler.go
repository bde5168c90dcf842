package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lunchmates/restaurant-picker/internal/entity"
	"github.com/lunchmates/restaurant-picker/internal/filter"
	"github.com/lunchmates/restaurant-picker/internal/takeaway"
)

// RestaurantPicker selects restaurants matching a filter configuration and
// lists the cuisines available in an area.
type RestaurantPicker interface {
	Pick(ctx context.Context, cfg filter.Config) ([]entity.Restaurant, error)
	Cuisines(ctx context.Context, postalCode int) ([]string, error)
}

// RestaurantsHandler exposes the restaurant picking endpoints.
type RestaurantsHandler struct {
	picker   RestaurantPicker
	defaults filter.Defaults
}

// NewRestaurantsHandler creates a new handler instance.
func NewRestaurantsHandler(picker RestaurantPicker, defaults filter.Defaults) *RestaurantsHandler {
	return &RestaurantsHandler{picker: picker, defaults: defaults}
}

// List handles GET /restaurants requests. Filter fields are accepted as query
// parameters named after the schema fields, so the same validation applies to
// HTTP callers and chat commands.
func (h *RestaurantsHandler) List(c echo.Context) error {
	tokens := make([]string, 0, 4)
	for _, field := range filter.DescribeSchema() {
		if value := strings.TrimSpace(c.QueryParam(field.Name)); value != "" {
			tokens = append(tokens, field.Name+":"+value)
		}
	}

	cfg, err := filter.NewConfig(h.defaults, tokens)
	if err != nil {
		var verr *filter.ValidationError
		if errors.As(err, &verr) {
			return Error(c, http.StatusBadRequest, verr.Error())
		}
		return Error(c, http.StatusBadRequest, "invalid filter arguments")
	}

	restaurants, err := h.picker.Pick(c.Request().Context(), cfg)
	if err != nil {
		var serr *takeaway.StatusError
		if errors.As(err, &serr) {
			return Error(c, http.StatusBadGateway, "upstream request failed")
		}
		return Error(c, http.StatusInternalServerError, "failed to pick restaurants")
	}

	return Success(c, http.StatusOK, "", restaurants)
}

// Cuisines handles GET /cuisines requests.
func (h *RestaurantsHandler) Cuisines(c echo.Context) error {
	postalCode := h.defaults.PostalCode
	if raw := strings.TrimSpace(c.QueryParam("postal_code")); raw != "" {
		cfg, err := filter.NewConfig(h.defaults, []string{"postal_code:" + raw})
		if err != nil {
			return Error(c, http.StatusBadRequest, "invalid postal_code")
		}
		postalCode = cfg.PostalCode
	}

	cuisines, err := h.picker.Cuisines(c.Request().Context(), postalCode)
	if err != nil {
		var serr *takeaway.StatusError
		if errors.As(err, &serr) {
			return Error(c, http.StatusBadGateway, "upstream request failed")
		}
		return Error(c, http.StatusInternalServerError, "failed to list cuisines")
	}

	return Success(c, http.StatusOK, "", cuisines)
}
