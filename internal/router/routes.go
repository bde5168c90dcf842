package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lunchmates/restaurant-picker/internal/config"
	"github.com/lunchmates/restaurant-picker/internal/handler"
	middlewarepkg "github.com/lunchmates/restaurant-picker/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Restaurants *handler.RestaurantsHandler
	Filters     *handler.FiltersHandler
	Webhook     *handler.WebhookHandler
	Chat        *handler.ChatHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})

	e.GET("/restaurants", handlers.Restaurants.List, middlewarepkg.RestaurantsRateLimiter(cfg.RateLimitRestaurants))
	e.GET("/cuisines", handlers.Restaurants.Cuisines)
	e.GET("/filters", handlers.Filters.List)

	if handlers.Webhook != nil {
		e.POST("/telegram/webhook", handlers.Webhook.Receive)
	}
	if handlers.Chat != nil {
		e.GET("/ws", handlers.Chat.Serve)
	}
}
