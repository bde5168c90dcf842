package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lunchmates/restaurant-picker/internal/bot"
)

// WebhookHandler feeds Telegram webhook updates into the command dispatcher.
// It is the push-based alternative to the long-polling loop.
type WebhookHandler struct {
	dispatcher *bot.Dispatcher
}

// NewWebhookHandler creates a new handler instance.
func NewWebhookHandler(dispatcher *bot.Dispatcher) *WebhookHandler {
	return &WebhookHandler{dispatcher: dispatcher}
}

// Receive handles POST /telegram/webhook requests. Telegram retries on
// non-2xx responses, so dispatch failures are reported to the user via the
// bot itself and the webhook always acknowledges.
func (h *WebhookHandler) Receive(c echo.Context) error {
	var update bot.Update
	if err := c.Bind(&update); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	h.dispatcher.HandleUpdate(c.Request().Context(), update)

	return c.NoContent(http.StatusOK)
}
