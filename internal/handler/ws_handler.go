package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/lunchmates/restaurant-picker/internal/filter"
	"github.com/lunchmates/restaurant-picker/internal/takeaway"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ChatMessage is the frame format exchanged on the websocket chat endpoint.
// Clients send the Text field only; responses carry Type plus either Data or
// Message.
type ChatMessage struct {
	Type    string `json:"type"`
	Text    string `json:"text,omitempty"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ChatHandler serves an interactive chat session over a websocket. It accepts
// the same commands as the Telegram bot and answers with structured frames
// instead of formatted text.
type ChatHandler struct {
	picker   RestaurantPicker
	defaults filter.Defaults
}

// NewChatHandler creates a new handler instance.
func NewChatHandler(picker RestaurantPicker, defaults filter.Defaults) *ChatHandler {
	return &ChatHandler{picker: picker, defaults: defaults}
}

// Serve handles GET /ws requests. The connection stays open until the client
// disconnects; every incoming frame is answered with exactly one response
// frame.
func (h *ChatHandler) Serve(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	for {
		var incoming ChatMessage
		if err := conn.ReadJSON(&incoming); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.Logger().Warnf("ws read failed: %v", err)
			}
			return nil
		}

		response := h.respond(c, incoming.Text)
		if err := conn.WriteJSON(response); err != nil {
			c.Logger().Warnf("ws write failed: %v", err)
			return nil
		}
	}
}

func (h *ChatHandler) respond(c echo.Context, text string) ChatMessage {
	command, args := splitChatCommand(text)

	switch command {
	case "random":
		return h.respondRandom(c, args)
	case "filters", "get_available_filter_arguments":
		return ChatMessage{Type: "filters", Data: filter.DescribeSchema()}
	case "cuisines":
		cuisines, err := h.picker.Cuisines(c.Request().Context(), h.defaults.PostalCode)
		if err != nil {
			return chatError(err)
		}
		return ChatMessage{Type: "cuisines", Data: cuisines}
	default:
		return ChatMessage{Type: "error", Message: "unknown command: " + command}
	}
}

func (h *ChatHandler) respondRandom(c echo.Context, args []string) ChatMessage {
	cfg, err := filter.NewConfig(h.defaults, args)
	if err != nil {
		var verr *filter.ValidationError
		if errors.As(err, &verr) {
			return ChatMessage{Type: "error", Message: verr.Error()}
		}
		return ChatMessage{Type: "error", Message: "invalid filter arguments"}
	}

	restaurants, err := h.picker.Pick(c.Request().Context(), cfg)
	if err != nil {
		return chatError(err)
	}

	return ChatMessage{Type: "restaurants", Data: restaurants}
}

func chatError(err error) ChatMessage {
	var serr *takeaway.StatusError
	if errors.As(err, &serr) {
		return ChatMessage{Type: "error", Message: "upstream request failed"}
	}
	return ChatMessage{Type: "error", Message: "failed to complete the action"}
}

func splitChatCommand(text string) (string, []string) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) == 0 {
		return "", nil
	}
	command := strings.ToLower(strings.TrimPrefix(fields[0], "/"))
	return command, fields[1:]
}
