package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/lunchmates/restaurant-picker/internal/entity"
	"github.com/lunchmates/restaurant-picker/internal/filter"
	"github.com/lunchmates/restaurant-picker/internal/takeaway"
)

// NoMatchMessage is the reply for an empty, successful filter run. An empty
// result is a valid outcome, distinct from an upstream failure.
const NoMatchMessage = "couldn't find any restaurant for the given filter"

// RestaurantPicker is the engine surface consumed by the dispatcher.
type RestaurantPicker interface {
	Pick(ctx context.Context, cfg filter.Config) ([]entity.Restaurant, error)
	Cuisines(ctx context.Context, postalCode int) ([]string, error)
}

// Dispatcher routes chat commands to the restaurant engine and translates
// outcomes into chat replies.
type Dispatcher struct {
	sender      Sender
	restaurants RestaurantPicker
	defaults    filter.Defaults
}

// NewDispatcher wires the dispatcher to its reply channel and engine.
func NewDispatcher(sender Sender, restaurants RestaurantPicker, defaults filter.Defaults) *Dispatcher {
	return &Dispatcher{sender: sender, restaurants: restaurants, defaults: defaults}
}

// HandleUpdate processes one incoming update. Non-command messages and
// unknown commands are ignored.
func (d *Dispatcher) HandleUpdate(ctx context.Context, update Update) {
	if update.Message == nil {
		return
	}
	command, args := splitCommand(update.Message.Text)

	switch command {
	case "random":
		d.commandRandom(ctx, update.Message, args)
	case "filters", "get_available_filter_arguments":
		d.commandFilters(ctx, update.Message)
	case "cuisines":
		d.commandCuisines(ctx, update.Message)
	}
}

func (d *Dispatcher) commandRandom(ctx context.Context, msg *Message, args []string) {
	cfg, err := filter.NewConfig(d.defaults, args)
	if err != nil {
		// validation failures are reported verbatim
		d.reply(ctx, msg, err.Error(), SendOptions{ReplyToMessageID: msg.MessageID})
		return
	}

	restaurants, err := d.restaurants.Pick(ctx, cfg)
	if err != nil {
		d.replyError(ctx, msg, err)
		return
	}

	if len(restaurants) == 0 {
		d.reply(ctx, msg, NoMatchMessage, SendOptions{})
		return
	}

	d.reply(ctx, msg, FormatRestaurants(restaurants), SendOptions{
		ParseMode:             "MarkdownV2",
		DisableWebPagePreview: true,
	})
}

func (d *Dispatcher) commandFilters(ctx context.Context, msg *Message) {
	var b strings.Builder
	b.WriteString("available filter arguments (key:value):\n")
	for _, field := range filter.DescribeSchema() {
		fmt.Fprintf(&b, "%s (%s, default: %s) - %s\n", field.Name, field.Kind, field.Default, field.Description)
	}
	d.reply(ctx, msg, strings.TrimRight(b.String(), "\n"), SendOptions{})
}

func (d *Dispatcher) commandCuisines(ctx context.Context, msg *Message) {
	cuisines, err := d.restaurants.Cuisines(ctx, d.defaults.PostalCode)
	if err != nil {
		d.replyError(ctx, msg, err)
		return
	}
	if len(cuisines) == 0 {
		d.reply(ctx, msg, "no cuisines found for the default postal code", SendOptions{})
		return
	}
	d.reply(ctx, msg, strings.Join(cuisines, ", "), SendOptions{})
}

// replyError maps engine failures onto user-facing messages. Upstream status
// codes get specific texts, everything else is logged and reported generically.
func (d *Dispatcher) replyError(ctx context.Context, msg *Message, err error) {
	var statusErr *takeaway.StatusError
	var message string

	switch {
	case errors.As(err, &statusErr):
		switch statusErr.Code {
		case http.StatusUnauthorized:
			message = "cannot complete the action, the listing service refused to authorize the request"
		case http.StatusForbidden:
			message = "cannot complete the action, it is forbidden"
		default:
			message = fmt.Sprintf("the restaurant listing is unavailable right now (status %d)", statusErr.Code)
		}
	default:
		log.Printf("bot: chat_id=%d command failed: %v", msg.Chat.ID, err)
		message = "failed to complete the action"
	}

	d.reply(ctx, msg, message, SendOptions{ReplyToMessageID: msg.MessageID})
}

func (d *Dispatcher) reply(ctx context.Context, msg *Message, text string, opts SendOptions) {
	if err := d.sender.SendMessage(ctx, msg.Chat.ID, text, opts); err != nil {
		log.Printf("bot: chat_id=%d failed to send reply: %v", msg.Chat.ID, err)
	}
}

// splitCommand extracts the command name and its argument tokens from a
// message text. A "@botname" suffix on the command is stripped.
func splitCommand(text string) (string, []string) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return "", nil
	}
	command := strings.TrimPrefix(fields[0], "/")
	if at := strings.Index(command, "@"); at >= 0 {
		command = command[:at]
	}
	return strings.ToLower(command), fields[1:]
}
