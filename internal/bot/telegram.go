package bot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// DefaultAPIBase is the public Telegram Bot API endpoint.
const DefaultAPIBase = "https://api.telegram.org"

// Update is one incoming Telegram update, webhook- or poll-delivered.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message"`
}

// Message is the subset of a Telegram message the bot acts on.
type Message struct {
	MessageID int64  `json:"message_id"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text"`
}

// Chat identifies the conversation a message belongs to.
type Chat struct {
	ID int64 `json:"id"`
}

// SendOptions control message delivery.
type SendOptions struct {
	ParseMode             string
	DisableWebPagePreview bool
	ReplyToMessageID      int64
}

// Sender delivers text replies to a chat. Implemented by APIClient; declared
// so the dispatcher can be tested without a network.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string, opts SendOptions) error
}

// APIClient talks to the Telegram Bot API over plain HTTP.
type APIClient struct {
	client  *http.Client
	baseURL string
	token   string
}

// NewAPIClient builds a Telegram client. A nil http client gets a default
// whose timeout leaves room for long polling.
func NewAPIClient(client *http.Client, baseURL, token string) *APIClient {
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = DefaultAPIBase
	}
	return &APIClient{client: client, baseURL: baseURL, token: token}
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Description string          `json:"description"`
	Result      json.RawMessage `json:"result"`
}

// SendMessage posts a sendMessage call for the given chat.
func (c *APIClient) SendMessage(ctx context.Context, chatID int64, text string, opts SendOptions) error {
	payload := map[string]any{
		"chat_id": chatID,
		"text":    text,
	}
	if opts.ParseMode != "" {
		payload["parse_mode"] = opts.ParseMode
	}
	if opts.DisableWebPagePreview {
		payload["disable_web_page_preview"] = true
	}
	if opts.ReplyToMessageID != 0 {
		payload["reply_to_message_id"] = opts.ReplyToMessageID
	}

	_, err := c.call(ctx, "sendMessage", payload)
	return err
}

// GetUpdates long-polls for new updates past the given offset.
func (c *APIClient) GetUpdates(ctx context.Context, offset int64, timeoutSeconds int) ([]Update, error) {
	payload := map[string]any{
		"offset":  offset,
		"timeout": timeoutSeconds,
	}

	result, err := c.call(ctx, "getUpdates", payload)
	if err != nil {
		return nil, err
	}

	var updates []Update
	if err := json.Unmarshal(result, &updates); err != nil {
		return nil, fmt.Errorf("could not decode updates: %w", err)
	}
	return updates, nil
}

func (c *APIClient) call(ctx context.Context, method string, payload map[string]any) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", method, err)
	}

	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", method, err)
	}
	defer resp.Body.Close()

	var parsed apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("could not decode %s response: %w", method, err)
	}
	if !parsed.OK {
		return nil, fmt.Errorf("telegram %s failed: %s", method, parsed.Description)
	}
	return parsed.Result, nil
}

var _ Sender = (*APIClient)(nil)
