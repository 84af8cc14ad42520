package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"relaybot/internal/domain"
)

const DefaultAPIBase = "https://api.telegram.org"

// Client talks to the Bot API over HTTP. It implements core.Sender.
type Client struct {
	httpc   *http.Client
	base    string
	token   string
	timeout time.Duration
}

func NewClient(base, token string, timeout time.Duration) *Client {
	if base == "" {
		base = DefaultAPIBase
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpc:   &http.Client{Timeout: timeout},
		base:    base,
		token:   token,
		timeout: timeout,
	}
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// SendMessage delivers text to one chat. Telegram user ids double as the
// private chat id, so recipients are addressed by their user id.
func (c *Client) SendMessage(ctx context.Context, to domain.UserID, text string) error {
	payload := map[string]any{"chat_id": int64(to), "text": text}
	return c.call(ctx, "sendMessage", payload)
}

// SetWebhook points Telegram at the service's public webhook URL.
func (c *Client) SetWebhook(ctx context.Context, url string) error {
	return c.call(ctx, "setWebhook", map[string]any{"url": url})
}

func (c *Client) call(ctx context.Context, method string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", method, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := fmt.Sprintf("%s/bot%s/%s", c.base, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()

	var api apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&api); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}
	if !api.OK {
		return fmt.Errorf("%s: telegram API: %s", method, api.Description)
	}
	return nil
}
