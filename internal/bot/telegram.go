// Package bot is a thin Telegram Bot API client: alert delivery to the
// configured chat, webhook registration, and the inbound update types.
package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

type Telegram struct {
	client *resty.Client
	chatID int64
	log    *zap.Logger
}

func NewTelegram(token string, chatID int64, log *zap.Logger) *Telegram {
	client := resty.New().
		SetBaseURL("https://api.telegram.org/bot" + token).
		SetTimeout(15 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(1 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Telegram{client: client, chatID: chatID, log: log}
}

// apiResponse is the Bot API envelope; Result is left raw because callers
// either ignore it or relay it untouched.
type apiResponse struct {
	OK          bool            `json:"ok"`
	Description string          `json:"description"`
	Result      json.RawMessage `json:"result"`
}

// Update is an inbound webhook payload. Only message updates are handled.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message"`
}

type Message struct {
	MessageID int64  `json:"message_id"`
	Text      string `json:"text"`
	Chat      Chat   `json:"chat"`
}

type Chat struct {
	ID int64 `json:"id"`
}

// Send delivers an alert to the fixed recipient chat.
func (t *Telegram) Send(ctx context.Context, text string) error {
	return t.ReplyTo(ctx, t.chatID, text)
}

func (t *Telegram) ReplyTo(ctx context.Context, chatID int64, text string) error {
	var out apiResponse
	resp, err := t.client.R().
		SetContext(ctx).
		SetBody(map[string]any{"chat_id": chatID, "text": text}).
		SetResult(&out).
		SetError(&out).
		Post("/sendMessage")
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	if resp.IsError() || !out.OK {
		return fmt.Errorf("send message: telegram responded %d: %s", resp.StatusCode(), out.Description)
	}
	return nil
}

// SetWebhook registers url for inbound updates. An empty url deletes the
// registration instead.
func (t *Telegram) SetWebhook(ctx context.Context, url string) error {
	endpoint := "/setWebhook"
	body := map[string]any{"url": url}
	if url == "" {
		endpoint = "/deleteWebhook"
		body = map[string]any{}
	}

	var out apiResponse
	resp, err := t.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		SetError(&out).
		Post(endpoint)
	if err != nil {
		return fmt.Errorf("set webhook: %w", err)
	}
	if resp.IsError() || !out.OK {
		return fmt.Errorf("set webhook: telegram responded %d: %s", resp.StatusCode(), out.Description)
	}

	t.log.Info("webhook registration changed", zap.String("url", url))
	return nil
}

// WebhookInfo relays getWebhookInfo untouched.
func (t *Telegram) WebhookInfo(ctx context.Context) (json.RawMessage, error) {
	var out apiResponse
	resp, err := t.client.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&out).
		Get("/getWebhookInfo")
	if err != nil {
		return nil, fmt.Errorf("webhook info: %w", err)
	}
	if resp.IsError() || !out.OK {
		return nil, fmt.Errorf("webhook info: telegram responded %d: %s", resp.StatusCode(), out.Description)
	}
	return out.Result, nil
}
