package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Sender delivers one message to a chat channel.
type Sender interface {
	SendMessage(ctx context.Context, channelID, text string) error
}

// WebhookSender posts messages to a Discord channel through an incoming
// webhook. Webhooks are bound to a channel on the Discord side, so the
// channelID argument is informational only.
type WebhookSender struct {
	WebhookURL string
	Client     *http.Client
}

func NewWebhookSender(webhookURL string) *WebhookSender {
	return &WebhookSender{
		WebhookURL: webhookURL,
		Client:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *WebhookSender) SendMessage(ctx context.Context, channelID, text string) error {
	payload, err := json.Marshal(map[string]string{"content": text})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.WebhookURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("discord webhook status %d: %s", resp.StatusCode, string(b))
	}
	return nil
}

var _ Sender = (*WebhookSender)(nil)
