package delivery

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// webhookPayload represents the JSON payload for generic webhooks
type webhookPayload struct {
	Source  string    `json:"source"`
	Subject string    `json:"subject"`
	Message string    `json:"message"`
	SentAt  time.Time `json:"sent_at"`
}

// webhookSource identifies this program to webhook receivers
const webhookSource = "dipnotify"

// WebhookChannel delivers messages to a generic webhook
type WebhookChannel struct {
	*HTTPChannel
}

// NewWebhookChannel creates a new generic webhook channel
func NewWebhookChannel(webhookURL string, logger *logrus.Entry) *WebhookChannel {
	return NewWebhookChannelWithClient(webhookURL, nil, logger)
}

// NewWebhookChannelWithClient creates a new generic webhook channel with a custom HTTP client
func NewWebhookChannelWithClient(webhookURL string, httpClient *http.Client, logger *logrus.Entry) *WebhookChannel {
	return &WebhookChannel{
		HTTPChannel: NewHTTPChannel(webhookURL, httpClient, logger),
	}
}

// Name implements Channel
func (c *WebhookChannel) Name() string { return ChannelWebhook }

// Deliver implements Channel
func (c *WebhookChannel) Deliver(ctx context.Context, subject, message string) error {
	// Receivers get the message exactly as notified, plus where and when it came from
	payload := webhookPayload{
		Source:  webhookSource,
		Subject: subject,
		Message: message,
		SentAt:  time.Now().UTC(),
	}

	if err := c.PostJSON(ctx, payload); err != nil {
		return deliveryFailed(ChannelWebhook, err)
	}

	c.logger.Info("Successfully sent webhook notification")
	return nil
}
