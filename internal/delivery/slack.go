package delivery

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
)

// slackPayload represents the JSON payload for Slack webhooks
type slackPayload struct {
	Text string `json:"text"`
}

// emptySlackMessage stands in for an empty message body
const emptySlackMessage = "_(empty message)_"

// SlackChannel delivers messages to a Slack incoming webhook
type SlackChannel struct {
	*HTTPChannel
}

// NewSlackChannel creates a new Slack channel
func NewSlackChannel(webhookURL string, logger *logrus.Entry) *SlackChannel {
	return NewSlackChannelWithClient(webhookURL, nil, logger)
}

// NewSlackChannelWithClient creates a new Slack channel with a custom HTTP client
func NewSlackChannelWithClient(webhookURL string, httpClient *http.Client, logger *logrus.Entry) *SlackChannel {
	return &SlackChannel{
		HTTPChannel: NewHTTPChannel(webhookURL, httpClient, logger),
	}
}

// Name implements Channel
func (c *SlackChannel) Name() string { return ChannelSlack }

// Deliver implements Channel. The subject is rendered in bold above the message.
func (c *SlackChannel) Deliver(ctx context.Context, subject, message string) error {
	// Slack answers "no_text" for an empty text field
	body := message
	if body == "" {
		body = emptySlackMessage
	}

	text := body
	if subject != "" {
		text = fmt.Sprintf("*%s*\n\n%s", subject, body)
	}

	if err := c.PostJSON(ctx, slackPayload{Text: text}); err != nil {
		return deliveryFailed(ChannelSlack, err)
	}

	c.logger.Info("Successfully sent Slack notification")
	return nil
}
