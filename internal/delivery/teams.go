package delivery

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
)

// teamsMessageCard represents the JSON payload for Microsoft Teams webhooks
type teamsMessageCard struct {
	Type       string `json:"@type"`
	Context    string `json:"@context"`
	Summary    string `json:"summary"`
	ThemeColor string `json:"themeColor"`
	Title      string `json:"title"`
	Text       string `json:"text"`
}

// TeamsChannel delivers messages to a Microsoft Teams webhook
type TeamsChannel struct {
	*HTTPChannel
}

// NewTeamsChannel creates a new Microsoft Teams channel
func NewTeamsChannel(webhookURL string, logger *logrus.Entry) *TeamsChannel {
	return NewTeamsChannelWithClient(webhookURL, nil, logger)
}

// NewTeamsChannelWithClient creates a new Microsoft Teams channel with a custom HTTP client
func NewTeamsChannelWithClient(webhookURL string, httpClient *http.Client, logger *logrus.Entry) *TeamsChannel {
	return &TeamsChannel{
		HTTPChannel: NewHTTPChannel(webhookURL, httpClient, logger),
	}
}

// Name implements Channel
func (c *TeamsChannel) Name() string { return ChannelTeams }

// Deliver implements Channel
func (c *TeamsChannel) Deliver(ctx context.Context, subject, message string) error {
	summary := subject
	if summary == "" {
		// Teams rejects cards without a summary or text
		summary = "Notification"
	}

	payload := teamsMessageCard{
		Type:       "MessageCard",
		Context:    "https://schema.org/extensions",
		Summary:    summary,
		ThemeColor: "0078D7",
		Title:      subject,
		Text:       message,
	}

	if err := c.PostJSON(ctx, payload); err != nil {
		return deliveryFailed(ChannelTeams, err)
	}

	c.logger.Info("Successfully sent Microsoft Teams notification")
	return nil
}
