package delivery

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
)

// SMSChannel delivers messages through an HTTP SMS gateway. Each recipient
// receives one form POST per segment.
type SMSChannel struct {
	*HTTPChannel
	apiKey   string
	senderID string
	to       []string
}

// NewSMSChannel creates a new SMS gateway channel
func NewSMSChannel(gatewayURL, apiKey, senderID string, to []string, logger *logrus.Entry) *SMSChannel {
	return NewSMSChannelWithClient(gatewayURL, apiKey, senderID, to, nil, logger)
}

// NewSMSChannelWithClient creates a new SMS gateway channel with a custom HTTP client
func NewSMSChannelWithClient(gatewayURL, apiKey, senderID string, to []string, httpClient *http.Client, logger *logrus.Entry) *SMSChannel {
	return &SMSChannel{
		HTTPChannel: NewHTTPChannel(gatewayURL, httpClient, logger),
		apiKey:      apiKey,
		senderID:    senderID,
		to:          to,
	}
}

// Name implements Channel
func (c *SMSChannel) Name() string { return ChannelSMS }

// Deliver implements Channel. SMS has no subject line, so a non-empty subject
// is prepended to the message body.
func (c *SMSChannel) Deliver(ctx context.Context, subject, message string) error {
	body := message
	if subject != "" {
		body = subject + ": " + message
	}

	var headers map[string]string
	if c.apiKey != "" {
		headers = map[string]string{"apikey": c.apiKey}
	}

	segments := SplitMessage(body, SMSMaxSegmentLength)

	for _, recipient := range c.to {
		for i, segment := range segments {
			form := url.Values{}
			form.Set("to", recipient)
			form.Set("from", c.senderID)
			form.Set("message", segment)

			if err := c.PostForm(ctx, form, headers); err != nil {
				return deliveryFailed(ChannelSMS, fmt.Errorf("recipient %s, segment %d/%d: %w", recipient, i+1, len(segments), err))
			}
		}

		c.logger.WithFields(logrus.Fields{
			"to":       recipient,
			"segments": len(segments),
		}).Info("Successfully sent SMS notification")
	}

	return nil
}
