package delivery

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
)

// telegramPayload represents the JSON payload for the Bot API sendMessage call
type telegramPayload struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// TelegramChannel delivers messages to a Telegram chat
type TelegramChannel struct {
	*HTTPChannel
	chatID string
}

// NewTelegramChannel creates a new Telegram channel
func NewTelegramChannel(webhookURL, chatID string, logger *logrus.Entry) *TelegramChannel {
	return NewTelegramChannelWithClient(webhookURL, chatID, nil, logger)
}

// NewTelegramChannelWithClient creates a new Telegram channel with a custom HTTP client
func NewTelegramChannelWithClient(webhookURL, chatID string, httpClient *http.Client, logger *logrus.Entry) *TelegramChannel {
	return &TelegramChannel{
		HTTPChannel: NewHTTPChannel(webhookURL, httpClient, logger),
		chatID:      chatID,
	}
}

// Name implements Channel
func (c *TelegramChannel) Name() string { return ChannelTelegram }

// Deliver implements Channel. Long messages are split into several Telegram
// messages; only the first one carries the subject.
func (c *TelegramChannel) Deliver(ctx context.Context, subject, message string) error {
	parts := telegramParts(subject, message)

	for i, text := range parts {
		c.logger.WithFields(logrus.Fields{
			"chat_id": c.chatID,
			"part":    i + 1,
			"parts":   len(parts),
		}).Debug("Sending Telegram notification")

		payload := telegramPayload{
			ChatID:    c.chatID,
			Text:      text,
			ParseMode: "Markdown",
		}
		if err := c.PostJSON(ctx, payload); err != nil {
			return deliveryFailed(ChannelTelegram, fmt.Errorf("part %d/%d: %w", i+1, len(parts), err))
		}
	}

	c.logger.WithField("chat_id", c.chatID).Info("Successfully sent Telegram notification")
	return nil
}

// telegramParts renders the subject header and splits message so that every
// part, header included, stays within TelegramMaxMessageLength
func telegramParts(subject, message string) []string {
	if subject == "" {
		return SplitMessage(message, TelegramMaxMessageLength)
	}

	if runeLen(subject) > TelegramMaxSubjectLength {
		subject = string([]rune(subject)[:TelegramMaxSubjectLength])
	}
	header := fmt.Sprintf("*%s*\n\n", subject)

	first := SplitMessage(message, TelegramMaxMessageLength-runeLen(header))[0]
	parts := []string{header + first}

	if rest := message[len(first):]; rest != "" {
		parts = append(parts, SplitMessage(rest, TelegramMaxMessageLength)...)
	}

	return parts
}
