package delivery

import (
	"context"
	"errors"
	"fmt"
)

// Channel names accepted by New
const (
	ChannelTelegram = "telegram"
	ChannelEmail    = "email"
	ChannelSlack    = "slack"
	ChannelTeams    = "teams"
	ChannelWebhook  = "webhook"
	ChannelSMS      = "sms"
)

// Channel is a real transport that delivers a subject and message
type Channel interface {
	Name() string
	Deliver(ctx context.Context, subject, message string) error
}

// Common errors that can be checked with errors.Is()
var (
	// ErrUnknownChannel indicates the configured channel name is not supported
	ErrUnknownChannel = errors.New("unknown notification channel")

	// ErrUnexpectedStatus indicates the remote endpoint answered with a non-2xx status
	ErrUnexpectedStatus = errors.New("failed to send message")
)

// DeliveryError reports a failed delivery on a specific channel
type DeliveryError struct {
	Channel string
	Err     error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("%s delivery failed: %v", e.Channel, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

func deliveryFailed(channel string, err error) error {
	if err == nil {
		return nil
	}
	return &DeliveryError{Channel: channel, Err: err}
}
