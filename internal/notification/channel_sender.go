package notification

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultDeliveryTimeout bounds a single delivery made through a ChannelSender
const DefaultDeliveryTimeout = 30 * time.Second

// Deliverer is a transport able to deliver a subject and message, such as a
// delivery.Channel.
type Deliverer interface {
	Deliver(ctx context.Context, subject, message string) error
}

// ChannelSender adapts a Deliverer to the Sender capability. Delivery failures
// are logged and passed to OnError; they are never retried.
type ChannelSender struct {
	deliverer Deliverer
	subject   string
	timeout   time.Duration
	logger    *logrus.Entry

	// OnError, when set, receives every delivery error
	OnError func(error)
}

// NewChannelSender creates a Sender backed by deliverer. A non-positive timeout
// falls back to DefaultDeliveryTimeout.
func NewChannelSender(deliverer Deliverer, subject string, timeout time.Duration, logger *logrus.Entry) *ChannelSender {
	if timeout <= 0 {
		timeout = DefaultDeliveryTimeout
	}
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}

	return &ChannelSender{
		deliverer: deliverer,
		subject:   subject,
		timeout:   timeout,
		logger:    logger,
	}
}

// Send implements Sender
func (s *ChannelSender) Send(message string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	s.logger.WithFields(logrus.Fields{
		"subject": s.subject,
		"length":  len(message),
	}).Debug("Delivering message")

	if err := s.deliverer.Deliver(ctx, s.subject, message); err != nil {
		s.logger.WithError(err).Warn("Failed to deliver message")
		if s.OnError != nil {
			s.OnError(err)
		}
		return
	}

	s.logger.Debug("Message delivered")
}
