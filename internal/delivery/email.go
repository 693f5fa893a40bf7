package delivery

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/wneessen/go-mail"
)

// EmailChannel delivers messages via SMTP
type EmailChannel struct {
	smtpHost     string
	smtpPort     int
	smtpUsername string
	smtpPassword string
	from         string
	to           []string
	useTLS       bool
	timeout      time.Duration
	logger       *logrus.Entry
}

// NewEmailChannel creates a new Email channel
func NewEmailChannel(smtpHost string, smtpPort int, smtpUsername, smtpPassword, from string, to []string, useTLS bool, logger *logrus.Entry) *EmailChannel {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}

	return &EmailChannel{
		smtpHost:     smtpHost,
		smtpPort:     smtpPort,
		smtpUsername: smtpUsername,
		smtpPassword: smtpPassword,
		from:         from,
		to:           to,
		useTLS:       useTLS,
		timeout:      DefaultHTTPTimeout,
		logger:       logger,
	}
}

// Name implements Channel
func (e *EmailChannel) Name() string { return ChannelEmail }

// Deliver implements Channel
func (e *EmailChannel) Deliver(ctx context.Context, subject, message string) error {
	msg, err := e.buildMessage(subject, message)
	if err != nil {
		return deliveryFailed(ChannelEmail, err)
	}

	e.logger.WithFields(logrus.Fields{
		"smtp_host": e.smtpHost,
		"smtp_port": e.smtpPort,
		"from":      e.from,
		"to":        e.to,
		"subject":   subject,
	}).Debug("Sending email notification")

	client, err := mail.NewClient(e.smtpHost, e.clientOptions()...)
	if err != nil {
		return deliveryFailed(ChannelEmail, fmt.Errorf("failed to create mail client: %w", err))
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return deliveryFailed(ChannelEmail, fmt.Errorf("failed to send email: %w", err))
	}

	e.logger.WithField("to", e.to).Info("Successfully sent email notification")
	return nil
}

// buildMessage validates addresses and assembles a plain-text message
func (e *EmailChannel) buildMessage(subject, message string) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(e.from); err != nil {
		return nil, fmt.Errorf("invalid from address: %w", err)
	}
	if len(e.to) == 0 {
		return nil, fmt.Errorf("no recipients configured")
	}
	if err := m.To(e.to...); err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}

	m.Subject(subject)
	m.SetBodyString(mail.TypeTextPlain, message)

	return m, nil
}

func (e *EmailChannel) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(e.smtpPort),
		mail.WithTimeout(e.timeout),
	}

	if e.useTLS {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}

	if e.smtpUsername != "" && e.smtpPassword != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(e.smtpUsername),
			mail.WithPassword(e.smtpPassword),
		)
	}

	return opts
}
