package delivery

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"dipnotify/internal/config"
)

// New creates the channel named by name using the settings in cfg
func New(name string, cfg *config.Config, logger *logrus.Entry) (Channel, error) {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	logger = logger.WithField("channel", name)

	switch name {
	case ChannelTelegram, ChannelEmail, ChannelSlack, ChannelTeams, ChannelWebhook, ChannelSMS:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownChannel, name)
	}

	if err := cfg.ValidateChannel(name); err != nil {
		return nil, err
	}

	switch name {
	case ChannelTelegram:
		return NewTelegramChannel(cfg.TelegramWebhook, cfg.TelegramChatID, logger), nil
	case ChannelEmail:
		ch := NewEmailChannel(
			cfg.EmailSmtpHost,
			cfg.EmailSmtpPort,
			cfg.EmailSmtpUsername,
			cfg.EmailSmtpPassword,
			cfg.EmailFrom,
			cfg.EmailTo,
			cfg.EmailUseTLS,
			logger,
		)
		if cfg.Timeout > 0 {
			ch.timeout = cfg.Timeout
		}
		return ch, nil
	case ChannelSlack:
		return NewSlackChannel(cfg.SlackWebhook, logger), nil
	case ChannelTeams:
		return NewTeamsChannel(cfg.TeamsWebhook, logger), nil
	case ChannelWebhook:
		return NewWebhookChannel(cfg.WebhookURL, logger), nil
	default:
		return NewSMSChannel(cfg.SMSGatewayURL, cfg.SMSAPIKey, cfg.SMSSenderID, cfg.SMSTo, logger), nil
	}
}
