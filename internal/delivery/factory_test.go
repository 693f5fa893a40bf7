package delivery

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dipnotify/internal/config"
)

func fullConfig() *config.Config {
	return &config.Config{
		TelegramWebhook: "https://api.telegram.org/bot123/sendMessage",
		TelegramChatID:  "12345",
		EmailSmtpHost:   "smtp.example.com",
		EmailSmtpPort:   587,
		EmailFrom:       "alerts@example.com",
		EmailTo:         []string{"ops@example.com"},
		EmailUseTLS:     true,
		SlackWebhook:    "https://hooks.slack.com/services/T/B/X",
		TeamsWebhook:    "https://outlook.office.com/webhook/TEST",
		WebhookURL:      "https://webhook.example.com/notify",
		SMSGatewayURL:   "https://sms.example.com/send",
		SMSSenderID:     "DIPNOTIFY",
		SMSTo:           []string{"+15550001"},
	}
}

func TestNew_AllChannels(t *testing.T) {
	logger := logrus.NewEntry(logrus.New())

	tests := []struct {
		name     string
		expected interface{}
	}{
		{name: ChannelTelegram, expected: &TelegramChannel{}},
		{name: ChannelEmail, expected: &EmailChannel{}},
		{name: ChannelSlack, expected: &SlackChannel{}},
		{name: ChannelTeams, expected: &TeamsChannel{}},
		{name: ChannelWebhook, expected: &WebhookChannel{}},
		{name: ChannelSMS, expected: &SMSChannel{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch, err := New(tt.name, fullConfig(), logger)
			require.NoError(t, err)
			assert.IsType(t, tt.expected, ch)
			assert.Equal(t, tt.name, ch.Name())
		})
	}
}

func TestNew_UnknownChannel(t *testing.T) {
	ch, err := New("pigeon", fullConfig(), nil)
	require.ErrorIs(t, err, ErrUnknownChannel)
	assert.Nil(t, ch)
}

func TestNew_EmptyChannelName(t *testing.T) {
	_, err := New("", fullConfig(), nil)
	require.ErrorIs(t, err, ErrUnknownChannel)
}

func TestNew_MissingSettings(t *testing.T) {
	_, err := New(ChannelSlack, &config.Config{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slack_webhook is required")
}
