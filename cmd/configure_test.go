package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dipnotify/internal/config"
)

func TestConfigWizard_Config_KeepsSelectedChannelOnly(t *testing.T) {
	wizard := &ConfigWizard{
		Subject:             "Alerts",
		LogFormat:           "text",
		NotificationChannel: "sms",
		SlackWebhook:        "https://hooks.slack.com/services/ignored",
		SMSGatewayURL:       "https://sms.example.com/send",
		SMSSenderID:         "DIPNOTIFY",
		SMSTo:               []string{"+15550001"},
	}

	cfg := wizard.Config()

	assert.Equal(t, "Alerts", cfg.Subject)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "sms", cfg.NotificationChannel)
	assert.Equal(t, "https://sms.example.com/send", cfg.SMSGatewayURL)
	assert.Equal(t, []string{"+15550001"}, cfg.SMSTo)
	assert.Empty(t, cfg.SlackWebhook)
	assert.NoError(t, cfg.Validate())
	assert.NoError(t, cfg.ValidateChannel(cfg.NotificationChannel))
}

func TestSaveConfig_LoadsBack(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	wizard := &ConfigWizard{
		Subject:             "Alerts",
		LogFormat:           "json",
		NotificationChannel: "email",
		EmailSMTPHost:       "smtp.example.com",
		EmailSMTPPort:       2525,
		EmailFrom:           "alerts@example.com",
		EmailTo:             []string{"a@example.com", "b@example.com"},
		EmailUseTLS:         true,
	}

	require.NoError(t, SaveConfig(wizard.Config(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "email", cfg.NotificationChannel)
	assert.Equal(t, "smtp.example.com", cfg.EmailSmtpHost)
	assert.Equal(t, 2525, cfg.EmailSmtpPort)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, cfg.EmailTo)
	assert.Equal(t, "Alerts", cfg.Subject)
}

func TestConfigWizard_Config_RecipientLists(t *testing.T) {
	wizard := &ConfigWizard{
		NotificationChannel: "email",
		EmailSMTPHost:       "smtp.example.com",
		EmailFrom:           "alerts@example.com",
		EmailTo:             config.ParseList(" a@example.com , ,b@example.com,"),
	}

	cfg := wizard.Config()
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, cfg.EmailTo)
	assert.NoError(t, cfg.ValidateChannel(cfg.NotificationChannel))

	wizard.EmailTo = config.ParseList("")
	err := wizard.Config().ValidateChannel("email")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email_to is required")
}
