package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	// General settings
	Verbose   bool   `mapstructure:"verbose" yaml:"verbose"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format"` // "json" or "text"

	// Delivery settings used by the send command
	NotificationChannel string        `mapstructure:"notification_channel" yaml:"notification_channel"` // "telegram", "email", "slack", "teams", "webhook", "sms"
	Subject             string        `mapstructure:"subject" yaml:"subject"`
	Timeout             time.Duration `mapstructure:"timeout" yaml:"timeout,omitempty"` // Per-delivery timeout

	// Telegram settings
	TelegramWebhook string `mapstructure:"telegram_webhook" yaml:"telegram_webhook,omitempty"`
	TelegramChatID  string `mapstructure:"telegram_chat_id" yaml:"telegram_chat_id,omitempty"`

	// Email settings
	EmailSmtpHost     string   `mapstructure:"email_smtp_host" yaml:"email_smtp_host,omitempty"`
	EmailSmtpPort     int      `mapstructure:"email_smtp_port" yaml:"email_smtp_port,omitempty"`
	EmailSmtpUsername string   `mapstructure:"email_smtp_username" yaml:"email_smtp_username,omitempty"`
	EmailSmtpPassword string   `mapstructure:"email_smtp_password" yaml:"email_smtp_password,omitempty"`
	EmailFrom         string   `mapstructure:"email_from" yaml:"email_from,omitempty"`
	EmailTo           []string `mapstructure:"email_to" yaml:"email_to,omitempty"`
	EmailUseTLS       bool     `mapstructure:"email_use_tls" yaml:"email_use_tls"`

	// Slack settings
	SlackWebhook string `mapstructure:"slack_webhook" yaml:"slack_webhook,omitempty"`

	// Teams settings
	TeamsWebhook string `mapstructure:"teams_webhook" yaml:"teams_webhook,omitempty"`

	// Generic webhook settings
	WebhookURL string `mapstructure:"webhook_url" yaml:"webhook_url,omitempty"`

	// SMS gateway settings
	SMSGatewayURL string   `mapstructure:"sms_gateway_url" yaml:"sms_gateway_url,omitempty"`
	SMSAPIKey     string   `mapstructure:"sms_api_key" yaml:"sms_api_key,omitempty"`
	SMSSenderID   string   `mapstructure:"sms_sender_id" yaml:"sms_sender_id,omitempty"`
	SMSTo         []string `mapstructure:"sms_to" yaml:"sms_to,omitempty"`
}

// keys lists every configuration key that can be set from the environment
var keys = []string{
	"verbose", "log_format",
	"notification_channel", "subject", "timeout",
	"telegram_webhook", "telegram_chat_id",
	"email_smtp_host", "email_smtp_port", "email_smtp_username", "email_smtp_password",
	"email_from", "email_to", "email_use_tls",
	"slack_webhook", "teams_webhook", "webhook_url",
	"sms_gateway_url", "sms_api_key", "sms_sender_id", "sms_to",
}

// Load loads configuration from the config file (configFile, or config.yaml
// in the default search paths), DN_ environment variables and bound flags.
// A missing config file is not an error.
func Load(configFile string) (*Config, error) {
	// Set default values
	viper.SetDefault("verbose", false)
	viper.SetDefault("log_format", "json")
	viper.SetDefault("subject", "Notification")
	viper.SetDefault("timeout", 30*time.Second)
	viper.SetDefault("email_smtp_port", 587)
	viper.SetDefault("email_use_tls", true)

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/dipnotify")
		viper.AddConfigPath("$HOME/.dipnotify")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, continue with defaults and env vars
	}

	// DN_EMAIL_SMTP_HOST maps to email_smtp_host and so on. Keys are bound
	// explicitly because Unmarshal ignores env-only keys under AutomaticEnv.
	viper.SetEnvPrefix("DN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	for _, key := range keys {
		if err := viper.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	// Lists from environment variables arrive as a single comma-separated string
	for _, key := range []string{"email_to", "sms_to"} {
		if raw, ok := viper.Get(key).(string); ok {
			viper.Set(key, ParseList(raw))
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the general settings. Channel settings are checked by
// ValidateChannel once the channel to use is known.
func (c *Config) Validate() error {
	switch c.LogFormat {
	case "", "json", "text":
	default:
		return fmt.Errorf("log_format must be 'json' or 'text', got %q", c.LogFormat)
	}

	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}

	return nil
}

// ValidateChannel checks the settings required by the named channel. An empty
// name means no transport channel and is always valid.
func (c *Config) ValidateChannel(channel string) error {
	switch channel {
	case "":
		return nil
	case "telegram":
		if c.TelegramWebhook == "" {
			return fmt.Errorf("telegram_webhook is required when notification_channel is 'telegram'")
		}
		if c.TelegramChatID == "" {
			return fmt.Errorf("telegram_chat_id is required when notification_channel is 'telegram'")
		}
	case "email":
		if c.EmailSmtpHost == "" {
			return fmt.Errorf("email_smtp_host is required when notification_channel is 'email'")
		}
		if c.EmailFrom == "" {
			return fmt.Errorf("email_from is required when notification_channel is 'email'")
		}
		if len(c.EmailTo) == 0 {
			return fmt.Errorf("email_to is required when notification_channel is 'email'")
		}
	case "slack":
		if c.SlackWebhook == "" {
			return fmt.Errorf("slack_webhook is required when notification_channel is 'slack'")
		}
	case "teams":
		if c.TeamsWebhook == "" {
			return fmt.Errorf("teams_webhook is required when notification_channel is 'teams'")
		}
	case "webhook":
		if c.WebhookURL == "" {
			return fmt.Errorf("webhook_url is required when notification_channel is 'webhook'")
		}
	case "sms":
		if c.SMSGatewayURL == "" {
			return fmt.Errorf("sms_gateway_url is required when notification_channel is 'sms'")
		}
		if len(c.SMSTo) == 0 {
			return fmt.Errorf("sms_to is required when notification_channel is 'sms'")
		}
	default:
		return fmt.Errorf("unsupported notification_channel %q", channel)
	}

	return nil
}

// ParseList splits a comma-separated string, dropping empty items. It never returns nil.
// Example: "a@example.com, b@example.com" -> []string{"a@example.com", "b@example.com"}
func ParseList(s string) []string {
	items := []string{}
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
