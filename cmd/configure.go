package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"dipnotify/internal/config"
	"dipnotify/internal/delivery"
)

// NewConfigureCmd creates the configure subcommand
func NewConfigureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "configure",
		Short: "Interactively configure the notification channel",
		Long: `Configure dipnotify in interactive mode.

This command will guide you through setting up:
- General settings (subject, log format)
- Notification channel and its credentials

The configuration will be saved to config.yaml and the notification channel will be tested.`,
		RunE: runConfigure,
	}
}

// ConfigWizard holds the answers collected by the wizard
type ConfigWizard struct {
	// General
	Subject   string
	LogFormat string

	// Notification
	NotificationChannel string

	// Telegram
	TelegramWebhook string
	TelegramChatID  string

	// Email
	EmailSMTPHost     string
	EmailSMTPPort     int
	EmailSMTPUsername string
	EmailSMTPPassword string
	EmailFrom         string
	EmailTo           []string
	EmailUseTLS       bool

	// Slack
	SlackWebhook string

	// Teams
	TeamsWebhook string

	// Webhook
	WebhookURL string

	// SMS gateway
	SMSGatewayURL string
	SMSAPIKey     string
	SMSSenderID   string
	SMSTo         []string
}

func runConfigure(cmd *cobra.Command, args []string) error {
	fmt.Println("\ndipnotify Configuration Wizard")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()

	wizard := &ConfigWizard{}

	// Step 1: General Settings
	if err := configureGeneral(wizard); err != nil {
		return err
	}

	// Step 2: Notification Channel
	if err := configureNotifications(wizard); err != nil {
		return err
	}

	cfg := wizard.Config()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.ValidateChannel(cfg.NotificationChannel); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Step 3: Test Notification
	if cfg.NotificationChannel != "" {
		if err := testNotification(cfg); err != nil {
			fmt.Printf("\nWarning: Notification test failed: %v\n", err)
			fmt.Println("You can still save the configuration and fix it later.")

			var proceed bool
			prompt := &survey.Confirm{
				Message: "Do you want to save the configuration anyway?",
				Default: true,
			}
			if err := survey.AskOne(prompt, &proceed); err != nil {
				return err
			}
			if !proceed {
				return fmt.Errorf("configuration cancelled")
			}
		} else {
			fmt.Println("\nNotification test successful!")
		}
	}

	// Step 4: Save Configuration
	var configPath string
	prompt := &survey.Input{
		Message: "Config file path:",
		Default: "config.yaml",
		Help:    "Where to save the configuration file",
	}
	if err := survey.AskOne(prompt, &configPath); err != nil {
		return err
	}

	if err := SaveConfig(cfg, configPath); err != nil {
		return err
	}

	fmt.Printf("\nConfiguration saved to: %s\n", configPath)
	fmt.Println("\nYou can now run: dipnotify send \"your message\"")
	fmt.Println()

	return nil
}

func configureGeneral(wizard *ConfigWizard) error {
	fmt.Println("General Settings")
	fmt.Println(strings.Repeat("-", 60))

	questions := []*survey.Question{
		{
			Name: "subject",
			Prompt: &survey.Input{
				Message: "Default subject line:",
				Default: "Notification",
			},
		},
		{
			Name: "logFormat",
			Prompt: &survey.Select{
				Message: "Log format:",
				Options: []string{"json", "text"},
				Default: "json",
				Help:    "json: for production, text: for development",
			},
		},
	}

	return survey.Ask(questions, wizard)
}

func configureNotifications(wizard *ConfigWizard) error {
	fmt.Println("\nNotification Channel")
	fmt.Println(strings.Repeat("-", 60))

	var channelOptions = []string{
		"None (console only)",
		"Telegram",
		"Email",
		"Slack",
		"Microsoft Teams",
		"Generic Webhook",
		"SMS Gateway",
	}

	var selectedChannel string
	prompt := &survey.Select{
		Message: "Select notification channel:",
		Options: channelOptions,
		Default: "None (console only)",
	}
	if err := survey.AskOne(prompt, &selectedChannel); err != nil {
		return err
	}

	switch selectedChannel {
	case "Telegram":
		wizard.NotificationChannel = delivery.ChannelTelegram
		return configureTelegram(wizard)
	case "Email":
		wizard.NotificationChannel = delivery.ChannelEmail
		return configureEmail(wizard)
	case "Slack":
		wizard.NotificationChannel = delivery.ChannelSlack
		return configureURL("Slack Webhook URL:", "Format: https://hooks.slack.com/services/YOUR/WEBHOOK/URL", &wizard.SlackWebhook)
	case "Microsoft Teams":
		wizard.NotificationChannel = delivery.ChannelTeams
		return configureURL("Microsoft Teams Webhook URL:", "Format: https://outlook.office.com/webhook/YOUR/WEBHOOK/URL", &wizard.TeamsWebhook)
	case "Generic Webhook":
		wizard.NotificationChannel = delivery.ChannelWebhook
		return configureURL("Webhook URL:", "Your custom webhook endpoint", &wizard.WebhookURL)
	case "SMS Gateway":
		wizard.NotificationChannel = delivery.ChannelSMS
		return configureSMS(wizard)
	default:
		wizard.NotificationChannel = ""
	}

	return nil
}

func configureTelegram(wizard *ConfigWizard) error {
	questions := []*survey.Question{
		{
			Name: "telegramWebhook",
			Prompt: &survey.Input{
				Message: "Telegram Bot Webhook URL:",
				Help:    "Format: https://api.telegram.org/botTOKEN/sendMessage",
			},
			Validate: survey.Required,
		},
		{
			Name: "telegramChatID",
			Prompt: &survey.Input{
				Message: "Telegram Chat ID:",
				Help:    "Your chat ID or group chat ID",
			},
			Validate: survey.Required,
		},
	}

	return survey.Ask(questions, wizard)
}

func configureEmail(wizard *ConfigWizard) error {
	questions := []*survey.Question{
		{
			Name: "emailSMTPHost",
			Prompt: &survey.Input{
				Message: "SMTP Server Host:",
				Help:    "e.g., smtp.gmail.com",
			},
			Validate: survey.Required,
		},
		{
			Name: "emailSMTPPort",
			Prompt: &survey.Input{
				Message: "SMTP Server Port:",
				Default: "587",
			},
			Validate: survey.Required,
		},
		{
			Name: "emailSMTPUsername",
			Prompt: &survey.Input{
				Message: "SMTP Username (leave empty for no auth):",
			},
		},
		{
			Name: "emailSMTPPassword",
			Prompt: &survey.Password{
				Message: "SMTP Password:",
			},
		},
		{
			Name: "emailFrom",
			Prompt: &survey.Input{
				Message: "From Email Address:",
			},
			Validate: survey.Required,
		},
		{
			Name: "emailUseTLS",
			Prompt: &survey.Confirm{
				Message: "Use TLS?",
				Default: true,
			},
		},
	}

	if err := survey.Ask(questions, wizard); err != nil {
		return err
	}

	var emailToInput string
	prompt := &survey.Input{
		Message: "Recipient Email Addresses (comma-separated):",
		Help:    "Example: devops@example.com,admin@example.com",
	}
	if err := survey.AskOne(prompt, &emailToInput, survey.WithValidator(survey.Required)); err != nil {
		return err
	}
	wizard.EmailTo = config.ParseList(emailToInput)

	return nil
}

func configureSMS(wizard *ConfigWizard) error {
	questions := []*survey.Question{
		{
			Name: "smsGatewayURL",
			Prompt: &survey.Input{
				Message: "SMS Gateway URL:",
				Help:    "Endpoint accepting form posts with to, from and message fields",
			},
			Validate: survey.Required,
		},
		{
			Name: "smsAPIKey",
			Prompt: &survey.Password{
				Message: "SMS Gateway API key (optional):",
			},
		},
		{
			Name: "smsSenderID",
			Prompt: &survey.Input{
				Message: "Sender ID:",
				Default: "DIPNOTIFY",
			},
		},
	}

	if err := survey.Ask(questions, wizard); err != nil {
		return err
	}

	var toInput string
	prompt := &survey.Input{
		Message: "Recipient phone numbers (comma-separated):",
		Help:    "Example: +15550001,+15550002",
	}
	if err := survey.AskOne(prompt, &toInput, survey.WithValidator(survey.Required)); err != nil {
		return err
	}
	wizard.SMSTo = config.ParseList(toInput)

	return nil
}

func configureURL(message, help string, target *string) error {
	question := &survey.Input{
		Message: message,
		Help:    help,
	}

	return survey.AskOne(question, target, survey.WithValidator(survey.Required))
}

func testNotification(cfg *config.Config) error {
	fmt.Println("\nTesting notification channel...")

	logger := logrus.NewEntry(logrus.New())
	logger.Logger.SetOutput(os.Stderr)
	logger.Logger.SetLevel(logrus.ErrorLevel)

	ch, err := delivery.New(cfg.NotificationChannel, cfg, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	testMessage := "dipnotify configuration test\n\nThis is a test message from the configure command.\nIf you see this, your notification channel is working correctly!"

	if err := ch.Deliver(ctx, "dipnotify Configuration Test", testMessage); err != nil {
		return fmt.Errorf("failed to send test notification: %w", err)
	}

	return nil
}

// Config converts the wizard answers into a configuration, keeping only the
// settings of the selected channel
func (w *ConfigWizard) Config() *config.Config {
	cfg := &config.Config{
		LogFormat:           w.LogFormat,
		Subject:             w.Subject,
		NotificationChannel: w.NotificationChannel,
	}

	switch w.NotificationChannel {
	case delivery.ChannelTelegram:
		cfg.TelegramWebhook = w.TelegramWebhook
		cfg.TelegramChatID = w.TelegramChatID
	case delivery.ChannelEmail:
		cfg.EmailSmtpHost = w.EmailSMTPHost
		cfg.EmailSmtpPort = w.EmailSMTPPort
		cfg.EmailSmtpUsername = w.EmailSMTPUsername
		cfg.EmailSmtpPassword = w.EmailSMTPPassword
		cfg.EmailFrom = w.EmailFrom
		cfg.EmailTo = w.EmailTo
		cfg.EmailUseTLS = w.EmailUseTLS
	case delivery.ChannelSlack:
		cfg.SlackWebhook = w.SlackWebhook
	case delivery.ChannelTeams:
		cfg.TeamsWebhook = w.TeamsWebhook
	case delivery.ChannelWebhook:
		cfg.WebhookURL = w.WebhookURL
	case delivery.ChannelSMS:
		cfg.SMSGatewayURL = w.SMSGatewayURL
		cfg.SMSAPIKey = w.SMSAPIKey
		cfg.SMSSenderID = w.SMSSenderID
		cfg.SMSTo = w.SMSTo
	}

	return cfg
}

// SaveConfig writes cfg as YAML to path, creating the directory if needed
func SaveConfig(cfg *config.Config, path string) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// 0600: the file may hold credentials
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
