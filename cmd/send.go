package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dipnotify/internal/config"
	"dipnotify/internal/delivery"
	"dipnotify/internal/notification"
)

// NewSendCmd creates the send subcommand
func NewSendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send [message...]",
		Short: "Send a message through the configured notification channel",
		Long: `Send a message through a notification channel.

By default the message is delivered over the transport named by
notification_channel (telegram, email, slack, teams, webhook or sms).
With --console the message is printed by the console SMS or Email sender instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSend,
	}

	cmd.Flags().String("channel", "", "Channel to use, overrides notification_channel")
	cmd.Flags().String("subject", "", "Subject line, overrides subject")
	cmd.Flags().Bool("console", false, "Print through the console sender of the channel ('sms' or 'email') instead of delivering")

	return cmd
}

func runSend(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := SetupLogging(cfg.Verbose, cfg.LogFormat)

	channel := cfg.NotificationChannel
	if cmd.Flags().Changed("channel") {
		channel, _ = cmd.Flags().GetString("channel")
	}
	if cmd.Flags().Changed("subject") {
		cfg.Subject, _ = cmd.Flags().GetString("subject")
	}
	console, _ := cmd.Flags().GetBool("console")

	message := strings.Join(args, " ")

	if console {
		variant, err := consoleVariant(cmd, cfg.NotificationChannel)
		if err != nil {
			return err
		}
		sender, err := notification.NewConsoleSender(variant, cmd.OutOrStdout())
		if err != nil {
			return err
		}

		notification.NewNotification(sender).Notify(message)
		return nil
	}

	if channel == "" {
		return fmt.Errorf("no notification channel configured, use --channel or --console")
	}

	ch, err := delivery.New(channel, cfg, logger.WithField("component", "delivery"))
	if err != nil {
		return fmt.Errorf("failed to create %s channel: %w", channel, err)
	}

	var deliveryErr error
	sender := notification.NewChannelSender(ch, cfg.Subject, cfg.Timeout, logger.WithField("component", "notifier"))
	sender.OnError = func(err error) { deliveryErr = err }

	notification.NewNotification(sender).Notify(message)

	if deliveryErr != nil {
		return deliveryErr
	}

	logger.WithField("channel", ch.Name()).Info("Notification sent")
	return nil
}

// consoleVariant picks the console sender for --console. An explicit --channel
// must name a variant; a configured transport channel that is not one falls
// back to SMS.
func consoleVariant(cmd *cobra.Command, configured string) (notification.Variant, error) {
	if cmd.Flags().Changed("channel") {
		name, _ := cmd.Flags().GetString("channel")
		return notification.ParseVariant(name)
	}

	if variant, err := notification.ParseVariant(configured); err == nil {
		return variant, nil
	}
	return notification.VariantSMS, nil
}
