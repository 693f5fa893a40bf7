package main

import (
	"fmt"
	"io"

	"github.com/Masterminds/semver/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"dipnotify/cmd"
	"dipnotify/internal/notification"
)

var (
	version = "dev"
	commit  = "unknown"
)

// demoMessage is the text both demo notifications carry
const demoMessage = "Hello"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   "dipnotify",
		Short: "Notification demo built on an injected sender",
		Long: `dipnotify shows a notification component that depends only on a sender
capability. Without a subcommand it notifies "Hello" through the SMS sender and
then through the Email sender. The send subcommand delivers real messages over
Telegram, Email, Slack, Microsoft Teams, generic webhooks or an SMS gateway.`,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(c *cobra.Command, args []string) {
			fmt.Fprintf(c.OutOrStdout(), "dipnotify version %s (commit: %s)\n", versionString(version), commit)
		},
	})
	rootCmd.AddCommand(cmd.NewSendCmd())
	rootCmd.AddCommand(cmd.NewConfigureCmd())

	rootCmd.PersistentFlags().StringP("config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	if err := viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")); err != nil {
		logrus.WithError(err).Fatal("Failed to bind flags")
	}

	return rootCmd
}

// run executes the demonstration. It needs no configuration.
func run(c *cobra.Command, args []string) error {
	verbose, _ := c.Flags().GetBool("verbose")
	logger := cmd.SetupLogging(verbose, "json")

	logger.WithField("version", version).Debug("Running notification demo")
	runDemo(c.OutOrStdout())

	return nil
}

// runDemo notifies the same message through the SMS and then the Email sender
func runDemo(w io.Writer) {
	n := notification.NewNotification(notification.NewSMSSender(w))
	n.Notify(demoMessage)

	n = notification.NewNotification(notification.NewEmailSender(w))
	n.Notify(demoMessage)
}

// versionString normalises v when it is a semantic version and returns it
// unchanged otherwise (e.g. "dev")
func versionString(v string) string {
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return v
	}
	return "v" + parsed.String()
}
