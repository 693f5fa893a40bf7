package cmd

import (
	"github.com/sirupsen/logrus"
)

// SetupLogging configures the global logrus logger and returns the base entry.
// Logs go to stderr so that stdout only carries notification output.
func SetupLogging(verbose bool, format string) *logrus.Entry {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	if format == "text" {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	return logrus.WithField("service", "dipnotify")
}
