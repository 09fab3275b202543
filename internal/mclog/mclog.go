// Package mclog sets up leveled, colorized logging for the client,
// mirroring the teacher's SetupLogging shape adapted for a standalone CLI
// client rather than a background daemon (no syslog backend).
package mclog

import (
	"os"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("")

var stderrFormat = logging.MustStringFormatter(
	`%{color}%{time:15:04:05.000} %{level:.4s}%{color:reset} ▶ %{message}`,
)

// SetupLogging installs a stderr backend at defaultLevel, overridable via
// the MCPROTO_LOG_LEVEL environment variable, and returns the package
// logger.
func SetupLogging(prefix string, defaultLevel logging.Level) *logging.Logger {
	backend := logging.NewLogBackend(os.Stderr, prefix, 0)
	logging.SetFormatter(stderrFormat)

	leveled := logging.AddModuleLevel(backend)
	switch os.Getenv("MCPROTO_LOG_LEVEL") {
	case "CRITICAL":
		leveled.SetLevel(logging.CRITICAL, prefix)
	case "ERROR":
		leveled.SetLevel(logging.ERROR, prefix)
	case "WARNING":
		leveled.SetLevel(logging.WARNING, prefix)
	case "NOTICE":
		leveled.SetLevel(logging.NOTICE, prefix)
	case "INFO":
		leveled.SetLevel(logging.INFO, prefix)
	case "DEBUG":
		leveled.SetLevel(logging.DEBUG, prefix)
	default:
		leveled.SetLevel(defaultLevel, prefix)
	}

	logging.SetBackend(leveled)
	return log
}

// Log is the shared package logger, usable before SetupLogging runs (it
// then logs at go-logging's default level).
func Log() *logging.Logger { return log }
