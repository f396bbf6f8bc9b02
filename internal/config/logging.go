package config

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// InitLogger configures the global logrus logger from the config. Invalid
// levels and unwritable outputs degrade to info/stdout with a warning.
func InitLogger(cfg LoggingConfig) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logrus.Warnf("invalid log level %q, using info: %v", cfg.Level, err)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	switch strings.ToLower(cfg.Format) {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	var output io.Writer
	switch strings.ToLower(cfg.Output) {
	case "", "stdout":
		output = os.Stdout
	case "stderr":
		output = os.Stderr
	default:
		file, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			logrus.Warnf("failed to open log file %q, using stdout: %v", cfg.Output, err)
			output = os.Stdout
		} else {
			output = file
		}
	}
	logrus.SetOutput(output)
}
