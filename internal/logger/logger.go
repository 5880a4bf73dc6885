package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// CreateLogger builds the process logger. format is "json" or "text"; an
// unknown level falls back to info.
func CreateLogger(serviceName string, level string, format string) logrus.FieldLogger {
	return newLogger(os.Stderr, serviceName, level, format)
}

func newLogger(out io.Writer, serviceName string, level string, format string) logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(out)

	if format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	return l.WithField("service", serviceName)
}
