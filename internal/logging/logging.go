// Package logging builds the diagnostic logger used while walking.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing plain-text diagnostics to w.
// Skipped entries are reported at warn level; debug enables walk tracing.
func New(w io.Writer, debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(level(debug))
	log.Formatter = &logrus.TextFormatter{
		DisableTimestamp: true,
		DisableQuote:     true,
	}

	return log
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.Out = io.Discard
	log.SetLevel(logrus.PanicLevel)

	return log
}

func level(debug bool) logrus.Level {
	if debug || os.Getenv("DEBUG") == "TRUE" {
		return logrus.DebugLevel
	}

	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		return lvl
	}

	return logrus.WarnLevel
}
