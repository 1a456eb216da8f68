// Package logging builds the structured logger used across the game.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options selects level, format and destination.
type Options struct {
	Level  string // logrus level name; unknown names fall back to info
	Format string // "json" or "text"
	Output io.Writer
}

// New returns a configured logger. A nil Output discards everything.
func New(opts Options) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if strings.ToLower(opts.Format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	if opts.Output == nil {
		log.SetOutput(io.Discard)
	} else {
		log.SetOutput(opts.Output)
	}
	return log
}

// OpenFile opens path for appending log lines.
func OpenFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return f, nil
}

// Discard returns a logger that drops every entry. Useful in tests.
func Discard() *logrus.Logger {
	return New(Options{Level: "panic"})
}
