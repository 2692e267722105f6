// Package logging builds the structured logger shared by the game and its tools.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Prefix tags every line written by the game
const Prefix = "rise"

// New creates a logger writing to w.
// An empty level falls back to LOG_LEVEL, then to "info".
// LOG_FORMAT=json switches to JSON lines.
func New(w io.Writer, level string) (*log.Logger, error) {
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if level == "" {
		level = "info"
	}

	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           lvl,
	}
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		opts.Formatter = log.JSONFormatter
	}

	return log.NewWithOptions(w, opts), nil
}

// Discard returns a logger that drops everything, for tests and headless runs
func Discard() *log.Logger {
	return log.New(io.Discard)
}
