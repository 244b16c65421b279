// Package logging configures the leveled stderr logger shared by all
// commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// EnvLogLevel sets the default level when --log-level is not given.
const EnvLogLevel = "TODO_LOG_LEVEL"

// DefaultLevel keeps normal runs quiet except for skipped documents.
const DefaultLevel = "warn"

// Options controls how the logger writes.
type Options struct {
	Level  string
	Format string
	Output io.Writer
}

var (
	mu      sync.Mutex
	current = New(Options{})
)

// New builds a logger from opts. Invalid values fall back to the defaults;
// use ParseLevel and ParseFormat to validate user input first.
func New(opts Options) *log.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	level, err := ParseLevel(opts.Level)
	if err != nil {
		level = log.WarnLevel
	}
	formatter, err := ParseFormat(opts.Format)
	if err != nil {
		formatter = log.TextFormatter
	}

	return log.NewWithOptions(out, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: level == log.DebugLevel,
		Prefix:          "todo",
	})
}

// Setup validates opts and installs the resulting logger.
func Setup(opts Options) error {
	if _, err := ParseLevel(opts.Level); err != nil {
		return err
	}
	if _, err := ParseFormat(opts.Format); err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	current = New(opts)
	return nil
}

// L returns the installed logger.
func L() *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	return current
}

// ParseLevel maps a level name to a log level. The empty string means
// DefaultLevel.
func ParseLevel(level string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel, nil
	case "info":
		return log.InfoLevel, nil
	case "", "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.WarnLevel, fmt.Errorf("unknown log level %q (use debug, info, warn or error)", level)
	}
}

// ParseFormat maps a format name to a formatter. The empty string means
// text.
func ParseFormat(format string) (log.Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return log.TextFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	default:
		return log.TextFormatter, fmt.Errorf("unknown log format %q (use text, json or logfmt)", format)
	}
}
