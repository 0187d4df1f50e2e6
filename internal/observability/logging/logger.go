package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// ServiceName tags every record written by the API process.
const ServiceName = "hanja-api"

// Options selects the handler and level of a logger.
type Options struct {
	Level  string
	JSON   bool
	Output io.Writer
}

// New builds a logger with a service attribute.
func New(service string, opts Options) *slog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(out, handlerOpts)
	} else {
		handler = slog.NewTextHandler(out, handlerOpts)
	}
	return slog.New(handler).With("service", service)
}

// Setup installs the logger as the process default and returns it.
func Setup(opts Options) *slog.Logger {
	logger := New(ServiceName, opts)
	slog.SetDefault(logger)
	return logger
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
