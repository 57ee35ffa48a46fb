// Package logger builds the slog logger used by the csvq command.
//
// Logging is configured from the environment:
//
//	CSVQ_LOG_LEVEL   DEBUG, INFO, WARN (default) or ERROR, or a numeric slog level
//	CSVQ_LOG_FORMAT  text (default) or json
//
// Records go to stderr so they never mix with table output on stdout.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Environment variables read by LoadConfig.
const (
	EnvLevel  = "CSVQ_LOG_LEVEL"
	EnvFormat = "CSVQ_LOG_FORMAT"
)

// Config holds the logger configuration
type Config struct {
	Level  slog.Level
	Format string    // "json" or "text"
	Writer io.Writer // destination, stderr when nil
}

// DefaultConfig returns the default logger configuration
func DefaultConfig() Config {
	return Config{
		Level:  slog.LevelWarn,
		Format: "text",
		Writer: os.Stderr,
	}
}

// LoadConfig loads the logger configuration from environment variables.
// Unrecognised values leave the defaults in place.
func LoadConfig() Config {
	return loadConfig(os.Getenv)
}

func loadConfig(getenv func(string) string) Config {
	config := DefaultConfig()

	if levelStr := getenv(EnvLevel); levelStr != "" {
		switch strings.ToUpper(levelStr) {
		case "DEBUG":
			config.Level = slog.LevelDebug
		case "INFO":
			config.Level = slog.LevelInfo
		case "WARN":
			config.Level = slog.LevelWarn
		case "ERROR":
			config.Level = slog.LevelError
		default:
			if levelInt, err := strconv.Atoi(levelStr); err == nil {
				config.Level = slog.Level(levelInt)
			}
		}
	}

	if format := strings.ToLower(getenv(EnvFormat)); format == "text" || format == "json" {
		config.Format = format
	}

	return config
}

// New creates a logger with the given configuration
func New(config Config) *slog.Logger {
	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: config.Level}

	var handler slog.Handler
	switch config.Format {
	case "json":
		handler = slog.NewJSONHandler(writer, opts)
	default:
		handler = slog.NewTextHandler(writer, opts)
	}

	return slog.New(handler).With("component", "csvq")
}
