// Package logger configures the global zerolog logger for the cart
// service and provides session-scoped sub-loggers.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const serviceName = "cart-service"

// Init configures the global logger. Unknown levels fall back to info.
// With pretty enabled, output is human-readable console format instead
// of JSON.
func Init(level string, pretty bool) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var base zerolog.Logger
	if pretty {
		base = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	} else {
		base = zerolog.New(os.Stderr)
	}
	log.Logger = base.With().Timestamp().Str("service", serviceName).Logger()
}

// Logger returns the global logger instance.
func Logger() zerolog.Logger {
	return log.Logger
}

// WithSession returns a logger stamped with the cart session it
// concerns.
func WithSession(sessionID string) zerolog.Logger {
	return log.Logger.With().Str("session_id", sessionID).Logger()
}
