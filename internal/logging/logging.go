// Package logging builds the zerolog loggers used by the CLI and the HTTP server.
package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when the configured level cannot be parsed.
const DefaultLevel = zerolog.InfoLevel

// ParseLevel parses a level name, falling back to DefaultLevel for empty or unknown names.
func ParseLevel(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(name)
	if err != nil || name == "" {
		return DefaultLevel
	}
	return level
}

// New creates a logger writing to out (stderr when nil). With pretty set the output is
// the human-readable console format instead of JSON lines.
func New(level string, pretty bool, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stderr
	}
	if pretty {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.Kitchen,
		}
	}

	return zerolog.New(out).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// Ctx returns the logger attached to ctx, or a disabled logger.
func Ctx(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
