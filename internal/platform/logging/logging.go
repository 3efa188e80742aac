// Package logging configures structured zerolog loggers for service commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options selects log level and output format.
type Options struct {
	// Level is a zerolog level name such as "debug" or "info". Empty means info.
	Level string
	// Pretty switches from JSON lines to the human console writer.
	Pretty bool
	// Out overrides the destination. Defaults to stdout.
	Out io.Writer
}

// New builds a logger tagged with the service name.
func New(service string, opts Options) (zerolog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			FormatLevel: func(i any) string {
				return fmt.Sprintf("| %-6s|", i)
			},
		}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", strings.TrimSpace(service)).
		Logger(), nil
}

// ParseLevel maps a level name to a zerolog level.
func ParseLevel(value string) (zerolog.Level, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(value)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("parse log level %q: %w", value, err)
	}
	return level, nil
}
