package logging

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Log formats accepted by New.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Levels lists the accepted level names, from most to least verbose.
var Levels = []string{"debug", "info", "warn", "error", "disabled"}

// Formats lists the accepted output formats.
var Formats = []string{FormatConsole, FormatJSON}

// Config controls the diagnostic logger. It never affects what the
// interactive session prints.
type Config struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// New returns a logger writing to w at the configured level.
func New(cfg Config, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), errors.Wrap(err, "invalid log level")
	}

	switch cfg.Format {
	case FormatConsole, "":
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		}
	case FormatJSON:
	default:
		return zerolog.Nop(), errors.Errorf("invalid log format: '%s'", cfg.Format)
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger(), nil
}
