package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the service logger. Levels come from the configuration
// so a deployment can be made chattier without a rebuild.
func New(level string) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}

	return zerolog.New(os.Stdout).
		With().
		Timestamp().
		Logger().
		Level(parsed)
}
