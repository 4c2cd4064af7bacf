// Package logger configures the process-wide zerolog logger and hands out
// component-scoped sub-loggers.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New returns a logger tagged with the given component name
func New(component string) zerolog.Logger {
	return log.With().
		Str("component", component).
		Logger()
}

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if _, debug := os.LookupEnv("DEBUG"); debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})
}
