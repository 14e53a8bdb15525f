package infra

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger constructs a zerolog.Logger for the planner. Logs go to stderr so
// command output on stdout stays clean.
func NewLogger(appEnv string) zerolog.Logger {
	return newLogger(appEnv, os.Stderr)
}

func newLogger(appEnv string, out io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	switch appEnv {
	case "development":
		level = zerolog.DebugLevel
	case "cli":
		level = zerolog.WarnLevel
	}

	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("app", "boothplan").
		Logger()

	if appEnv == "development" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
	}

	return logger
}

// Logger aliases the zerolog.Logger so callers outside the infra package can
// depend on the logging contract without importing the third-party module
// directly.
type Logger = zerolog.Logger
