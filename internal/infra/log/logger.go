package log

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger creates a configured zerolog logger: pretty console output at
// debug level for dev, JSON at info level otherwise.
func NewLogger(appEnv string) zerolog.Logger {
	level := zerolog.InfoLevel
	var out io.Writer = os.Stdout
	if appEnv == "dev" {
		level = zerolog.DebugLevel
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	zerolog.TimeFieldFormat = time.RFC3339
	return zerolog.New(out).With().Timestamp().Logger().Level(level)
}
