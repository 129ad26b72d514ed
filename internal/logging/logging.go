// Package logging constructs the service-wide structured logger.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// New builds a leveled zerolog logger. With an empty logFile it writes
// human-readable output to stderr; otherwise it writes JSON to a rotated
// file so long-running deployments do not grow an unbounded log.
func New(level, logFile string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	if logFile != "" {
		out = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
