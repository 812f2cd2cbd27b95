package ui

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// openDebugLog creates a JSON-lines debug log at path, truncating any
// previous run. The returned func writes a closing entry and closes the file.
func openDebugLog(path string) (zerolog.Logger, func() error, error) {
	f, err := os.Create(path)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("creating debug log: %w", err)
	}

	log := newDebugLogger(f)
	log.Debug().Str("event", "debug_start").Str("log_file", path).Msg("debug logging enabled")

	closeFn := func() error {
		log.Debug().Str("event", "debug_end").Msg("debug logging finished")
		return f.Close()
	}
	return log, closeFn, nil
}

// newDebugLogger returns a debug-level logger writing to f.
func newDebugLogger(f *os.File) zerolog.Logger {
	return zerolog.New(f).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()
}

// logAdd records one AddMinutes call.
func logAdd(log zerolog.Logger, timeStr string, minutes int, result string, err error, elapsed time.Duration) {
	if err != nil {
		log.Debug().
			Str("event", "add_minutes").
			Str("time", timeStr).
			Int("minutes", minutes).
			Err(err).
			Dur("elapsed", elapsed).
			Msg("rejected input")
		return
	}
	log.Debug().
		Str("event", "add_minutes").
		Str("time", timeStr).
		Int("minutes", minutes).
		Str("result", result).
		Dur("elapsed", elapsed).
		Msg("added minutes")
}
