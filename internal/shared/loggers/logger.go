package loggers

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is a wrapper around zerolog.Logger for convenience.
type Logger = zerolog.Logger

// New creates a new zerolog logger writing JSON lines to w.
// Returns an error if the log level string cannot be parsed.
func New(level string, w io.Writer) (Logger, error) {
	zerologLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	logger := zerolog.New(w).
		Level(zerologLevel).
		With().
		Timestamp().
		Caller().
		Logger()

	return logger, nil
}

// OpenErrorFile opens path for appending and returns a writer that only receives
// records at error level or above. The caller closes the returned file.
func OpenErrorFile(path string) (zerolog.LevelWriter, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open error log file %q: %w", path, err)
	}
	return &minLevelWriter{w: f, min: zerolog.ErrorLevel}, f, nil
}

// Tee fans a record out to every writer, honoring level filters on LevelWriters.
func Tee(writers ...io.Writer) io.Writer {
	return zerolog.MultiLevelWriter(writers...)
}

type minLevelWriter struct {
	w   io.Writer
	min zerolog.Level
}

// Write drops records without level information.
func (m *minLevelWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

func (m *minLevelWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < m.min {
		return len(p), nil
	}
	return m.w.Write(p)
}

// Dict starts a nested log object, e.g. for count maps.
var Dict = zerolog.Dict

// Ctx extracts a logger from the context.
// Returns a disabled logger if no logger is found in context.
var Ctx = func(ctx context.Context) *Logger {
	return zerolog.Ctx(ctx)
}
