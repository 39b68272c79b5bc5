// Package logger is a thin printf-style facade over zerolog.
//
// The service code only depends on the Info/Warn/Error/Fatal quartet
// (usually through a per-package Logger interface), so the backing
// implementation can stay swappable.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger writes levelled printf-style messages to stdout or a file.
type Logger struct {
	zl   zerolog.Logger
	file *os.File
}

// New creates a logger. An empty path or "stdout" logs to the console;
// anything else is opened (append, create) as the log file. Level is one
// of debug, info, warn, error; unknown values fall back to info.
func New(path, level string) (*Logger, error) {
	var (
		out  io.Writer
		file *os.File
	)

	switch path {
	case "", "stdout":
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	default:
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: open %s: %w", path, err)
		}
		out = f
		file = f
	}

	zl := zerolog.New(out).Level(parseLevel(level)).With().Timestamp().Logger()

	return &Logger{zl: zl, file: file}, nil
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Debug logs at debug level.
func (l *Logger) Debug(format string, v ...interface{}) {
	l.zl.Debug().Msgf(format, v...)
}

// Info logs at info level.
func (l *Logger) Info(format string, v ...interface{}) {
	l.zl.Info().Msgf(format, v...)
}

// Warn logs at warn level.
func (l *Logger) Warn(format string, v ...interface{}) {
	l.zl.Warn().Msgf(format, v...)
}

// Error logs at error level.
func (l *Logger) Error(format string, v ...interface{}) {
	l.zl.Error().Msgf(format, v...)
}

// Fatal logs at fatal level and exits the process.
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.zl.Fatal().Msgf(format, v...)
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
