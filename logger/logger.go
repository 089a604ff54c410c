package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Level represents the logging level
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelSilent
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelSilent:
		return "SILENT"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a config string (debug, info, warn, error, silent)
// into a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "silent", "off", "none":
		return LevelSilent, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.Disabled
	}
}

// Logger provides structured logging with configurable levels
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	WithFields(fields ...Field) Logger
	SetLevel(level Level)
}

// Field represents a structured log field
type Field struct {
	Key   string
	Value any
}

// F is a convenience function for creating fields
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// zeroLogger implements Logger on top of zerolog
type zeroLogger struct {
	mu    sync.Mutex
	zl    zerolog.Logger
	level Level
}

// NewLogger creates a JSON logger with the specified level and output
func NewLogger(level Level, out io.Writer) Logger {
	if out == nil {
		out = os.Stdout
	}
	return newZeroLogger(zerolog.New(out).With().Timestamp().Logger(), level)
}

// NewConsoleLogger creates a human-readable logger for terminal use
func NewConsoleLogger(level Level, out io.Writer, noColor bool) Logger {
	if out == nil {
		out = os.Stderr
	}
	cw := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
	}
	return newZeroLogger(zerolog.New(cw).With().Timestamp().Logger(), level)
}

// NewDefaultLogger creates a console logger at Info level writing to stderr
func NewDefaultLogger() Logger {
	return NewConsoleLogger(LevelInfo, os.Stderr, false)
}

// NewSilentLogger creates a logger that outputs nothing
func NewSilentLogger() Logger {
	return newZeroLogger(zerolog.Nop(), LevelSilent)
}

func newZeroLogger(zl zerolog.Logger, level Level) *zeroLogger {
	return &zeroLogger{
		zl:    zl.Level(level.zerolog()),
		level: level,
	}
}

// SetLevel sets the minimum logging level
func (l *zeroLogger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
	l.zl = l.zl.Level(level.zerolog())
}

// WithFields returns a new logger with additional fields
func (l *zeroLogger) WithFields(fields ...Field) Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	zc := l.zl.With()
	for _, f := range fields {
		zc = zc.Interface(f.Key, f.Value)
	}
	return &zeroLogger{zl: zc.Logger(), level: l.level}
}

// Debug logs a debug message
func (l *zeroLogger) Debug(msg string, fields ...Field) {
	l.log(LevelDebug, msg, fields...)
}

// Info logs an info message
func (l *zeroLogger) Info(msg string, fields ...Field) {
	l.log(LevelInfo, msg, fields...)
}

// Warn logs a warning message
func (l *zeroLogger) Warn(msg string, fields ...Field) {
	l.log(LevelWarn, msg, fields...)
}

// Error logs an error message
func (l *zeroLogger) Error(msg string, fields ...Field) {
	l.log(LevelError, msg, fields...)
}

func (l *zeroLogger) log(level Level, msg string, fields ...Field) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	event := l.zl.WithLevel(level.zerolog())
	for _, f := range fields {
		if err, ok := f.Value.(error); ok {
			event = event.AnErr(f.Key, err)
			continue
		}
		event = event.Interface(f.Key, f.Value)
	}
	event.Msg(msg)
}

// Global default logger
var defaultLogger = NewDefaultLogger()

// SetDefault sets the global default logger
func SetDefault(l Logger) {
	defaultLogger = l
}

// Default returns the global default logger
func Default() Logger {
	return defaultLogger
}
