// Package logger provides a small leveled logger with structured fields.
//
// Prompt rejections, config resolution and CLI lifecycle events are logged
// through this package. Nothing here is part of what the user sees at the
// prompt; messages shown to the user go through the input and output
// packages instead.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
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

// ParseLevel maps a case-insensitive level name to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug, nil
	case "INFO", "":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "ERROR":
		return LevelError, nil
	case "SILENT", "OFF":
		return LevelSilent, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Logger is a leveled logger that attaches key/value fields to each line.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	WithFields(fields ...Field) Logger
	SetLevel(level Level)
}

// Field is a single key/value pair on a log line.
type Field struct {
	Key   string
	Value any
}

// F builds a Field.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

type standardLogger struct {
	mu     *sync.Mutex
	level  *Level
	out    io.Writer
	fields []Field
}

// NewLogger creates a logger writing lines at or above level to out.
// A nil out writes to stderr.
func NewLogger(level Level, out io.Writer) Logger {
	if out == nil {
		out = os.Stderr
	}
	return &standardLogger{
		mu:    &sync.Mutex{},
		level: &level,
		out:   out,
	}
}

// NewDefaultLogger creates an Info level logger writing to stderr.
func NewDefaultLogger() Logger {
	return NewLogger(LevelInfo, os.Stderr)
}

// NewSilentLogger creates a logger that outputs nothing.
func NewSilentLogger() Logger {
	return NewLogger(LevelSilent, io.Discard)
}

// SetLevel changes the minimum level. Loggers derived through WithFields
// share the level with their parent.
func (l *standardLogger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.level = level
}

// WithFields returns a child logger that prefixes every line with fields.
func (l *standardLogger) WithFields(fields ...Field) Logger {
	merged := make([]Field, 0, len(l.fields)+len(fields))
	merged = append(merged, l.fields...)
	merged = append(merged, fields...)

	return &standardLogger{
		mu:     l.mu,
		level:  l.level,
		out:    l.out,
		fields: merged,
	}
}

func (l *standardLogger) Debug(msg string, fields ...Field) {
	l.log(LevelDebug, msg, fields)
}

func (l *standardLogger) Info(msg string, fields ...Field) {
	l.log(LevelInfo, msg, fields)
}

func (l *standardLogger) Warn(msg string, fields ...Field) {
	l.log(LevelWarn, msg, fields)
}

func (l *standardLogger) Error(msg string, fields ...Field) {
	l.log(LevelError, msg, fields)
}

func (l *standardLogger) log(level Level, msg string, fields []Field) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < *l.level || *l.level == LevelSilent {
		return
	}

	var b strings.Builder
	b.WriteString(time.Now().Format("2006-01-02 15:04:05"))
	b.WriteString(" [")
	b.WriteString(level.String())
	b.WriteString("] ")
	b.WriteString(msg)

	if len(l.fields)+len(fields) > 0 {
		b.WriteString(" |")
		for _, f := range l.fields {
			fmt.Fprintf(&b, " %s=%v", f.Key, f.Value)
		}
		for _, f := range fields {
			fmt.Fprintf(&b, " %s=%v", f.Key, f.Value)
		}
	}
	b.WriteByte('\n')

	_, _ = io.WriteString(l.out, b.String())
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = NewSilentLogger()
)

// SetDefault replaces the process-wide logger.
func SetDefault(l Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Default returns the process-wide logger. It is silent until SetDefault
// is called.
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

func Debug(msg string, fields ...Field) { Default().Debug(msg, fields...) }
func Info(msg string, fields ...Field)  { Default().Info(msg, fields...) }
func Warn(msg string, fields ...Field)  { Default().Warn(msg, fields...) }
func Error(msg string, fields ...Field) { Default().Error(msg, fields...) }
