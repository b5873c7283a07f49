package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"pdf-style-reader/internal/domain"
)

// Level represents a logging severity level
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// StdLogger implements the domain.Logger interface on top of the standard
// library logger. Fields are key/value pairs appended to the message.
type StdLogger struct {
	level Level
	out   *log.Logger
}

// NewLogger creates a new logger instance for the given level name
func NewLogger(levelStr string) domain.Logger {
	return &StdLogger{
		level: parseLevel(levelStr),
		out:   log.New(os.Stdout, "", 0),
	}
}

// Info logs an info message
func (l *StdLogger) Info(msg string, fields ...interface{}) {
	if l.level <= InfoLevel {
		l.write("INFO", msg, fields)
	}
}

// Error logs an error message with its cause as the first field
func (l *StdLogger) Error(msg string, err error, fields ...interface{}) {
	if l.level <= ErrorLevel {
		l.write("ERROR", msg, append([]interface{}{"error", err}, fields...))
	}
}

// Debug logs a debug message
func (l *StdLogger) Debug(msg string, fields ...interface{}) {
	if l.level <= DebugLevel {
		l.write("DEBUG", msg, fields)
	}
}

// Warn logs a warning message
func (l *StdLogger) Warn(msg string, fields ...interface{}) {
	if l.level <= WarnLevel {
		l.write("WARN", msg, fields)
	}
}

func (l *StdLogger) write(level, msg string, fields []interface{}) {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: %s", time.Now().Format("2006-01-02 15:04:05"), level, msg)

	// A dangling key without a value is logged as-is rather than dropped.
	for i := 0; i < len(fields); i += 2 {
		if i+1 < len(fields) {
			fmt.Fprintf(&b, " %v=%v", fields[i], fields[i+1])
		} else {
			fmt.Fprintf(&b, " %v", fields[i])
		}
	}

	l.out.Println(b.String())
}

func parseLevel(levelStr string) Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}
