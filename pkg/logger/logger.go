package logger

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// MaxEntries bounds the in-memory diagnostic buffer; older entries are dropped.
const MaxEntries = 50

type Entry struct {
	Time    time.Time `json:"time"`
	Level   string    `json:"level"`
	Message string    `json:"message"`
}

// Logger writes to two sinks: a zerolog console writer and a bounded ring of
// recent entries that the diagnostics endpoint exposes. It is meant to be
// constructed once in main and injected, not used as a package global.
type Logger struct {
	zl zerolog.Logger

	mu      sync.Mutex
	entries []Entry
}

func New(environment string) *Logger {
	level := zerolog.InfoLevel
	if environment == "development" {
		level = zerolog.DebugLevel
	}

	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()

	return &Logger{zl: zl}
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.log(zerolog.InfoLevel, format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.log(zerolog.WarnLevel, format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.log(zerolog.ErrorLevel, format, v...)
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.log(zerolog.DebugLevel, format, v...)
}

func (l *Logger) log(level zerolog.Level, format string, v ...interface{}) {
	message := fmt.Sprintf(format, v...)
	l.zl.WithLevel(level).Msg(message)

	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append([]Entry{{
		Time:    time.Now(),
		Level:   level.String(),
		Message: message,
	}}, l.entries...)
	if len(l.entries) > MaxEntries {
		l.entries = l.entries[:MaxEntries]
	}
}

// Recent returns the buffered entries, newest first.
func (l *Logger) Recent() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Logger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}
