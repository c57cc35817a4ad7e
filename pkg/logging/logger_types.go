package logging

import (
	"io"
	"sync"
	"time"
)

// Level orders log entries by severity.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

var levelNames = [...]string{
	DebugLevel: "DEBUG",
	InfoLevel:  "INFO",
	WarnLevel:  "WARN",
	ErrorLevel: "ERROR",
}

func (l Level) String() string {
	if l < DebugLevel || l > ErrorLevel {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// Field is one key/value pair of a structured entry.
type Field struct {
	Key   string
	Value any
}

// Logger writes structured entries. Children created with With share the
// parent's destination and add their fields to every entry.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

// JSONLogger writes one JSON object per line. Fields sit next to the time,
// level and msg keys; a field named like one of those is dropped.
type JSONLogger struct {
	out  *lockedWriter
	min  Level
	base []Field
}

// lockedWriter serializes writes from a logger and all of its children.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

// Reserved entry keys.
const (
	timeKey  = "time"
	levelKey = "level"
	msgKey   = "msg"
)

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string, ...Field) {}
func (NopLogger) Info(string, ...Field)  {}
func (NopLogger) Warn(string, ...Field)  {}
func (NopLogger) Error(string, ...Field) {}
func (n NopLogger) With(...Field) Logger { return n }

func NewNopLogger() Logger {
	return NopLogger{}
}

// TimedOperation logs a message with the time elapsed since StartTimer.
type TimedOperation struct {
	logger Logger
	msg    string
	start  time.Time
	fields []Field
}
