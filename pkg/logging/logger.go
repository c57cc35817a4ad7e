package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// NewJSONLogger returns a logger writing entries at or above level to w.
func NewJSONLogger(w io.Writer, level Level) *JSONLogger {
	return &JSONLogger{out: &lockedWriter{w: w}, min: level}
}

// NewDefaultLogger writes INFO and above to stderr. Stdout carries the report.
func NewDefaultLogger() *JSONLogger {
	return NewJSONLogger(os.Stderr, InfoLevel)
}

func (l *JSONLogger) write(level Level, msg string, fields []Field) {
	if level < l.min {
		return
	}

	entry := make(map[string]any, len(l.base)+len(fields)+3)
	for _, f := range l.base {
		entry[f.Key] = f.Value
	}
	for _, f := range fields {
		entry[f.Key] = f.Value
	}
	entry[timeKey] = time.Now().Format(time.RFC3339Nano)
	entry[levelKey] = level.String()
	entry[msgKey] = msg

	data, err := json.Marshal(entry)
	if err != nil {
		data = fmt.Appendf(nil, `{"%s":%q,"%s":"ERROR","%s":%q}`,
			timeKey, time.Now().Format(time.RFC3339Nano), levelKey, msgKey, "unencodable log entry: "+err.Error())
	}
	data = append(data, '\n')

	l.out.mu.Lock()
	l.out.w.Write(data)
	l.out.mu.Unlock()
}

func (l *JSONLogger) Debug(msg string, fields ...Field) { l.write(DebugLevel, msg, fields) }
func (l *JSONLogger) Info(msg string, fields ...Field)  { l.write(InfoLevel, msg, fields) }
func (l *JSONLogger) Warn(msg string, fields ...Field)  { l.write(WarnLevel, msg, fields) }
func (l *JSONLogger) Error(msg string, fields ...Field) { l.write(ErrorLevel, msg, fields) }

// With returns a child that writes to the same destination under the same lock.
func (l *JSONLogger) With(fields ...Field) Logger {
	base := make([]Field, 0, len(l.base)+len(fields))
	base = append(base, l.base...)
	base = append(base, fields...)
	return &JSONLogger{out: l.out, min: l.min, base: base}
}

var (
	defaultMu     sync.RWMutex
	defaultLogger Logger = NewDefaultLogger()
)

// DefaultLogger returns the process logger used when a component is given none.
func DefaultLogger() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefaultLogger replaces the process logger. Nil restores the stderr logger.
func SetDefaultLogger(logger Logger) {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	defaultMu.Lock()
	defaultLogger = logger
	defaultMu.Unlock()
}

// OrDefault returns logger, or the process logger when logger is nil.
func OrDefault(logger Logger) Logger {
	if logger == nil {
		return DefaultLogger()
	}
	return logger
}

// StartTimer begins timing an operation that is logged as msg on completion.
func StartTimer(logger Logger, msg string, fields ...Field) *TimedOperation {
	return &TimedOperation{logger: OrDefault(logger), msg: msg, start: time.Now(), fields: fields}
}

// End logs the operation at INFO and returns its duration.
func (t *TimedOperation) End(fields ...Field) time.Duration {
	elapsed := time.Since(t.start)
	t.logger.Info(t.msg, t.with(elapsed, fields)...)
	return elapsed
}

// EndError logs the operation at ERROR with err and returns its duration.
func (t *TimedOperation) EndError(err error) time.Duration {
	elapsed := time.Since(t.start)
	t.logger.Error(t.msg, t.with(elapsed, []Field{Error(err)})...)
	return elapsed
}

func (t *TimedOperation) with(elapsed time.Duration, extra []Field) []Field {
	out := make([]Field, 0, len(t.fields)+len(extra)+1)
	out = append(out, t.fields...)
	out = append(out, extra...)
	return append(out, Latency(elapsed))
}
