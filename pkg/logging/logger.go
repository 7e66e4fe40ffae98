// Package logging writes the registry's structured log: one flat JSON object
// per line on a stream kept apart from the menu.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Output names accepted by New.
const (
	OutputStderr  = "stderr"
	OutputStdout  = "stdout"
	OutputDiscard = "discard"
)

// Reserved keys written on every line. Fields with these keys are ignored.
const (
	KeyTime  = "ts"
	KeyLevel = "level"
	KeyMsg   = "msg"
)

// Logger is what the registry service logs through.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

// Discard drops every line.
var Discard Logger = discard{}

type discard struct{}

func (discard) Debug(string, ...Field) {}
func (discard) Info(string, ...Field)  {}
func (discard) Warn(string, ...Field)  {}
func (discard) Error(string, ...Field) {}
func (d discard) With(...Field) Logger { return d }

// New returns the logger for a configured output name. The console menu
// owns stdout, so "" means stderr.
func New(output string, level Level) (Logger, error) {
	switch output {
	case OutputStderr, "":
		return NewJSONLogger(os.Stderr, level), nil
	case OutputStdout:
		return NewJSONLogger(os.Stdout, level), nil
	case OutputDiscard:
		return Discard, nil
	}
	return nil, fmt.Errorf("unknown log output %q", output)
}

// JSONLogger writes flat JSON lines. Children made by With share the
// parent's writer and lock.
type JSONLogger struct {
	sink  *sink
	level Level
	base  []Field
}

type sink struct {
	mu  sync.Mutex
	enc *json.Encoder
	now func() time.Time
}

// NewJSONLogger writes lines at or above level to w.
func NewJSONLogger(w io.Writer, level Level) *JSONLogger {
	return &JSONLogger{
		sink:  &sink{enc: json.NewEncoder(w), now: time.Now},
		level: level,
	}
}

func (l *JSONLogger) Debug(msg string, fields ...Field) { l.write(DebugLevel, msg, fields) }
func (l *JSONLogger) Info(msg string, fields ...Field)  { l.write(InfoLevel, msg, fields) }
func (l *JSONLogger) Warn(msg string, fields ...Field)  { l.write(WarnLevel, msg, fields) }
func (l *JSONLogger) Error(msg string, fields ...Field) { l.write(ErrorLevel, msg, fields) }

// With returns a child that adds fields to every line.
func (l *JSONLogger) With(fields ...Field) Logger {
	base := make([]Field, 0, len(l.base)+len(fields))
	base = append(base, l.base...)
	base = append(base, fields...)
	return &JSONLogger{sink: l.sink, level: l.level, base: base}
}

func (l *JSONLogger) write(level Level, msg string, fields []Field) {
	if level < l.level {
		return
	}

	line := make(map[string]any, len(l.base)+len(fields)+3)
	for _, f := range l.base {
		line[f.Key] = f.Value
	}
	// call-site fields win over With fields
	for _, f := range fields {
		line[f.Key] = f.Value
	}

	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	line[KeyTime] = l.sink.now().UTC().Format(time.RFC3339Nano)
	line[KeyLevel] = level.String()
	line[KeyMsg] = msg
	_ = l.sink.enc.Encode(line)
}
