package logging

import "time"

// Field is one key/value on a log line.
type Field struct {
	Key   string
	Value any
}

func String(key, value string) Field    { return Field{Key: key, Value: value} }
func Int(key string, value int) Field   { return Field{Key: key, Value: value} }
func Bool(key string, value bool) Field { return Field{Key: key, Value: value} }

// Error records err under "error"; a nil error is written as null.
func Error(err error) Field {
	if err == nil {
		return Field{Key: "error"}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Registry fields. Every line about a slot uses the same keys so a session
// can be followed with a single jq filter.

func Component(name string) Field { return String("component", name) }
func Session(id string) Field     { return String("session", id) }
func Operation(op string) Field   { return String("op", op) }
func Station(name string) Field   { return String("station", name) }
func Slot(index int) Field        { return Int("slot", index) }
func Kind(kind string) Field      { return String("kind", kind) }
func Removed(n int) Field         { return Int("removed", n) }

// Pair records a connection as "from - to", the way the shell prints it.
func Pair(from, to string) Field { return String("pair", from+" - "+to) }

// Latency records d in microseconds; registry operations are far below a
// millisecond.
func Latency(d time.Duration) Field {
	return Field{Key: "latency_us", Value: d.Microseconds()}
}
