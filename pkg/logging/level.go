package logging

import "strings"

// Level is the minimum severity a logger writes.
//
// The registry logs on three rungs: lookups at debug, successful mutations
// at info, rejected operations (duplicates, full collections, bad slots) at
// warn. Error is left for failures the front end cannot recover from.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// DefaultLevel keeps an interactive session quiet unless something was rejected.
const DefaultLevel = WarnLevel

var levelNames = [...]string{"debug", "info", "warn", "error"}

func (l Level) String() string {
	if l < DebugLevel || l > ErrorLevel {
		return "unknown"
	}
	return levelNames[l]
}

// ParseLevel maps a config or LOG_LEVEL value to a Level. Matching is case
// insensitive; "warning" is accepted. Anything else yields DefaultLevel.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	}
	return DefaultLevel
}
