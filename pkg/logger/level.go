package logger

import (
	"fmt"
	"strings"
)

// Level is the severity of a log line. Levels are totally ordered; a logger
// emits a line iff its level is at or above the configured minimum.
type Level int32

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// Fixed-width (5 byte) tags so the bracket columns line up. INFO and WARN
// carry a trailing space.
var levelNames = [...]string{
	"TRACE",
	"DEBUG",
	"INFO ",
	"WARN ",
	"ERROR",
	"FATAL",
}

// String returns the 5-character tag for the level, or "?????" for values
// outside the known range.
func (l Level) String() string {
	if l < LevelTrace || l > LevelFatal {
		return "?????"
	}
	return levelNames[l]
}

// ParseLevel converts a level name ("debug", "INFO", ...) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}
