package core

import (
	"fmt"
	"strings"
)

// Level represents the severity of a log call
type Level int8

const (
	// DebugLevel for diagnostics, shown only while debugging
	DebugLevel Level = iota
	// InfoLevel for general informational messages
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// FatalLevel for unrecoverable conditions. Logging at this level
	// does not terminate the process.
	FatalLevel
)

// String returns the upper-case name of the level
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether l is one of the defined levels
func (l Level) Valid() bool {
	return l >= DebugLevel && l <= FatalLevel
}

// Levels returns every level, most severe first
func Levels() []Level {
	return []Level{FatalLevel, ErrorLevel, WarnLevel, InfoLevel, DebugLevel}
}

// ParseLevel converts a level name to a Level. Matching is
// case-insensitive and accepts WARNING as an alias for WARN.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "FATAL":
		return FatalLevel, nil
	default:
		return InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}
