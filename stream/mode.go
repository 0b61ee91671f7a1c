package stream

import (
	"strings"

	"github.com/philipp01105/duolog/core"
)

// Mode selects what Create does with an existing file
type Mode int

const (
	// Append keeps the existing content and appends to it
	Append Mode = iota
	// Truncate discards the existing content
	Truncate
	// Rename archives the existing file and starts a new one
	Rename
)

func (m Mode) String() string {
	switch m {
	case Append:
		return "APPEND"
	case Truncate:
		return "TRUNCATE"
	case Rename:
		return "RENAME"
	default:
		return "UNKNOWN"
	}
}

// ParseMode parses a mode name case-insensitively
func ParseMode(s string) (Mode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "APPEND", "":
		return Append, nil
	case "TRUNCATE":
		return Truncate, nil
	case "RENAME":
		return Rename, nil
	default:
		return Append, core.NewConfigurationError("parse mode", "unknown write stream mode "+s)
	}
}
