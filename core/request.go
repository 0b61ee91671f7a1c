package core

// FormatRequest describes a single log call. It is built once per call
// and treated as immutable by everything that receives it.
type FormatRequest struct {
	Level    Level
	Messages []any
}

// NewFormatRequest copies messages so later changes to the caller's
// slice cannot leak into formatters or listeners.
func NewFormatRequest(level Level, messages []any) FormatRequest {
	msgs := make([]any, len(messages))
	copy(msgs, messages)
	return FormatRequest{Level: level, Messages: msgs}
}

// Event is what listeners observe for one log call: the original
// request plus both renderings produced by the formatter.
type Event struct {
	FormatRequest
	// Label is the label of the logger the call was made on
	Label string
	// Console is the rendering meant for a terminal. It may contain
	// ANSI escape sequences.
	Console string
	// File is the plain-text rendering written to the log file.
	File string
}
