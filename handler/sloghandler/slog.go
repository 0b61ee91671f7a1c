package sloghandler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/philipp01105/duolog/core"
	"github.com/philipp01105/duolog/logger"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// *logger.Logger
type SlogHandler struct {
	logger *logger.Logger
	level  core.Level
	attrs  []string
	group  string
}

// New creates a slog.Handler that logs records at or above level to l
func New(l *logger.Logger, level core.Level) *SlogHandler {
	return &SlogHandler{
		logger: l,
		level:  level,
	}
}

// Enabled reports whether the handler handles records at the given level.
// Debug records additionally depend on the logger's debug mode.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevelToCore(level) >= s.level
}

// Handle logs the record's message and attributes as one call
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	messages := make([]any, 0, 1+len(s.attrs)+record.NumAttrs())
	messages = append(messages, record.Message)
	for _, a := range s.attrs {
		messages = append(messages, a)
	}
	record.Attrs(func(a slog.Attr) bool {
		for _, kv := range appendAttr(nil, s.group, a) {
			messages = append(messages, kv)
		}
		return true
	})

	s.logger.LogLevel(slogLevelToCore(record.Level), messages...)
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]string, len(s.attrs), len(s.attrs)+len(attrs))
	copy(merged, s.attrs)
	for _, a := range attrs {
		merged = appendAttr(merged, s.group, a)
	}
	return &SlogHandler{
		logger: s.logger,
		level:  s.level,
		attrs:  merged,
		group:  s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{
		logger: s.logger,
		level:  s.level,
		attrs:  s.attrs,
		group:  newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level. Anything above
// LevelError becomes FatalLevel.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level > slog.LevelError:
		return core.FatalLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// appendAttr appends a as key=value, flattening groups into dotted keys
func appendAttr(dst []string, group string, a slog.Attr) []string {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return dst
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			dst = appendAttr(dst, key, ga)
		}
		return dst
	}
	return append(dst, fmt.Sprintf("%s=%v", key, a.Value.Any()))
}
