// Package zaphandler mirrors log calls into a *zap.Logger, so an
// application that already ships zap output keeps receiving every
// message logged through duolog.
package zaphandler

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/duolog/core"
	"github.com/philipp01105/duolog/formatter"
	"github.com/philipp01105/duolog/handler"
	"github.com/philipp01105/duolog/inspect"
)

var plainOptions = (&inspect.Options{}).WithColors(false)

// ZapHandler writes each event to a zap logger
type ZapHandler struct {
	logger *zap.Logger
}

// New creates a handler writing to z. Attach it with Logger.Attach.
func New(z *zap.Logger) *ZapHandler {
	return &ZapHandler{logger: z}
}

// levelToZap maps a level onto zap. FatalLevel maps to ErrorLevel so
// that mirroring a call never terminates the process.
func levelToZap(level core.Level) zapcore.Level {
	switch level {
	case core.DebugLevel:
		return zapcore.DebugLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	case core.ErrorLevel, core.FatalLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Handle writes the call's messages, without prefix or colors, at the
// mapped level. The label and original level travel as fields.
func (h *ZapHandler) Handle(ev core.Event) error {
	ce := h.logger.Check(levelToZap(ev.Level), formatter.Strip(inspect.Format(plainOptions, ev.Messages...)))
	if ce == nil {
		return nil
	}

	fields := make([]zap.Field, 0, 2)
	fields = append(fields, zap.Stringer("level_name", ev.Level))
	if ev.Label != "" {
		fields = append(fields, zap.String("label", ev.Label))
	}
	ce.Write(fields...)
	return nil
}

// Close flushes the zap logger
func (h *ZapHandler) Close() error {
	return h.logger.Sync()
}

var _ handler.Handler = (*ZapHandler)(nil)
