package handler

import (
	"github.com/philipp01105/duolog/core"
)

// MultiHandler sends events to multiple handlers
type MultiHandler struct {
	handlers []Handler
}

// NewMultiHandler creates a new multi-handler
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Handle sends ev to every handler. All handlers run even when one
// fails; the last error is returned.
func (h *MultiHandler) Handle(ev core.Event) error {
	var lastErr error
	for _, handler := range h.handlers {
		if err := handler.Handle(ev); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// Close closes all handlers
func (h *MultiHandler) Close() error {
	var lastErr error
	for _, handler := range h.handlers {
		if err := handler.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
