package handler

import (
	"errors"

	"github.com/philipp01105/duolog/core"
)

// ErrClosed is returned by Handle after Close
var ErrClosed = errors.New("handler closed")

// Handler defines the interface for log handlers
type Handler interface {
	// Handle processes one rendered log call
	Handle(ev core.Event) error

	// Close closes the handler and releases resources
	Close() error
}

// StatsProvider is implemented by handlers that count their writes
type StatsProvider interface {
	Stats() Snapshot
}

// Func adapts an ordinary function to a Handler. Close is a no-op.
type Func func(ev core.Event) error

// Handle calls f(ev)
func (f Func) Handle(ev core.Event) error {
	return f(ev)
}

// Close does nothing
func (f Func) Close() error {
	return nil
}
