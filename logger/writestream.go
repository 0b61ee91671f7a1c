package logger

import (
	"context"

	"github.com/philipp01105/duolog/core"
	"github.com/philipp01105/duolog/stream"
)

// CreateFileWriteStream opens the file the plain-text rendering of each
// call is written to. It fails with a ConfigurationError while another
// stream is open or being opened. opts.Fs and opts.Clock default to the
// logger's own.
func (l *Logger) CreateFileWriteStream(ctx context.Context, opts stream.Options) error {
	l.mu.Lock()
	switch {
	case l.opening:
		l.mu.Unlock()
		return core.NewConfigurationError("create write stream", "write stream is already being opened")
	case l.stream != nil && !l.stream.Closed():
		l.mu.Unlock()
		return core.NewConfigurationError("create write stream", "write stream already created")
	}
	l.opening = true
	if opts.Fs == nil {
		opts.Fs = l.fs
	}
	if opts.Clock == nil {
		opts.Clock = l.clock
	}
	l.mu.Unlock()

	s, err := stream.Create(ctx, opts)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.opening = false
	if err != nil {
		return err
	}
	l.stream = s
	return nil
}

// CloseFileWriteStream closes the write stream. Closing a logger
// without an open stream is a no-op.
func (l *Logger) CloseFileWriteStream() error {
	l.mu.RLock()
	s := l.stream
	l.mu.RUnlock()

	if s == nil {
		return nil
	}
	return s.Close()
}

// IsWriteStreamClosed reports whether file writes are currently skipped
func (l *Logger) IsWriteStreamClosed() bool {
	l.mu.RLock()
	s := l.stream
	l.mu.RUnlock()
	return s == nil || s.Closed()
}

// WriteStream returns the current write stream, which may be nil or
// closed
func (l *Logger) WriteStream() *stream.WriteStream {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.stream
}

func (l *Logger) writeFile(line string) {
	l.mu.RLock()
	s := l.stream
	l.mu.RUnlock()

	if s == nil || s.Closed() {
		return
	}
	_, _ = s.WriteString(line + "\n")
}
