package consolehandler

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/philipp01105/duolog/core"
	"github.com/philipp01105/duolog/handler"
)

// lockedWriter wraps an io.Writer with a mutex, acquiring the lock only
// for Write calls. All lockedWriters of one handler share the handler's
// mutex, so two levels routed to the same buffer never interleave.
type lockedWriter struct {
	mu *sync.Mutex // points to handler's mu
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	n, err = lw.w.Write(p)
	lw.mu.Unlock()
	return
}

// isConcurrentSafeWriter returns true if the writer is known to be safe for
// concurrent Write calls, allowing the handler to skip write-level locking.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	_, ok := w.(*os.File)
	return ok
}

// Config holds configuration for the console handler
type Config struct {
	// Error receives Fatal and Error lines (default: os.Stderr)
	Error io.Writer
	// Warn receives Warn lines (default: os.Stderr)
	Warn io.Writer
	// Info receives Info and Debug lines (default: os.Stdout)
	Info io.Writer
	// ConcurrentWriter indicates all writers support concurrent Write
	// calls. Automatically detected for io.Discard and *os.File.
	ConcurrentWriter bool
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	if cfg.Error == nil {
		cfg.Error = os.Stderr
	}
	if cfg.Warn == nil {
		cfg.Warn = os.Stderr
	}
	if cfg.Info == nil {
		cfg.Info = os.Stdout
	}
}

// ConsoleHandler writes the console rendering of each event followed by
// a newline to the writer for its level
type ConsoleHandler struct {
	mu     sync.Mutex
	errW   io.Writer
	warnW  io.Writer
	infoW  io.Writer
	stats  *handler.Stats
	closed atomic.Bool
}

// New creates a console handler
func New(cfg Config) *ConsoleHandler {
	applyDefaults(&cfg)
	h := &ConsoleHandler{stats: handler.NewStats()}
	h.errW = h.wrap(cfg.Error, cfg.ConcurrentWriter)
	h.warnW = h.wrap(cfg.Warn, cfg.ConcurrentWriter)
	h.infoW = h.wrap(cfg.Info, cfg.ConcurrentWriter)
	return h
}

func (h *ConsoleHandler) wrap(w io.Writer, concurrent bool) io.Writer {
	if concurrent || isConcurrentSafeWriter(w) {
		return w
	}
	return &lockedWriter{mu: &h.mu, w: w}
}

// WriterFor returns the writer lines of the given level go to
func (h *ConsoleHandler) WriterFor(level core.Level) io.Writer {
	switch level {
	case core.FatalLevel, core.ErrorLevel:
		return h.errW
	case core.WarnLevel:
		return h.warnW
	default:
		return h.infoW
	}
}

// Handle writes ev.Console and a newline to the writer for ev.Level
func (h *ConsoleHandler) Handle(ev core.Event) error {
	if h.closed.Load() {
		return handler.ErrClosed
	}
	_, err := io.WriteString(h.WriterFor(ev.Level), ev.Console+"\n")
	h.stats.Record(ev.Level, err)
	return err
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close stops the handler. The underlying writers are not closed.
func (h *ConsoleHandler) Close() error {
	h.closed.Store(true)
	return nil
}
