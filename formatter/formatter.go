package formatter

import (
	"bytes"
	"sync"

	"github.com/philipp01105/duolog/core"
	"github.com/philipp01105/duolog/inspect"
)

// Formatter renders a log call twice: once for a terminal and once
// for the log file
type Formatter interface {
	// FormatConsole renders the request for console output. The result
	// may contain ANSI escape sequences.
	FormatConsole(req core.FormatRequest) string
	// FormatFile renders the request for the log file. The result must
	// not contain ANSI escape sequences.
	FormatFile(req core.FormatRequest) string
}

// Context exposes the parts of a logger's configuration a formatter
// may use while rendering
type Context interface {
	Label() string
	InspectOptions() *inspect.Options
}

// Binder is an optional interface for formatters that read per-logger
// context. A logger calls Bind with itself when it takes ownership of
// the formatter; a formatter is bound to at most one logger at a time.
type Binder interface {
	Bind(ctx Context)
}

// Cloner is an optional interface for formatters that can produce an
// unbound copy of themselves. Cloned loggers use it so that parent and
// child do not fight over a single binding.
type Cloner interface {
	Clone() Formatter
}

// Renderer is an optional interface for formatters that produce both
// renderings in one pass. Both strings of one call then share a single
// timestamp.
type Renderer interface {
	Render(req core.FormatRequest) (console, file string)
}

// Render returns both renderings of req, through Renderer when f
// implements it
func Render(f Formatter, req core.FormatRequest) (console, file string) {
	if r, ok := f.(Renderer); ok {
		return r.Render(req)
	}
	return f.FormatConsole(req), f.FormatFile(req)
}

// Config holds formatter configuration
type Config struct {
	// Disabled skips prefixes and line continuation; output is the raw
	// stringified message (ANSI-stripped for the file rendering)
	Disabled bool
	// Colors forces console colors on or off. Nil defers to the bound
	// logger's inspect options, then to terminal detection.
	Colors *bool
	// Clock supplies the prefix timestamp (default: core.SystemClock)
	Clock core.Clock
	// CoarseClock uses core.CoarseNow instead of Clock
	CoarseClock bool
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
