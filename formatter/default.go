package formatter

import (
	"strings"
	"sync"
	"time"

	"github.com/philipp01105/duolog/core"
	"github.com/philipp01105/duolog/inspect"
)

// timeLayout is the 24-hour wall-clock layout used in prefixes
const timeLayout = "15:04:05"

// Default is the built-in Formatter. It implements Binder, Cloner and
// Renderer.
type Default struct {
	cfg Config

	mu  sync.RWMutex
	ctx Context
}

// NewDefault creates the default formatter
func NewDefault(cfg Config) *Default {
	if cfg.CoarseClock {
		core.StartCoarseClock()
		cfg.Clock = core.CoarseNow
	}
	if cfg.Clock == nil {
		cfg.Clock = core.SystemClock
	}
	return &Default{cfg: cfg}
}

// Bind associates the formatter with a logger, replacing any earlier
// binding
func (f *Default) Bind(ctx Context) {
	f.mu.Lock()
	f.ctx = ctx
	f.mu.Unlock()
}

// Clone returns an unbound formatter with the same configuration
func (f *Default) Clone() Formatter {
	return &Default{cfg: f.cfg}
}

func (f *Default) context() (label string, opts *inspect.Options) {
	f.mu.RLock()
	ctx := f.ctx
	f.mu.RUnlock()
	if ctx == nil {
		return "", nil
	}
	return ctx.Label(), ctx.InspectOptions()
}

func (f *Default) consoleColors(opts *inspect.Options) bool {
	if f.cfg.Colors != nil {
		return *f.cfg.Colors
	}
	return opts.ColorsEnabled()
}

// Stringify joins values into one string using the bound logger's
// inspect options, or ambient color detection when there are none
func (f *Default) Stringify(values ...any) string {
	_, opts := f.context()
	return inspect.Format(opts, values...)
}

// FormatConsole renders req for the terminal
func (f *Default) FormatConsole(req core.FormatRequest) string {
	label, opts := f.context()
	return f.console(req, label, opts, f.cfg.Clock())
}

// FormatFile renders req for the log file with all escapes stripped
func (f *Default) FormatFile(req core.FormatRequest) string {
	label, opts := f.context()
	return f.file(req, label, opts, f.cfg.Clock())
}

// Render produces both renderings from one read of the bound context
// and one read of the clock
func (f *Default) Render(req core.FormatRequest) (console, file string) {
	label, opts := f.context()
	now := f.cfg.Clock()
	return f.console(req, label, opts, now), f.file(req, label, opts, now)
}

func (f *Default) console(req core.FormatRequest, label string, opts *inspect.Options, now time.Time) string {
	colors := f.consoleColors(opts)
	text := inspect.Format(opts.WithColors(colors), req.Messages...)
	if f.cfg.Disabled {
		return text
	}

	prefix := consolePrefix(req.Level, label, now, colors)
	lines := ContinueEscapes(strings.Split(text, "\n"))
	return joinPrefixed(prefix, lines)
}

func (f *Default) file(req core.FormatRequest, label string, opts *inspect.Options, now time.Time) string {
	text := inspect.Format(opts.WithColors(false), req.Messages...)
	if f.cfg.Disabled {
		return Strip(text)
	}

	prefix := FilePrefix(req.Level, label, now)
	return Strip(joinPrefixed(prefix, strings.Split(text, "\n")))
}

func joinPrefixed(prefix string, lines []string) string {
	buf := getBuffer()
	defer putBuffer(buf)

	for i, line := range lines {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(prefix)
		buf.WriteString(line)
	}
	return buf.String()
}

// consolePrefix renders the level badge, the dimmed time and the
// optional label badge, followed by a separating space
func consolePrefix(level core.Level, label string, now time.Time, colors bool) string {
	st := stylesFor(colors)

	var sb strings.Builder
	sb.WriteString(st.Level(level).Render(" " + level.String() + " "))
	sb.WriteByte(' ')
	sb.WriteString(st.Time.Render(now.Format(timeLayout)))
	if label != "" {
		sb.WriteByte(' ')
		sb.WriteString(st.Label.Render(" " + label + " "))
	}
	sb.WriteByte(' ')
	return sb.String()
}

// FilePrefix renders "[HH:MM:SS] [label/LEVEL]: ", omitting the label
// segment when label is empty
func FilePrefix(level core.Level, label string, now time.Time) string {
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(now.Format(timeLayout))
	sb.WriteString("] [")
	if label != "" {
		sb.WriteString(label)
		sb.WriteByte('/')
	}
	sb.WriteString(level.String())
	sb.WriteString("]: ")
	return sb.String()
}
