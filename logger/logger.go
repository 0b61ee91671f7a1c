package logger

import (
	"fmt"
	"sync"

	"github.com/spf13/afero"

	"github.com/philipp01105/duolog/core"
	"github.com/philipp01105/duolog/formatter"
	"github.com/philipp01105/duolog/handler"
	"github.com/philipp01105/duolog/handler/consolehandler"
	"github.com/philipp01105/duolog/inspect"
	"github.com/philipp01105/duolog/stream"
)

// Logger formats each call for the console and the log file, notifies
// its listeners and those of its parents, and writes both renderings.
// It is safe for concurrent use.
type Logger struct {
	mu        sync.RWMutex
	label     string
	debug     DebugMode
	inspect   *inspect.Options
	parent    *Logger
	formatter formatter.Formatter
	console   handler.Handler
	fs        afero.Fs
	clock     core.Clock

	// write stream state: closed, opening, or open
	stream  *stream.WriteStream
	opening bool

	listeners listeners
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	label     string
	debug     DebugMode
	inspect   *inspect.Options
	parent    *Logger
	formatter formatter.Formatter
	console   handler.Handler
	stream    *stream.WriteStream
	fs        afero.Fs
	clock     core.Clock
	handlers  []handler.Handler
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithLabel sets the label shown in every prefix
func (b *Builder) WithLabel(label string) *Builder {
	b.label = label
	return b
}

// WithDebugMode sets how Debug calls are handled
func (b *Builder) WithDebugMode(d DebugMode) *Builder {
	b.debug = d
	return b
}

// WithInspectOptions sets how logged values are stringified
func (b *Builder) WithInspectOptions(opts *inspect.Options) *Builder {
	b.inspect = opts
	return b
}

// WithParent sets the logger that receives this logger's events
func (b *Builder) WithParent(p *Logger) *Builder {
	b.parent = p
	return b
}

// WithFormatter sets the formatter (default: formatter.NewDefault)
func (b *Builder) WithFormatter(f formatter.Formatter) *Builder {
	b.formatter = f
	return b
}

// WithConsole sets the handler console renderings are written to
// (default: a consolehandler on stderr/stdout)
func (b *Builder) WithConsole(h handler.Handler) *Builder {
	b.console = h
	return b
}

// WithWriteStream starts the logger with an already open write stream
func (b *Builder) WithWriteStream(s *stream.WriteStream) *Builder {
	b.stream = s
	return b
}

// WithFs sets the filesystem write streams are created on
func (b *Builder) WithFs(fs afero.Fs) *Builder {
	b.fs = fs
	return b
}

// WithClock sets the clock used for default file headers
func (b *Builder) WithClock(c core.Clock) *Builder {
	b.clock = c
	return b
}

// WithHandlers attaches handlers that observe every call
func (b *Builder) WithHandlers(hs ...handler.Handler) *Builder {
	b.handlers = append(b.handlers, hs...)
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	l := &Logger{
		label:     b.label,
		debug:     b.debug,
		inspect:   b.inspect,
		parent:    b.parent,
		formatter: b.formatter,
		console:   b.console,
		stream:    b.stream,
		fs:        b.fs,
		clock:     b.clock,
	}
	if l.formatter == nil {
		l.formatter = formatter.NewDefault(formatter.Config{})
	}
	if l.console == nil {
		l.console = consolehandler.New(consolehandler.Config{})
	}
	if l.fs == nil {
		l.fs = afero.NewOsFs()
	}
	if l.clock == nil {
		l.clock = core.SystemClock
	}
	if binder, ok := l.formatter.(formatter.Binder); ok {
		binder.Bind(l)
	}
	for _, h := range b.handlers {
		l.Attach(h)
	}
	return l
}

// Clone returns a Builder seeded with l's configuration. The new
// logger's parent is l's parent when inheritParent is true and l itself
// otherwise. Listeners are not copied. A formatter that implements
// formatter.Cloner is copied; any other formatter is shared and will be
// bound to the clone once it is built.
func (l *Logger) Clone(inheritParent bool) *Builder {
	l.mu.RLock()
	defer l.mu.RUnlock()

	b := &Builder{
		label:     l.label,
		debug:     l.debug,
		inspect:   l.inspect,
		formatter: l.formatter,
		console:   l.console,
		stream:    l.stream,
		fs:        l.fs,
		clock:     l.clock,
	}
	if inheritParent {
		b.parent = l.parent
	} else {
		b.parent = l
	}
	if c, ok := l.formatter.(formatter.Cloner); ok {
		b.formatter = c.Clone()
	}
	return b
}

// Label returns the logger's label
func (l *Logger) Label() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.label
}

// SetLabel changes the label
func (l *Logger) SetLabel(label string) {
	l.mu.Lock()
	l.label = label
	l.mu.Unlock()
}

// InspectOptions returns the options values are stringified with
func (l *Logger) InspectOptions() *inspect.Options {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.inspect
}

// SetInspectOptions changes how values are stringified
func (l *Logger) SetInspectOptions(opts *inspect.Options) {
	l.mu.Lock()
	l.inspect = opts
	l.mu.Unlock()
}

// DebugMode returns the current debug configuration
func (l *Logger) DebugMode() DebugMode {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.debug
}

// SetDebugMode changes how Debug calls are handled
func (l *Logger) SetDebugMode(d DebugMode) {
	l.mu.Lock()
	l.debug = d
	l.mu.Unlock()
}

// IsDebugging reports whether Debug calls are currently shown
func (l *Logger) IsDebugging() bool {
	return l.DebugMode().enabled()
}

// Formatter returns the logger's formatter
func (l *Logger) Formatter() formatter.Formatter {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.formatter
}

// SetFormatter replaces the formatter and binds it to l
func (l *Logger) SetFormatter(f formatter.Formatter) {
	if f == nil {
		f = formatter.NewDefault(formatter.Config{})
	}
	l.mu.Lock()
	l.formatter = f
	l.mu.Unlock()
	if binder, ok := f.(formatter.Binder); ok {
		binder.Bind(l)
	}
}

// Console returns the handler console renderings go to
func (l *Logger) Console() handler.Handler {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.console
}

// SetConsole replaces the console handler. Nil restores the default.
func (l *Logger) SetConsole(h handler.Handler) {
	if h == nil {
		h = consolehandler.New(consolehandler.Config{})
	}
	l.mu.Lock()
	l.console = h
	l.mu.Unlock()
}

// Parent returns the logger events are forwarded to, or nil
func (l *Logger) Parent() *Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.parent
}

// SetParent changes the parent. It fails with a ConfigurationError
// when p is l or one of l's descendants.
func (l *Logger) SetParent(p *Logger) error {
	for cur := p; cur != nil; cur = cur.Parent() {
		if cur == l {
			return core.NewConfigurationError("set parent", "parent chain would contain a cycle")
		}
	}
	l.mu.Lock()
	l.parent = p
	l.mu.Unlock()
	return nil
}

// Fatal logs at FatalLevel. It does not exit the process.
func (l *Logger) Fatal(messages ...any) {
	l.log(core.FatalLevel, messages)
}

// Error logs at ErrorLevel
func (l *Logger) Error(messages ...any) {
	l.log(core.ErrorLevel, messages)
}

// Warn logs at WarnLevel
func (l *Logger) Warn(messages ...any) {
	l.log(core.WarnLevel, messages)
}

// Info logs at InfoLevel
func (l *Logger) Info(messages ...any) {
	l.log(core.InfoLevel, messages)
}

// Debug logs at DebugLevel. Nothing is printed or written unless a
// debugging session is active.
func (l *Logger) Debug(messages ...any) {
	l.log(core.DebugLevel, messages)
}

// Log is an alias for Info
func (l *Logger) Log(messages ...any) {
	l.log(core.InfoLevel, messages)
}

// Fatalf logs a fatal message with formatting
func (l *Logger) Fatalf(format string, args ...any) {
	l.log(core.FatalLevel, []any{fmt.Sprintf(format, args...)})
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...any) {
	l.log(core.ErrorLevel, []any{fmt.Sprintf(format, args...)})
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...any) {
	l.log(core.WarnLevel, []any{fmt.Sprintf(format, args...)})
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...any) {
	l.log(core.InfoLevel, []any{fmt.Sprintf(format, args...)})
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...any) {
	l.log(core.DebugLevel, []any{fmt.Sprintf(format, args...)})
}

// LogLevel logs messages at the given level
func (l *Logger) LogLevel(level core.Level, messages ...any) {
	l.log(level, messages)
}

// log is the single path every level method goes through
func (l *Logger) log(level core.Level, messages []any) {
	req := core.NewFormatRequest(level, messages)

	l.mu.RLock()
	f, console, label, debug := l.formatter, l.console, l.label, l.debug
	l.mu.RUnlock()

	consoleText, fileText := formatter.Render(f, req)
	ev := core.Event{
		FormatRequest: req,
		Label:         label,
		Console:       consoleText,
		File:          fileText,
	}
	l.emit(ev)

	writeToFile := true
	if level == core.DebugLevel {
		if !debug.enabled() {
			return
		}
		if debug.printMessage() {
			_ = console.Handle(ev)
		}
		writeToFile = debug.writeToFile()
	} else {
		_ = console.Handle(ev)
	}

	if writeToFile {
		l.writeFile(ev.File)
	}
}
