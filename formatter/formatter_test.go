package formatter

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/duolog/core"
	"github.com/philipp01105/duolog/inspect"
)

type stubContext struct {
	label string
	opts  *inspect.Options
}

func (s stubContext) Label() string                    { return s.label }
func (s stubContext) InspectOptions() *inspect.Options { return s.opts }

var fixedTime = time.Date(2026, 2, 18, 13, 4, 5, 0, time.Local)

func fixedClock() time.Time { return fixedTime }

func boolPtr(b bool) *bool { return &b }

func newTestFormatter(colors bool, label string) *Default {
	f := NewDefault(Config{Clock: fixedClock, Colors: boolPtr(colors)})
	f.Bind(stubContext{label: label})
	return f
}

func TestDefault_FileRendering(t *testing.T) {
	f := newTestFormatter(false, "")

	out := f.FormatFile(core.FormatRequest{Level: core.InfoLevel, Messages: []any{"a", "b"}})
	assert.Equal(t, "[13:04:05] [INFO]: a b", out)
}

func TestDefault_FileRenderingWithLabel(t *testing.T) {
	f := newTestFormatter(false, "api")

	out := f.FormatFile(core.FormatRequest{Level: core.ErrorLevel, Messages: []any{"failed", 3}})
	assert.Equal(t, "[13:04:05] [api/ERROR]: failed 3", out)
}

func TestDefault_FileRenderingHasNoEscapes(t *testing.T) {
	f := newTestFormatter(true, "svc")

	for _, level := range core.Levels() {
		out := f.FormatFile(core.FormatRequest{
			Level:    level,
			Messages: []any{"\x1b[31mred\nstill red\x1b[0m", 42, errors.New("e")},
		})
		assert.Equal(t, Strip(out), out, "level %s", level)
		assert.NotContains(t, out, "\x1b")
	}
}

func TestDefault_FilePrefixesEveryLine(t *testing.T) {
	f := newTestFormatter(false, "")

	out := f.FormatFile(core.FormatRequest{Level: core.WarnLevel, Messages: []any{"one\ntwo"}})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "[13:04:05] [WARN]: one", lines[0])
	assert.Equal(t, "[13:04:05] [WARN]: two", lines[1])
}

func TestDefault_ConsoleColored(t *testing.T) {
	f := newTestFormatter(true, "db")

	out := f.FormatConsole(core.FormatRequest{Level: core.InfoLevel, Messages: []any{"a", "b"}})
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "db")
	assert.True(t, strings.HasSuffix(out, "a b"))
	assert.Equal(t, " INFO  13:04:05  db  a b", Strip(out))
}

func TestDefault_ConsolePlain(t *testing.T) {
	f := newTestFormatter(false, "")

	out := f.FormatConsole(core.FormatRequest{Level: core.DebugLevel, Messages: []any{"x"}})
	assert.Equal(t, " DEBUG  13:04:05 x", out)
}

func TestDefault_ConsoleContinuesEscapes(t *testing.T) {
	f := newTestFormatter(true, "")

	msg := "\x1b[31mline one\nline two\x1b[0m\nline three"
	out := f.FormatConsole(core.FormatRequest{Level: core.ErrorLevel, Messages: []any{msg}})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)

	prefix := consolePrefix(core.ErrorLevel, "", fixedTime, true)
	assert.Equal(t, prefix+"\x1b[31mline one", lines[0])
	assert.Equal(t, prefix+"\x1b[31mline two\x1b[0m", lines[1])
	assert.Equal(t, prefix+"\x1b[0mline three", lines[2])
}

func TestDefault_RenderReadsClockOnce(t *testing.T) {
	now := fixedTime.Add(999 * time.Millisecond)
	f := NewDefault(Config{Colors: boolPtr(false), Clock: func() time.Time {
		cur := now
		now = now.Add(time.Second)
		return cur
	}})

	console, file := Render(f, core.FormatRequest{Level: core.InfoLevel, Messages: []any{"tick"}})
	assert.Equal(t, " INFO  13:04:05 tick", console)
	assert.Equal(t, "[13:04:05] [INFO]: tick", file)
}

type splitFormatter struct{}

func (splitFormatter) FormatConsole(core.FormatRequest) string { return "console" }
func (splitFormatter) FormatFile(core.FormatRequest) string    { return "file" }

func TestRender_FallsBackToSeparateCalls(t *testing.T) {
	console, file := Render(splitFormatter{}, core.FormatRequest{Level: core.WarnLevel})
	assert.Equal(t, "console", console)
	assert.Equal(t, "file", file)
}

func TestDefault_Disabled(t *testing.T) {
	f := NewDefault(Config{Disabled: true, Colors: boolPtr(true), Clock: fixedClock})
	f.Bind(stubContext{label: "ignored"})

	req := core.FormatRequest{Level: core.WarnLevel, Messages: []any{"\x1b[32mgreen\x1b[0m", "x"}}
	assert.Equal(t, "\x1b[32mgreen\x1b[0m x", f.FormatConsole(req))
	assert.Equal(t, "green x", f.FormatFile(req))
}

func TestDefault_UnboundUsesNoLabel(t *testing.T) {
	f := NewDefault(Config{Clock: fixedClock, Colors: boolPtr(false)})

	out := f.FormatFile(core.FormatRequest{Level: core.FatalLevel, Messages: []any{"x"}})
	assert.Equal(t, "[13:04:05] [FATAL]: x", out)
}

func TestDefault_CloneIsUnbound(t *testing.T) {
	f := newTestFormatter(false, "parent")
	clone, ok := f.Clone().(*Default)
	require.True(t, ok)

	out := clone.FormatFile(core.FormatRequest{Level: core.InfoLevel, Messages: []any{"x"}})
	assert.Equal(t, "[13:04:05] [INFO]: x", out)
}

func TestDefault_InspectOptionsDriveColors(t *testing.T) {
	f := NewDefault(Config{Clock: fixedClock})
	f.Bind(stubContext{opts: (&inspect.Options{}).WithColors(false)})

	out := f.FormatConsole(core.FormatRequest{Level: core.InfoLevel, Messages: []any{1}})
	assert.NotContains(t, out, "\x1b")
	assert.Equal(t, "1", f.Stringify(1))
}

func TestDefault_CoarseClock(t *testing.T) {
	f := NewDefault(Config{CoarseClock: true, Colors: boolPtr(false)})

	out := f.FormatFile(core.FormatRequest{Level: core.InfoLevel, Messages: []any{"x"}})
	assert.True(t, strings.HasSuffix(out, "[INFO]: x"))
}

func TestLastEscape(t *testing.T) {
	assert.Equal(t, "", LastEscape("plain"))
	assert.Equal(t, "\x1b[0m", LastEscape("\x1b[31mred\x1b[0m"))
	assert.Equal(t, "\x1b[38;5;154m", LastEscape("a\x1b[38;5;154mb"))
	assert.Equal(t, "\x1b]0;title\x07", LastEscape("\x1b[1mx\x1b]0;title\x07"))
}

func TestLastEscape_STTerminatedHyperlink(t *testing.T) {
	link := "\x1b]8;;http://example.com\x1b\\link\x1b]8;;\x1b\\"
	assert.Equal(t, "\x1b]8;;\x1b\\", LastEscape(link))

	got := ContinueEscapes([]string{link, "next"})
	assert.Equal(t, "\x1b]8;;\x1b\\next", got[1])
	assert.Equal(t, "next", Strip(got[1]))
}

func TestLastEscape_IgnoresUnterminated(t *testing.T) {
	assert.Equal(t, "\x1b[31m", LastEscape("\x1b[31mred\x1b]8;;http://dangling"))
	assert.Equal(t, "", LastEscape("tab\there"))
}

func TestContinueEscapes_CarriesAcrossPlainLines(t *testing.T) {
	got := ContinueEscapes([]string{"\x1b[35mstart", "middle", "end"})
	assert.Equal(t, []string{"\x1b[35mstart", "\x1b[35mmiddle", "\x1b[35mend"}, got)
}

func TestStyles_Level(t *testing.T) {
	st := DefaultStyles()
	assert.Contains(t, st.Level(core.ErrorLevel).Render("x"), "\x1b[")
	assert.Equal(t, "x", NoColorStyles().Level(core.WarnLevel).Render("x"))
}
