package inspect

import (
	"errors"
	"os"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

type point struct {
	X int
	Y int
}

type named string

func (n named) String() string { return "named:" + string(n) }

func plain() *Options { return (&Options{}).WithColors(false) }

func TestFormat_JoinsWithSpace(t *testing.T) {
	assert.Equal(t, "a b", Format(plain(), "a", "b"))
	assert.Equal(t, "", Format(plain()))
}

func TestFormat_Values(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string verbatim", "hello\nworld", "hello\nworld"},
		{"int", 42, "42"},
		{"float", 3.5, "3.5"},
		{"bool", true, "true"},
		{"nil", nil, "<nil>"},
		{"error", errors.New("boom"), "boom"},
		{"stringer", named("x"), "named:x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(plain(), tt.in))
		})
	}
}

func TestFormat_Composite(t *testing.T) {
	out := Format(plain(), point{X: 1, Y: 2})
	assert.Contains(t, out, "X:1")
	assert.Contains(t, out, "Y:2")

	out = Format(plain(), &point{X: 3})
	assert.Contains(t, out, "X:3")
}

func TestFormat_VerboseDumpIsMultiLine(t *testing.T) {
	opts := plain()
	opts.Verbose = true

	out := Format(opts, map[string]int{"a": 1, "b": 2})
	assert.Contains(t, out, "\n")
	assert.NotContains(t, out[len(out)-1:], "\n")
}

func TestFormat_ColorsTintScalars(t *testing.T) {
	colored := (&Options{}).WithColors(true)

	assert.Contains(t, Format(colored, 7), "\x1b[")
	assert.Equal(t, "text", Format(colored, "text"))
	assert.NotContains(t, Format(plain(), 7), "\x1b[")
}

func TestFormat_MaxStringLength(t *testing.T) {
	opts := plain()
	opts.MaxStringLength = 3

	assert.Equal(t, "abc...", Format(opts, "abcdef"))
	assert.Equal(t, "ab", Format(opts, "ab"))
}

func TestFormat_MaxStringLengthKeepsRunes(t *testing.T) {
	opts := plain()
	opts.MaxStringLength = 2

	got := Format(opts, "héllo wörld")
	assert.Equal(t, "hé...", got)
	assert.True(t, utf8.ValidString(got))
}

func TestFormat_MaxStringLengthKeepsEscapes(t *testing.T) {
	opts := plain()
	opts.MaxStringLength = 3

	got := Format(opts, "\x1b[31mred text\x1b[0m")
	assert.Equal(t, "\x1b[31mred\x1b[0m...", got)
	assert.Equal(t, "\x1b[1;32mok\x1b[0m", Format(opts, "\x1b[1;32mok\x1b[0m"))
}

func TestOptions_NilIsUsable(t *testing.T) {
	var opts *Options
	assert.NotPanics(t, func() { _ = Format(opts, 1, "x") })
	assert.True(t, *opts.WithColors(true).Colors)
}

func TestColorSupportedFor_Env(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorSupportedFor(os.Stdout))

	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "1")
	assert.True(t, ColorSupportedFor(os.Stdout))

	t.Setenv("FORCE_COLOR", "0")
	assert.False(t, ColorSupportedFor(os.Stdout))
}
