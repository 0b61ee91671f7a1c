package inspect

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/davecgh/go-spew/spew"
	"github.com/muesli/termenv"
)

// Options controls how values are stringified
type Options struct {
	// Colors forces colors on or off. Nil defers to ColorSupported.
	Colors *bool
	// Depth limits how deep nested values are printed (0 = no limit)
	Depth int
	// Verbose switches composite values to spew's multi-line dump,
	// which includes types and lengths
	Verbose bool
	// SortKeys prints map keys in sorted order
	SortKeys bool
	// ShowPointers includes pointer addresses in the output
	ShowPointers bool
	// MaxStringLength truncates top-level strings wider than this many
	// terminal cells and appends "..." (0 = no limit). Escape sequences
	// are kept intact and do not count toward the width.
	MaxStringLength int
}

// ColorsEnabled resolves the effective color setting. It is safe to
// call on a nil *Options.
func (o *Options) ColorsEnabled() bool {
	if o != nil && o.Colors != nil {
		return *o.Colors
	}
	return ColorSupported()
}

// WithColors returns a copy of o with Colors set to enabled
func (o *Options) WithColors(enabled bool) *Options {
	var c Options
	if o != nil {
		c = *o
	}
	c.Colors = &enabled
	return &c
}

func (o *Options) spewConfig() *spew.ConfigState {
	cfg := &spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
	}
	if o == nil {
		return cfg
	}
	cfg.MaxDepth = o.Depth
	cfg.SortKeys = o.SortKeys
	cfg.DisablePointerAddresses = !o.ShowPointers
	return cfg
}

// scalar styles are rendered through a renderer pinned to the basic
// 16-color profile so output does not depend on the process's stdout
var (
	scalarRenderer = newANSIRenderer()
	numberStyle    = scalarRenderer.NewStyle().Foreground(lipgloss.Color("3"))
	nilStyle       = scalarRenderer.NewStyle().Bold(true)
)

func newANSIRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)
	return r
}

// Format stringifies values and joins them with a single space
func Format(opts *Options, values ...any) string {
	if len(values) == 0 {
		return ""
	}

	colors := opts.ColorsEnabled()
	cfg := opts.spewConfig()

	var sb strings.Builder
	for i, v := range values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(formatValue(opts, cfg, colors, v))
	}
	return sb.String()
}

// Value stringifies a single value
func Value(opts *Options, v any) string {
	return formatValue(opts, opts.spewConfig(), opts.ColorsEnabled(), v)
}

func formatValue(opts *Options, cfg *spew.ConfigState, colors bool, v any) string {
	switch x := v.(type) {
	case nil:
		return tint(nilStyle, "<nil>", colors)
	case string:
		return truncate(x, opts)
	case error:
		if opts != nil && opts.Verbose {
			return fmt.Sprintf("%+v", x)
		}
		return x.Error()
	case fmt.Stringer:
		return x.String()
	case bool:
		return tint(numberStyle, fmt.Sprint(x), colors)
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, complex64, complex128:
		return tint(numberStyle, fmt.Sprint(x), colors)
	}

	if opts != nil && opts.Verbose {
		return strings.TrimRight(cfg.Sdump(v), "\n")
	}
	return cfg.Sprintf("%+v", v)
}

func tint(style lipgloss.Style, s string, colors bool) string {
	if !colors {
		return s
	}
	return style.Render(s)
}

const ellipsis = "..."

func truncate(s string, opts *Options) string {
	if opts == nil || opts.MaxStringLength <= 0 || ansi.StringWidth(s) <= opts.MaxStringLength {
		return s
	}
	return ansi.Truncate(s, opts.MaxStringLength, "") + ellipsis
}
