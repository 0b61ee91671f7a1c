package formatter

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/philipp01105/duolog/core"
)

// Basic 16-color palette indices so badges look the same on every
// terminal that supports color at all
const (
	ColorBlack   = "0"
	ColorRed     = "1"
	ColorYellow  = "3"
	ColorMagenta = "5"
	ColorCyan    = "6"
	ColorWhite   = "7"
)

// Styles holds the console prefix styles
type Styles struct {
	Fatal lipgloss.Style
	Error lipgloss.Style
	Warn  lipgloss.Style
	Info  lipgloss.Style
	Debug lipgloss.Style
	Time  lipgloss.Style
	Label lipgloss.Style
}

func newRenderer(profile termenv.Profile) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)
	return r
}

// DefaultStyles returns the colored badge styles
func DefaultStyles() Styles {
	r := newRenderer(termenv.ANSI)
	badge := func(bg string) lipgloss.Style {
		return r.NewStyle().Bold(true).
			Foreground(lipgloss.Color(ColorBlack)).
			Background(lipgloss.Color(bg))
	}
	return Styles{
		Fatal: badge(ColorRed),
		Error: badge(ColorRed),
		Warn:  badge(ColorYellow),
		Info:  badge(ColorCyan),
		Debug: badge(ColorMagenta),
		Time:  r.NewStyle().Faint(true),
		Label: r.NewStyle().Faint(true).Background(lipgloss.Color(ColorBlack)).Foreground(lipgloss.Color(ColorWhite)),
	}
}

// NoColorStyles returns unstyled components for plain consoles
func NoColorStyles() Styles {
	r := newRenderer(termenv.Ascii)
	return Styles{
		Fatal: r.NewStyle(),
		Error: r.NewStyle(),
		Warn:  r.NewStyle(),
		Info:  r.NewStyle(),
		Debug: r.NewStyle(),
		Time:  r.NewStyle(),
		Label: r.NewStyle(),
	}
}

// Level returns the badge style for a level
func (s Styles) Level(l core.Level) lipgloss.Style {
	switch l {
	case core.FatalLevel:
		return s.Fatal
	case core.ErrorLevel:
		return s.Error
	case core.WarnLevel:
		return s.Warn
	case core.DebugLevel:
		return s.Debug
	default:
		return s.Info
	}
}

var (
	colorStyles = DefaultStyles()
	plainStyles = NoColorStyles()
)

func stylesFor(colors bool) Styles {
	if colors {
		return colorStyles
	}
	return plainStyles
}
