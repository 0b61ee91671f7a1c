package inspect

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cast"
)

// ColorSupported reports whether stdout should receive colored output
func ColorSupported() bool {
	return ColorSupportedFor(os.Stdout)
}

// ColorSupportedFor reports whether f should receive colored output.
//
// NO_COLOR (and CLICOLOR=0) disable colors. FORCE_COLOR enables them
// unless it parses as false. Otherwise colors are used only when f is a
// terminal whose TERM is not "dumb".
func ColorSupportedFor(f *os.File) bool {
	if termenv.EnvNoColor() {
		return false
	}
	if v, ok := os.LookupEnv("FORCE_COLOR"); ok {
		if v == "" {
			return true
		}
		forced, err := cast.ToBoolE(v)
		return err != nil || forced
	}
	if os.Getenv("TERM") == "dumb" || f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
