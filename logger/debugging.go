package logger

import (
	"os"

	"github.com/spf13/cast"
)

// DebugEnv is the environment variable that turns debugging on for
// loggers without an explicit DebugMode.Enabled
const DebugEnv = "DUOLOG_DEBUG"

// Toggle reports whether something is switched on. It is evaluated on
// every use.
type Toggle func() bool

// Static returns a Toggle fixed to b
func Static(b bool) Toggle {
	return func() bool { return b }
}

// DebugMode controls what happens to Debug calls
type DebugMode struct {
	// Enabled decides whether a debugging session is active. Nil
	// detects one from the environment.
	Enabled Toggle
	// PrintMessage prints Debug lines to the console while debugging
	// (nil = true)
	PrintMessage *bool
	// WriteToFile writes Debug lines to the file while debugging
	// (nil = true)
	WriteToFile *bool
}

// Bool returns a pointer to b, for DebugMode's optional fields
func Bool(b bool) *bool {
	return &b
}

func (d DebugMode) printMessage() bool {
	return d.PrintMessage == nil || *d.PrintMessage
}

func (d DebugMode) writeToFile() bool {
	return d.WriteToFile == nil || *d.WriteToFile
}

func (d DebugMode) enabled() bool {
	if d.Enabled != nil {
		return d.Enabled()
	}
	return DetectDebugging()
}

// DetectDebugging reports whether the process looks like it is being
// debugged: DUOLOG_DEBUG is set to a true value, or a tracer such as
// Delve is attached. A DUOLOG_DEBUG that parses as false wins over an
// attached tracer.
func DetectDebugging() bool {
	if v, ok := os.LookupEnv(DebugEnv); ok {
		if b, err := cast.ToBoolE(v); err == nil {
			return b
		}
	}
	return tracerAttached()
}
