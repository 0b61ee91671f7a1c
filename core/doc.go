// Package core defines the shared types used across duolog.
//
// It provides the Level type for severity classification, the
// FormatRequest value that describes a single log call, the Event
// that carries both renderings of that call to listeners, and the
// error taxonomy returned by the logger and the write stream.
//
// A FormatRequest is created fresh for every log call and never
// mutated afterwards. Formatters read it, listeners receive it
// embedded in an Event, and nothing holds on to it between calls.
//
// The package also hosts the clocks used by formatters: the system
// clock and an opt-in coarse clock that caches time.Now() in a
// background goroutine. Log prefixes only carry second precision, so
// the coarse clock trades nothing visible for a cheaper hot path.
package core
