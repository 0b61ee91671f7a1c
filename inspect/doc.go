// Package inspect turns arbitrary Go values into the human-readable
// text that ends up in a log line.
//
// Strings are emitted verbatim, errors and fmt.Stringers through their
// own methods, scalars through fmt, and everything else (structs, maps,
// slices, pointers) through go-spew so that nested values are
// dereferenced and printed in full. Options selects between spew's
// compact one-line form and its multi-line dump, and bounds the depth.
//
// When colors are enabled, scalars are tinted the way terminal
// inspectors usually do it: numbers and booleans yellow, nil bold.
// Whether colors are enabled comes from Options.Colors or, when that is
// unset, from ColorSupported, which reads NO_COLOR / FORCE_COLOR and
// checks whether stdout is a terminal.
//
// Format does not recover panics raised by a value's String or Error
// method. A broken Stringer is a bug the caller should see.
package inspect
