// Package formatter defines how a log call is turned into text.
//
// A Formatter produces two renderings of every core.FormatRequest: a
// console string that may carry ANSI colors, and a file string that
// never does. Formatters may also implement the optional Binder and
// Cloner interfaces; the logger checks for them when it takes
// ownership of a formatter or clones itself.
//
// The built-in Default formatter prefixes every line with the level,
// the local time (HH:MM:SS) and the logger's label. On the console the
// level becomes a colored badge:
//
//	 ERROR  14:02:11  api  connection refused
//
// and in the file the same call reads:
//
//	[14:02:11] [api/ERROR]: connection refused
//
// Multi-line messages get the prefix on every line. Because styling
// libraries reset colors at the end of each line, the console
// rendering re-emits the last escape sequence of the previous line at
// the start of the next one, so a red stack trace stays red all the
// way down.
package formatter
