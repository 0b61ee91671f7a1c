// Package rotate archives an existing log file before a new write stream
// is opened over it.
//
// The default strategy compresses the previous file in place and renames
// it after the moment the file was started, which is read back from the
// header line written at the top of every fresh log file:
//
//	[2024-01-01T00:00:00.000Z]
//
// A file starting with that header, located at logs/app.log, ends up as
// logs/2024-01-01-0-0-0-0.log.gz. When the header is missing the
// filesystem's birth time, change time or modification time is used, in
// that order of preference.
package rotate
