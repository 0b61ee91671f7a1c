// Package stream opens the file a logger writes its plain-text rendering
// to.
//
// Create prepares the target according to a Mode before opening it:
//
//   - Append keeps whatever is already in the file
//   - Truncate starts the file over
//   - Rename archives the previous file (gzip by default, or a custom
//     hook) and starts a new one
//
// A fresh, empty file gets an initial line, by default the timestamp
// header from the rotate package, so a later Rename can name the archive
// after the moment the file was started.
package stream
