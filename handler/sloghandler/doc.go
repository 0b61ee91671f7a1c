// Package sloghandler lets log/slog front a duolog logger. Records are
// turned into ordinary log calls: the message first, followed by one
// key=value message per attribute.
package sloghandler
