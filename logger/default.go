package logger

import (
	"sync"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Initialize default logger with the default formatter and console handler
	defaultLogger = NewBuilder().Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Fatal logs a fatal message using the default logger
func Fatal(messages ...any) {
	Default().Fatal(messages...)
}

// Error logs an error message using the default logger
func Error(messages ...any) {
	Default().Error(messages...)
}

// Warn logs a warning message using the default logger
func Warn(messages ...any) {
	Default().Warn(messages...)
}

// Info logs an info message using the default logger
func Info(messages ...any) {
	Default().Info(messages...)
}

// Debug logs a debug message using the default logger
func Debug(messages ...any) {
	Default().Debug(messages...)
}

// Log logs an info message using the default logger
func Log(messages ...any) {
	Default().Log(messages...)
}

// Fatalf logs a formatted fatal message using the default logger
func Fatalf(format string, args ...any) {
	Default().Fatalf(format, args...)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...any) {
	Default().Errorf(format, args...)
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...any) {
	Default().Warnf(format, args...)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...any) {
	Default().Infof(format, args...)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...any) {
	Default().Debugf(format, args...)
}
