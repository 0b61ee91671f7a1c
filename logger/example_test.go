package logger_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/philipp01105/duolog/core"
	"github.com/philipp01105/duolog/formatter"
	"github.com/philipp01105/duolog/handler/consolehandler"
	"github.com/philipp01105/duolog/logger"
	"github.com/philipp01105/duolog/stream"
)

func plain() *formatter.Default {
	return formatter.NewDefault(formatter.Config{Colors: logger.Bool(false), Disabled: true})
}

// Use the package-level default logger for quick, no-setup logging.
func Example() {
	logger.Info("Application started")
	logger.Warnf("%d retries left", 2)
}

// Create a custom Logger with the Builder pattern.
func ExampleNewBuilder() {
	log := logger.NewBuilder().
		WithLabel("api").
		WithFormatter(plain()).
		WithConsole(consolehandler.New(consolehandler.Config{Info: os.Stdout})).
		Build()

	log.Info("ready on port", 8080)
	// Output: ready on port 8080
}

// Observe everything a child logger logs from its parent.
func ExampleLogger_On() {
	quiet := consolehandler.New(consolehandler.Config{Error: nopWriter{}, Warn: nopWriter{}, Info: nopWriter{}})

	root := logger.NewBuilder().WithFormatter(plain()).WithConsole(quiet).Build()
	child := root.Clone(false).WithLabel("db").Build()

	root.On(logger.ErrorLevel, func(ev core.Event) {
		fmt.Println("root saw:", ev.Label, ev.File)
	})

	child.Error("connection lost")
	// Output: root saw: db connection lost
}

// Write the plain-text rendering to a file, archiving the previous one.
func ExampleLogger_CreateFileWriteStream() {
	dir, err := os.MkdirTemp("", "duolog")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	log := logger.NewBuilder().Build()
	err = log.CreateFileWriteStream(context.Background(), stream.Options{
		Path:        filepath.Join(dir, "app.log"),
		Mode:        stream.Rename,
		MaxArchives: 5,
	})
	if err != nil {
		panic(err)
	}
	defer log.CloseFileWriteStream()
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
