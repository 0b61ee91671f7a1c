// Package logger is the public API of duolog. Most users only need to
// import this package.
//
// Every call is rendered twice: once for the terminal, with a colored
// level badge, and once for the log file, as plain text. The console
// rendering goes to stderr for Fatal, Error and Warn and to stdout for
// Info and Debug. The file rendering goes to the logger's write stream
// when one is open.
//
// The package initializes a default Logger in init(). The
// package-level functions Info, Error, Debugf, etc. delegate to it, so
// simple programs can log without any setup:
//
//	logger.Info("listening on", 8080)
//
// For custom configuration, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithLabel("api").
//	    WithDebugMode(logger.DebugMode{Enabled: logger.Static(true)}).
//	    Build()
//
//	err := log.CreateFileWriteStream(ctx, stream.Options{
//	    Path: "logs/api.log",
//	    Mode: stream.Rename,
//	})
//
// Loggers form a tree. Every event is delivered to the listeners of the
// logger it was logged on and then to those of each ancestor, so a root
// logger can observe everything its children log:
//
//	child := log.Clone(false).WithLabel("db").Build()
//	log.On(logger.ErrorLevel, func(ev core.Event) { alert(ev.File) })
//	child.Error("connection lost") // triggers alert
//
// Debug calls are dropped unless a debugging session is active. By
// default that means DUOLOG_DEBUG is true or a debugger is attached.
package logger
