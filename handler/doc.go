// Package handler provides the Handler interface that receives rendered
// log calls, along with small building blocks shared by the concrete
// handlers.
//
// A Handler sees a core.Event: the level and original messages of a call
// together with its console and file renderings. The logger writes the
// console rendering through a console handler, and any number of extra
// handlers may be attached to a logger to observe every call.
//
// Sub-packages:
//
//   - consolehandler writes the console rendering to one of three
//     writers depending on the level (error, warn, info/debug).
//   - sloghandler lets log/slog front a logger.
//   - zaphandler mirrors calls into a *zap.Logger.
package handler
