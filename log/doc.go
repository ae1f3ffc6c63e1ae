// Package log provides the leveled logging interface used across the
// flowcanvas engine.
//
// Engine components take a Logger so products can route engine noise into
// their own logging pipeline. Two implementations ship with the module: a
// DefaultLogger backed by Go's standard log package and a GologLogger
// wrapping github.com/kataras/golog for colored, leveled console output.
// A package-level default logger is available for code paths that have no
// injected logger, such as fire-and-forget analytics failures.
//
// Levels, in increasing severity: LogLevelDebug, LogLevelInfo, LogLevelWarn,
// LogLevelError. LogLevelNone disables output entirely.
//
// Clipboard-read failures are logged at debug level only: clipboard access
// support varies across browsers and sessions and is expected to fail
// intermittently without that being actionable.
package log
