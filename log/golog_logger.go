package log

import (
	"github.com/kataras/golog"
)

// GologLogger adapts a kataras/golog logger to the Logger interface, giving
// the engine colored, leveled console output in interactive setups such as
// the flowcanvas CLI.
type GologLogger struct {
	logger *golog.Logger
	level  LogLevel
}

var _ Logger = (*GologLogger)(nil)

// NewGologLogger wraps an existing golog.Logger. The wrapper starts at
// LogLevelInfo regardless of how the underlying logger is configured.
func NewGologLogger(logger *golog.Logger) *GologLogger {
	return &GologLogger{
		logger: logger,
		level:  LogLevelInfo,
	}
}

// Debug logs drag, clipboard and save chatter suppressed in normal runs.
func (l *GologLogger) Debug(format string, v ...any) {
	if l.level <= LogLevelDebug {
		args := append([]any{format}, v...)
		l.logger.Debug(args...)
	}
}

// Info logs informational messages.
func (l *GologLogger) Info(format string, v ...any) {
	if l.level <= LogLevelInfo {
		args := append([]any{format}, v...)
		l.logger.Info(args...)
	}
}

// Warn logs recoverable failures, e.g. a snapshot save that will retry.
func (l *GologLogger) Warn(format string, v ...any) {
	if l.level <= LogLevelWarn {
		args := append([]any{format}, v...)
		l.logger.Warn(args...)
	}
}

// Error logs failures that need attention.
func (l *GologLogger) Error(format string, v ...any) {
	if l.level <= LogLevelError {
		args := append([]any{format}, v...)
		l.logger.Error(args...)
	}
}

// SetLevel sets the threshold on both the wrapper and the wrapped logger.
func (l *GologLogger) SetLevel(level LogLevel) {
	l.level = level

	gologLevel := "info"
	switch level {
	case LogLevelDebug:
		gologLevel = "debug"
	case LogLevelInfo:
		gologLevel = "info"
	case LogLevelWarn:
		gologLevel = "warn"
	case LogLevelError:
		gologLevel = "error"
	case LogLevelNone:
		gologLevel = "disable"
	}

	l.logger.SetLevel(gologLevel)
}

// GetLevel returns the current log level.
func (l *GologLogger) GetLevel() LogLevel {
	return l.level
}
