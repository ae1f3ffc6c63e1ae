package notify

import (
	"github.com/smallnest/flowcanvas/log"
)

// Notifier surfaces messages to the user. Calls must not block; the engine
// invokes them from gesture handlers and save completions.
type Notifier interface {
	Success(message string)
	Warning(message string)
	Error(message string)
}

// LogNotifier routes notifications to a Logger. Useful for headless runs
// and tests.
type LogNotifier struct {
	Logger log.Logger
}

func (n *LogNotifier) logger() log.Logger {
	if n.Logger == nil {
		return log.GetDefaultLogger()
	}
	return n.Logger
}

// Success implements the Notifier interface.
func (n *LogNotifier) Success(message string) { n.logger().Info("notify: %s", message) }

// Warning implements the Notifier interface.
func (n *LogNotifier) Warning(message string) { n.logger().Warn("notify: %s", message) }

// Error implements the Notifier interface.
func (n *LogNotifier) Error(message string) { n.logger().Error("notify: %s", message) }

// NopNotifier discards all notifications.
type NopNotifier struct{}

// Success does nothing
func (NopNotifier) Success(message string) {}

// Warning does nothing
func (NopNotifier) Warning(message string) {}

// Error does nothing
func (NopNotifier) Error(message string) {}
