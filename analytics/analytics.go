package analytics

import (
	"context"

	"github.com/smallnest/flowcanvas/log"
)

// Event is one usage event, e.g. a node added from the toolbar.
type Event struct {
	// Category groups related events ("node", "edge", "clipboard").
	Category string

	// Kind is the node kind involved, when one is.
	Kind string

	// Action names what happened ("add", "duplicate", "paste").
	Action string

	// Metadata carries event-specific details. May be nil.
	Metadata map[string]any
}

// Sink receives events. Implementations must be non-blocking from the
// caller's perspective; the engine calls Track inline from gesture handlers.
type Sink interface {
	Track(ctx context.Context, event Event)
}

// SinkFunc is a function adapter for Sink.
type SinkFunc func(ctx context.Context, event Event)

// Track implements the Sink interface.
func (f SinkFunc) Track(ctx context.Context, event Event) { f(ctx, event) }

// Emit sends an event to the sink, absorbing nil sinks and panics so a
// broken analytics pipeline can never take down a gesture.
func Emit(ctx context.Context, sink Sink, event Event) {
	if sink == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Debug("analytics sink panicked: %v", r)
		}
	}()
	sink.Track(ctx, event)
}

// LogSink writes events to a Logger at debug level. The default sink in
// development builds.
type LogSink struct {
	Logger log.Logger
}

// Track implements the Sink interface.
func (s *LogSink) Track(ctx context.Context, event Event) {
	logger := s.Logger
	if logger == nil {
		logger = log.GetDefaultLogger()
	}
	logger.Debug("analytics: category=%s kind=%s action=%s metadata=%v",
		event.Category, event.Kind, event.Action, event.Metadata)
}

// NopSink discards all events.
type NopSink struct{}

// Track does nothing
func (NopSink) Track(ctx context.Context, event Event) {}
