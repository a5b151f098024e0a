// Package telemetry provides the narrow event-emission interface the rest of
// the application calls at interaction points. Only a logging recorder ships;
// external analytics backends stay out of the core.
package telemetry

import (
	"context"
	"log/slog"
)

// Event is a single interaction event with optional attributes.
type Event struct {
	Fields map[string]any
	Name   string
}

// Well-known event names.
const (
	EventPageView        = "page_view"
	EventSearch          = "search"
	EventFilterWines     = "filter_wines"
	EventViewItem        = "view_item"
	EventTastingAction   = "wine_tasting_action"
	EventExportList      = "export_list"
	EventChatMessage     = "ai_chat_message"
	EventPaginationUsed  = "pagination_used"
	EventViewModeChanged = "view_mode_changed"
)

// Recorder receives interaction events. Implementations must be cheap and
// must never fail the caller.
type Recorder interface {
	Emit(ctx context.Context, event Event)
}

// NewLogRecorder returns a Recorder that writes events to the default slog
// logger at debug level.
func NewLogRecorder() Recorder {
	return &logRecorder{}
}

type logRecorder struct{}

func (r *logRecorder) Emit(ctx context.Context, event Event) {
	attrs := make([]any, 0, len(event.Fields)*2+2)
	attrs = append(attrs, "event", event.Name)
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	slog.DebugContext(ctx, "telemetry", attrs...)
}

// Nop returns a Recorder that discards every event.
func Nop() Recorder {
	return nopRecorder{}
}

type nopRecorder struct{}

func (nopRecorder) Emit(context.Context, Event) {}
