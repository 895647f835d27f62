// Package eventbus defines the contract for publishing domain events.
package eventbus

import (
	"context"

	"github.com/amirasaad/peerpay/pkg/domain/events"
)

// HandlerFunc handles one published event.
type HandlerFunc func(ctx context.Context, e events.Event) error

// Bus dispatches domain events to registered handlers.
type Bus interface {
	// Register adds a handler for the given event type.
	Register(eventType string, handler HandlerFunc)

	// Emit dispatches the event to all handlers registered for its type.
	Emit(ctx context.Context, e events.Event) error
}
