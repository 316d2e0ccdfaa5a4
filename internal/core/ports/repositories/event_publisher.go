package repositories

import "context"

// EventPublisher emits lifecycle events for stored entities.
type EventPublisher interface {
	Publish(ctx context.Context, stream, eventType string, data any) error
}
