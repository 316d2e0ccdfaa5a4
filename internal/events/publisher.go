package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// eventField is the stream entry field holding the JSON envelope.
const eventField = "event"

// Publisher appends events to Redis streams.
type Publisher struct {
	client redis.UniversalClient
	maxLen int64
}

// NewPublisher creates a Publisher. maxLen caps each stream approximately; 0 disables trimming.
func NewPublisher(client redis.UniversalClient, maxLen int64) *Publisher {
	return &Publisher{client: client, maxLen: maxLen}
}

func (p *Publisher) Publish(ctx context.Context, stream, eventType string, data any) error {
	event := Event{
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}

	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: stream,
		Values: map[string]any{eventField: eventJSON},
	}
	if p.maxLen > 0 {
		args.MaxLen = p.maxLen
		args.Approx = true
	}

	if _, err := p.client.XAdd(ctx, args).Result(); err != nil {
		return fmt.Errorf("failed to publish event to %s: %w", stream, err)
	}
	return nil
}
