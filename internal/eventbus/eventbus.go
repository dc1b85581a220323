// Package eventbus publishes player lifecycle events to Kafka.
package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shockbase/levelborder/internal/model"
)

// Source identifies this plugin in published messages
const Source = "levelborder"

// Publisher publishes lifecycle events
type Publisher interface {
	Publish(ctx context.Context, event model.Event) error
	Close() error
}

// Message is the JSON document written for every event
type Message struct {
	EventID    string          `json:"event_id"`
	EventType  string          `json:"event_type"`
	Timestamp  time.Time       `json:"timestamp"`
	Source     string          `json:"source"`
	PlayerID   string          `json:"player_id"`
	PlayerName string          `json:"player_name"`
	World      string          `json:"world"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

// NewMessage converts an event into its published form with a fresh event ID
func NewMessage(event model.Event) (Message, error) {
	msg := Message{
		EventID:    uuid.NewString(),
		EventType:  string(event.Type),
		Timestamp:  event.Timestamp.UTC(),
		Source:     Source,
		PlayerID:   event.Player.ID.String(),
		PlayerName: event.Player.Name,
		World:      event.Player.Location.World,
	}
	if event.Payload != nil {
		payload, err := json.Marshal(event.Payload)
		if err != nil {
			return Message{}, fmt.Errorf("marshal payload: %w", err)
		}
		msg.Payload = payload
	}
	return msg, nil
}

// NopPublisher drops every event
type NopPublisher struct{}

// Ensure NopPublisher implements Publisher
var _ Publisher = NopPublisher{}

func (NopPublisher) Publish(ctx context.Context, event model.Event) error { return nil }
func (NopPublisher) Close() error                                        { return nil }
