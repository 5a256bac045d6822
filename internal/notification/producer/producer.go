// Package producer defines the interface for publishing notification events
// (e.g. to Kafka) for downstream delivery channels such as push or SMS.
package producer

import "context"

// Event is the payload published when a notification is created.
type Event struct {
	EventID   string `json:"eventId"`
	UserID    int64  `json:"userId"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt string `json:"createdAt"`
}

// Producer publishes notification events. Callers use it best-effort: log and ignore errors.
type Producer interface {
	Publish(ctx context.Context, event *Event) error
	// Close releases resources (e.g. Kafka writer). Safe to call if already closed.
	Close() error
}
