package delivery

import (
	"context"

	"github.com/rahulupadhyay22/Restaurant-Pos/pkg/logger"
)

// Event types published to the notification channel.
const (
	EventDeliveryReceived = "new_delivery_order"
	EventDeliveryUpdated  = "delivery_updated"
)

// Event is the one-way broadcast message emitted on delivery order creation
// and on every successful status transition. Consumers are external;
// delivery of an event is never awaited or required.
type Event struct {
	Type         string
	DeliveryID   string
	Platform     string
	Status       string
	CustomerName string
	OrderTime    string // HH:MM:SS, set on creation events
}

// EventPublisher is the outbound notification channel. Publish failures are
// logged by callers and never roll back the state change that triggered them.
type EventPublisher interface {
	PublishDeliveryEvent(ctx context.Context, ev Event) error
}

// publish emits ev if a publisher is wired, logging failures and moving on.
func publish(ctx context.Context, p EventPublisher, log logger.Logger, ev Event) {
	if p == nil {
		return
	}
	if err := p.PublishDeliveryEvent(ctx, ev); err != nil {
		// Broadcast only; the state change that triggered the event is
		// already committed.
		log.Error("failed to publish delivery event",
			logger.String("event", ev.Type),
			logger.String("delivery_id", ev.DeliveryID),
			logger.Error(err),
		)
	}
}
