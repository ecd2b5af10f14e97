package kafka

import (
	"context"

	kafkago "github.com/segmentio/kafka-go"

	app "github.com/rahulupadhyay22/Restaurant-Pos/internal/application/delivery"
	"github.com/rahulupadhyay22/Restaurant-Pos/internal/config"
	"github.com/rahulupadhyay22/Restaurant-Pos/internal/infrastructure/encoding/avro"
	"github.com/rahulupadhyay22/Restaurant-Pos/pkg/logger"
)

// EventHandler receives each decoded delivery event.
type EventHandler func(ctx context.Context, ev app.Event) error

// EventConsumer drains the delivery event topic for downstream display
// surfaces (kitchen screens, notification boards).
type EventConsumer struct {
	reader  *kafkago.Reader
	decoder *avro.Encoder
	handler EventHandler
	log     logger.Logger
}

func NewEventConsumer(cfg config.KafkaConfig, handler EventHandler, log logger.Logger) (*EventConsumer, error) {
	decoder, err := avro.NewEncoder(avro.DeliveryEventSchema)
	if err != nil {
		return nil, err
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.ConsumerGroup,
		Topic:    cfg.EventTopic,
		MinBytes: 1e3,
		MaxBytes: 1e6,
	})

	return &EventConsumer{
		reader:  reader,
		decoder: decoder,
		handler: handler,
		log:     log,
	}, nil
}

// Start consumes until ctx is cancelled or the reader fails. Undecodable
// messages and handler errors are logged and skipped; events are one-way
// notifications, so a poison message never wedges the consumer.
func (c *EventConsumer) Start(ctx context.Context) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		native, err := c.decoder.DecodeNative(msg.Value)
		if err != nil {
			c.log.Error("failed to decode delivery event",
				logger.Int64("offset", msg.Offset),
				logger.Error(err),
			)
			continue
		}

		ev := avro.FromDeliveryEventNative(native)
		if err := c.handler(ctx, ev); err != nil {
			c.log.Error("delivery event handler failed",
				logger.String("event", ev.Type),
				logger.String("delivery_id", ev.DeliveryID),
				logger.Error(err),
			)
		}
	}
}

func (c *EventConsumer) Close() {
	_ = c.reader.Close()
}
