package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/twmb/franz-go/pkg/kgo"

	app "github.com/rahulupadhyay22/Restaurant-Pos/internal/application/delivery"
	"github.com/rahulupadhyay22/Restaurant-Pos/internal/config"
	"github.com/rahulupadhyay22/Restaurant-Pos/internal/infrastructure/encoding/avro"
	"github.com/rahulupadhyay22/Restaurant-Pos/pkg/logger"
)

// EventProducer publishes delivery events to Kafka as Avro binary. It
// implements the application's EventPublisher.
type EventProducer struct {
	client  *kgo.Client
	encoder *avro.Encoder
	topic   string
	log     logger.Logger
}

func NewEventProducer(cfg config.KafkaConfig, log logger.Logger) (*EventProducer, error) {
	encoder, err := avro.NewEncoder(avro.DeliveryEventSchema)
	if err != nil {
		return nil, err
	}

	opts := []kgo.Opt{
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.EventTopic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.DisableIdempotentWrite(),
	}
	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	log.Info("kafka producer created",
		logger.Any("brokers", cfg.Brokers),
		logger.String("topic", cfg.EventTopic),
	)

	return &EventProducer{
		client:  client,
		encoder: encoder,
		topic:   cfg.EventTopic,
		log:     log,
	}, nil
}

func (p *EventProducer) PublishDeliveryEvent(ctx context.Context, ev app.Event) error {
	payload, err := p.encoder.EncodeNative(avro.ToDeliveryEventNative(ev))
	if err != nil {
		return fmt.Errorf("encode delivery event: %w", err)
	}

	rec := &kgo.Record{
		Topic:     p.topic,
		Key:       []byte(uuid.NewString()),
		Value:     payload,
		Timestamp: time.Now().UTC(),
	}

	results := p.client.ProduceSync(ctx, rec)
	if err := results.FirstErr(); err != nil {
		return fmt.Errorf("publish to kafka topic %s: %w", p.topic, err)
	}
	return nil
}

func (p *EventProducer) Close() {
	p.client.Close()
}
