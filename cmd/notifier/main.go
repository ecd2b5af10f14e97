package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	app "github.com/rahulupadhyay22/Restaurant-Pos/internal/application/delivery"
	"github.com/rahulupadhyay22/Restaurant-Pos/internal/config"
	kafkainfra "github.com/rahulupadhyay22/Restaurant-Pos/internal/infrastructure/messaging/kafka"
	"github.com/rahulupadhyay22/Restaurant-Pos/pkg/logger"
)

// The notifier drains the delivery event topic and surfaces each event for
// operator-facing displays. It is intentionally thin: consuming and acking
// is the whole job, rendering is left to whatever tails its log stream.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	zl, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer zl.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer, err := kafkainfra.NewEventConsumer(cfg.Kafka, func(_ context.Context, ev app.Event) error {
		zl.Info("delivery notification",
			logger.String("event", ev.Type),
			logger.String("delivery_id", ev.DeliveryID),
			logger.String("platform", ev.Platform),
			logger.String("status", ev.Status),
			logger.String("customer", ev.CustomerName),
			logger.String("order_time", ev.OrderTime),
		)
		return nil
	}, zl)
	if err != nil {
		zl.Fatal("kafka consumer setup failed", logger.Error(err))
	}
	defer consumer.Close()

	zl.Info("notifier started",
		logger.Any("brokers", cfg.Kafka.Brokers),
		logger.String("topic", cfg.Kafka.EventTopic),
	)
	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		zl.Fatal("kafka consumer stopped", logger.Error(err))
	}
}
