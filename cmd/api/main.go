package main

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	app "github.com/rahulupadhyay22/Restaurant-Pos/internal/application/delivery"
	"github.com/rahulupadhyay22/Restaurant-Pos/internal/config"
	ginserver "github.com/rahulupadhyay22/Restaurant-Pos/internal/infrastructure/http/gin"
	"github.com/rahulupadhyay22/Restaurant-Pos/internal/infrastructure/http/platforms"
	kafkainfra "github.com/rahulupadhyay22/Restaurant-Pos/internal/infrastructure/messaging/kafka"
	"github.com/rahulupadhyay22/Restaurant-Pos/internal/infrastructure/persistence/postgres"
	"github.com/rahulupadhyay22/Restaurant-Pos/internal/infrastructure/ratelimit"
	"github.com/rahulupadhyay22/Restaurant-Pos/internal/interfaces/http/handler"
	"github.com/rahulupadhyay22/Restaurant-Pos/internal/interfaces/http/router"
	"github.com/rahulupadhyay22/Restaurant-Pos/pkg/logger"
)

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

	pool, err := postgres.NewPool(cfg.DB)
	if err != nil {
		zl.Fatal("postgres connection failed", logger.Error(err))
	}
	defer pool.Close()

	schemaCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := postgres.EnsureSchema(schemaCtx, pool); err != nil {
		zl.Fatal("schema setup failed", logger.Error(err))
	}

	deliveryRepo := postgres.NewDeliveryOrderRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	menuRepo := postgres.NewMenuRepository(pool)

	producer, err := kafkainfra.NewEventProducer(cfg.Kafka, zl)
	if err != nil {
		zl.Fatal("kafka producer setup failed", logger.Error(err))
	}
	defer producer.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()
	limiter := ratelimit.NewRedisLimiter(redisClient, cfg.Delivery.RateLimit, cfg.Delivery.RateWindow, zl)

	normalizers := app.NewNormalizerRegistry(zl)
	ingest := app.NewIngestService(deliveryRepo, normalizers, producer, zl)
	matcher := app.NewMenuMatcher(menuRepo, zl)
	materializer := app.NewMaterializer(orderRepo, deliveryRepo, matcher, zl)
	syncer := platforms.NewSyncer(cfg.Delivery, zl)
	lifecycle := app.NewLifecycleService(deliveryRepo, materializer, producer, syncer, zl)

	webhookHandler := handler.NewWebhookHandler(ingest, app.NewSignatureVerifier(zl), limiter, cfg.Delivery, zl)
	deliveryHandler := handler.NewDeliveryHandler(lifecycle, zl)

	server := ginserver.NewServer(cfg.Server)
	router.RegisterRoutes(server.Engine(), webhookHandler, deliveryHandler)

	zl.Info("starting api server",
		logger.String("addr", cfg.Server.Address()),
		logger.String("env", cfg.App.Env),
	)
	if err := server.Run(); err != nil {
		zl.Fatal("server run failed", logger.Error(err))
	}
}
