package delivery

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domain "github.com/rahulupadhyay22/Restaurant-Pos/internal/domain/delivery"
	"github.com/rahulupadhyay22/Restaurant-Pos/internal/domain/repository"
	"github.com/rahulupadhyay22/Restaurant-Pos/pkg/logger"
)

// IngestService runs the webhook pipeline after signature verification:
// normalize → validate → dedupe → extract items → persist → notify.
type IngestService struct {
	repo        repository.DeliveryOrderRepository
	normalizers *NormalizerRegistry
	publisher   EventPublisher
	log         logger.Logger
}

func NewIngestService(
	repo repository.DeliveryOrderRepository,
	normalizers *NormalizerRegistry,
	publisher EventPublisher,
	log logger.Logger,
) *IngestService {
	return &IngestService{
		repo:        repo,
		normalizers: normalizers,
		publisher:   publisher,
		log:         log,
	}
}

// IngestResult reports the stored order and whether this delivery was a
// re-send of an already received one.
type IngestResult struct {
	Order     *domain.DeliveryOrder
	Duplicate bool
}

// Ingest processes one verified webhook payload. A duplicate
// (platform, order_id) is not an error: webhook senders retry with
// at-least-once semantics, so the endpoint must be idempotent.
// A *ValidationError marks a rejectable payload; any other error is an
// internal failure.
func (s *IngestService) Ingest(ctx context.Context, platform domain.Platform, payload map[string]interface{}) (IngestResult, error) {
	canonical := s.normalizers.Normalize(platform, payload)

	if valid, reason := Validate(canonical); !valid {
		s.log.Error("invalid delivery webhook payload",
			logger.String("platform", platform.String()),
			logger.String("reason", reason),
		)
		return IngestResult{}, &ValidationError{Reason: reason}
	}

	// Clean-path dedupe check; the storage uniqueness constraint remains the
	// backstop for concurrent deliveries of the same order.
	existing, err := s.repo.FindByPlatformOrderID(ctx, platform, canonical.OrderID)
	if err != nil {
		return IngestResult{}, fmt.Errorf("dedupe lookup: %w", err)
	}
	if existing != nil {
		s.log.Warn("duplicate delivery order received",
			logger.String("platform", platform.String()),
			logger.String("platform_order_id", canonical.OrderID),
		)
		return IngestResult{Order: existing, Duplicate: true}, nil
	}

	items := s.normalizers.ExtractItems(platform, canonical.RawItems)
	if len(items) > 0 {
		s.log.Info("extracted delivery items",
			logger.String("platform", platform.String()),
			logger.String("platform_order_id", canonical.OrderID),
			logger.Int("count", len(items)),
		)
	}

	d, err := domain.NewDeliveryOrder(uuid.NewString(), platform, canonical, items)
	if err != nil {
		return IngestResult{}, fmt.Errorf("build delivery order: %w", err)
	}

	stored, duplicate, err := s.repo.Create(ctx, d)
	if err != nil {
		return IngestResult{}, fmt.Errorf("persist delivery order: %w", err)
	}
	if duplicate {
		// Lost the race against a concurrent delivery of the same order.
		s.log.Warn("concurrent duplicate delivery order",
			logger.String("platform", platform.String()),
			logger.String("platform_order_id", canonical.OrderID),
		)
		return IngestResult{Order: stored, Duplicate: true}, nil
	}

	s.log.Info("delivery order received",
		logger.String("platform", platform.String()),
		logger.String("platform_order_id", stored.PlatformOrderID),
		logger.String("delivery_id", stored.ID),
	)

	publish(ctx, s.publisher, s.log, Event{
		Type:         EventDeliveryReceived,
		DeliveryID:   stored.ID,
		Platform:     platform.String(),
		Status:       stored.Status.String(),
		CustomerName: stored.CustomerName,
		OrderTime:    stored.CreatedAt.Format(timeOnly),
	})

	return IngestResult{Order: stored}, nil
}

const timeOnly = "15:04:05"
