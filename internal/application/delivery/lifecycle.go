package delivery

import (
	"context"
	"fmt"

	domain "github.com/rahulupadhyay22/Restaurant-Pos/internal/domain/delivery"
	"github.com/rahulupadhyay22/Restaurant-Pos/internal/domain/order"
	"github.com/rahulupadhyay22/Restaurant-Pos/internal/domain/repository"
	"github.com/rahulupadhyay22/Restaurant-Pos/pkg/logger"
)

// StatusSyncer pushes a local status change back to the originating delivery
// platform. Implementations are expected to be best-effort; the lifecycle
// service never fails a local transition because the platform was unreachable.
type StatusSyncer interface {
	SyncStatus(ctx context.Context, platform domain.Platform, platformOrderID string, status domain.Status) error
}

// LifecycleService drives a delivery order through its operator-facing state
// machine: accept (which materializes the internal order), reject, and the
// kitchen progression up to pickup.
type LifecycleService struct {
	repo         repository.DeliveryOrderRepository
	materializer *Materializer
	publisher    EventPublisher
	syncer       StatusSyncer
	log          logger.Logger
}

func NewLifecycleService(
	repo repository.DeliveryOrderRepository,
	materializer *Materializer,
	publisher EventPublisher,
	syncer StatusSyncer,
	log logger.Logger,
) *LifecycleService {
	return &LifecycleService{
		repo:         repo,
		materializer: materializer,
		publisher:    publisher,
		syncer:       syncer,
		log:          log,
	}
}

// Accept materializes the internal order for a pending delivery and then
// commits the pending -> accepted transition. Materialization runs first, so
// a transient order-store failure leaves the delivery order pending and
// Accept retryable. A concurrent accept is settled twice: the link guard
// makes the loser adopt the winner's order, and the guarded transition then
// decides which caller reports the state change.
func (s *LifecycleService) Accept(ctx context.Context, id string) (*domain.DeliveryOrder, *order.Order, error) {
	d, err := s.mustFind(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if !d.Status.CanTransitionTo(domain.StatusAccepted) {
		return nil, nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, d.Status, domain.StatusAccepted)
	}

	o, err := s.materializer.Materialize(ctx, d)
	if err != nil {
		s.log.Error("failed to materialize delivery order, leaving it pending",
			logger.String("delivery_id", d.ID),
			logger.Error(err),
		)
		return nil, nil, fmt.Errorf("materialize delivery order: %w", err)
	}

	d, err = s.commit(ctx, d, domain.StatusPending, domain.StatusAccepted)
	if err != nil {
		return nil, nil, err
	}

	s.afterTransition(ctx, d)
	return d, o, nil
}

// Reject cancels a pending delivery order. Rejected orders are never
// materialized.
func (s *LifecycleService) Reject(ctx context.Context, id string) (*domain.DeliveryOrder, error) {
	d, err := s.advance(ctx, id, domain.StatusPending, domain.StatusCancelled)
	if err != nil {
		return nil, err
	}
	s.afterTransition(ctx, d)
	return d, nil
}

// Prepare marks an accepted order as being cooked.
func (s *LifecycleService) Prepare(ctx context.Context, id string) (*domain.DeliveryOrder, error) {
	d, err := s.advance(ctx, id, domain.StatusAccepted, domain.StatusPreparing)
	if err != nil {
		return nil, err
	}
	s.afterTransition(ctx, d)
	return d, nil
}

// Ready marks a preparing order as packed and waiting for the rider.
func (s *LifecycleService) Ready(ctx context.Context, id string) (*domain.DeliveryOrder, error) {
	d, err := s.advance(ctx, id, domain.StatusPreparing, domain.StatusReady)
	if err != nil {
		return nil, err
	}
	s.afterTransition(ctx, d)
	return d, nil
}

// Complete marks a ready order as handed to the rider.
func (s *LifecycleService) Complete(ctx context.Context, id string) (*domain.DeliveryOrder, error) {
	d, err := s.advance(ctx, id, domain.StatusReady, domain.StatusPickedUp)
	if err != nil {
		return nil, err
	}
	s.afterTransition(ctx, d)
	return d, nil
}

// UpdateStatus sets an arbitrary valid status, skipping the transition table.
// It exists for operator corrections, e.g. marking an order delivered after
// the platform confirmed drop-off out of band.
func (s *LifecycleService) UpdateStatus(ctx context.Context, id string, raw string) (*domain.DeliveryOrder, error) {
	status, err := domain.ParseStatus(raw)
	if err != nil {
		return nil, err
	}

	d, err := s.mustFind(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("set delivery order status: %w", err)
	}
	d.Status = status

	s.log.Info("delivery order status overridden",
		logger.String("delivery_id", id),
		logger.String("status", status.String()),
	)
	s.afterTransition(ctx, d)
	return d, nil
}

// Get returns a single delivery order by id.
func (s *LifecycleService) Get(ctx context.Context, id string) (*domain.DeliveryOrder, error) {
	return s.mustFind(ctx, id)
}

// ListPending returns all delivery orders still awaiting an operator
// decision, oldest first.
func (s *LifecycleService) ListPending(ctx context.Context) ([]domain.DeliveryOrder, error) {
	return s.repo.ListPending(ctx)
}

// ListCompleted returns recent terminal delivery orders, newest first.
func (s *LifecycleService) ListCompleted(ctx context.Context, limit int) ([]domain.DeliveryOrder, error) {
	return s.repo.ListCompleted(ctx, limit)
}

// advance applies a guarded status transition. A lost race or an order in an
// unexpected state both surface as ErrInvalidTransition carrying the status
// actually observed.
func (s *LifecycleService) advance(ctx context.Context, id string, expected, next domain.Status) (*domain.DeliveryOrder, error) {
	d, err := s.mustFind(ctx, id)
	if err != nil {
		return nil, err
	}

	if !d.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, d.Status, next)
	}

	return s.commit(ctx, d, expected, next)
}

// commit applies the guarded update for an already validated transition.
func (s *LifecycleService) commit(ctx context.Context, d *domain.DeliveryOrder, expected, next domain.Status) (*domain.DeliveryOrder, error) {
	applied, err := s.repo.TransitionStatus(ctx, d.ID, expected, next)
	if err != nil {
		return nil, fmt.Errorf("transition delivery order status: %w", err)
	}
	if !applied {
		fresh, err := s.mustFind(ctx, d.ID)
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, fresh.Status, next)
	}

	d.Status = next
	s.log.Info("delivery order status changed",
		logger.String("delivery_id", d.ID),
		logger.String("status", next.String()),
	)
	return d, nil
}

// afterTransition fans the change out to the platform and the event stream.
// Both are best-effort.
func (s *LifecycleService) afterTransition(ctx context.Context, d *domain.DeliveryOrder) {
	if s.syncer != nil {
		if err := s.syncer.SyncStatus(ctx, d.Platform, d.PlatformOrderID, d.Status); err != nil {
			s.log.Warn("failed to sync status to delivery platform",
				logger.String("delivery_id", d.ID),
				logger.String("platform", d.Platform.String()),
				logger.Error(err),
			)
		}
	}
	if s.publisher != nil {
		publish(ctx, s.publisher, s.log, Event{
			Type:         EventDeliveryUpdated,
			DeliveryID:   d.ID,
			Platform:     d.Platform.String(),
			Status:       d.Status.String(),
			CustomerName: d.CustomerName,
			OrderTime:    d.CreatedAt.Format(timeOnly),
		})
	}
}

func (s *LifecycleService) mustFind(ctx context.Context, id string) (*domain.DeliveryOrder, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find delivery order: %w", err)
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	return d, nil
}
