package repository

import (
	"context"

	"github.com/rahulupadhyay22/Restaurant-Pos/internal/domain/delivery"
	"github.com/rahulupadhyay22/Restaurant-Pos/internal/domain/menu"
	"github.com/rahulupadhyay22/Restaurant-Pos/internal/domain/order"
)

// DeliveryOrderRepository persists delivery orders. Create must rely on the
// (platform, platform_order_id) uniqueness constraint as the dedupe backstop;
// TransitionStatus must be atomic so concurrent operator actions cannot both
// pass the same precondition.
type DeliveryOrderRepository interface {
	// Create inserts the order. When another row already holds the same
	// (platform, platform_order_id) it returns that existing row and
	// duplicate=true instead of an error.
	Create(ctx context.Context, d *delivery.DeliveryOrder) (existing *delivery.DeliveryOrder, duplicate bool, err error)

	FindByID(ctx context.Context, id string) (*delivery.DeliveryOrder, error)
	FindByPlatformOrderID(ctx context.Context, platform delivery.Platform, platformOrderID string) (*delivery.DeliveryOrder, error)

	// TransitionStatus moves the order from expected to next in one guarded
	// update; applied=false means the precondition no longer held.
	TransitionStatus(ctx context.Context, id string, expected, next delivery.Status) (applied bool, err error)

	// SetStatus force-sets the status without a precondition (operator escape hatch).
	SetStatus(ctx context.Context, id string, status delivery.Status) error

	// LinkOrder attaches the materialized internal order; linked=false means
	// another materialization already won the race.
	LinkOrder(ctx context.Context, id string, orderID string) (linked bool, err error)

	ListPending(ctx context.Context) ([]delivery.DeliveryOrder, error)
	ListCompleted(ctx context.Context, limit int) ([]delivery.DeliveryOrder, error)
}

// OrderRepository persists internal orders with their items atomically.
type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) error
	FindByID(ctx context.Context, id string) (*order.Order, error)
}

// MenuRepository is the read-only catalog lookup used by the menu matcher.
type MenuRepository interface {
	// FindByName is an exact, case-sensitive lookup; nil when absent.
	FindByName(ctx context.Context, name string) (*menu.MenuItem, error)
	// FindByNameLike is a case-insensitive substring lookup in catalog order;
	// nil when nothing matches.
	FindByNameLike(ctx context.Context, fragment string) (*menu.MenuItem, error)
	// First returns the first catalog entry in natural order, nil when the
	// catalog is empty.
	First(ctx context.Context) (*menu.MenuItem, error)
}
