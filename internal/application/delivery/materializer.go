package delivery

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	domain "github.com/rahulupadhyay22/Restaurant-Pos/internal/domain/delivery"
	"github.com/rahulupadhyay22/Restaurant-Pos/internal/domain/menu"
	"github.com/rahulupadhyay22/Restaurant-Pos/internal/domain/order"
	"github.com/rahulupadhyay22/Restaurant-Pos/internal/domain/repository"
	"github.com/rahulupadhyay22/Restaurant-Pos/pkg/logger"
)

// itemsOutcome is the explicit result of turning stored items data into
// order lines: either the real lines, or a single placeholder with the
// reason the real ones could not be built.
type itemsOutcome struct {
	items          []order.OrderItem
	placeholder    bool
	placeholderWhy string
}

// Materializer converts an accepted delivery order into an internal order
// with order items, resolving each external item name through the menu
// matcher.
//
// Failure policy: materialization favors always producing a billable order
// over strict correctness. Unparseable or missing items data degrades to a
// single placeholder item; only an empty catalog aborts.
type Materializer struct {
	orders     repository.OrderRepository
	deliveries repository.DeliveryOrderRepository
	matcher    *MenuMatcher
	log        logger.Logger
}

func NewMaterializer(
	orders repository.OrderRepository,
	deliveries repository.DeliveryOrderRepository,
	matcher *MenuMatcher,
	log logger.Logger,
) *Materializer {
	return &Materializer{
		orders:     orders,
		deliveries: deliveries,
		matcher:    matcher,
		log:        log,
	}
}

// Materialize creates the internal order for d and links it back. Invoked on
// first acceptance; when d already carries an order link the existing order
// is returned unchanged.
func (m *Materializer) Materialize(ctx context.Context, d *domain.DeliveryOrder) (*order.Order, error) {
	if d.Materialized() {
		existing, err := m.orders.FindByID(ctx, d.OrderID)
		if err != nil {
			return nil, fmt.Errorf("load materialized order: %w", err)
		}
		return existing, nil
	}

	orderID := uuid.NewString()
	outcome, err := m.buildItems(ctx, d, orderID)
	if err != nil {
		return nil, err
	}
	if outcome.placeholder {
		m.log.Warn("materializing delivery order with placeholder item",
			logger.String("delivery_id", d.ID),
			logger.String("reason", outcome.placeholderWhy),
		)
	}

	o := &order.Order{
		ID:              orderID,
		Type:            orderTypeFor(d.Platform),
		Status:          order.StatusActive,
		DeliveryID:      d.PlatformOrderID,
		CustomerName:    d.CustomerName,
		CustomerPhone:   d.CustomerPhone,
		CustomerAddress: d.CustomerAddress,
		Items:           outcome.items,
		CreatedAt:       time.Now().UTC(),
	}

	if err := m.orders.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("create internal order: %w", err)
	}

	linked, err := m.deliveries.LinkOrder(ctx, d.ID, o.ID)
	if err != nil {
		return nil, fmt.Errorf("link internal order: %w", err)
	}
	if !linked {
		// A concurrent acceptance won the link race; honor its order.
		m.log.Warn("delivery order already materialized concurrently",
			logger.String("delivery_id", d.ID),
			logger.String("orphaned_order_id", o.ID),
		)
		fresh, err := m.deliveries.FindByID(ctx, d.ID)
		if err != nil {
			return nil, fmt.Errorf("reload delivery order: %w", err)
		}
		if fresh == nil || fresh.OrderID == "" {
			return nil, domain.ErrNotFound
		}
		d.OrderID = fresh.OrderID
		return m.orders.FindByID(ctx, fresh.OrderID)
	}

	d.OrderID = o.ID
	m.log.Info("materialized delivery order",
		logger.String("delivery_id", d.ID),
		logger.String("order_id", o.ID),
		logger.Int("items", len(o.Items)),
	)
	return o, nil
}

// buildItems resolves each canonical item into an order line. Any parsing
// failure or an empty item list degrades to a single placeholder line, so a
// materialized order is never left with zero items.
func (m *Materializer) buildItems(ctx context.Context, d *domain.DeliveryOrder, orderID string) (itemsOutcome, error) {
	canonicalItems, err := d.Items()
	if err != nil {
		m.log.Error("failed to parse delivery items data",
			logger.String("delivery_id", d.ID),
			logger.Error(err),
		)
		return m.placeholderOutcome(ctx, d, orderID,
			fmt.Sprintf("Delivery order from %s (items parsing failed: %v)", d.Platform, err))
	}
	if len(canonicalItems) == 0 {
		m.log.Warn("no items data for delivery order",
			logger.String("platform", d.Platform.String()),
			logger.String("platform_order_id", d.PlatformOrderID),
		)
		return m.placeholderOutcome(ctx, d, orderID,
			fmt.Sprintf("Delivery order from %s (no items data)", d.Platform))
	}

	lines := make([]order.OrderItem, 0, len(canonicalItems))
	for _, item := range canonicalItems {
		m.log.Info("processing delivery item", logger.String("item_name", item.Name))

		menuItem, outcome, err := m.matcher.Match(ctx, item.Name)
		if err != nil {
			if errors.Is(err, menu.ErrEmptyCatalog) {
				return itemsOutcome{}, err
			}
			// Storage hiccup mid-list: degrade the whole order rather than
			// abort it.
			m.log.Error("menu match failed, degrading to placeholder",
				logger.String("item_name", item.Name),
				logger.Error(err),
			)
			return m.placeholderOutcome(ctx, d, orderID,
				fmt.Sprintf("Delivery order from %s (items parsing failed: %v)", d.Platform, err))
		}
		if outcome == MatchDegraded {
			m.log.Warn("degraded menu match for delivery item",
				logger.String("item_name", item.Name),
				logger.String("matched", menuItem.Name),
			)
		}

		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		// Platforms sometimes quote their own price; honor it for billing
		// correctness, otherwise fall back to the catalog price.
		price := item.Price
		if price <= 0 {
			price = menuItem.FullPrice
		}

		lines = append(lines, order.OrderItem{
			ID:         uuid.NewString(),
			OrderID:    orderID,
			MenuItemID: menuItem.ID,
			Quantity:   quantity,
			Price:      price,
			Notes:      itemNotes(item),
			CreatedAt:  time.Now().UTC(),
		})
	}

	return itemsOutcome{items: lines}, nil
}

func (m *Materializer) placeholderOutcome(ctx context.Context, d *domain.DeliveryOrder, orderID, reason string) (itemsOutcome, error) {
	fallback, err := m.matcher.Fallback(ctx)
	if err != nil {
		return itemsOutcome{}, err
	}
	return itemsOutcome{
		items: []order.OrderItem{{
			ID:         uuid.NewString(),
			OrderID:    orderID,
			MenuItemID: fallback.ID,
			Quantity:   1,
			Price:      fallback.FullPrice,
			Notes:      reason,
			CreatedAt:  time.Now().UTC(),
		}},
		placeholder:    true,
		placeholderWhy: reason,
	}, nil
}

// itemNotes annotates the order line with the original external item name,
// platform notes, and variation labels so operators can see what was
// actually ordered even after a fuzzy or degraded match.
func itemNotes(item domain.CanonicalItem) string {
	notes := fmt.Sprintf("Delivery item: %s", item.Name)
	if item.Notes != "" {
		notes += fmt.Sprintf(" | Notes: %s", item.Notes)
	}
	if len(item.Variations) > 0 {
		notes += fmt.Sprintf(" | Variations: %s", strings.Join(item.Variations, ", "))
	}
	return notes
}

func orderTypeFor(platform domain.Platform) order.Type {
	switch platform {
	case domain.PlatformSwiggy:
		return order.TypeSwiggy
	default:
		return order.TypeZomato
	}
}
