package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/rahulupadhyay22/Restaurant-Pos/internal/domain/delivery"
)

const deliveryOrderColumns = `
	id, platform, platform_order_id, order_id, status,
	customer_name, customer_phone, customer_address,
	delivery_fee, platform_fee, items_data, created_at, updated_at`

// DeliveryOrderRepository is the pgx-backed store for delivery orders.
type DeliveryOrderRepository struct {
	pool *pgxpool.Pool
}

func NewDeliveryOrderRepository(pool *pgxpool.Pool) *DeliveryOrderRepository {
	return &DeliveryOrderRepository{pool: pool}
}

// Create inserts d. When the (platform, platform_order_id) constraint
// rejects the insert the existing row is returned with duplicate=true, so
// a concurrent double delivery never surfaces as an error.
func (r *DeliveryOrderRepository) Create(ctx context.Context, d *domain.DeliveryOrder) (*domain.DeliveryOrder, bool, error) {
	if d == nil {
		return nil, false, fmt.Errorf("delivery order is nil")
	}

	const query = `
		INSERT INTO delivery_orders (
			id, platform, platform_order_id, status,
			customer_name, customer_phone, customer_address,
			delivery_fee, platform_fee, items_data, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (platform, platform_order_id) DO NOTHING;
	`

	tag, err := r.pool.Exec(ctx, query,
		d.ID,
		d.Platform.String(),
		d.PlatformOrderID,
		d.Status.String(),
		d.CustomerName,
		d.CustomerPhone,
		d.CustomerAddress,
		d.DeliveryFee,
		d.PlatformFee,
		d.ItemsData,
		d.CreatedAt,
		d.UpdatedAt,
	)
	if err != nil {
		return nil, false, err
	}
	if tag.RowsAffected() == 0 {
		existing, err := r.FindByPlatformOrderID(ctx, d.Platform, d.PlatformOrderID)
		if err != nil {
			return nil, false, err
		}
		if existing == nil {
			// The conflicting row vanished between the insert and the read.
			return nil, false, fmt.Errorf("conflicting delivery order not found: %s/%s", d.Platform, d.PlatformOrderID)
		}
		return existing, true, nil
	}
	return d, false, nil
}

func (r *DeliveryOrderRepository) FindByID(ctx context.Context, id string) (*domain.DeliveryOrder, error) {
	query := `SELECT ` + deliveryOrderColumns + ` FROM delivery_orders WHERE id = $1;`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *DeliveryOrderRepository) FindByPlatformOrderID(ctx context.Context, platform domain.Platform, platformOrderID string) (*domain.DeliveryOrder, error) {
	query := `SELECT ` + deliveryOrderColumns + ` FROM delivery_orders WHERE platform = $1 AND platform_order_id = $2;`
	return r.scanOne(r.pool.QueryRow(ctx, query, platform.String(), platformOrderID))
}

// TransitionStatus applies the status change only when the row still holds
// the expected status. RowsAffected distinguishes a lost race from success.
func (r *DeliveryOrderRepository) TransitionStatus(ctx context.Context, id string, expected, next domain.Status) (bool, error) {
	const query = `
		UPDATE delivery_orders
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4;
	`
	tag, err := r.pool.Exec(ctx, query, next.String(), time.Now().UTC(), id, expected.String())
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *DeliveryOrderRepository) SetStatus(ctx context.Context, id string, status domain.Status) error {
	const query = `
		UPDATE delivery_orders
		SET status = $1, updated_at = $2
		WHERE id = $3;
	`
	tag, err := r.pool.Exec(ctx, query, status.String(), time.Now().UTC(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// LinkOrder attaches the internal order exactly once; the order_id IS NULL
// guard makes the first materialization win.
func (r *DeliveryOrderRepository) LinkOrder(ctx context.Context, id string, orderID string) (bool, error) {
	const query = `
		UPDATE delivery_orders
		SET order_id = $1, updated_at = $2
		WHERE id = $3 AND order_id IS NULL;
	`
	tag, err := r.pool.Exec(ctx, query, orderID, time.Now().UTC(), id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *DeliveryOrderRepository) ListPending(ctx context.Context) ([]domain.DeliveryOrder, error) {
	query := `
		SELECT ` + deliveryOrderColumns + `
		FROM delivery_orders
		WHERE status = $1
		ORDER BY created_at ASC;
	`
	rows, err := r.pool.Query(ctx, query, domain.StatusPending.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAll(rows)
}

func (r *DeliveryOrderRepository) ListCompleted(ctx context.Context, limit int) ([]domain.DeliveryOrder, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT ` + deliveryOrderColumns + `
		FROM delivery_orders
		WHERE status = ANY($1)
		ORDER BY updated_at DESC
		LIMIT $2;
	`
	terminal := []string{
		domain.StatusPickedUp.String(),
		domain.StatusDelivered.String(),
		domain.StatusCancelled.String(),
	}
	rows, err := r.pool.Query(ctx, query, terminal, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAll(rows)
}

func (r *DeliveryOrderRepository) scanOne(row pgx.Row) (*domain.DeliveryOrder, error) {
	d, err := scanDeliveryOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func scanAll(rows pgx.Rows) ([]domain.DeliveryOrder, error) {
	var out []domain.DeliveryOrder
	for rows.Next() {
		d, err := scanDeliveryOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

func scanDeliveryOrder(row pgx.Row) (*domain.DeliveryOrder, error) {
	var (
		d        domain.DeliveryOrder
		platform string
		status   string
		orderID  *string
	)
	err := row.Scan(
		&d.ID,
		&platform,
		&d.PlatformOrderID,
		&orderID,
		&status,
		&d.CustomerName,
		&d.CustomerPhone,
		&d.CustomerAddress,
		&d.DeliveryFee,
		&d.PlatformFee,
		&d.ItemsData,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	d.Platform = domain.Platform(platform)
	d.Status = domain.Status(status)
	if orderID != nil {
		d.OrderID = *orderID
	}
	return &d, nil
}
