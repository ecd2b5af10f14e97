package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/rahulupadhyay22/Restaurant-Pos/internal/domain/order"
)

// OrderRepository persists internal orders. An order and its items are
// written in one transaction; a half-written order is never visible.
type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	if o == nil {
		return fmt.Errorf("order is nil")
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const orderQuery = `
		INSERT INTO orders (
			id, order_type, status, delivery_id,
			customer_name, customer_phone, customer_address,
			created_at, completed_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, orderQuery,
		o.ID,
		string(o.Type),
		string(o.Status),
		o.DeliveryID,
		o.CustomerName,
		o.CustomerPhone,
		o.CustomerAddress,
		o.CreatedAt,
		o.CompletedAt,
	)
	if err != nil {
		return err
	}

	const itemQuery = `
		INSERT INTO order_items (id, order_id, menu_item_id, quantity, price, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, item := range o.Items {
		if _, err := tx.Exec(ctx, itemQuery,
			item.ID,
			item.OrderID,
			item.MenuItemID,
			item.Quantity,
			item.Price,
			item.Notes,
			item.CreatedAt,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	const orderQuery = `
		SELECT id, order_type, status, delivery_id,
			customer_name, customer_phone, customer_address,
			created_at, completed_at
		FROM orders
		WHERE id = $1;
	`
	var (
		o         domain.Order
		orderType string
		status    string
	)
	err := r.pool.QueryRow(ctx, orderQuery, id).Scan(
		&o.ID,
		&orderType,
		&status,
		&o.DeliveryID,
		&o.CustomerName,
		&o.CustomerPhone,
		&o.CustomerAddress,
		&o.CreatedAt,
		&o.CompletedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	o.Type = domain.Type(orderType)
	o.Status = domain.Status(status)

	const itemsQuery = `
		SELECT id, order_id, menu_item_id, quantity, price, notes, created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY created_at ASC, id ASC;
	`
	rows, err := r.pool.Query(ctx, itemsQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.MenuItemID,
			&item.Quantity,
			&item.Price,
			&item.Notes,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &o, nil
}
