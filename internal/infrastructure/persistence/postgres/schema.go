package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is applied at startup. The UNIQUE constraint on
// (platform, platform_order_id) is load-bearing: it is the dedupe backstop
// for concurrent webhook deliveries of the same order.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS menu_items (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		full_price NUMERIC NOT NULL,
		half_price NUMERIC,
		is_available BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		order_type TEXT NOT NULL,
		status TEXT NOT NULL,
		delivery_id TEXT NOT NULL DEFAULT '',
		customer_name TEXT NOT NULL DEFAULT '',
		customer_phone TEXT NOT NULL DEFAULT '',
		customer_address TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		completed_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id TEXT PRIMARY KEY,
		order_id TEXT NOT NULL REFERENCES orders(id),
		menu_item_id TEXT NOT NULL REFERENCES menu_items(id),
		quantity INT NOT NULL,
		price NUMERIC NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS delivery_orders (
		id TEXT PRIMARY KEY,
		platform TEXT NOT NULL,
		platform_order_id TEXT NOT NULL,
		order_id TEXT REFERENCES orders(id),
		status TEXT NOT NULL,
		customer_name TEXT NOT NULL DEFAULT '',
		customer_phone TEXT NOT NULL DEFAULT '',
		customer_address TEXT NOT NULL DEFAULT '',
		delivery_fee NUMERIC NOT NULL DEFAULT 0,
		platform_fee NUMERIC NOT NULL DEFAULT 0,
		items_data JSONB,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		CONSTRAINT delivery_orders_platform_order_unique UNIQUE (platform, platform_order_id)
	)`,
	`CREATE INDEX IF NOT EXISTS delivery_orders_status_idx ON delivery_orders (status)`,
}

// EnsureSchema creates the tables when missing. Statements are idempotent so
// every instance can run this at boot.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
