package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/rahulupadhyay22/Restaurant-Pos/internal/domain/menu"
)

const menuItemColumns = `id, name, description, full_price, half_price, is_available, created_at, updated_at`

// MenuRepository is the read-side catalog lookup backing the menu matcher.
type MenuRepository struct {
	pool *pgxpool.Pool
}

func NewMenuRepository(pool *pgxpool.Pool) *MenuRepository {
	return &MenuRepository{pool: pool}
}

func (r *MenuRepository) FindByName(ctx context.Context, name string) (*domain.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE name = $1 LIMIT 1;`
	return r.scanOne(r.pool.QueryRow(ctx, query, name))
}

// FindByNameLike matches in both directions: the external name may contain a
// catalog name ("butter chicken combo" vs "Butter Chicken") or the other way
// around. First catalog row in insertion order wins.
func (r *MenuRepository) FindByNameLike(ctx context.Context, fragment string) (*domain.MenuItem, error) {
	query := `
		SELECT ` + menuItemColumns + `
		FROM menu_items
		WHERE name ILIKE '%' || $1 || '%' OR $1 ILIKE '%' || name || '%'
		ORDER BY created_at ASC, id ASC
		LIMIT 1;
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, fragment))
}

func (r *MenuRepository) First(ctx context.Context) (*domain.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items ORDER BY created_at ASC, id ASC LIMIT 1;`
	return r.scanOne(r.pool.QueryRow(ctx, query))
}

func (r *MenuRepository) scanOne(row pgx.Row) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.FullPrice,
		&item.HalfPrice,
		&item.IsAvailable,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}
