package menu

import (
	"errors"
	"time"
)

// ErrEmptyCatalog is returned when a lookup needs at least one menu item
// and the catalog has none.
var ErrEmptyCatalog = errors.New("menu catalog is empty")

// MenuItem is a catalog entry. The delivery pipeline only reads these.
type MenuItem struct {
	ID          string
	Name        string
	Description string
	FullPrice   float64
	HalfPrice   *float64 // nil when the item has no half portion
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasHalfOption reports whether the item can be ordered as a half portion.
func (m MenuItem) HasHalfOption() bool {
	return m.HalfPrice != nil
}
