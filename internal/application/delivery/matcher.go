package delivery

import (
	"context"
	"fmt"
	"strings"

	"github.com/rahulupadhyay22/Restaurant-Pos/internal/domain/menu"
	"github.com/rahulupadhyay22/Restaurant-Pos/internal/domain/repository"
	"github.com/rahulupadhyay22/Restaurant-Pos/pkg/logger"
)

// MatchOutcome classifies how a menu match was found.
type MatchOutcome int

const (
	// MatchExact: case-sensitive name equality.
	MatchExact MatchOutcome = iota
	// MatchFuzzy: case-insensitive substring hit, first catalog row wins.
	MatchFuzzy
	// MatchDegraded: nothing matched, an arbitrary catalog entry was
	// substituted so materialization can proceed.
	MatchDegraded
)

// MenuMatcher resolves external item names against the restaurant's catalog.
//
// The degraded fallback trades billing accuracy for availability: an order is
// always materializable while the catalog is non-empty. Callers that would
// rather reject than guess should treat MatchDegraded accordingly.
type MenuMatcher struct {
	catalog repository.MenuRepository
	log     logger.Logger
}

func NewMenuMatcher(catalog repository.MenuRepository, log logger.Logger) *MenuMatcher {
	return &MenuMatcher{catalog: catalog, log: log}
}

// Match resolves itemName to a catalog entry: exact, then substring, then
// the first catalog entry as a degraded fallback. An empty catalog is the
// only hard failure (menu.ErrEmptyCatalog).
func (m *MenuMatcher) Match(ctx context.Context, itemName string) (*menu.MenuItem, MatchOutcome, error) {
	name := strings.TrimSpace(itemName)

	if name != "" {
		item, err := m.catalog.FindByName(ctx, name)
		if err != nil {
			return nil, 0, fmt.Errorf("exact menu lookup: %w", err)
		}
		if item != nil {
			return item, MatchExact, nil
		}

		item, err = m.catalog.FindByNameLike(ctx, name)
		if err != nil {
			return nil, 0, fmt.Errorf("fuzzy menu lookup: %w", err)
		}
		if item != nil {
			return item, MatchFuzzy, nil
		}
	}

	item, err := m.Fallback(ctx)
	if err != nil {
		return nil, 0, err
	}
	m.log.Warn("no menu item match found, using fallback item",
		logger.String("item_name", itemName),
		logger.String("fallback", item.Name),
	)
	return item, MatchDegraded, nil
}

// Fallback returns the catalog's first entry, menu.ErrEmptyCatalog when the
// catalog has none.
func (m *MenuMatcher) Fallback(ctx context.Context) (*menu.MenuItem, error) {
	item, err := m.catalog.First(ctx)
	if err != nil {
		return nil, fmt.Errorf("fallback menu lookup: %w", err)
	}
	if item == nil {
		return nil, menu.ErrEmptyCatalog
	}
	return item, nil
}
