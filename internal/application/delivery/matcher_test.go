package delivery

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rahulupadhyay22/Restaurant-Pos/internal/domain/menu"
	"github.com/rahulupadhyay22/Restaurant-Pos/pkg/logger"
)

var butterChicken = &menu.MenuItem{ID: "m-1", Name: "Butter Chicken", FullPrice: 320}

func TestMenuMatcher_Match_Exact(t *testing.T) {
	mockCatalog := new(MockMenuRepository)
	matcher := NewMenuMatcher(mockCatalog, logger.NewNop())
	ctx := context.Background()

	mockCatalog.On("FindByName", ctx, "Butter Chicken").Return(butterChicken, nil)

	item, outcome, err := matcher.Match(ctx, "Butter Chicken")

	require.NoError(t, err)
	assert.Equal(t, MatchExact, outcome)
	assert.Equal(t, "m-1", item.ID)
	mockCatalog.AssertNotCalled(t, "FindByNameLike", mock.Anything, mock.Anything)
}

func TestMenuMatcher_Match_Substring(t *testing.T) {
	mockCatalog := new(MockMenuRepository)
	matcher := NewMenuMatcher(mockCatalog, logger.NewNop())
	ctx := context.Background()

	// "butter chicken combo" has no exact row but contains a catalog name.
	mockCatalog.On("FindByName", ctx, "butter chicken combo").Return(nil, nil)
	mockCatalog.On("FindByNameLike", ctx, "butter chicken combo").Return(butterChicken, nil)

	item, outcome, err := matcher.Match(ctx, "butter chicken combo")

	require.NoError(t, err)
	assert.Equal(t, MatchFuzzy, outcome)
	assert.Equal(t, "Butter Chicken", item.Name)
}

func TestMenuMatcher_Match_Degraded(t *testing.T) {
	mockCatalog := new(MockMenuRepository)
	matcher := NewMenuMatcher(mockCatalog, logger.NewNop())
	ctx := context.Background()

	fallback := &menu.MenuItem{ID: "m-0", Name: "House Special", FullPrice: 150}
	mockCatalog.On("FindByName", ctx, "Mystery Dish").Return(nil, nil)
	mockCatalog.On("FindByNameLike", ctx, "Mystery Dish").Return(nil, nil)
	mockCatalog.On("First", ctx).Return(fallback, nil)

	item, outcome, err := matcher.Match(ctx, "Mystery Dish")

	require.NoError(t, err)
	assert.Equal(t, MatchDegraded, outcome)
	assert.Equal(t, "m-0", item.ID)
}

func TestMenuMatcher_Match_EmptyName(t *testing.T) {
	mockCatalog := new(MockMenuRepository)
	matcher := NewMenuMatcher(mockCatalog, logger.NewNop())
	ctx := context.Background()

	fallback := &menu.MenuItem{ID: "m-0", Name: "House Special", FullPrice: 150}
	mockCatalog.On("First", ctx).Return(fallback, nil)

	item, outcome, err := matcher.Match(ctx, "   ")

	require.NoError(t, err)
	assert.Equal(t, MatchDegraded, outcome)
	assert.Equal(t, "m-0", item.ID)
	// An unusable name skips the lookups entirely.
	mockCatalog.AssertNotCalled(t, "FindByName", mock.Anything, mock.Anything)
}

func TestMenuMatcher_Match_EmptyCatalog(t *testing.T) {
	mockCatalog := new(MockMenuRepository)
	matcher := NewMenuMatcher(mockCatalog, logger.NewNop())
	ctx := context.Background()

	mockCatalog.On("FindByName", ctx, "Anything").Return(nil, nil)
	mockCatalog.On("FindByNameLike", ctx, "Anything").Return(nil, nil)
	mockCatalog.On("First", ctx).Return(nil, nil)

	_, _, err := matcher.Match(ctx, "Anything")

	assert.ErrorIs(t, err, menu.ErrEmptyCatalog)
}

func TestMenuMatcher_Match_LookupError(t *testing.T) {
	mockCatalog := new(MockMenuRepository)
	matcher := NewMenuMatcher(mockCatalog, logger.NewNop())
	ctx := context.Background()

	mockCatalog.On("FindByName", ctx, "Butter Chicken").Return(nil, errors.New("connection refused"))

	_, _, err := matcher.Match(ctx, "Butter Chicken")

	require.Error(t, err)
	assert.NotErrorIs(t, err, menu.ErrEmptyCatalog)
}
