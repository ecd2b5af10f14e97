package delivery

import (
	"context"

	"github.com/stretchr/testify/mock"

	domain "github.com/rahulupadhyay22/Restaurant-Pos/internal/domain/delivery"
	"github.com/rahulupadhyay22/Restaurant-Pos/internal/domain/menu"
	"github.com/rahulupadhyay22/Restaurant-Pos/internal/domain/order"
)

type MockDeliveryOrderRepository struct {
	mock.Mock
}

func (m *MockDeliveryOrderRepository) Create(ctx context.Context, d *domain.DeliveryOrder) (*domain.DeliveryOrder, bool, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		// Echo the inserted row on a stubbed success, matching the real
		// repository's contract.
		if !args.Bool(1) && args.Error(2) == nil {
			return d, false, nil
		}
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.DeliveryOrder), args.Bool(1), args.Error(2)
}

func (m *MockDeliveryOrderRepository) FindByID(ctx context.Context, id string) (*domain.DeliveryOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeliveryOrder), args.Error(1)
}

func (m *MockDeliveryOrderRepository) FindByPlatformOrderID(ctx context.Context, platform domain.Platform, platformOrderID string) (*domain.DeliveryOrder, error) {
	args := m.Called(ctx, platform, platformOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeliveryOrder), args.Error(1)
}

func (m *MockDeliveryOrderRepository) TransitionStatus(ctx context.Context, id string, expected, next domain.Status) (bool, error) {
	args := m.Called(ctx, id, expected, next)
	return args.Bool(0), args.Error(1)
}

func (m *MockDeliveryOrderRepository) SetStatus(ctx context.Context, id string, status domain.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockDeliveryOrderRepository) LinkOrder(ctx context.Context, id string, orderID string) (bool, error) {
	args := m.Called(ctx, id, orderID)
	return args.Bool(0), args.Error(1)
}

func (m *MockDeliveryOrderRepository) ListPending(ctx context.Context) ([]domain.DeliveryOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DeliveryOrder), args.Error(1)
}

func (m *MockDeliveryOrderRepository) ListCompleted(ctx context.Context, limit int) ([]domain.DeliveryOrder, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DeliveryOrder), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) FindByName(ctx context.Context, name string) (*menu.MenuItem, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) FindByNameLike(ctx context.Context, fragment string) (*menu.MenuItem, error) {
	args := m.Called(ctx, fragment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) First(ctx context.Context) (*menu.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.MenuItem), args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishDeliveryEvent(ctx context.Context, ev Event) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

type MockStatusSyncer struct {
	mock.Mock
}

func (m *MockStatusSyncer) SyncStatus(ctx context.Context, platform domain.Platform, platformOrderID string, status domain.Status) error {
	args := m.Called(ctx, platform, platformOrderID, status)
	return args.Error(0)
}
