package delivery

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/rahulupadhyay22/Restaurant-Pos/internal/domain/delivery"
	"github.com/rahulupadhyay22/Restaurant-Pos/pkg/logger"
)

func zomatoPayload() map[string]interface{} {
	return map[string]interface{}{
		"order_id": "A123",
		"customer": map[string]interface{}{
			"name":  "Jane Doe",
			"phone": "555-0101",
		},
		"delivery_address": "221B Baker St",
		"items": []interface{}{
			map[string]interface{}{
				"name":     "Spring Rolls",
				"quantity": float64(2),
				"price":    9.99,
			},
		},
		"delivery_fee": 3.5,
		"total_amount": 23.48,
	}
}

func newIngestService(repo *MockDeliveryOrderRepository, publisher *MockEventPublisher) *IngestService {
	log := logger.NewNop()
	return NewIngestService(repo, NewNormalizerRegistry(log), publisher, log)
}

func TestIngestService_Ingest_Success(t *testing.T) {
	mockRepo := new(MockDeliveryOrderRepository)
	mockPublisher := new(MockEventPublisher)
	service := newIngestService(mockRepo, mockPublisher)
	ctx := context.Background()

	mockRepo.On("FindByPlatformOrderID", ctx, domain.PlatformZomato, "A123").Return(nil, nil)
	mockRepo.On("Create", ctx, mock.AnythingOfType("*delivery.DeliveryOrder")).Return(nil, false, nil)
	mockPublisher.On("PublishDeliveryEvent", ctx, mock.MatchedBy(func(ev Event) bool {
		return ev.Type == EventDeliveryReceived && ev.Platform == "zomato" && ev.CustomerName == "Jane Doe"
	})).Return(nil)

	result, err := service.Ingest(ctx, domain.PlatformZomato, zomatoPayload())

	require.NoError(t, err)
	assert.False(t, result.Duplicate)
	require.NotNil(t, result.Order)
	assert.NotEmpty(t, result.Order.ID)
	assert.Equal(t, "A123", result.Order.PlatformOrderID)
	assert.Equal(t, domain.StatusPending, result.Order.Status)
	assert.Equal(t, "Jane Doe", result.Order.CustomerName)

	items, err := result.Order.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Spring Rolls", items[0].Name)
	assert.Equal(t, 2, items[0].Quantity)

	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestIngestService_Ingest_ValidationFailure(t *testing.T) {
	mockRepo := new(MockDeliveryOrderRepository)
	mockPublisher := new(MockEventPublisher)
	service := newIngestService(mockRepo, mockPublisher)

	payload := zomatoPayload()
	delete(payload, "customer")

	_, err := service.Ingest(context.Background(), domain.PlatformZomato, payload)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Missing customer name", vErr.Reason)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockPublisher.AssertNotCalled(t, "PublishDeliveryEvent", mock.Anything, mock.Anything)
}

func TestIngestService_Ingest_Duplicate(t *testing.T) {
	mockRepo := new(MockDeliveryOrderRepository)
	mockPublisher := new(MockEventPublisher)
	service := newIngestService(mockRepo, mockPublisher)
	ctx := context.Background()

	existing := &domain.DeliveryOrder{
		ID:              "existing-id",
		Platform:        domain.PlatformZomato,
		PlatformOrderID: "A123",
		Status:          domain.StatusAccepted,
	}
	mockRepo.On("FindByPlatformOrderID", ctx, domain.PlatformZomato, "A123").Return(existing, nil)

	result, err := service.Ingest(ctx, domain.PlatformZomato, zomatoPayload())

	require.NoError(t, err)
	assert.True(t, result.Duplicate)
	assert.Equal(t, "existing-id", result.Order.ID)
	// No second row and no second event for a replayed webhook.
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockPublisher.AssertNotCalled(t, "PublishDeliveryEvent", mock.Anything, mock.Anything)
}

func TestIngestService_Ingest_ConcurrentDuplicate(t *testing.T) {
	mockRepo := new(MockDeliveryOrderRepository)
	mockPublisher := new(MockEventPublisher)
	service := newIngestService(mockRepo, mockPublisher)
	ctx := context.Background()

	// The pre-check misses but the insert collides with a concurrent webhook.
	winner := &domain.DeliveryOrder{ID: "winner-id", PlatformOrderID: "A123"}
	mockRepo.On("FindByPlatformOrderID", ctx, domain.PlatformZomato, "A123").Return(nil, nil)
	mockRepo.On("Create", ctx, mock.AnythingOfType("*delivery.DeliveryOrder")).Return(winner, true, nil)

	result, err := service.Ingest(ctx, domain.PlatformZomato, zomatoPayload())

	require.NoError(t, err)
	assert.True(t, result.Duplicate)
	assert.Equal(t, "winner-id", result.Order.ID)
	mockPublisher.AssertNotCalled(t, "PublishDeliveryEvent", mock.Anything, mock.Anything)
}

func TestIngestService_Ingest_PublishFailureIsNotFatal(t *testing.T) {
	mockRepo := new(MockDeliveryOrderRepository)
	mockPublisher := new(MockEventPublisher)
	service := newIngestService(mockRepo, mockPublisher)
	ctx := context.Background()

	mockRepo.On("FindByPlatformOrderID", ctx, domain.PlatformZomato, "A123").Return(nil, nil)
	mockRepo.On("Create", ctx, mock.AnythingOfType("*delivery.DeliveryOrder")).Return(nil, false, nil)
	mockPublisher.On("PublishDeliveryEvent", ctx, mock.AnythingOfType("delivery.Event")).
		Return(errors.New("broker down"))

	result, err := service.Ingest(ctx, domain.PlatformZomato, zomatoPayload())

	require.NoError(t, err)
	assert.False(t, result.Duplicate)
	mockPublisher.AssertExpectations(t)
}

func TestIngestService_Ingest_RepositoryError(t *testing.T) {
	mockRepo := new(MockDeliveryOrderRepository)
	service := newIngestService(mockRepo, new(MockEventPublisher))
	ctx := context.Background()

	mockRepo.On("FindByPlatformOrderID", ctx, domain.PlatformZomato, "A123").
		Return(nil, errors.New("connection refused"))

	_, err := service.Ingest(ctx, domain.PlatformZomato, zomatoPayload())

	require.Error(t, err)
	var vErr *ValidationError
	assert.False(t, errors.As(err, &vErr))
}
