package service

import (
	"context"
	"errors"
	"testing"

	"mini-shop/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockStore is a mock implementation of repository.Store.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Insert(ctx context.Context, collection string, doc any) (string, error) {
	args := m.Called(ctx, collection, doc)
	return args.String(0), args.Error(1)
}

func (m *MockStore) FetchAll(ctx context.Context, collection string) ([]bson.M, error) {
	args := m.Called(ctx, collection)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bson.M), args.Error(1)
}

func (m *MockStore) Count(ctx context.Context, collection string) (int64, error) {
	args := m.Called(ctx, collection)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) CollectionNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStore) Available() bool {
	args := m.Called()
	return args.Bool(0)
}

func TestProductService_List_StorageUnavailable(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockStore := new(MockStore)
	mockStore.On("Available").Return(false)

	svc := NewProductService(mockStore, logger)

	products, err := svc.List(ctx)

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "demo-1", products[0]["id"])
	assert.Equal(t, "Classic Tee", products[0]["title"])
	mockStore.AssertNotCalled(t, "Count", mock.Anything, mock.Anything)
	mockStore.AssertNotCalled(t, "FetchAll", mock.Anything, mock.Anything)
}

func TestProductService_List_SeedsEmptyCatalogue(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	seeded := []bson.M{
		{"_id": primitive.NewObjectID(), "title": "Classic Tee", "price": 19.99},
		{"_id": primitive.NewObjectID(), "title": "Canvas Sneakers", "price": 49.0},
		{"_id": primitive.NewObjectID(), "title": "Leather Backpack", "price": 89.5},
		{"_id": primitive.NewObjectID(), "title": "Aviator Sunglasses", "price": 29.95},
	}

	mockStore := new(MockStore)
	mockStore.On("Available").Return(true)
	mockStore.On("Count", ctx, ProductCollection).Return(int64(0), nil)
	mockStore.On("Insert", ctx, ProductCollection, mock.AnythingOfType("model.Product")).
		Return(primitive.NewObjectID().Hex(), nil)
	mockStore.On("FetchAll", ctx, ProductCollection).Return(seeded, nil)

	svc := NewProductService(mockStore, logger)

	products, err := svc.List(ctx)

	require.NoError(t, err)
	assert.Len(t, products, 4)
	mockStore.AssertNumberOfCalls(t, "Insert", 4)

	// Every record carries a distinct non-empty string id.
	seen := map[string]bool{}
	for _, p := range products {
		id, ok := p["id"].(string)
		require.True(t, ok)
		assert.NotEmpty(t, id)
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestProductService_List_SkipsSeedingWhenPopulated(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	docs := []bson.M{
		{"_id": primitive.NewObjectID(), "title": "Classic Tee"},
	}

	mockStore := new(MockStore)
	mockStore.On("Available").Return(true)
	mockStore.On("Count", ctx, ProductCollection).Return(int64(1), nil)
	mockStore.On("FetchAll", ctx, ProductCollection).Return(docs, nil)

	svc := NewProductService(mockStore, logger)

	products, err := svc.List(ctx)

	require.NoError(t, err)
	assert.Len(t, products, 1)
	mockStore.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_List_CountError(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockStore := new(MockStore)
	mockStore.On("Available").Return(true)
	mockStore.On("Count", ctx, ProductCollection).Return(int64(0), errors.New("socket closed"))

	svc := NewProductService(mockStore, logger)

	products, err := svc.List(ctx)

	require.Error(t, err)
	assert.Nil(t, products)
	mockStore.AssertNotCalled(t, "FetchAll", mock.Anything, mock.Anything)
}

func TestProductService_List_SeedInsertError(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockStore := new(MockStore)
	mockStore.On("Available").Return(true)
	mockStore.On("Count", ctx, ProductCollection).Return(int64(0), nil)
	mockStore.On("Insert", ctx, ProductCollection, mock.AnythingOfType("model.Product")).
		Return("", errors.New("write failed"))

	svc := NewProductService(mockStore, logger)

	products, err := svc.List(ctx)

	require.Error(t, err)
	assert.Nil(t, products)
}

func TestProductService_List_FetchError(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockStore := new(MockStore)
	mockStore.On("Available").Return(true)
	mockStore.On("Count", ctx, ProductCollection).Return(int64(2), nil)
	mockStore.On("FetchAll", ctx, ProductCollection).Return(nil, errors.New("cursor error"))

	svc := NewProductService(mockStore, logger)

	products, err := svc.List(ctx)

	require.Error(t, err)
	assert.Nil(t, products)
}

func TestSampleProducts_PassSchemaValidation(t *testing.T) {
	for _, p := range sampleProducts() {
		assert.NoError(t, model.Validate(&p), "sample product %q must be valid", p.Title)
	}
	assert.Len(t, sampleProducts(), 4)
}

func TestFallbackProducts_ShapeMatchesCatalogue(t *testing.T) {
	fallback := fallbackProducts()

	require.Len(t, fallback, 1)
	record := fallback[0]
	for _, key := range []string{"id", "title", "description", "price", "category", "in_stock", "image"} {
		assert.Contains(t, record, key)
	}
}
