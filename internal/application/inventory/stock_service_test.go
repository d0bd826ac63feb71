package inventory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wms/backend/internal/domain/inventory"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/domain/shared/valueobject"
)

var (
	testProductID  = uuid.New()
	testLocationID = uuid.New()
)

func testProduct(t *testing.T) *inventory.Product {
	t.Helper()
	p, err := inventory.NewProduct("SKU-WIDGET", "Widget", "",
		decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	return p
}

func testLocation(t *testing.T) *inventory.Location {
	t.Helper()
	l, err := inventory.NewLocation("A", 1, 2, 3, "", inventory.DefaultLocationCapacity)
	require.NoError(t, err)
	return l
}

func testItem(t *testing.T, quantity int64) *inventory.InventoryItem {
	t.Helper()
	q, err := valueobject.NewQuantityFromInt(quantity)
	require.NoError(t, err)
	item, err := inventory.NewInventoryItem(testProductID, testLocationID, q, "")
	require.NoError(t, err)
	return item
}

func newStockService(itemRepo *MockInventoryItemRepository, productRepo *MockProductRepository, locationRepo *MockLocationRepository) *StockService {
	return NewStockService(itemRepo, productRepo, locationRepo)
}

func TestStockService_CreateItem(t *testing.T) {
	t.Run("creates item with initial quantity", func(t *testing.T) {
		itemRepo := new(MockInventoryItemRepository)
		productRepo := new(MockProductRepository)
		locationRepo := new(MockLocationRepository)
		service := newStockService(itemRepo, productRepo, locationRepo)
		ctx := context.Background()

		productRepo.On("FindByID", mock.Anything, testProductID).Return(testProduct(t), nil)
		locationRepo.On("FindByID", mock.Anything, testLocationID).Return(testLocation(t), nil)
		itemRepo.On("FindByProductAndLocation", mock.Anything, testProductID, testLocationID).Return(nil, shared.ErrNotFound)
		itemRepo.On("Save", mock.Anything, mock.AnythingOfType("*inventory.InventoryItem")).Return(nil)

		result, err := service.CreateItem(ctx, CreateInventoryItemRequest{
			ProductID:       testProductID,
			LocationID:      testLocationID,
			InitialQuantity: decimal.NewFromInt(10),
		})

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(10).Equal(result.Quantity))
		itemRepo.AssertExpectations(t)
	})

	t.Run("rejects unknown product", func(t *testing.T) {
		itemRepo := new(MockInventoryItemRepository)
		productRepo := new(MockProductRepository)
		locationRepo := new(MockLocationRepository)
		service := newStockService(itemRepo, productRepo, locationRepo)
		ctx := context.Background()

		productRepo.On("FindByID", mock.Anything, testProductID).Return(nil, shared.ErrNotFound)

		_, err := service.CreateItem(ctx, CreateInventoryItemRequest{
			ProductID:  testProductID,
			LocationID: testLocationID,
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UNKNOWN_PRODUCT", domainErr.Code)
		itemRepo.AssertNotCalled(t, "Save")
	})

	t.Run("rejects duplicate product and location pair", func(t *testing.T) {
		itemRepo := new(MockInventoryItemRepository)
		productRepo := new(MockProductRepository)
		locationRepo := new(MockLocationRepository)
		service := newStockService(itemRepo, productRepo, locationRepo)
		ctx := context.Background()

		productRepo.On("FindByID", mock.Anything, testProductID).Return(testProduct(t), nil)
		locationRepo.On("FindByID", mock.Anything, testLocationID).Return(testLocation(t), nil)
		itemRepo.On("FindByProductAndLocation", mock.Anything, testProductID, testLocationID).Return(testItem(t, 5), nil)

		_, err := service.CreateItem(ctx, CreateInventoryItemRequest{
			ProductID:  testProductID,
			LocationID: testLocationID,
		})

		require.Error(t, err)
		itemRepo.AssertNotCalled(t, "Save")
	})
}

func TestStockService_AdjustStock(t *testing.T) {
	t.Run("adjusts existing item", func(t *testing.T) {
		itemRepo := new(MockInventoryItemRepository)
		service := newStockService(itemRepo, new(MockProductRepository), new(MockLocationRepository))
		ctx := context.Background()

		item := testItem(t, 10)
		itemRepo.On("FindByProductAndLocation", mock.Anything, testProductID, testLocationID).Return(item, nil)
		itemRepo.On("SaveWithLock", mock.Anything, item).Return(nil)

		result, err := service.AdjustStock(ctx, AdjustStockRequest{
			ProductID:  testProductID,
			LocationID: testLocationID,
			Adjustment: -10,
			Reason:     "Write-off",
		})

		require.NoError(t, err)
		assert.True(t, result.Item.Quantity.IsZero())
		assert.Equal(t, "ADJUSTMENT_OUT", result.Movement.Type)
		itemRepo.AssertExpectations(t)
	})

	t.Run("over-removal fails leaving stock untouched", func(t *testing.T) {
		itemRepo := new(MockInventoryItemRepository)
		service := newStockService(itemRepo, new(MockProductRepository), new(MockLocationRepository))
		ctx := context.Background()

		item := testItem(t, 10)
		itemRepo.On("FindByProductAndLocation", mock.Anything, testProductID, testLocationID).Return(item, nil)

		_, err := service.AdjustStock(ctx, AdjustStockRequest{
			ProductID:  testProductID,
			LocationID: testLocationID,
			Adjustment: -15,
			Reason:     "Write-off",
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INSUFFICIENT_STOCK", domainErr.Code)
		assert.Equal(t, "10", item.Quantity.String())
		itemRepo.AssertNotCalled(t, "SaveWithLock")
	})

	t.Run("positive adjustment creates missing item", func(t *testing.T) {
		itemRepo := new(MockInventoryItemRepository)
		productRepo := new(MockProductRepository)
		locationRepo := new(MockLocationRepository)
		service := newStockService(itemRepo, productRepo, locationRepo)
		ctx := context.Background()

		itemRepo.On("FindByProductAndLocation", mock.Anything, testProductID, testLocationID).Return(nil, shared.ErrNotFound)
		productRepo.On("FindByID", mock.Anything, testProductID).Return(testProduct(t), nil)
		locationRepo.On("FindByID", mock.Anything, testLocationID).Return(testLocation(t), nil)
		itemRepo.On("Save", mock.Anything, mock.AnythingOfType("*inventory.InventoryItem")).Return(nil)

		result, err := service.AdjustStock(ctx, AdjustStockRequest{
			ProductID:  testProductID,
			LocationID: testLocationID,
			Adjustment: 7,
			Reason:     "Found during count",
		})

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(7).Equal(result.Item.Quantity))
		assert.Equal(t, "ADJUSTMENT_IN", result.Movement.Type)
		itemRepo.AssertExpectations(t)
	})

	t.Run("negative adjustment on missing item fails", func(t *testing.T) {
		itemRepo := new(MockInventoryItemRepository)
		service := newStockService(itemRepo, new(MockProductRepository), new(MockLocationRepository))
		ctx := context.Background()

		itemRepo.On("FindByProductAndLocation", mock.Anything, testProductID, testLocationID).Return(nil, shared.ErrNotFound)

		_, err := service.AdjustStock(ctx, AdjustStockRequest{
			ProductID:  testProductID,
			LocationID: testLocationID,
			Adjustment: -3,
			Reason:     "Write-off",
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ITEM_NOT_FOUND", domainErr.Code)
		assert.Contains(t, domainErr.Message, "non-existent")
	})
}

func TestStockService_GetStockLevel(t *testing.T) {
	t.Run("sums across locations sorted by code", func(t *testing.T) {
		itemRepo := new(MockInventoryItemRepository)
		productRepo := new(MockProductRepository)
		locationRepo := new(MockLocationRepository)
		service := newStockService(itemRepo, productRepo, locationRepo)
		ctx := context.Background()

		locationB, err := inventory.NewLocation("B", 1, 1, 1, "", 100)
		require.NoError(t, err)
		locationA, err := inventory.NewLocation("A", 1, 1, 1, "", 100)
		require.NoError(t, err)

		qty4, _ := valueobject.NewQuantityFromInt(4)
		qty6, _ := valueobject.NewQuantityFromInt(6)
		itemB, err := inventory.NewInventoryItem(testProductID, locationB.ID, qty4, "")
		require.NoError(t, err)
		itemA, err := inventory.NewInventoryItem(testProductID, locationA.ID, qty6, "")
		require.NoError(t, err)

		productRepo.On("FindByID", mock.Anything, testProductID).Return(testProduct(t), nil)
		itemRepo.On("FindByProduct", mock.Anything, testProductID).Return([]inventory.InventoryItem{*itemB, *itemA}, nil)
		locationRepo.On("FindByID", mock.Anything, locationB.ID).Return(locationB, nil)
		locationRepo.On("FindByID", mock.Anything, locationA.ID).Return(locationA, nil)

		result, err := service.GetStockLevel(ctx, testProductID)

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(10).Equal(result.Total))
		require.Len(t, result.Locations, 2)
		assert.Equal(t, "A-01-01-01", result.Locations[0].LocationCode)
		assert.Equal(t, "B-01-01-01", result.Locations[1].LocationCode)
	})

	t.Run("unknown product is not found", func(t *testing.T) {
		itemRepo := new(MockInventoryItemRepository)
		productRepo := new(MockProductRepository)
		service := newStockService(itemRepo, productRepo, new(MockLocationRepository))
		ctx := context.Background()

		productRepo.On("FindByID", mock.Anything, testProductID).Return(nil, shared.ErrNotFound)

		_, err := service.GetStockLevel(ctx, testProductID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestStockService_GetMovementHistory(t *testing.T) {
	t.Run("returns movements with default limit", func(t *testing.T) {
		itemRepo := new(MockInventoryItemRepository)
		productRepo := new(MockProductRepository)
		service := newStockService(itemRepo, productRepo, new(MockLocationRepository))
		ctx := context.Background()

		item := testItem(t, 10)
		productRepo.On("FindByID", mock.Anything, testProductID).Return(testProduct(t), nil)
		itemRepo.On("FindMovementsByProduct", mock.Anything, testProductID, DefaultMovementHistoryLimit).
			Return(item.Movements, nil)

		movements, err := service.GetMovementHistory(ctx, testProductID, 0)

		require.NoError(t, err)
		require.Len(t, movements, 1)
		assert.Equal(t, "INITIAL", movements[0].Type)
		itemRepo.AssertExpectations(t)
	})

	t.Run("empty history is an empty slice", func(t *testing.T) {
		itemRepo := new(MockInventoryItemRepository)
		productRepo := new(MockProductRepository)
		service := newStockService(itemRepo, productRepo, new(MockLocationRepository))
		ctx := context.Background()

		productRepo.On("FindByID", mock.Anything, testProductID).Return(testProduct(t), nil)
		itemRepo.On("FindMovementsByProduct", mock.Anything, testProductID, 5).
			Return([]inventory.StockMovement{}, nil)

		movements, err := service.GetMovementHistory(ctx, testProductID, 5)

		require.NoError(t, err)
		assert.NotNil(t, movements)
		assert.Empty(t, movements)
	})
}
