package inventory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wms/backend/internal/domain/inventory"
	"github.com/wms/backend/internal/domain/shared"
)

func TestCatalogService_CreateProduct(t *testing.T) {
	t.Run("creates product with upper-cased SKU", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		service := NewCatalogService(productRepo, new(MockLocationRepository))
		ctx := context.Background()

		productRepo.On("ExistsBySKU", mock.Anything, "SKU-WIDGET").Return(false, nil)
		productRepo.On("Save", mock.Anything, mock.AnythingOfType("*inventory.Product")).Return(nil)

		result, err := service.CreateProduct(ctx, CreateProductRequest{
			SKU:  "sku-widget",
			Name: "Widget",
		})

		require.NoError(t, err)
		assert.Equal(t, "SKU-WIDGET", result.SKU)
		assert.True(t, result.IsActive)
		productRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate SKU", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		service := NewCatalogService(productRepo, new(MockLocationRepository))
		ctx := context.Background()

		productRepo.On("ExistsBySKU", mock.Anything, "SKU-WIDGET").Return(true, nil)

		_, err := service.CreateProduct(ctx, CreateProductRequest{
			SKU:  "SKU-WIDGET",
			Name: "Widget",
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "DUPLICATE_SKU", domainErr.Code)
		productRepo.AssertNotCalled(t, "Save")
	})
}

func TestCatalogService_ListProducts(t *testing.T) {
	productRepo := new(MockProductRepository)
	service := NewCatalogService(productRepo, new(MockLocationRepository))
	ctx := context.Background()

	p, err := inventory.NewProduct("SKU-1", "Widget", "",
		decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero)
	require.NoError(t, err)

	productRepo.On("FindAll", mock.Anything, mock.AnythingOfType("shared.Filter")).Return([]inventory.Product{*p}, nil)
	productRepo.On("Count", mock.Anything, mock.AnythingOfType("shared.Filter")).Return(int64(1), nil)

	products, total, err := service.ListProducts(ctx, ListFilter{})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, products, 1)
	assert.Equal(t, "SKU-1", products[0].SKU)
}

func TestCatalogService_CreateLocation(t *testing.T) {
	t.Run("creates location from parts", func(t *testing.T) {
		locationRepo := new(MockLocationRepository)
		service := NewCatalogService(new(MockProductRepository), locationRepo)
		ctx := context.Background()

		locationRepo.On("ExistsByCode", mock.Anything, "A-01-02-03").Return(false, nil)
		locationRepo.On("Save", mock.Anything, mock.AnythingOfType("*inventory.Location")).Return(nil)

		result, err := service.CreateLocation(ctx, CreateLocationRequest{
			Zone: "A", Aisle: 1, Rack: 2, Bin: 3,
		})

		require.NoError(t, err)
		assert.Equal(t, "A-01-02-03", result.Code)
		assert.Equal(t, inventory.DefaultLocationCapacity, result.Capacity)
		locationRepo.AssertExpectations(t)
	})

	t.Run("creates location from code string", func(t *testing.T) {
		locationRepo := new(MockLocationRepository)
		service := NewCatalogService(new(MockProductRepository), locationRepo)
		ctx := context.Background()

		locationRepo.On("ExistsByCode", mock.Anything, "B-10-20-30").Return(false, nil)
		locationRepo.On("Save", mock.Anything, mock.AnythingOfType("*inventory.Location")).Return(nil)

		result, err := service.CreateLocation(ctx, CreateLocationRequest{
			Code:     "b-10-20-30",
			Capacity: 500,
		})

		require.NoError(t, err)
		assert.Equal(t, "B-10-20-30", result.Code)
		assert.Equal(t, 500, result.Capacity)
	})

	t.Run("rejects duplicate code", func(t *testing.T) {
		locationRepo := new(MockLocationRepository)
		service := NewCatalogService(new(MockProductRepository), locationRepo)
		ctx := context.Background()

		locationRepo.On("ExistsByCode", mock.Anything, "A-01-02-03").Return(true, nil)

		_, err := service.CreateLocation(ctx, CreateLocationRequest{Code: "A-01-02-03"})

		require.Error(t, err)
		locationRepo.AssertNotCalled(t, "Save")
	})

	t.Run("rejects malformed code", func(t *testing.T) {
		locationRepo := new(MockLocationRepository)
		service := NewCatalogService(new(MockProductRepository), locationRepo)
		ctx := context.Background()

		_, err := service.CreateLocation(ctx, CreateLocationRequest{Code: "A/1/2/3"})
		require.Error(t, err)
	})
}
