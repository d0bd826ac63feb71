package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/wms/backend/internal/domain/shared"
)

// InventoryItemRepository defines persistence operations for inventory items
type InventoryItemRepository interface {
	// FindByID loads an item with its movements
	FindByID(ctx context.Context, id uuid.UUID) (*InventoryItem, error)

	// FindByProductAndLocation loads the item for a product/location pair
	FindByProductAndLocation(ctx context.Context, productID, locationID uuid.UUID) (*InventoryItem, error)

	// FindByProduct lists all items holding the given product
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]InventoryItem, error)

	// FindAll lists items with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]InventoryItem, error)

	// Save persists a new item together with its movements
	Save(ctx context.Context, item *InventoryItem) error

	// SaveWithLock persists changes using optimistic locking
	SaveWithLock(ctx context.Context, item *InventoryItem) error

	// FindMovementsByProduct lists the most recent movements across all
	// items of a product, newest first
	FindMovementsByProduct(ctx context.Context, productID uuid.UUID, limit int) ([]StockMovement, error)

	// Count counts inventory items matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// ProductRepository defines persistence operations for products
type ProductRepository interface {
	// FindByID finds a product by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindBySKU finds a product by its normalized SKU
	FindBySKU(ctx context.Context, sku string) (*Product, error)

	// FindAll lists products with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)

	// Save persists a product
	Save(ctx context.Context, product *Product) error

	// ExistsBySKU checks if a SKU is already taken
	ExistsBySKU(ctx context.Context, sku string) (bool, error)

	// Count counts products matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// LocationRepository defines persistence operations for storage locations
type LocationRepository interface {
	// FindByID finds a location by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Location, error)

	// FindByCode finds a location by its code
	FindByCode(ctx context.Context, code string) (*Location, error)

	// FindAll lists locations with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]Location, error)

	// Save persists a location
	Save(ctx context.Context, location *Location) error

	// ExistsByCode checks if a location code is already taken
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// Count counts locations matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
