package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wms/backend/internal/domain/inventory"
)

// ==================== Stock DTOs ====================

// CreateInventoryItemRequest represents a request to start tracking stock
// for a product at a location
type CreateInventoryItemRequest struct {
	ProductID       uuid.UUID       `json:"product_id" binding:"required"`
	LocationID      uuid.UUID       `json:"location_id" binding:"required"`
	InitialQuantity decimal.Decimal `json:"initial_quantity"`
	Reason          string          `json:"reason"`
}

// AdjustStockRequest represents a signed stock adjustment
type AdjustStockRequest struct {
	ProductID  uuid.UUID `json:"product_id" binding:"required"`
	LocationID uuid.UUID `json:"location_id" binding:"required"`
	Adjustment int64     `json:"adjustment" binding:"required"`
	Reason     string    `json:"reason" binding:"required,min=1,max=500"`
}

// InventoryItemResponse represents an inventory item in API responses
type InventoryItemResponse struct {
	ID         uuid.UUID       `json:"id"`
	ProductID  uuid.UUID       `json:"product_id"`
	LocationID uuid.UUID       `json:"location_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	Version    int             `json:"version"`
}

// StockMovementResponse represents a movement in API responses
type StockMovementResponse struct {
	ID              uuid.UUID       `json:"id"`
	InventoryItemID uuid.UUID       `json:"inventory_item_id"`
	Type            string          `json:"type"`
	Quantity        decimal.Decimal `json:"quantity"`
	Reason          string          `json:"reason"`
	BalanceAfter    decimal.Decimal `json:"balance_after"`
	CreatedAt       time.Time       `json:"created_at"`
}

// AdjustStockResponse represents the result of a stock adjustment
type AdjustStockResponse struct {
	Item     InventoryItemResponse `json:"item"`
	Movement StockMovementResponse `json:"movement"`
}

// LocationStockResponse represents per-location stock of one product
type LocationStockResponse struct {
	LocationID   uuid.UUID       `json:"location_id"`
	LocationCode string          `json:"location_code"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// StockLevelResponse represents total stock of a product across locations
type StockLevelResponse struct {
	ProductID uuid.UUID               `json:"product_id"`
	Locations []LocationStockResponse `json:"locations"`
	Total     decimal.Decimal         `json:"total"`
}

// ==================== Catalog DTOs ====================

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	SKU         string          `json:"sku" binding:"required,min=1,max=50"`
	Name        string          `json:"name" binding:"required,min=1,max=200"`
	Description string          `json:"description"`
	Weight      decimal.Decimal `json:"weight"`
	Length      decimal.Decimal `json:"length"`
	Width       decimal.Decimal `json:"width"`
	Height      decimal.Decimal `json:"height"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Weight      decimal.Decimal `json:"weight"`
	Length      decimal.Decimal `json:"length"`
	Width       decimal.Decimal `json:"width"`
	Height      decimal.Decimal `json:"height"`
	Volume      decimal.Decimal `json:"volume"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CreateLocationRequest represents a request to create a storage location.
// Either a full code ("A-01-02-03") or the individual parts can be given.
type CreateLocationRequest struct {
	Code     string `json:"code"`
	Zone     string `json:"zone"`
	Aisle    int    `json:"aisle"`
	Rack     int    `json:"rack"`
	Bin      int    `json:"bin"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// LocationResponse represents a location in API responses
type LocationResponse struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Zone      string    `json:"zone"`
	Aisle     int       `json:"aisle"`
	Rack      int       `json:"rack"`
	Bin       int       `json:"bin"`
	Capacity  int       `json:"capacity"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListFilter represents common list filter options
type ListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ==================== Converters ====================

// ToInventoryItemResponse converts a domain item to a response DTO
func ToInventoryItemResponse(item *inventory.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ID:         item.ID,
		ProductID:  item.ProductID,
		LocationID: item.LocationID,
		Quantity:   item.Quantity.Amount(),
		CreatedAt:  item.CreatedAt,
		UpdatedAt:  item.UpdatedAt,
		Version:    item.Version,
	}
}

// ToStockMovementResponse converts a domain movement to a response DTO
func ToStockMovementResponse(movement *inventory.StockMovement) StockMovementResponse {
	return StockMovementResponse{
		ID:              movement.ID,
		InventoryItemID: movement.InventoryItemID,
		Type:            string(movement.Type),
		Quantity:        movement.Quantity.Amount(),
		Reason:          movement.Reason,
		BalanceAfter:    movement.BalanceAfter.Amount(),
		CreatedAt:       movement.CreatedAt,
	}
}

// ToStockMovementResponses converts a slice of domain movements
func ToStockMovementResponses(movements []inventory.StockMovement) []StockMovementResponse {
	responses := make([]StockMovementResponse, len(movements))
	for i := range movements {
		responses[i] = ToStockMovementResponse(&movements[i])
	}
	return responses
}

// ToProductResponse converts a domain product to a response DTO
func ToProductResponse(product *inventory.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		SKU:         product.SKU,
		Name:        product.Name,
		Description: product.Description,
		Weight:      product.Weight,
		Length:      product.Length,
		Width:       product.Width,
		Height:      product.Height,
		Volume:      product.Volume(),
		IsActive:    product.IsActive,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

// ToProductResponses converts a slice of domain products
func ToProductResponses(products []inventory.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}

// ToLocationResponse converts a domain location to a response DTO
func ToLocationResponse(location *inventory.Location) LocationResponse {
	return LocationResponse{
		ID:        location.ID,
		Code:      location.Code,
		Name:      location.Name,
		Zone:      location.Zone,
		Aisle:     location.Aisle,
		Rack:      location.Rack,
		Bin:       location.Bin,
		Capacity:  location.Capacity,
		IsActive:  location.IsActive,
		CreatedAt: location.CreatedAt,
		UpdatedAt: location.UpdatedAt,
	}
}

// ToLocationResponses converts a slice of domain locations
func ToLocationResponses(locations []inventory.Location) []LocationResponse {
	responses := make([]LocationResponse, len(locations))
	for i := range locations {
		responses[i] = ToLocationResponse(&locations[i])
	}
	return responses
}
