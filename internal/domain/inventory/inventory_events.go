package inventory

import (
	"github.com/google/uuid"
	"github.com/wms/backend/internal/domain/shared"
)

// Event types for the inventory context
const (
	EventTypeInventoryItemCreated = "inventory.item.created"
	EventTypeStockChanged         = "inventory.stock.changed"
)

// Aggregate types for the inventory context
const (
	AggregateTypeInventoryItem = "InventoryItem"
)

// InventoryItemCreatedEvent is raised when an inventory item is created
type InventoryItemCreatedEvent struct {
	shared.BaseDomainEvent
	ItemID     uuid.UUID `json:"item_id"`
	ProductID  uuid.UUID `json:"product_id"`
	LocationID uuid.UUID `json:"location_id"`
	Quantity   string    `json:"quantity"`
}

// NewInventoryItemCreatedEvent creates a new InventoryItemCreatedEvent
func NewInventoryItemCreatedEvent(item *InventoryItem) *InventoryItemCreatedEvent {
	return &InventoryItemCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInventoryItemCreated, AggregateTypeInventoryItem, item.ID),
		ItemID:          item.ID,
		ProductID:       item.ProductID,
		LocationID:      item.LocationID,
		Quantity:        item.Quantity.String(),
	}
}

// StockChangedEvent is raised every time a movement changes the quantity
type StockChangedEvent struct {
	shared.BaseDomainEvent
	ItemID       uuid.UUID    `json:"item_id"`
	ProductID    uuid.UUID    `json:"product_id"`
	LocationID   uuid.UUID    `json:"location_id"`
	MovementType MovementType `json:"movement_type"`
	Quantity     string       `json:"quantity"`
	BalanceAfter string       `json:"balance_after"`
}

// NewStockChangedEvent creates a new StockChangedEvent
func NewStockChangedEvent(item *InventoryItem, movement *StockMovement) *StockChangedEvent {
	return &StockChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockChanged, AggregateTypeInventoryItem, item.ID),
		ItemID:          item.ID,
		ProductID:       item.ProductID,
		LocationID:      item.LocationID,
		MovementType:    movement.Type,
		Quantity:        movement.Quantity.String(),
		BalanceAfter:    movement.BalanceAfter.String(),
	}
}
