package inventory

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/domain/shared/valueobject"
)

// DefaultInitialReason is recorded on the seeding movement when no reason is given
const DefaultInitialReason = "Initial stock"

// InventoryItem represents stock of one product at one storage location.
// The quantity changes only through movements; the movement ledger always
// reconciles to the current quantity.
type InventoryItem struct {
	shared.BaseAggregateRoot
	ProductID  uuid.UUID
	LocationID uuid.UUID
	Quantity   valueobject.Quantity
	Movements  []StockMovement
}

// NewInventoryItem creates an inventory item and seeds its ledger with an
// INITIAL movement
func NewInventoryItem(productID, locationID uuid.UUID, initialQuantity valueobject.Quantity, reason string) (*InventoryItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID is required")
	}
	if locationID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_LOCATION", "Location ID is required")
	}
	if reason == "" {
		reason = DefaultInitialReason
	}

	item := &InventoryItem{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ProductID:         productID,
		LocationID:        locationID,
		Quantity:          initialQuantity,
		Movements:         make([]StockMovement, 0, 1),
	}

	movement, err := NewStockMovement(item.ID, MovementTypeInitial, initialQuantity, reason, initialQuantity)
	if err != nil {
		return nil, err
	}
	item.Movements = append(item.Movements, *movement)

	item.AddDomainEvent(NewInventoryItemCreatedEvent(item))

	return item, nil
}

// AddStock increases the quantity and appends a movement.
// Any movement type is accepted; the direction of the mutation comes from
// the method, the type only classifies the movement for the audit trail.
func (i *InventoryItem) AddStock(quantity valueobject.Quantity, movementType MovementType, reason string) (*StockMovement, error) {
	if !quantity.IsPositive() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	newQuantity := i.Quantity.Add(quantity)
	movement, err := NewStockMovement(i.ID, movementType, quantity, reason, newQuantity)
	if err != nil {
		return nil, err
	}

	i.Quantity = newQuantity
	i.Movements = append(i.Movements, *movement)
	i.UpdatedAt = time.Now()

	i.AddDomainEvent(NewStockChangedEvent(i, movement))

	return movement, nil
}

// RemoveStock decreases the quantity and appends a movement.
// Fails without mutation when the requested quantity exceeds what is on hand.
// The movement records the removed quantity as a positive magnitude; any
// movement type is accepted and only classifies the movement.
func (i *InventoryItem) RemoveStock(quantity valueobject.Quantity, movementType MovementType, reason string) (*StockMovement, error) {
	if !quantity.IsPositive() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	newQuantity, err := i.Quantity.Subtract(quantity)
	if err != nil {
		return nil, shared.NewDomainError("INSUFFICIENT_STOCK",
			fmt.Sprintf("Insufficient stock. Available: %s, Requested: %s", i.Quantity, quantity))
	}

	movement, mErr := NewStockMovement(i.ID, movementType, quantity, reason, newQuantity)
	if mErr != nil {
		return nil, mErr
	}

	i.Quantity = newQuantity
	i.Movements = append(i.Movements, *movement)
	i.UpdatedAt = time.Now()

	i.AddDomainEvent(NewStockChangedEvent(i, movement))

	return movement, nil
}

// AdjustStock applies a signed integer adjustment.
// Positive adjustments add stock as ADJUSTMENT_IN, negative adjustments
// remove stock as ADJUSTMENT_OUT. A zero adjustment is rejected.
func (i *InventoryItem) AdjustStock(adjustment int64, reason string) (*StockMovement, error) {
	if adjustment == 0 {
		return nil, shared.NewDomainError("INVALID_ADJUSTMENT", "Adjustment cannot be zero")
	}

	magnitude := adjustment
	if magnitude < 0 {
		magnitude = -magnitude
	}
	quantity, err := valueobject.NewQuantityFromInt(magnitude)
	if err != nil {
		return nil, err
	}

	if adjustment > 0 {
		return i.AddStock(quantity, MovementTypeAdjustmentIn, reason)
	}
	return i.RemoveStock(quantity, MovementTypeAdjustmentOut, reason)
}

// Reconciles checks the ledger invariant: the sum of inbound movements minus
// the sum of outbound movements equals the current quantity
func (i *InventoryItem) Reconciles() bool {
	balance := valueobject.ZeroQuantity()
	for idx := range i.Movements {
		m := &i.Movements[idx]
		if m.IsInbound() {
			balance = balance.Add(m.Quantity)
		} else {
			reduced, err := balance.Subtract(m.Quantity)
			if err != nil {
				return false
			}
			balance = reduced
		}
	}
	return balance.Equals(i.Quantity)
}
