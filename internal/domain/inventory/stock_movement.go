package inventory

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/domain/shared/valueobject"
)

// MovementType classifies a stock movement. The type alone carries the
// direction of the movement; quantities are always positive magnitudes.
type MovementType string

const (
	MovementTypeInitial         MovementType = "INITIAL"
	MovementTypeReceived        MovementType = "RECEIVED"
	MovementTypePicked          MovementType = "PICKED"
	MovementTypeAdjustmentIn    MovementType = "ADJUSTMENT_IN"
	MovementTypeAdjustmentOut   MovementType = "ADJUSTMENT_OUT"
	MovementTypeTransfer        MovementType = "TRANSFER"
	MovementTypeReturn          MovementType = "RETURN"
	MovementTypeDamaged         MovementType = "DAMAGED"
	MovementTypeCountCorrection MovementType = "COUNT_CORRECTION"
)

// IsValid checks if the movement type is known
func (t MovementType) IsValid() bool {
	switch t {
	case MovementTypeInitial, MovementTypeReceived, MovementTypePicked,
		MovementTypeAdjustmentIn, MovementTypeAdjustmentOut, MovementTypeTransfer,
		MovementTypeReturn, MovementTypeDamaged, MovementTypeCountCorrection:
		return true
	}
	return false
}

// String returns the string representation of the movement type
func (t MovementType) String() string {
	return string(t)
}

// IsInbound returns true for movement types that increase stock
func (t MovementType) IsInbound() bool {
	switch t {
	case MovementTypeInitial, MovementTypeReceived, MovementTypeAdjustmentIn, MovementTypeReturn:
		return true
	}
	return false
}

// IsOutbound returns true for movement types that decrease stock
func (t MovementType) IsOutbound() bool {
	return !t.IsInbound()
}

// StockMovement is the append-only audit record of one stock change.
// Once created it is never mutated or deleted.
type StockMovement struct {
	ID              uuid.UUID
	InventoryItemID uuid.UUID
	Type            MovementType
	Quantity        valueobject.Quantity
	Reason          string
	BalanceAfter    valueobject.Quantity
	CreatedAt       time.Time
}

// NewStockMovement creates a new stock movement record
func NewStockMovement(inventoryItemID uuid.UUID, movementType MovementType, quantity valueobject.Quantity, reason string, balanceAfter valueobject.Quantity) (*StockMovement, error) {
	if inventoryItemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ITEM", "Inventory item ID is required")
	}
	if !movementType.IsValid() {
		return nil, shared.NewDomainError("INVALID_MOVEMENT_TYPE", "Unknown movement type")
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, shared.NewDomainError("INVALID_REASON", "Reason is required for stock movements")
	}
	if len(reason) > 500 {
		return nil, shared.NewDomainError("INVALID_REASON", "Reason cannot exceed 500 characters")
	}

	return &StockMovement{
		ID:              uuid.New(),
		InventoryItemID: inventoryItemID,
		Type:            movementType,
		Quantity:        quantity,
		Reason:          reason,
		BalanceAfter:    balanceAfter,
		CreatedAt:       time.Now(),
	}, nil
}

// IsInbound returns true if this movement increases stock
func (m *StockMovement) IsInbound() bool {
	return m.Type.IsInbound()
}

// IsOutbound returns true if this movement decreases stock
func (m *StockMovement) IsOutbound() bool {
	return m.Type.IsOutbound()
}
