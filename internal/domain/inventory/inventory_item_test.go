package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/domain/shared/valueobject"
)

func mustQty(t *testing.T, value int64) valueobject.Quantity {
	t.Helper()
	q, err := valueobject.NewQuantityFromInt(value)
	require.NoError(t, err)
	return q
}

func createTestItem(t *testing.T, initial int64) *InventoryItem {
	t.Helper()
	item, err := NewInventoryItem(uuid.New(), uuid.New(), mustQty(t, initial), "")
	require.NoError(t, err)
	return item
}

func TestNewInventoryItem(t *testing.T) {
	t.Run("seeds ledger with initial movement", func(t *testing.T) {
		item := createTestItem(t, 10)

		assert.Equal(t, "10", item.Quantity.String())
		require.Len(t, item.Movements, 1)
		assert.Equal(t, MovementTypeInitial, item.Movements[0].Type)
		assert.Equal(t, DefaultInitialReason, item.Movements[0].Reason)
		assert.Equal(t, "10", item.Movements[0].BalanceAfter.String())
		assert.Equal(t, item.ID, item.Movements[0].InventoryItemID)
	})

	t.Run("zero initial quantity is allowed", func(t *testing.T) {
		item := createTestItem(t, 0)

		assert.True(t, item.Quantity.IsZero())
		require.Len(t, item.Movements, 1)
	})

	t.Run("custom reason is recorded", func(t *testing.T) {
		item, err := NewInventoryItem(uuid.New(), uuid.New(), mustQty(t, 5), "Opening count")
		require.NoError(t, err)
		assert.Equal(t, "Opening count", item.Movements[0].Reason)
	})

	t.Run("requires product and location", func(t *testing.T) {
		_, err := NewInventoryItem(uuid.Nil, uuid.New(), mustQty(t, 1), "")
		require.Error(t, err)

		_, err = NewInventoryItem(uuid.New(), uuid.Nil, mustQty(t, 1), "")
		require.Error(t, err)
	})

	t.Run("raises created event", func(t *testing.T) {
		item := createTestItem(t, 3)

		events := item.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeInventoryItemCreated, events[0].EventType())
	})
}

func TestInventoryItem_AddStock(t *testing.T) {
	t.Run("increases quantity and appends movement", func(t *testing.T) {
		item := createTestItem(t, 10)

		movement, err := item.AddStock(mustQty(t, 5), MovementTypeReceived, "PO-1001 receipt")
		require.NoError(t, err)

		assert.Equal(t, "15", item.Quantity.String())
		assert.Equal(t, "15", movement.BalanceAfter.String())
		assert.Equal(t, "5", movement.Quantity.String())
		require.Len(t, item.Movements, 2)
	})

	t.Run("accepts any movement type", func(t *testing.T) {
		item := createTestItem(t, 10)

		// The type only classifies the movement; the method carries the
		// direction of the mutation
		movement, err := item.AddStock(mustQty(t, 1), MovementTypeTransfer, "Transfer in from B-01-01-01")
		require.NoError(t, err)
		assert.Equal(t, MovementTypeTransfer, movement.Type)
		assert.Equal(t, "11", item.Quantity.String())

		movement, err = item.RemoveStock(mustQty(t, 2), MovementTypeReturn, "Return to supplier")
		require.NoError(t, err)
		assert.Equal(t, MovementTypeReturn, movement.Type)
		assert.Equal(t, "9", item.Quantity.String())
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		item := createTestItem(t, 10)

		_, err := item.AddStock(valueobject.ZeroQuantity(), MovementTypeReceived, "nothing")
		require.Error(t, err)
		assert.Equal(t, "10", item.Quantity.String())
		assert.Len(t, item.Movements, 1)
	})

	t.Run("requires a reason", func(t *testing.T) {
		item := createTestItem(t, 10)

		_, err := item.AddStock(mustQty(t, 5), MovementTypeReceived, "   ")
		require.Error(t, err)
		assert.Equal(t, "10", item.Quantity.String())
	})
}

func TestInventoryItem_RemoveStock(t *testing.T) {
	t.Run("decreases quantity and appends movement", func(t *testing.T) {
		item := createTestItem(t, 10)

		movement, err := item.RemoveStock(mustQty(t, 4), MovementTypePicked, "Order pick")
		require.NoError(t, err)

		assert.Equal(t, "6", item.Quantity.String())
		assert.Equal(t, "6", movement.BalanceAfter.String())
		assert.Equal(t, "4", movement.Quantity.String())
	})

	t.Run("fails without mutation when stock is insufficient", func(t *testing.T) {
		item := createTestItem(t, 10)

		_, err := item.RemoveStock(mustQty(t, 15), MovementTypePicked, "Order pick")
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INSUFFICIENT_STOCK", domainErr.Code)
		assert.Contains(t, domainErr.Message, "Available: 10")
		assert.Contains(t, domainErr.Message, "Requested: 15")

		assert.Equal(t, "10", item.Quantity.String())
		assert.Len(t, item.Movements, 1)
	})

	t.Run("can remove down to exactly zero", func(t *testing.T) {
		item := createTestItem(t, 10)

		_, err := item.RemoveStock(mustQty(t, 10), MovementTypePicked, "Full pick")
		require.NoError(t, err)
		assert.True(t, item.Quantity.IsZero())
	})

	t.Run("rejects inbound movement types", func(t *testing.T) {
		item := createTestItem(t, 10)

		_, err := item.RemoveStock(mustQty(t, 2), MovementTypeReceived, "oops")
		require.Error(t, err)
	})
}

func TestInventoryItem_AdjustStock(t *testing.T) {
	t.Run("positive adjustment adds with ADJUSTMENT_IN", func(t *testing.T) {
		item := createTestItem(t, 10)

		movement, err := item.AdjustStock(5, "Cycle count surplus")
		require.NoError(t, err)

		assert.Equal(t, MovementTypeAdjustmentIn, movement.Type)
		assert.Equal(t, "15", item.Quantity.String())
	})

	t.Run("negative adjustment removes with ADJUSTMENT_OUT", func(t *testing.T) {
		item := createTestItem(t, 10)

		movement, err := item.AdjustStock(-10, "Write-off")
		require.NoError(t, err)

		assert.Equal(t, MovementTypeAdjustmentOut, movement.Type)
		assert.Equal(t, "10", movement.Quantity.String())
		assert.True(t, item.Quantity.IsZero())
	})

	t.Run("zero adjustment is rejected", func(t *testing.T) {
		item := createTestItem(t, 10)

		_, err := item.AdjustStock(0, "no-op")
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_ADJUSTMENT", domainErr.Code)
	})

	t.Run("over-removal fails leaving quantity untouched", func(t *testing.T) {
		item := createTestItem(t, 10)

		_, err := item.AdjustStock(-15, "Write-off")
		require.Error(t, err)
		assert.Equal(t, "10", item.Quantity.String())
		assert.Len(t, item.Movements, 1)

		_, err = item.AdjustStock(-10, "Write-off")
		require.NoError(t, err)
		assert.True(t, item.Quantity.IsZero())
	})
}

func TestInventoryItem_Reconciles(t *testing.T) {
	item := createTestItem(t, 10)

	_, err := item.AddStock(mustQty(t, 5), MovementTypeReceived, "PO receipt")
	require.NoError(t, err)
	_, err = item.RemoveStock(mustQty(t, 3), MovementTypePicked, "Order pick")
	require.NoError(t, err)
	_, err = item.AdjustStock(-2, "Damaged in transit")
	require.NoError(t, err)

	assert.Equal(t, "10", item.Quantity.String())
	assert.Len(t, item.Movements, 4)
	assert.True(t, item.Reconciles())

	item.Quantity = mustQty(t, 99)
	assert.False(t, item.Reconciles())
}

func TestInventoryItem_DomainEvents(t *testing.T) {
	item := createTestItem(t, 10)
	item.ClearDomainEvents()

	_, err := item.AddStock(mustQty(t, 5), MovementTypeReceived, "PO receipt")
	require.NoError(t, err)
	_, err = item.RemoveStock(mustQty(t, 2), MovementTypePicked, "Order pick")
	require.NoError(t, err)

	events := item.GetDomainEvents()
	require.Len(t, events, 2)
	assert.Equal(t, EventTypeStockChanged, events[0].EventType())
	assert.Equal(t, EventTypeStockChanged, events[1].EventType())
}

func TestNewStockMovement_Validation(t *testing.T) {
	itemID := uuid.New()
	qty := mustQty(t, 5)

	t.Run("requires item ID", func(t *testing.T) {
		_, err := NewStockMovement(uuid.Nil, MovementTypeReceived, qty, "receipt", qty)
		require.Error(t, err)
	})

	t.Run("rejects unknown movement type", func(t *testing.T) {
		_, err := NewStockMovement(itemID, MovementType("TELEPORTED"), qty, "receipt", qty)
		require.Error(t, err)
	})

	t.Run("trims and requires reason", func(t *testing.T) {
		m, err := NewStockMovement(itemID, MovementTypeReceived, qty, "  receipt  ", qty)
		require.NoError(t, err)
		assert.Equal(t, "receipt", m.Reason)

		_, err = NewStockMovement(itemID, MovementTypeReceived, qty, "", qty)
		require.Error(t, err)
	})

	t.Run("rejects reason over 500 characters", func(t *testing.T) {
		long := make([]byte, 501)
		for i := range long {
			long[i] = 'x'
		}
		_, err := NewStockMovement(itemID, MovementTypeReceived, qty, string(long), qty)
		require.Error(t, err)
	})
}

func TestMovementType_Direction(t *testing.T) {
	inbound := []MovementType{MovementTypeInitial, MovementTypeReceived, MovementTypeAdjustmentIn, MovementTypeReturn}
	outbound := []MovementType{MovementTypePicked, MovementTypeAdjustmentOut, MovementTypeTransfer, MovementTypeDamaged, MovementTypeCountCorrection}

	for _, mt := range inbound {
		assert.True(t, mt.IsInbound(), mt.String())
		assert.False(t, mt.IsOutbound(), mt.String())
	}
	for _, mt := range outbound {
		assert.True(t, mt.IsOutbound(), mt.String())
		assert.False(t, mt.IsInbound(), mt.String())
	}
}
