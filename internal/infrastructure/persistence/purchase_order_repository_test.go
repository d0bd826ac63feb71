package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wms/backend/internal/domain/inbound"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/domain/shared/valueobject"
	"github.com/wms/backend/internal/infrastructure/persistence/models"
)

func buildTestOrder(t *testing.T, orderNumber string) *inbound.PurchaseOrder {
	t.Helper()

	order, err := inbound.NewPurchaseOrder(orderNumber, "Acme Supply", nil, "restock")
	require.NoError(t, err)

	qty, err := valueobject.NewQuantityFromInt(20)
	require.NoError(t, err)
	cost, err := valueobject.NewMoneyUSDFromFloat(12.50)
	require.NoError(t, err)

	_, err = order.AddLine(uuid.New(), "Widget", "WID-001", qty, cost)
	require.NoError(t, err)

	return order
}

func TestGormPurchaseOrderRepository_SaveAndFindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPurchaseOrderRepository(db)
	ctx := context.Background()

	order := buildTestOrder(t, "PO-2001")
	require.NoError(t, repo.Save(ctx, order))

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)
	assert.Equal(t, "PO-2001", found.OrderNumber)
	assert.Equal(t, "Acme Supply", found.SupplierName)
	assert.Equal(t, inbound.PurchaseOrderStatusDraft, found.Status)
	require.Len(t, found.Lines, 1)
	assert.Equal(t, "WID-001", found.Lines[0].SKU)
	assert.Equal(t, "20", found.Lines[0].Quantity.String())
	assert.True(t, found.Lines[0].ReceivedQuantity.IsZero())
	assert.Equal(t, "12.5", found.Lines[0].UnitCost.Amount().String())
	assert.Equal(t, valueobject.USD, found.Lines[0].UnitCost.Currency())
}

func TestGormPurchaseOrderRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPurchaseOrderRepository(db)

	found, err := repo.FindByID(context.Background(), uuid.New())

	assert.Nil(t, found)
	assert.Equal(t, shared.ErrNotFound, err)
}

func TestGormPurchaseOrderRepository_FindByOrderNumber(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPurchaseOrderRepository(db)
	ctx := context.Background()

	order := buildTestOrder(t, "PO-2002")
	require.NoError(t, repo.Save(ctx, order))

	// Lookup normalizes the order number
	found, err := repo.FindByOrderNumber(ctx, "  po-2002  ")
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)
	assert.Len(t, found.Lines, 1)
}

func TestGormPurchaseOrderRepository_ExistsByOrderNumber(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPurchaseOrderRepository(db)
	ctx := context.Background()

	order := buildTestOrder(t, "PO-2003")
	require.NoError(t, repo.Save(ctx, order))

	exists, err := repo.ExistsByOrderNumber(ctx, "po-2003")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByOrderNumber(ctx, "PO-9999")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGormPurchaseOrderRepository_FindByStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPurchaseOrderRepository(db)
	ctx := context.Background()

	draft := buildTestOrder(t, "PO-2004")
	require.NoError(t, repo.Save(ctx, draft))

	submitted := buildTestOrder(t, "PO-2005")
	require.NoError(t, submitted.Submit())
	require.NoError(t, repo.Save(ctx, submitted))

	filter := shared.DefaultFilter()
	orders, err := repo.FindByStatus(ctx, inbound.PurchaseOrderStatusSubmitted, filter)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "PO-2005", orders[0].OrderNumber)

	filter.Filters["status"] = string(inbound.PurchaseOrderStatusSubmitted)
	count, err := repo.Count(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGormPurchaseOrderRepository_SaveWithLock(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPurchaseOrderRepository(db)
	ctx := context.Background()

	order := buildTestOrder(t, "PO-2006")
	require.NoError(t, repo.Save(ctx, order))

	t.Run("saves with matching version", func(t *testing.T) {
		loaded, err := repo.FindByID(ctx, order.ID)
		require.NoError(t, err)

		require.NoError(t, loaded.Submit())
		require.NoError(t, repo.SaveWithLock(ctx, loaded))

		reloaded, err := repo.FindByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, inbound.PurchaseOrderStatusSubmitted, reloaded.Status)
		assert.NotNil(t, reloaded.SubmittedAt)
		assert.Equal(t, loaded.Version, reloaded.Version)
	})

	t.Run("reports not found for an unsaved order", func(t *testing.T) {
		unsaved := buildTestOrder(t, "PO-2099")

		err := repo.SaveWithLock(ctx, unsaved)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("rejects stale version", func(t *testing.T) {
		stale, err := repo.FindByID(ctx, order.ID)
		require.NoError(t, err)
		stale.Version--

		err = repo.SaveWithLock(ctx, stale)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "CONCURRENT_MODIFICATION", domainErr.Code)
	})
}

func TestGormPurchaseOrderRepository_SaveWithLock_PersistsReceivedQuantities(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPurchaseOrderRepository(db)
	ctx := context.Background()

	order := buildTestOrder(t, "PO-2007")
	require.NoError(t, order.Submit())
	require.NoError(t, repo.Save(ctx, order))

	loaded, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)

	qty, err := valueobject.NewQuantityFromInt(5)
	require.NoError(t, err)
	require.NoError(t, loaded.ApplyReceipt([]inbound.ReceiptRequest{
		{LineID: loaded.Lines[0].ID, Quantity: qty},
	}))
	require.NoError(t, repo.SaveWithLock(ctx, loaded))

	reloaded, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, inbound.PurchaseOrderStatusPartiallyReceived, reloaded.Status)
	assert.Equal(t, "5", reloaded.Lines[0].ReceivedQuantity.String())
	assert.Equal(t, "15", reloaded.Lines[0].RemainingQuantity().String())
}

func TestGormPurchaseOrderRepository_RejectsDuplicateProductLine(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPurchaseOrderRepository(db)
	ctx := context.Background()

	order := buildTestOrder(t, "PO-2008")
	require.NoError(t, repo.Save(ctx, order))

	line := order.Lines[0]
	dup := models.PurchaseOrderLineModel{
		ID:               uuid.New(),
		OrderID:          order.ID,
		ProductID:        line.ProductID,
		ProductName:      line.ProductName,
		SKU:              line.SKU,
		Quantity:         line.Quantity.Amount(),
		ReceivedQuantity: line.ReceivedQuantity.Amount(),
		UnitCost:         line.UnitCost.Amount(),
		Currency:         string(line.UnitCost.Currency()),
	}
	err := db.Create(&dup).Error
	require.Error(t, err, "a second line for the same product on one order must hit the unique index")
}

func TestGormPurchaseOrderRepository_FindAll_Pagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPurchaseOrderRepository(db)
	ctx := context.Background()

	for _, number := range []string{"PO-3001", "PO-3002", "PO-3003"} {
		require.NoError(t, repo.Save(ctx, buildTestOrder(t, number)))
	}

	filter := shared.Filter{Page: 1, PageSize: 2, OrderBy: "order_number", OrderDir: "asc"}
	orders, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "PO-3001", orders[0].OrderNumber)
	assert.Equal(t, "PO-3002", orders[1].OrderNumber)

	count, err := repo.Count(ctx, shared.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
