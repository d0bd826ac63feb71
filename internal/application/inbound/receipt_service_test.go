package inbound

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wms/backend/internal/domain/inbound"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/infrastructure/cache"
)

func TestReceiptService_Apply(t *testing.T) {
	t.Run("partial receipt advances the order", func(t *testing.T) {
		orderRepo := new(MockPurchaseOrderRepository)
		receiptRepo := new(MockReceiptRepository)
		service := NewReceiptService(orderRepo, receiptRepo)
		ctx := context.Background()

		order := submittedOrder(t)
		orderRepo.On("FindByID", mock.Anything, testOrderID).Return(order, nil)
		orderRepo.On("SaveWithLock", mock.Anything, order).Return(nil)
		receiptRepo.On("Save", mock.Anything, mock.AnythingOfType("*inbound.Receipt")).Return(nil)

		result, err := service.Apply(ctx, ApplyReceiptRequest{
			PurchaseOrderID: testOrderID,
			Lines: []ReceiveLineInput{
				{LineID: order.Lines[0].ID, Quantity: decimal.NewFromInt(5)},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "PARTIALLY_RECEIVED", result.Order.Status)
		require.Len(t, result.Receipt.Lines, 1)
		assert.Equal(t, order.ID, result.Receipt.PurchaseOrderID)
		assert.True(t, decimal.NewFromInt(5).Equal(result.Receipt.TotalQuantity))
		// Unit cost snapshot comes from the order line
		assert.True(t, decimal.NewFromFloat(12.50).Equal(result.Receipt.Lines[0].UnitCost))
		orderRepo.AssertExpectations(t)
		receiptRepo.AssertExpectations(t)
	})

	t.Run("receiving the remainder completes the order", func(t *testing.T) {
		orderRepo := new(MockPurchaseOrderRepository)
		receiptRepo := new(MockReceiptRepository)
		service := NewReceiptService(orderRepo, receiptRepo)
		ctx := context.Background()

		order := submittedOrder(t)
		lineID := order.Lines[0].ID
		orderRepo.On("FindByID", mock.Anything, testOrderID).Return(order, nil)
		orderRepo.On("SaveWithLock", mock.Anything, order).Return(nil)
		receiptRepo.On("Save", mock.Anything, mock.AnythingOfType("*inbound.Receipt")).Return(nil)

		_, err := service.Apply(ctx, ApplyReceiptRequest{
			PurchaseOrderID: testOrderID,
			Lines:           []ReceiveLineInput{{LineID: lineID, Quantity: decimal.NewFromInt(5)}},
		})
		require.NoError(t, err)

		result, err := service.Apply(ctx, ApplyReceiptRequest{
			PurchaseOrderID: testOrderID,
			Lines:           []ReceiveLineInput{{LineID: lineID, Quantity: decimal.NewFromInt(15)}},
		})

		require.NoError(t, err)
		assert.Equal(t, "FULLY_RECEIVED", result.Order.Status)
	})

	t.Run("over-receiving fails whole receipt and stores nothing", func(t *testing.T) {
		orderRepo := new(MockPurchaseOrderRepository)
		receiptRepo := new(MockReceiptRepository)
		service := NewReceiptService(orderRepo, receiptRepo)
		ctx := context.Background()

		order := submittedOrder(t)
		orderRepo.On("FindByID", mock.Anything, testOrderID).Return(order, nil)

		_, err := service.Apply(ctx, ApplyReceiptRequest{
			PurchaseOrderID: testOrderID,
			Lines: []ReceiveLineInput{
				{LineID: order.Lines[0].ID, Quantity: decimal.NewFromInt(25)},
			},
		})

		require.Error(t, err)
		assert.Equal(t, "SUBMITTED", string(order.Status))
		assert.True(t, order.Lines[0].ReceivedQuantity.IsZero())
		receiptRepo.AssertNotCalled(t, "Save")
		orderRepo.AssertNotCalled(t, "SaveWithLock")
	})

	t.Run("rejects receipt for cancelled order", func(t *testing.T) {
		orderRepo := new(MockPurchaseOrderRepository)
		receiptRepo := new(MockReceiptRepository)
		service := NewReceiptService(orderRepo, receiptRepo)
		ctx := context.Background()

		order := submittedOrder(t)
		require.NoError(t, order.Cancel("supplier closed"))
		orderRepo.On("FindByID", mock.Anything, testOrderID).Return(order, nil)

		_, err := service.Apply(ctx, ApplyReceiptRequest{
			PurchaseOrderID: testOrderID,
			Lines: []ReceiveLineInput{
				{LineID: order.Lines[0].ID, Quantity: decimal.NewFromInt(1)},
			},
		})

		require.Error(t, err)
		receiptRepo.AssertNotCalled(t, "Save")
	})

	t.Run("both writes go through one transaction scope", func(t *testing.T) {
		orderRepo := new(MockPurchaseOrderRepository)
		receiptRepo := new(MockReceiptRepository)
		service := NewReceiptService(orderRepo, receiptRepo)
		scope := &recordingTransactionScope{inner: NewNoOpTransactionScope(orderRepo, receiptRepo)}
		service.SetTransactionScope(scope)
		ctx := context.Background()

		order := submittedOrder(t)
		orderRepo.On("FindByID", mock.Anything, testOrderID).Return(order, nil)
		orderRepo.On("SaveWithLock", mock.Anything, order).Return(nil)
		receiptRepo.On("Save", mock.Anything, mock.AnythingOfType("*inbound.Receipt")).Return(errors.New("db down"))

		_, err := service.Apply(ctx, ApplyReceiptRequest{
			PurchaseOrderID: testOrderID,
			Lines: []ReceiveLineInput{
				{LineID: order.Lines[0].ID, Quantity: decimal.NewFromInt(5)},
			},
		})

		require.Error(t, err)
		// The order save and the receipt save ran inside the same scope, so
		// the failed receipt save takes the order mutation down with it
		assert.Equal(t, 1, scope.executions)
		assert.Equal(t, 1, scope.failures)
		orderRepo.AssertCalled(t, "SaveWithLock", mock.Anything, order)
	})

	t.Run("unknown line fails the receipt", func(t *testing.T) {
		orderRepo := new(MockPurchaseOrderRepository)
		receiptRepo := new(MockReceiptRepository)
		service := NewReceiptService(orderRepo, receiptRepo)
		ctx := context.Background()

		order := submittedOrder(t)
		orderRepo.On("FindByID", mock.Anything, testOrderID).Return(order, nil)

		_, err := service.Apply(ctx, ApplyReceiptRequest{
			PurchaseOrderID: testOrderID,
			Lines: []ReceiveLineInput{
				{LineID: uuid.New(), Quantity: decimal.NewFromInt(1)},
			},
		})

		require.Error(t, err)
	})
}

// recordingTransactionScope counts executions and failed executions while
// delegating to a real scope
type recordingTransactionScope struct {
	inner      TransactionScope
	executions int
	failures   int
}

func (s *recordingTransactionScope) Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error {
	s.executions++
	err := s.inner.Execute(ctx, fn)
	if err != nil {
		s.failures++
	}
	return err
}

func TestReceiptService_GetByID_UsesCache(t *testing.T) {
	orderRepo := new(MockPurchaseOrderRepository)
	receiptRepo := new(MockReceiptRepository)
	service := NewReceiptService(orderRepo, receiptRepo)
	service.SetViewCache(cache.NewInMemoryViewCache())
	ctx := context.Background()

	order := submittedOrder(t)
	receiptLine, err := inbound.NewReceiptLine(order.Lines[0].ID, testProductID, order.Lines[0].Quantity, order.Lines[0].UnitCost)
	require.NoError(t, err)
	receipt, err := inbound.NewReceipt(order.ID, order.CreatedAt, "", []inbound.ReceiptLine{*receiptLine})
	require.NoError(t, err)

	receiptRepo.On("FindByID", mock.Anything, receipt.ID).Return(receipt, nil).Once()

	first, err := service.GetByID(ctx, receipt.ID)
	require.NoError(t, err)
	second, err := service.GetByID(ctx, receipt.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	receiptRepo.AssertExpectations(t)
}

func TestReceiptService_List(t *testing.T) {
	t.Run("scoped to one order", func(t *testing.T) {
		orderRepo := new(MockPurchaseOrderRepository)
		receiptRepo := new(MockReceiptRepository)
		service := NewReceiptService(orderRepo, receiptRepo)
		ctx := context.Background()

		orderID := uuid.New()
		receiptRepo.On("FindByPurchaseOrder", mock.Anything, orderID, mock.AnythingOfType("shared.Filter")).Return([]inbound.Receipt{}, nil)
		receiptRepo.On("Count", mock.Anything, mock.AnythingOfType("shared.Filter")).Return(int64(0), nil)

		items, total, err := service.List(ctx, ReceiptListFilter{PurchaseOrderID: &orderID})

		require.NoError(t, err)
		assert.Empty(t, items)
		assert.Equal(t, int64(0), total)
		receiptRepo.AssertExpectations(t)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		orderRepo := new(MockPurchaseOrderRepository)
		receiptRepo := new(MockReceiptRepository)
		service := NewReceiptService(orderRepo, receiptRepo)
		ctx := context.Background()

		receiptRepo.On("FindAll", mock.Anything, mock.AnythingOfType("shared.Filter")).Return(nil, shared.ErrNotFound)

		_, _, err := service.List(ctx, ReceiptListFilter{})
		require.Error(t, err)
	})
}
