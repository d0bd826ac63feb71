package inbound

import (
	"context"

	"github.com/wms/backend/internal/domain/inbound"
)

// TransactionScope provides transactional access to inbound repositories.
// When a function is executed within a transaction scope, all repository
// operations are part of the same database transaction and commit or roll
// back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the inbound repositories
// within a transaction. All repositories returned share the same underlying
// database transaction.
//
// Applying a receipt spans two aggregates: the purchase order advances its
// received quantities and the receipt is stored as an immutable record.
// Neither write may land without the other.
type TransactionalRepositories interface {
	// OrderRepo returns the purchase order repository scoped to the current transaction
	OrderRepo() inbound.PurchaseOrderRepository
	// ReceiptRepo returns the receipt repository scoped to the current transaction
	ReceiptRepo() inbound.ReceiptRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. This is useful for testing or when transaction support is
// not required.
type NoOpTransactionScope struct {
	orderRepo   inbound.PurchaseOrderRepository
	receiptRepo inbound.ReceiptRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories.
func NewNoOpTransactionScope(
	orderRepo inbound.PurchaseOrderRepository,
	receiptRepo inbound.ReceiptRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		orderRepo:   orderRepo,
		receiptRepo: receiptRepo,
	}
}

// Execute runs the function without a real transaction (for testing/compatibility).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// OrderRepo returns the purchase order repository.
func (s *NoOpTransactionScope) OrderRepo() inbound.PurchaseOrderRepository {
	return s.orderRepo
}

// ReceiptRepo returns the receipt repository.
func (s *NoOpTransactionScope) ReceiptRepo() inbound.ReceiptRepository {
	return s.receiptRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
