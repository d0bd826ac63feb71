package inbound

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/domain/shared/valueobject"
)

// ReceiptLine records the quantity received against one purchase order line.
// The unit cost is a snapshot of the order line's cost at receiving time.
type ReceiptLine struct {
	ID                  uuid.UUID
	ReceiptID           uuid.UUID
	PurchaseOrderLineID uuid.UUID
	ProductID           uuid.UUID
	Quantity            valueobject.Quantity
	UnitCost            valueobject.Money
	CreatedAt           time.Time
}

// NewReceiptLine creates a new receipt line
func NewReceiptLine(purchaseOrderLineID, productID uuid.UUID, quantity valueobject.Quantity, unitCost valueobject.Money) (*ReceiptLine, error) {
	if purchaseOrderLineID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_LINE", "Purchase order line ID cannot be empty")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity.IsZero() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Received quantity must be positive")
	}

	return &ReceiptLine{
		ID:                  uuid.New(),
		PurchaseOrderLineID: purchaseOrderLineID,
		ProductID:           productID,
		Quantity:            quantity,
		UnitCost:            unitCost,
		CreatedAt:           time.Now(),
	}, nil
}

// Receipt is the immutable record of one receiving event against a
// purchase order. A receipt and its lines are constructed together and
// never mutated afterwards.
type Receipt struct {
	shared.BaseAggregateRoot
	PurchaseOrderID uuid.UUID
	ReceivedAt      time.Time
	Notes           string
	Lines           []ReceiptLine
}

// NewReceipt creates a new receipt with its lines
func NewReceipt(purchaseOrderID uuid.UUID, receivedAt time.Time, notes string, lines []ReceiptLine) (*Receipt, error) {
	if purchaseOrderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Purchase order ID cannot be empty")
	}
	if receivedAt.IsZero() {
		return nil, shared.NewDomainError("INVALID_TIMESTAMP", "Received timestamp is required")
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("NO_LINES", "Receipt must have at least one line")
	}

	receipt := &Receipt{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PurchaseOrderID:   purchaseOrderID,
		ReceivedAt:        receivedAt,
		Notes:             strings.TrimSpace(notes),
		Lines:             make([]ReceiptLine, len(lines)),
	}
	copy(receipt.Lines, lines)
	for i := range receipt.Lines {
		receipt.Lines[i].ReceiptID = receipt.ID
	}

	receipt.AddDomainEvent(NewReceiptRecordedEvent(receipt))

	return receipt, nil
}

// TotalQuantity returns the sum of quantities across receipt lines
func (r *Receipt) TotalQuantity() valueobject.Quantity {
	total := valueobject.ZeroQuantity()
	for i := range r.Lines {
		total = total.Add(r.Lines[i].Quantity)
	}
	return total
}
