package inbound

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/domain/shared/valueobject"
)

// PurchaseOrderStatus represents the status of a purchase order
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusDraft             PurchaseOrderStatus = "DRAFT"
	PurchaseOrderStatusSubmitted         PurchaseOrderStatus = "SUBMITTED"
	PurchaseOrderStatusPartiallyReceived PurchaseOrderStatus = "PARTIALLY_RECEIVED"
	PurchaseOrderStatusFullyReceived     PurchaseOrderStatus = "FULLY_RECEIVED"
	PurchaseOrderStatusCancelled         PurchaseOrderStatus = "CANCELLED"
)

// IsValid checks if the status is a valid PurchaseOrderStatus
func (s PurchaseOrderStatus) IsValid() bool {
	switch s {
	case PurchaseOrderStatusDraft, PurchaseOrderStatusSubmitted, PurchaseOrderStatusPartiallyReceived,
		PurchaseOrderStatusFullyReceived, PurchaseOrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of PurchaseOrderStatus
func (s PurchaseOrderStatus) String() string {
	return string(s)
}

// CanReceive returns true if a receipt may be applied in this status
func (s PurchaseOrderStatus) CanReceive() bool {
	return s != PurchaseOrderStatusCancelled && s != PurchaseOrderStatusFullyReceived
}

// CanCancel returns true if the order may be cancelled from this status.
// Cancellation is allowed mid-receiving; only the terminal states refuse it.
func (s PurchaseOrderStatus) CanCancel() bool {
	return s != PurchaseOrderStatusFullyReceived && s != PurchaseOrderStatusCancelled
}

// PurchaseOrderLine represents a line in a purchase order.
// Each line tracks the ordered quantity and what has been received so far.
type PurchaseOrderLine struct {
	ID               uuid.UUID
	OrderID          uuid.UUID
	ProductID        uuid.UUID
	ProductName      string
	SKU              string
	Quantity         valueobject.Quantity
	ReceivedQuantity valueobject.Quantity
	UnitCost         valueobject.Money
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewPurchaseOrderLine creates a new purchase order line
func NewPurchaseOrderLine(orderID, productID uuid.UUID, productName, sku string, quantity valueobject.Quantity, unitCost valueobject.Money) (*PurchaseOrderLine, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order ID cannot be empty")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity.IsZero() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	now := time.Now()
	return &PurchaseOrderLine{
		ID:               uuid.New(),
		OrderID:          orderID,
		ProductID:        productID,
		ProductName:      strings.TrimSpace(productName),
		SKU:              strings.TrimSpace(sku),
		Quantity:         quantity,
		ReceivedQuantity: valueobject.ZeroQuantity(),
		UnitCost:         unitCost,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// CanReceiveQuantity reports whether the given quantity can still be received
// against this line without exceeding the ordered quantity
func (l *PurchaseOrderLine) CanReceiveQuantity(quantity valueobject.Quantity) error {
	if quantity.IsZero() {
		return shared.NewDomainError("INVALID_QUANTITY", "Receive quantity must be positive")
	}
	if l.ReceivedQuantity.Add(quantity).GreaterThan(l.Quantity) {
		return shared.NewDomainError("QUANTITY_EXCEEDED",
			fmt.Sprintf("Cannot receive more than ordered: ordered %s, already received %s, requested %s",
				l.Quantity, l.ReceivedQuantity, quantity))
	}
	return nil
}

// Receive accumulates a received quantity into the line.
// This is the single point enforcing the over-receive invariant.
func (l *PurchaseOrderLine) Receive(quantity valueobject.Quantity) error {
	if err := l.CanReceiveQuantity(quantity); err != nil {
		return err
	}
	l.ReceivedQuantity = l.ReceivedQuantity.Add(quantity)
	l.UpdatedAt = time.Now()
	return nil
}

// RemainingQuantity returns the quantity still to be received
func (l *PurchaseOrderLine) RemainingQuantity() valueobject.Quantity {
	remaining, err := l.Quantity.Subtract(l.ReceivedQuantity)
	if err != nil {
		return valueobject.ZeroQuantity()
	}
	return remaining
}

// IsFullyReceived returns true if the full ordered quantity has been received
func (l *PurchaseOrderLine) IsFullyReceived() bool {
	return l.ReceivedQuantity.GreaterThanOrEqual(l.Quantity)
}

// LineTotal returns the ordered quantity priced at the unit cost
func (l *PurchaseOrderLine) LineTotal() valueobject.Money {
	return l.UnitCost.Multiply(l.Quantity.Amount())
}

// ReceiptRequest is one entry of an ApplyReceipt call
type ReceiptRequest struct {
	LineID   uuid.UUID
	Quantity valueobject.Quantity
}

// PurchaseOrder represents a purchase order aggregate root.
// It manages the lifecycle of a supplier order from draft to full receipt.
type PurchaseOrder struct {
	shared.BaseAggregateRoot
	OrderNumber          string
	SupplierName         string
	Status               PurchaseOrderStatus
	ExpectedDeliveryDate *time.Time
	Notes                string
	Lines                []PurchaseOrderLine
	SubmittedAt          *time.Time
	CancelledAt          *time.Time
	CancelReason         string
}

// NormalizeOrderNumber trims and upper-cases an order number.
// "po-1001" and "PO-1001" refer to the same order.
func NormalizeOrderNumber(orderNumber string) string {
	return strings.ToUpper(strings.TrimSpace(orderNumber))
}

// NewPurchaseOrder creates a new purchase order in DRAFT status
func NewPurchaseOrder(orderNumber, supplierName string, expectedDeliveryDate *time.Time, notes string) (*PurchaseOrder, error) {
	orderNumber = NormalizeOrderNumber(orderNumber)
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if len(orderNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot exceed 50 characters")
	}
	supplierName = strings.TrimSpace(supplierName)
	if supplierName == "" {
		return nil, shared.NewDomainError("INVALID_SUPPLIER_NAME", "Supplier name cannot be empty")
	}
	if len(supplierName) > 200 {
		return nil, shared.NewDomainError("INVALID_SUPPLIER_NAME", "Supplier name cannot exceed 200 characters")
	}

	order := &PurchaseOrder{
		BaseAggregateRoot:    shared.NewBaseAggregateRoot(),
		OrderNumber:          orderNumber,
		SupplierName:         supplierName,
		Status:               PurchaseOrderStatusDraft,
		ExpectedDeliveryDate: expectedDeliveryDate,
		Notes:                strings.TrimSpace(notes),
		Lines:                make([]PurchaseOrderLine, 0),
	}

	order.AddDomainEvent(NewPurchaseOrderCreatedEvent(order))

	return order, nil
}

// AddLine adds a new line to the order.
// Rejected on cancelled orders; one line per product.
func (o *PurchaseOrder) AddLine(productID uuid.UUID, productName, sku string, quantity valueobject.Quantity, unitCost valueobject.Money) (*PurchaseOrderLine, error) {
	if o.Status == PurchaseOrderStatusCancelled {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot add lines to a cancelled order")
	}
	if o.GetLineByProduct(productID) != nil {
		return nil, shared.NewDomainError("DUPLICATE_PRODUCT",
			fmt.Sprintf("Order already has a line for product %s", productID))
	}

	line, err := NewPurchaseOrderLine(o.ID, productID, productName, sku, quantity, unitCost)
	if err != nil {
		return nil, err
	}

	o.Lines = append(o.Lines, *line)
	o.UpdatedAt = time.Now()

	return &o.Lines[len(o.Lines)-1], nil
}

// Submit transitions the order from DRAFT to SUBMITTED
func (o *PurchaseOrder) Submit() error {
	if o.Status != PurchaseOrderStatusDraft {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot submit order in %s status", o.Status))
	}

	now := time.Now()
	o.Status = PurchaseOrderStatusSubmitted
	o.SubmittedAt = &now
	o.UpdatedAt = now

	o.AddDomainEvent(NewPurchaseOrderSubmittedEvent(o))

	return nil
}

// Cancel cancels the order.
// Allowed from any status except FULLY_RECEIVED and CANCELLED, including
// mid-receiving.
func (o *PurchaseOrder) Cancel(reason string) error {
	if !o.Status.CanCancel() {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot cancel order in %s status", o.Status))
	}

	now := time.Now()
	o.Status = PurchaseOrderStatusCancelled
	o.CancelledAt = &now
	o.CancelReason = strings.TrimSpace(reason)
	o.UpdatedAt = now

	o.AddDomainEvent(NewPurchaseOrderCancelledEvent(o))

	return nil
}

// ApplyReceipt records received quantities against order lines.
// The whole request is validated before any line is mutated: duplicate line
// references, unknown lines, zero quantities and over-receives all fail the
// call leaving the order untouched. On success the order status is recomputed.
func (o *PurchaseOrder) ApplyReceipt(requests []ReceiptRequest) error {
	if !o.Status.CanReceive() {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot receive goods for order in %s status", o.Status))
	}
	if len(requests) == 0 {
		return shared.NewDomainError("NO_LINES", "Receipt lines cannot be empty")
	}

	// Validation pass, no mutation
	seen := make(map[uuid.UUID]struct{}, len(requests))
	lines := make([]*PurchaseOrderLine, len(requests))
	for i, req := range requests {
		if _, dup := seen[req.LineID]; dup {
			return shared.NewDomainError("DUPLICATE_LINE",
				fmt.Sprintf("Duplicate receipt entry for line %s", req.LineID))
		}
		seen[req.LineID] = struct{}{}

		line := o.GetLine(req.LineID)
		if line == nil {
			return shared.NewDomainError("NOT_FOUND",
				fmt.Sprintf("Line %s does not belong to order %s", req.LineID, o.OrderNumber))
		}
		if err := line.CanReceiveQuantity(req.Quantity); err != nil {
			return err
		}
		lines[i] = line
	}

	// Mutation pass, cannot fail
	for i, req := range requests {
		lines[i].ReceivedQuantity = lines[i].ReceivedQuantity.Add(req.Quantity)
		lines[i].UpdatedAt = time.Now()
	}

	if o.isFullyReceived() {
		o.Status = PurchaseOrderStatusFullyReceived
	} else {
		o.Status = PurchaseOrderStatusPartiallyReceived
	}
	o.UpdatedAt = time.Now()

	o.AddDomainEvent(NewPurchaseOrderReceivedEvent(o, requests))

	return nil
}

// isFullyReceived returns true when every line is fully received
func (o *PurchaseOrder) isFullyReceived() bool {
	for i := range o.Lines {
		if !o.Lines[i].IsFullyReceived() {
			return false
		}
	}
	return len(o.Lines) > 0
}

// TotalOrderedQuantity returns the sum of ordered quantities across lines
func (o *PurchaseOrder) TotalOrderedQuantity() valueobject.Quantity {
	total := valueobject.ZeroQuantity()
	for i := range o.Lines {
		total = total.Add(o.Lines[i].Quantity)
	}
	return total
}

// TotalReceivedQuantity returns the sum of received quantities across lines
func (o *PurchaseOrder) TotalReceivedQuantity() valueobject.Quantity {
	total := valueobject.ZeroQuantity()
	for i := range o.Lines {
		total = total.Add(o.Lines[i].ReceivedQuantity)
	}
	return total
}

// LineCount returns the number of lines in the order
func (o *PurchaseOrder) LineCount() int {
	return len(o.Lines)
}

// IsDraft returns true if the order is in DRAFT status
func (o *PurchaseOrder) IsDraft() bool {
	return o.Status == PurchaseOrderStatusDraft
}

// IsCancelled returns true if the order has been cancelled
func (o *PurchaseOrder) IsCancelled() bool {
	return o.Status == PurchaseOrderStatusCancelled
}

// IsFullyReceived returns true if every line has been fully received
func (o *PurchaseOrder) IsFullyReceived() bool {
	return o.Status == PurchaseOrderStatusFullyReceived
}

// GetLine returns the line with the given ID, or nil
func (o *PurchaseOrder) GetLine(lineID uuid.UUID) *PurchaseOrderLine {
	for i := range o.Lines {
		if o.Lines[i].ID == lineID {
			return &o.Lines[i]
		}
	}
	return nil
}

// GetLineByProduct returns the line for the given product, or nil
func (o *PurchaseOrder) GetLineByProduct(productID uuid.UUID) *PurchaseOrderLine {
	for i := range o.Lines {
		if o.Lines[i].ProductID == productID {
			return &o.Lines[i]
		}
	}
	return nil
}
