package inbound

import (
	"github.com/google/uuid"
	"github.com/wms/backend/internal/domain/shared"
)

// Event types for the inbound context
const (
	EventTypePurchaseOrderCreated   = "inbound.purchase_order.created"
	EventTypePurchaseOrderSubmitted = "inbound.purchase_order.submitted"
	EventTypePurchaseOrderReceived  = "inbound.purchase_order.received"
	EventTypePurchaseOrderCancelled = "inbound.purchase_order.cancelled"
	EventTypeReceiptRecorded        = "inbound.receipt.recorded"
)

// Aggregate types for the inbound context
const (
	AggregateTypePurchaseOrder = "PurchaseOrder"
	AggregateTypeReceipt       = "Receipt"
)

// PurchaseOrderCreatedEvent is raised when a purchase order is created
type PurchaseOrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderID      uuid.UUID `json:"order_id"`
	OrderNumber  string    `json:"order_number"`
	SupplierName string    `json:"supplier_name"`
}

// NewPurchaseOrderCreatedEvent creates a new PurchaseOrderCreatedEvent
func NewPurchaseOrderCreatedEvent(order *PurchaseOrder) *PurchaseOrderCreatedEvent {
	return &PurchaseOrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseOrderCreated, AggregateTypePurchaseOrder, order.ID),
		OrderID:         order.ID,
		OrderNumber:     order.OrderNumber,
		SupplierName:    order.SupplierName,
	}
}

// PurchaseOrderSubmittedEvent is raised when a draft order is submitted
type PurchaseOrderSubmittedEvent struct {
	shared.BaseDomainEvent
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	LineCount   int       `json:"line_count"`
}

// NewPurchaseOrderSubmittedEvent creates a new PurchaseOrderSubmittedEvent
func NewPurchaseOrderSubmittedEvent(order *PurchaseOrder) *PurchaseOrderSubmittedEvent {
	return &PurchaseOrderSubmittedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseOrderSubmitted, AggregateTypePurchaseOrder, order.ID),
		OrderID:         order.ID,
		OrderNumber:     order.OrderNumber,
		LineCount:       order.LineCount(),
	}
}

// ReceivedLineInfo carries the per-line quantities of a receipt event
type ReceivedLineInfo struct {
	LineID   uuid.UUID `json:"line_id"`
	Quantity string    `json:"quantity"`
}

// PurchaseOrderReceivedEvent is raised when a receipt is applied to an order
type PurchaseOrderReceivedEvent struct {
	shared.BaseDomainEvent
	OrderID     uuid.UUID           `json:"order_id"`
	OrderNumber string              `json:"order_number"`
	Status      PurchaseOrderStatus `json:"status"`
	Lines       []ReceivedLineInfo  `json:"lines"`
}

// NewPurchaseOrderReceivedEvent creates a new PurchaseOrderReceivedEvent
func NewPurchaseOrderReceivedEvent(order *PurchaseOrder, requests []ReceiptRequest) *PurchaseOrderReceivedEvent {
	lines := make([]ReceivedLineInfo, len(requests))
	for i, req := range requests {
		lines[i] = ReceivedLineInfo{
			LineID:   req.LineID,
			Quantity: req.Quantity.String(),
		}
	}
	return &PurchaseOrderReceivedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseOrderReceived, AggregateTypePurchaseOrder, order.ID),
		OrderID:         order.ID,
		OrderNumber:     order.OrderNumber,
		Status:          order.Status,
		Lines:           lines,
	}
}

// PurchaseOrderCancelledEvent is raised when an order is cancelled
type PurchaseOrderCancelledEvent struct {
	shared.BaseDomainEvent
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Reason      string    `json:"reason"`
}

// NewPurchaseOrderCancelledEvent creates a new PurchaseOrderCancelledEvent
func NewPurchaseOrderCancelledEvent(order *PurchaseOrder) *PurchaseOrderCancelledEvent {
	return &PurchaseOrderCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseOrderCancelled, AggregateTypePurchaseOrder, order.ID),
		OrderID:         order.ID,
		OrderNumber:     order.OrderNumber,
		Reason:          order.CancelReason,
	}
}

// ReceiptRecordedEvent is raised when a receipt record is created
type ReceiptRecordedEvent struct {
	shared.BaseDomainEvent
	ReceiptID       uuid.UUID `json:"receipt_id"`
	PurchaseOrderID uuid.UUID `json:"purchase_order_id"`
	LineCount       int       `json:"line_count"`
}

// NewReceiptRecordedEvent creates a new ReceiptRecordedEvent
func NewReceiptRecordedEvent(receipt *Receipt) *ReceiptRecordedEvent {
	return &ReceiptRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeReceiptRecorded, AggregateTypeReceipt, receipt.ID),
		ReceiptID:       receipt.ID,
		PurchaseOrderID: receipt.PurchaseOrderID,
		LineCount:       len(receipt.Lines),
	}
}
