package inbound

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wms/backend/internal/domain/inbound"
)

// ==================== Purchase Order DTOs ====================

// CreatePurchaseOrderRequest represents a request to create a purchase order
type CreatePurchaseOrderRequest struct {
	OrderNumber          string                         `json:"order_number" binding:"required,min=1,max=50"`
	SupplierName         string                         `json:"supplier_name" binding:"required,min=1,max=200"`
	ExpectedDeliveryDate *time.Time                     `json:"expected_delivery_date"`
	Notes                string                         `json:"notes"`
	Lines                []CreatePurchaseOrderLineInput `json:"lines" binding:"required,min=1,dive"`
}

// CreatePurchaseOrderLineInput represents a line in the create order request
type CreatePurchaseOrderLineInput struct {
	ProductID   uuid.UUID       `json:"product_id" binding:"required"`
	ProductName string          `json:"product_name" binding:"required,min=1,max=200"`
	SKU         string          `json:"sku" binding:"required,min=1,max=50"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Currency    string          `json:"currency"`
}

// AddPurchaseOrderLineRequest represents a request to add a line to an order
type AddPurchaseOrderLineRequest struct {
	ProductID   uuid.UUID       `json:"product_id" binding:"required"`
	ProductName string          `json:"product_name" binding:"required,min=1,max=200"`
	SKU         string          `json:"sku" binding:"required,min=1,max=50"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Currency    string          `json:"currency"`
}

// CancelPurchaseOrderRequest represents a request to cancel a purchase order
type CancelPurchaseOrderRequest struct {
	Reason string `json:"reason" binding:"required,min=1,max=500"`
}

// PurchaseOrderListFilter represents filter options for the order list
type PurchaseOrderListFilter struct {
	Status   *inbound.PurchaseOrderStatus `form:"status"`
	Search   string                       `form:"search"`
	Page     int                          `form:"page"`
	PageSize int                          `form:"page_size"`
	OrderBy  string                       `form:"order_by"`
	OrderDir string                       `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// PurchaseOrderResponse represents a purchase order in API responses
type PurchaseOrderResponse struct {
	ID                   uuid.UUID                   `json:"id"`
	OrderNumber          string                      `json:"order_number"`
	SupplierName         string                      `json:"supplier_name"`
	Status               string                      `json:"status"`
	ExpectedDeliveryDate *time.Time                  `json:"expected_delivery_date,omitempty"`
	Notes                string                      `json:"notes,omitempty"`
	Lines                []PurchaseOrderLineResponse `json:"lines"`
	LineCount            int                         `json:"line_count"`
	TotalOrdered         decimal.Decimal             `json:"total_ordered"`
	TotalReceived        decimal.Decimal             `json:"total_received"`
	SubmittedAt          *time.Time                  `json:"submitted_at,omitempty"`
	CancelledAt          *time.Time                  `json:"cancelled_at,omitempty"`
	CancelReason         string                      `json:"cancel_reason,omitempty"`
	CreatedAt            time.Time                   `json:"created_at"`
	UpdatedAt            time.Time                   `json:"updated_at"`
	Version              int                         `json:"version"`
}

// PurchaseOrderLineResponse represents an order line in API responses
type PurchaseOrderLineResponse struct {
	ID                uuid.UUID       `json:"id"`
	ProductID         uuid.UUID       `json:"product_id"`
	ProductName       string          `json:"product_name"`
	SKU               string          `json:"sku"`
	Quantity          decimal.Decimal `json:"quantity"`
	ReceivedQuantity  decimal.Decimal `json:"received_quantity"`
	RemainingQuantity decimal.Decimal `json:"remaining_quantity"`
	UnitCost          decimal.Decimal `json:"unit_cost"`
	Currency          string          `json:"currency"`
	LineTotal         decimal.Decimal `json:"line_total"`
	FullyReceived     bool            `json:"fully_received"`
}

// PurchaseOrderListItemResponse represents an order in list responses (less detail)
type PurchaseOrderListItemResponse struct {
	ID            uuid.UUID       `json:"id"`
	OrderNumber   string          `json:"order_number"`
	SupplierName  string          `json:"supplier_name"`
	Status        string          `json:"status"`
	LineCount     int             `json:"line_count"`
	TotalOrdered  decimal.Decimal `json:"total_ordered"`
	TotalReceived decimal.Decimal `json:"total_received"`
	SubmittedAt   *time.Time      `json:"submitted_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ==================== Receipt DTOs ====================

// ReceiveLineInput represents a single order line to receive against
type ReceiveLineInput struct {
	LineID   uuid.UUID       `json:"line_id" binding:"required"`
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
}

// ApplyReceiptRequest represents a request to record a delivery
type ApplyReceiptRequest struct {
	PurchaseOrderID uuid.UUID          `json:"purchase_order_id" binding:"required"`
	ReceivedAt      *time.Time         `json:"received_at"`
	Notes           string             `json:"notes"`
	Lines           []ReceiveLineInput `json:"lines" binding:"required,min=1,dive"`
}

// ReceiptListFilter represents filter options for the receipt list
type ReceiptListFilter struct {
	PurchaseOrderID *uuid.UUID `form:"purchase_order_id"`
	Page            int        `form:"page"`
	PageSize        int        `form:"page_size"`
	OrderBy         string     `form:"order_by"`
	OrderDir        string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ReceiptResponse represents a receipt in API responses
type ReceiptResponse struct {
	ID              uuid.UUID             `json:"id"`
	PurchaseOrderID uuid.UUID             `json:"purchase_order_id"`
	ReceivedAt      time.Time             `json:"received_at"`
	Notes           string                `json:"notes,omitempty"`
	Lines           []ReceiptLineResponse `json:"lines"`
	TotalQuantity   decimal.Decimal       `json:"total_quantity"`
	CreatedAt       time.Time             `json:"created_at"`
}

// ReceiptLineResponse represents a receipt line in API responses
type ReceiptLineResponse struct {
	ID                  uuid.UUID       `json:"id"`
	PurchaseOrderLineID uuid.UUID       `json:"purchase_order_line_id"`
	ProductID           uuid.UUID       `json:"product_id"`
	Quantity            decimal.Decimal `json:"quantity"`
	UnitCost            decimal.Decimal `json:"unit_cost"`
	Currency            string          `json:"currency"`
}

// ApplyReceiptResponse represents the result of applying a receipt
type ApplyReceiptResponse struct {
	Receipt ReceiptResponse       `json:"receipt"`
	Order   PurchaseOrderResponse `json:"order"`
}

// ==================== Converters ====================

// ToPurchaseOrderResponse converts a domain PurchaseOrder to a response DTO
func ToPurchaseOrderResponse(order *inbound.PurchaseOrder) PurchaseOrderResponse {
	lines := make([]PurchaseOrderLineResponse, len(order.Lines))
	for i := range order.Lines {
		lines[i] = ToPurchaseOrderLineResponse(&order.Lines[i])
	}

	return PurchaseOrderResponse{
		ID:                   order.ID,
		OrderNumber:          order.OrderNumber,
		SupplierName:         order.SupplierName,
		Status:               string(order.Status),
		ExpectedDeliveryDate: order.ExpectedDeliveryDate,
		Notes:                order.Notes,
		Lines:                lines,
		LineCount:            order.LineCount(),
		TotalOrdered:         order.TotalOrderedQuantity().Amount(),
		TotalReceived:        order.TotalReceivedQuantity().Amount(),
		SubmittedAt:          order.SubmittedAt,
		CancelledAt:          order.CancelledAt,
		CancelReason:         order.CancelReason,
		CreatedAt:            order.CreatedAt,
		UpdatedAt:            order.UpdatedAt,
		Version:              order.Version,
	}
}

// ToPurchaseOrderLineResponse converts a domain line to a response DTO
func ToPurchaseOrderLineResponse(line *inbound.PurchaseOrderLine) PurchaseOrderLineResponse {
	return PurchaseOrderLineResponse{
		ID:                line.ID,
		ProductID:         line.ProductID,
		ProductName:       line.ProductName,
		SKU:               line.SKU,
		Quantity:          line.Quantity.Amount(),
		ReceivedQuantity:  line.ReceivedQuantity.Amount(),
		RemainingQuantity: line.RemainingQuantity().Amount(),
		UnitCost:          line.UnitCost.Amount(),
		Currency:          string(line.UnitCost.Currency()),
		LineTotal:         line.LineTotal().Amount(),
		FullyReceived:     line.IsFullyReceived(),
	}
}

// ToPurchaseOrderListItemResponse converts a domain order to a list item DTO
func ToPurchaseOrderListItemResponse(order *inbound.PurchaseOrder) PurchaseOrderListItemResponse {
	return PurchaseOrderListItemResponse{
		ID:            order.ID,
		OrderNumber:   order.OrderNumber,
		SupplierName:  order.SupplierName,
		Status:        string(order.Status),
		LineCount:     order.LineCount(),
		TotalOrdered:  order.TotalOrderedQuantity().Amount(),
		TotalReceived: order.TotalReceivedQuantity().Amount(),
		SubmittedAt:   order.SubmittedAt,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
}

// ToPurchaseOrderListItemResponses converts a slice of domain orders
func ToPurchaseOrderListItemResponses(orders []inbound.PurchaseOrder) []PurchaseOrderListItemResponse {
	responses := make([]PurchaseOrderListItemResponse, len(orders))
	for i := range orders {
		responses[i] = ToPurchaseOrderListItemResponse(&orders[i])
	}
	return responses
}

// ToReceiptResponse converts a domain Receipt to a response DTO
func ToReceiptResponse(receipt *inbound.Receipt) ReceiptResponse {
	lines := make([]ReceiptLineResponse, len(receipt.Lines))
	for i := range receipt.Lines {
		lines[i] = ToReceiptLineResponse(&receipt.Lines[i])
	}

	return ReceiptResponse{
		ID:              receipt.ID,
		PurchaseOrderID: receipt.PurchaseOrderID,
		ReceivedAt:      receipt.ReceivedAt,
		Notes:           receipt.Notes,
		Lines:           lines,
		TotalQuantity:   receipt.TotalQuantity().Amount(),
		CreatedAt:       receipt.CreatedAt,
	}
}

// ToReceiptLineResponse converts a domain receipt line to a response DTO
func ToReceiptLineResponse(line *inbound.ReceiptLine) ReceiptLineResponse {
	return ReceiptLineResponse{
		ID:                  line.ID,
		PurchaseOrderLineID: line.PurchaseOrderLineID,
		ProductID:           line.ProductID,
		Quantity:            line.Quantity.Amount(),
		UnitCost:            line.UnitCost.Amount(),
		Currency:            string(line.UnitCost.Currency()),
	}
}

// ToReceiptResponses converts a slice of domain receipts
func ToReceiptResponses(receipts []inbound.Receipt) []ReceiptResponse {
	responses := make([]ReceiptResponse, len(receipts))
	for i := range receipts {
		responses[i] = ToReceiptResponse(&receipts[i])
	}
	return responses
}
