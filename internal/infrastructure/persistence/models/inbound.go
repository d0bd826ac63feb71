package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wms/backend/internal/domain/inbound"
	"github.com/wms/backend/internal/domain/shared"
)

// PurchaseOrderModel is the persistence model for the PurchaseOrder aggregate root.
type PurchaseOrderModel struct {
	AggregateModel
	OrderNumber          string                      `gorm:"type:varchar(50);not null;uniqueIndex:idx_purchase_order_number"`
	SupplierName         string                      `gorm:"type:varchar(200);not null"`
	Status               inbound.PurchaseOrderStatus `gorm:"type:varchar(20);not null;default:'DRAFT';index"`
	ExpectedDeliveryDate *time.Time                  `gorm:"index"`
	Notes                string                      `gorm:"type:text"`
	Lines                []PurchaseOrderLineModel    `gorm:"foreignKey:OrderID;references:ID"`
	SubmittedAt          *time.Time                  `gorm:"index"`
	CancelledAt          *time.Time
	CancelReason         string `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (PurchaseOrderModel) TableName() string {
	return "purchase_orders"
}

// ToDomain converts the persistence model to a domain PurchaseOrder entity.
func (m *PurchaseOrderModel) ToDomain() *inbound.PurchaseOrder {
	order := &inbound.PurchaseOrder{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version: m.Version,
		},
		OrderNumber:          m.OrderNumber,
		SupplierName:         m.SupplierName,
		Status:               m.Status,
		ExpectedDeliveryDate: m.ExpectedDeliveryDate,
		Notes:                m.Notes,
		SubmittedAt:          m.SubmittedAt,
		CancelledAt:          m.CancelledAt,
		CancelReason:         m.CancelReason,
		Lines:                make([]inbound.PurchaseOrderLine, len(m.Lines)),
	}
	for i, line := range m.Lines {
		order.Lines[i] = *line.ToDomain()
	}
	return order
}

// FromDomain populates the persistence model from a domain PurchaseOrder entity.
func (m *PurchaseOrderModel) FromDomain(o *inbound.PurchaseOrder) {
	m.FromDomainAggregateRoot(o.BaseAggregateRoot)
	m.OrderNumber = o.OrderNumber
	m.SupplierName = o.SupplierName
	m.Status = o.Status
	m.ExpectedDeliveryDate = o.ExpectedDeliveryDate
	m.Notes = o.Notes
	m.SubmittedAt = o.SubmittedAt
	m.CancelledAt = o.CancelledAt
	m.CancelReason = o.CancelReason
	m.Lines = make([]PurchaseOrderLineModel, len(o.Lines))
	for i := range o.Lines {
		m.Lines[i] = *PurchaseOrderLineModelFromDomain(&o.Lines[i])
	}
}

// PurchaseOrderModelFromDomain creates a new persistence model from a domain PurchaseOrder entity.
func PurchaseOrderModelFromDomain(o *inbound.PurchaseOrder) *PurchaseOrderModel {
	m := &PurchaseOrderModel{}
	m.FromDomain(o)
	return m
}

// PurchaseOrderLineModel is the persistence model for the PurchaseOrderLine entity.
type PurchaseOrderLineModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID          uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_purchase_order_line_product"`
	ProductID        uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_purchase_order_line_product"`
	ProductName      string          `gorm:"type:varchar(200);not null"`
	SKU              string          `gorm:"type:varchar(50);not null"`
	Quantity         decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	ReceivedQuantity decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	UnitCost         decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Currency         string          `gorm:"type:varchar(3);not null;default:'USD'"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PurchaseOrderLineModel) TableName() string {
	return "purchase_order_lines"
}

// ToDomain converts the persistence model to a domain PurchaseOrderLine entity.
func (m *PurchaseOrderLineModel) ToDomain() *inbound.PurchaseOrderLine {
	return &inbound.PurchaseOrderLine{
		ID:               m.ID,
		OrderID:          m.OrderID,
		ProductID:        m.ProductID,
		ProductName:      m.ProductName,
		SKU:              m.SKU,
		Quantity:         quantityFromDB(m.Quantity),
		ReceivedQuantity: quantityFromDB(m.ReceivedQuantity),
		UnitCost:         moneyFromDB(m.UnitCost, m.Currency),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain PurchaseOrderLine entity.
func (m *PurchaseOrderLineModel) FromDomain(l *inbound.PurchaseOrderLine) {
	m.ID = l.ID
	m.OrderID = l.OrderID
	m.ProductID = l.ProductID
	m.ProductName = l.ProductName
	m.SKU = l.SKU
	m.Quantity = l.Quantity.Amount()
	m.ReceivedQuantity = l.ReceivedQuantity.Amount()
	m.UnitCost = l.UnitCost.Amount()
	m.Currency = string(l.UnitCost.Currency())
	m.CreatedAt = l.CreatedAt
	m.UpdatedAt = l.UpdatedAt
}

// PurchaseOrderLineModelFromDomain creates a new persistence model from a domain PurchaseOrderLine entity.
func PurchaseOrderLineModelFromDomain(l *inbound.PurchaseOrderLine) *PurchaseOrderLineModel {
	m := &PurchaseOrderLineModel{}
	m.FromDomain(l)
	return m
}

// ReceiptModel is the persistence model for the Receipt aggregate root.
type ReceiptModel struct {
	AggregateModel
	PurchaseOrderID uuid.UUID          `gorm:"type:uuid;not null;index"`
	ReceivedAt      time.Time          `gorm:"not null;index"`
	Notes           string             `gorm:"type:text"`
	Lines           []ReceiptLineModel `gorm:"foreignKey:ReceiptID;references:ID"`
}

// TableName returns the table name for GORM
func (ReceiptModel) TableName() string {
	return "receipts"
}

// ToDomain converts the persistence model to a domain Receipt entity.
func (m *ReceiptModel) ToDomain() *inbound.Receipt {
	receipt := &inbound.Receipt{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version: m.Version,
		},
		PurchaseOrderID: m.PurchaseOrderID,
		ReceivedAt:      m.ReceivedAt,
		Notes:           m.Notes,
		Lines:           make([]inbound.ReceiptLine, len(m.Lines)),
	}
	for i, line := range m.Lines {
		receipt.Lines[i] = *line.ToDomain()
	}
	return receipt
}

// FromDomain populates the persistence model from a domain Receipt entity.
func (m *ReceiptModel) FromDomain(r *inbound.Receipt) {
	m.FromDomainAggregateRoot(r.BaseAggregateRoot)
	m.PurchaseOrderID = r.PurchaseOrderID
	m.ReceivedAt = r.ReceivedAt
	m.Notes = r.Notes
	m.Lines = make([]ReceiptLineModel, len(r.Lines))
	for i := range r.Lines {
		m.Lines[i] = *ReceiptLineModelFromDomain(&r.Lines[i])
	}
}

// ReceiptModelFromDomain creates a new persistence model from a domain Receipt entity.
func ReceiptModelFromDomain(r *inbound.Receipt) *ReceiptModel {
	m := &ReceiptModel{}
	m.FromDomain(r)
	return m
}

// ReceiptLineModel is the persistence model for the ReceiptLine entity.
type ReceiptLineModel struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primary_key"`
	ReceiptID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	PurchaseOrderLineID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity            decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitCost            decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Currency            string          `gorm:"type:varchar(3);not null;default:'USD'"`
	CreatedAt           time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ReceiptLineModel) TableName() string {
	return "receipt_lines"
}

// ToDomain converts the persistence model to a domain ReceiptLine entity.
func (m *ReceiptLineModel) ToDomain() *inbound.ReceiptLine {
	return &inbound.ReceiptLine{
		ID:                  m.ID,
		ReceiptID:           m.ReceiptID,
		PurchaseOrderLineID: m.PurchaseOrderLineID,
		ProductID:           m.ProductID,
		Quantity:            quantityFromDB(m.Quantity),
		UnitCost:            moneyFromDB(m.UnitCost, m.Currency),
		CreatedAt:           m.CreatedAt,
	}
}

// FromDomain populates the persistence model from a domain ReceiptLine entity.
func (m *ReceiptLineModel) FromDomain(l *inbound.ReceiptLine) {
	m.ID = l.ID
	m.ReceiptID = l.ReceiptID
	m.PurchaseOrderLineID = l.PurchaseOrderLineID
	m.ProductID = l.ProductID
	m.Quantity = l.Quantity.Amount()
	m.UnitCost = l.UnitCost.Amount()
	m.Currency = string(l.UnitCost.Currency())
	m.CreatedAt = l.CreatedAt
}

// ReceiptLineModelFromDomain creates a new persistence model from a domain ReceiptLine entity.
func ReceiptLineModelFromDomain(l *inbound.ReceiptLine) *ReceiptLineModel {
	m := &ReceiptLineModel{}
	m.FromDomain(l)
	return m
}
