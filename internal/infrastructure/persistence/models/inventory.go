package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wms/backend/internal/domain/inventory"
	"github.com/wms/backend/internal/domain/shared"
)

// InventoryItemModel is the persistence model for the InventoryItem aggregate root.
// One row per product and location pair.
type InventoryItemModel struct {
	AggregateModel
	ProductID  uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_product_location,priority:1"`
	LocationID uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_product_location,priority:2"`
	Quantity   decimal.Decimal      `gorm:"type:decimal(18,4);not null;default:0"`
	Movements  []StockMovementModel `gorm:"foreignKey:InventoryItemID;references:ID"`
}

// TableName returns the table name for GORM
func (InventoryItemModel) TableName() string {
	return "inventory_items"
}

// ToDomain converts the persistence model to a domain InventoryItem entity.
func (m *InventoryItemModel) ToDomain() *inventory.InventoryItem {
	item := &inventory.InventoryItem{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version: m.Version,
		},
		ProductID:  m.ProductID,
		LocationID: m.LocationID,
		Quantity:   quantityFromDB(m.Quantity),
		Movements:  make([]inventory.StockMovement, len(m.Movements)),
	}
	for i, movement := range m.Movements {
		item.Movements[i] = *movement.ToDomain()
	}
	return item
}

// FromDomain populates the persistence model from a domain InventoryItem entity.
func (m *InventoryItemModel) FromDomain(i *inventory.InventoryItem) {
	m.FromDomainAggregateRoot(i.BaseAggregateRoot)
	m.ProductID = i.ProductID
	m.LocationID = i.LocationID
	m.Quantity = i.Quantity.Amount()
	m.Movements = make([]StockMovementModel, len(i.Movements))
	for idx := range i.Movements {
		m.Movements[idx] = *StockMovementModelFromDomain(&i.Movements[idx])
	}
}

// InventoryItemModelFromDomain creates a new persistence model from a domain InventoryItem entity.
func InventoryItemModelFromDomain(i *inventory.InventoryItem) *InventoryItemModel {
	m := &InventoryItemModel{}
	m.FromDomain(i)
	return m
}

// StockMovementModel is the persistence model for the StockMovement entity.
// Movements are append-only; rows are never updated or deleted.
type StockMovementModel struct {
	ID              uuid.UUID              `gorm:"type:uuid;primary_key"`
	InventoryItemID uuid.UUID              `gorm:"type:uuid;not null;index"`
	Type            inventory.MovementType `gorm:"type:varchar(20);not null;index"`
	Quantity        decimal.Decimal        `gorm:"type:decimal(18,4);not null"`
	Reason          string                 `gorm:"type:varchar(500);not null"`
	BalanceAfter    decimal.Decimal        `gorm:"type:decimal(18,4);not null"`
	CreatedAt       time.Time              `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (StockMovementModel) TableName() string {
	return "stock_movements"
}

// ToDomain converts the persistence model to a domain StockMovement entity.
func (m *StockMovementModel) ToDomain() *inventory.StockMovement {
	return &inventory.StockMovement{
		ID:              m.ID,
		InventoryItemID: m.InventoryItemID,
		Type:            m.Type,
		Quantity:        quantityFromDB(m.Quantity),
		Reason:          m.Reason,
		BalanceAfter:    quantityFromDB(m.BalanceAfter),
		CreatedAt:       m.CreatedAt,
	}
}

// FromDomain populates the persistence model from a domain StockMovement entity.
func (m *StockMovementModel) FromDomain(s *inventory.StockMovement) {
	m.ID = s.ID
	m.InventoryItemID = s.InventoryItemID
	m.Type = s.Type
	m.Quantity = s.Quantity.Amount()
	m.Reason = s.Reason
	m.BalanceAfter = s.BalanceAfter.Amount()
	m.CreatedAt = s.CreatedAt
}

// StockMovementModelFromDomain creates a new persistence model from a domain StockMovement entity.
func StockMovementModelFromDomain(s *inventory.StockMovement) *StockMovementModel {
	m := &StockMovementModel{}
	m.FromDomain(s)
	return m
}

// ProductModel is the persistence model for the Product aggregate root.
type ProductModel struct {
	AggregateModel
	SKU         string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_product_sku"`
	Name        string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text"`
	Weight      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Length      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Width       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Height      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	IsActive    bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *inventory.Product {
	return &inventory.Product{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version: m.Version,
		},
		SKU:         m.SKU,
		Name:        m.Name,
		Description: m.Description,
		Weight:      m.Weight,
		Length:      m.Length,
		Width:       m.Width,
		Height:      m.Height,
		IsActive:    m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Product entity.
func (m *ProductModel) FromDomain(p *inventory.Product) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.SKU = p.SKU
	m.Name = p.Name
	m.Description = p.Description
	m.Weight = p.Weight
	m.Length = p.Length
	m.Width = p.Width
	m.Height = p.Height
	m.IsActive = p.IsActive
}

// ProductModelFromDomain creates a new persistence model from a domain Product entity.
func ProductModelFromDomain(p *inventory.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}

// LocationModel is the persistence model for the Location aggregate root.
type LocationModel struct {
	AggregateModel
	Code     string `gorm:"type:varchar(20);not null;uniqueIndex:idx_location_code"`
	Name     string `gorm:"type:varchar(200);not null"`
	Zone     string `gorm:"type:varchar(1);not null;index"`
	Aisle    int    `gorm:"not null"`
	Rack     int    `gorm:"not null"`
	Bin      int    `gorm:"not null"`
	Capacity int    `gorm:"not null;default:100"`
	IsActive bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (LocationModel) TableName() string {
	return "locations"
}

// ToDomain converts the persistence model to a domain Location entity.
func (m *LocationModel) ToDomain() *inventory.Location {
	return &inventory.Location{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version: m.Version,
		},
		Code:     m.Code,
		Name:     m.Name,
		Zone:     m.Zone,
		Aisle:    m.Aisle,
		Rack:     m.Rack,
		Bin:      m.Bin,
		Capacity: m.Capacity,
		IsActive: m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Location entity.
func (m *LocationModel) FromDomain(l *inventory.Location) {
	m.FromDomainAggregateRoot(l.BaseAggregateRoot)
	m.Code = l.Code
	m.Name = l.Name
	m.Zone = l.Zone
	m.Aisle = l.Aisle
	m.Rack = l.Rack
	m.Bin = l.Bin
	m.Capacity = l.Capacity
	m.IsActive = l.IsActive
}

// LocationModelFromDomain creates a new persistence model from a domain Location entity.
func LocationModelFromDomain(l *inventory.Location) *LocationModel {
	m := &LocationModel{}
	m.FromDomain(l)
	return m
}
