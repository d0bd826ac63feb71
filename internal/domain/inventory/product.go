package inventory

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wms/backend/internal/domain/shared"
)

// Product represents a product kept in the warehouse
type Product struct {
	shared.BaseAggregateRoot
	SKU         string
	Name        string
	Description string
	Weight      decimal.Decimal
	Length      decimal.Decimal
	Width       decimal.Decimal
	Height      decimal.Decimal
	IsActive    bool
}

// NewProduct creates a new active product.
// The SKU is trimmed and upper-cased.
func NewProduct(sku, name, description string, weight, length, width, height decimal.Decimal) (*Product, error) {
	sku = strings.ToUpper(strings.TrimSpace(sku))
	if sku == "" {
		return nil, shared.NewDomainError("INVALID_SKU", "SKU is required")
	}
	if len(sku) > 50 {
		return nil, shared.NewDomainError("INVALID_SKU", "SKU cannot exceed 50 characters")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Name is required")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	if weight.IsNegative() {
		return nil, shared.NewDomainError("INVALID_WEIGHT", "Weight cannot be negative")
	}
	if length.IsNegative() || width.IsNegative() || height.IsNegative() {
		return nil, shared.NewDomainError("INVALID_DIMENSIONS", "Dimensions cannot be negative")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SKU:               sku,
		Name:              name,
		Description:       strings.TrimSpace(description),
		Weight:            weight,
		Length:            length,
		Width:             width,
		Height:            height,
		IsActive:          true,
	}, nil
}

// Update changes the product's descriptive attributes.
// The SKU is immutable after creation.
func (p *Product) Update(name, description string, weight, length, width, height decimal.Decimal) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name is required")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	if weight.IsNegative() {
		return shared.NewDomainError("INVALID_WEIGHT", "Weight cannot be negative")
	}
	if length.IsNegative() || width.IsNegative() || height.IsNegative() {
		return shared.NewDomainError("INVALID_DIMENSIONS", "Dimensions cannot be negative")
	}

	p.Name = name
	p.Description = strings.TrimSpace(description)
	p.Weight = weight
	p.Length = length
	p.Width = width
	p.Height = height
	p.UpdatedAt = time.Now()

	return nil
}

// Activate marks the product as active
func (p *Product) Activate() {
	p.IsActive = true
	p.UpdatedAt = time.Now()
}

// Deactivate marks the product as inactive
func (p *Product) Deactivate() {
	p.IsActive = false
	p.UpdatedAt = time.Now()
}

// Volume returns the product volume in cubic units
func (p *Product) Volume() decimal.Decimal {
	return p.Length.Mul(p.Width).Mul(p.Height)
}
