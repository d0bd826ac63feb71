package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/wms/backend/internal/domain/inbound"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormReceiptRepository implements ReceiptRepository using GORM.
// Receipts are immutable, so there is no update path.
type GormReceiptRepository struct {
	db *gorm.DB
}

// NewGormReceiptRepository creates a new GormReceiptRepository
func NewGormReceiptRepository(db *gorm.DB) *GormReceiptRepository {
	return &GormReceiptRepository{db: db}
}

// FindByID finds a receipt with its lines by ID
func (r *GormReceiptRepository) FindByID(ctx context.Context, id uuid.UUID) (*inbound.Receipt, error) {
	var model models.ReceiptModel
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds receipts with filtering
func (r *GormReceiptRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inbound.Receipt, error) {
	var receiptModels []models.ReceiptModel

	query := r.db.WithContext(ctx).Model(&models.ReceiptModel{})
	query = r.applyFilter(query, filter)

	if err := query.Preload("Lines").Find(&receiptModels).Error; err != nil {
		return nil, err
	}
	receipts := make([]inbound.Receipt, len(receiptModels))
	for i, model := range receiptModels {
		receipts[i] = *model.ToDomain()
	}
	return receipts, nil
}

// FindByPurchaseOrder finds all receipts recorded against an order
func (r *GormReceiptRepository) FindByPurchaseOrder(ctx context.Context, purchaseOrderID uuid.UUID, filter shared.Filter) ([]inbound.Receipt, error) {
	var receiptModels []models.ReceiptModel

	query := r.db.WithContext(ctx).Model(&models.ReceiptModel{}).
		Where("purchase_order_id = ?", purchaseOrderID)
	query = r.applyFilter(query, filter)

	if err := query.Preload("Lines").Find(&receiptModels).Error; err != nil {
		return nil, err
	}
	receipts := make([]inbound.Receipt, len(receiptModels))
	for i, model := range receiptModels {
		receipts[i] = *model.ToDomain()
	}
	return receipts, nil
}

// Save persists a new receipt with its lines
func (r *GormReceiptRepository) Save(ctx context.Context, receipt *inbound.Receipt) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := models.ReceiptModelFromDomain(receipt)

		if err := tx.Omit("Lines").Create(model).Error; err != nil {
			return err
		}

		for i := range receipt.Lines {
			receipt.Lines[i].ReceiptID = receipt.ID
			lineModel := models.ReceiptLineModelFromDomain(&receipt.Lines[i])
			if err := tx.Create(lineModel).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Count counts receipts matching the filter
func (r *GormReceiptRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.ReceiptModel{})
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormReceiptRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	sortField := ValidateSortField(filter.OrderBy, ReceiptSortFields, "received_at")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	return query.Order(sortField + " " + sortOrder)
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormReceiptRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "purchase_order_id":
			query = query.Where("purchase_order_id = ?", value)
		case "start_date":
			if t, ok := value.(time.Time); ok {
				query = query.Where("received_at >= ?", t)
			}
		case "end_date":
			if t, ok := value.(time.Time); ok {
				query = query.Where("received_at <= ?", t)
			}
		}
	}

	return query
}

// Ensure GormReceiptRepository implements ReceiptRepository
var _ inbound.ReceiptRepository = (*GormReceiptRepository)(nil)
