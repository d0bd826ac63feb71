package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/wms/backend/internal/domain/inventory"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormInventoryItemRepository implements InventoryItemRepository using GORM
type GormInventoryItemRepository struct {
	db *gorm.DB
}

// NewGormInventoryItemRepository creates a new GormInventoryItemRepository
func NewGormInventoryItemRepository(db *gorm.DB) *GormInventoryItemRepository {
	return &GormInventoryItemRepository{db: db}
}

// preloadMovements loads the movement ledger in insertion order
func preloadMovements(db *gorm.DB) *gorm.DB {
	return db.Order("stock_movements.created_at ASC")
}

// FindByID finds an inventory item with its movement ledger by ID
func (r *GormInventoryItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.InventoryItem, error) {
	var model models.InventoryItemModel
	if err := r.db.WithContext(ctx).
		Preload("Movements", preloadMovements).
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByProductAndLocation finds the inventory item for a product at a location
func (r *GormInventoryItemRepository) FindByProductAndLocation(ctx context.Context, productID, locationID uuid.UUID) (*inventory.InventoryItem, error) {
	var model models.InventoryItemModel
	if err := r.db.WithContext(ctx).
		Preload("Movements", preloadMovements).
		Where("product_id = ? AND location_id = ?", productID, locationID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByProduct finds all inventory items holding a product across locations
func (r *GormInventoryItemRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]inventory.InventoryItem, error) {
	var itemModels []models.InventoryItemModel
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at ASC").
		Find(&itemModels).Error; err != nil {
		return nil, err
	}
	items := make([]inventory.InventoryItem, len(itemModels))
	for i, model := range itemModels {
		items[i] = *model.ToDomain()
	}
	return items, nil
}

// FindAll finds inventory items with filtering
func (r *GormInventoryItemRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.InventoryItem, error) {
	var itemModels []models.InventoryItemModel

	query := r.db.WithContext(ctx).Model(&models.InventoryItemModel{})
	query = r.applyFilter(query, filter)

	if err := query.Find(&itemModels).Error; err != nil {
		return nil, err
	}
	items := make([]inventory.InventoryItem, len(itemModels))
	for i, model := range itemModels {
		items[i] = *model.ToDomain()
	}
	return items, nil
}

// Save creates or updates an inventory item and appends new ledger rows.
// Movements are append-only; existing rows are never rewritten.
func (r *GormInventoryItemRepository) Save(ctx context.Context, item *inventory.InventoryItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := models.InventoryItemModelFromDomain(item)

		if err := tx.Omit("Movements").Save(model).Error; err != nil {
			return err
		}

		return r.saveMovements(tx, item)
	})
}

// SaveWithLock saves with optimistic locking (version check)
func (r *GormInventoryItemRepository) SaveWithLock(ctx context.Context, item *inventory.InventoryItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var currentVersion int
		lookup := tx.Model(&models.InventoryItemModel{}).
			Where("id = ?", item.ID).
			Select("version").
			Scan(&currentVersion)
		if lookup.Error != nil {
			return lookup.Error
		}
		// Scan does not raise ErrRecordNotFound on an empty result set
		if lookup.RowsAffected == 0 {
			return shared.ErrNotFound
		}

		if currentVersion != item.Version {
			return shared.NewDomainError("CONCURRENT_MODIFICATION", "The inventory item has been modified by another user")
		}

		item.Version++
		item.UpdatedAt = time.Now()

		result := tx.Model(&models.InventoryItemModel{}).
			Where("id = ? AND version = ?", item.ID, currentVersion).
			Updates(map[string]interface{}{
				"quantity":   item.Quantity.Amount(),
				"version":    item.Version,
				"updated_at": item.UpdatedAt,
			})

		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return shared.NewDomainError("CONCURRENT_MODIFICATION", "The inventory item has been modified by another user")
		}

		return r.saveMovements(tx, item)
	})
}

// saveMovements inserts ledger rows that are not yet persisted
func (r *GormInventoryItemRepository) saveMovements(tx *gorm.DB, item *inventory.InventoryItem) error {
	for i := range item.Movements {
		item.Movements[i].InventoryItemID = item.ID
		movementModel := models.StockMovementModelFromDomain(&item.Movements[i])

		var count int64
		if err := tx.Model(&models.StockMovementModel{}).
			Where("id = ?", movementModel.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		if err := tx.Create(movementModel).Error; err != nil {
			return err
		}
	}
	return nil
}

// FindMovementsByProduct finds the most recent movements for a product across
// all of its inventory items, newest first
func (r *GormInventoryItemRepository) FindMovementsByProduct(ctx context.Context, productID uuid.UUID, limit int) ([]inventory.StockMovement, error) {
	var movementModels []models.StockMovementModel

	query := r.db.WithContext(ctx).
		Model(&models.StockMovementModel{}).
		Joins("JOIN inventory_items ON inventory_items.id = stock_movements.inventory_item_id").
		Where("inventory_items.product_id = ?", productID).
		Order("stock_movements.created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&movementModels).Error; err != nil {
		return nil, err
	}
	movements := make([]inventory.StockMovement, len(movementModels))
	for i, model := range movementModels {
		movements[i] = *model.ToDomain()
	}
	return movements, nil
}

// Count counts inventory items matching the filter
func (r *GormInventoryItemRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.InventoryItemModel{})
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormInventoryItemRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	sortField := ValidateSortField(filter.OrderBy, InventoryItemSortFields, "created_at")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	return query.Order(sortField + " " + sortOrder)
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormInventoryItemRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "product_id":
			query = query.Where("product_id = ?", value)
		case "location_id":
			query = query.Where("location_id = ?", value)
		}
	}

	return query
}

// Ensure GormInventoryItemRepository implements InventoryItemRepository
var _ inventory.InventoryItemRepository = (*GormInventoryItemRepository)(nil)
