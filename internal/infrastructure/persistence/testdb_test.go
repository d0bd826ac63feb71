package persistence

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wms/backend/internal/infrastructure/persistence/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database with all tables migrated
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.PurchaseOrderModel{},
		&models.PurchaseOrderLineModel{},
		&models.ReceiptModel{},
		&models.ReceiptLineModel{},
		&models.InventoryItemModel{},
		&models.StockMovementModel{},
		&models.ProductModel{},
		&models.LocationModel{},
	)
	require.NoError(t, err)

	return db
}
