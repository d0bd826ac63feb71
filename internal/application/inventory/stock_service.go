package inventory

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/wms/backend/internal/domain/inventory"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/domain/shared/valueobject"
	"github.com/wms/backend/internal/infrastructure/telemetry"
)

// DefaultMovementHistoryLimit caps movement history queries without an
// explicit limit
const DefaultMovementHistoryLimit = 50

// StockService handles inventory item and movement operations
type StockService struct {
	itemRepo     inventory.InventoryItemRepository
	productRepo  inventory.ProductRepository
	locationRepo inventory.LocationRepository
	logger       *zap.Logger
}

// NewStockService creates a new StockService
func NewStockService(itemRepo inventory.InventoryItemRepository, productRepo inventory.ProductRepository, locationRepo inventory.LocationRepository) *StockService {
	return &StockService{
		itemRepo:     itemRepo,
		productRepo:  productRepo,
		locationRepo: locationRepo,
		logger:       zap.NewNop(),
	}
}

// SetLogger sets the service logger
func (s *StockService) SetLogger(logger *zap.Logger) {
	s.logger = logger
}

// CreateItem starts tracking stock for a product at a location
func (s *StockService) CreateItem(ctx context.Context, req CreateInventoryItemRequest) (*InventoryItemResponse, error) {
	if err := s.verifyProductAndLocation(ctx, req.ProductID, req.LocationID); err != nil {
		return nil, err
	}

	existing, err := s.itemRepo.FindByProductAndLocation(ctx, req.ProductID, req.LocationID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("DUPLICATE_ITEM",
			"Inventory is already tracked for this product and location")
	}

	initialQuantity, err := valueobject.NewQuantity(req.InitialQuantity)
	if err != nil {
		return nil, err
	}

	item, err := inventory.NewInventoryItem(req.ProductID, req.LocationID, initialQuantity, req.Reason)
	if err != nil {
		return nil, err
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("Inventory item created",
		zap.String("item_id", item.ID.String()),
		zap.String("product_id", item.ProductID.String()),
		zap.String("location_id", item.LocationID.String()),
		zap.String("quantity", item.Quantity.String()))

	response := ToInventoryItemResponse(item)
	return &response, nil
}

// AdjustStock applies a signed adjustment to the stock of a product at a
// location. A positive adjustment for an untracked pair creates the item;
// a negative one fails.
func (s *StockService) AdjustStock(ctx context.Context, req AdjustStockRequest) (*AdjustStockResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "stock", "adjust")
	defer span.End()

	telemetry.SetAttributes(span,
		telemetry.SpanAttrProductID, req.ProductID.String(),
		telemetry.SpanAttrLocationID, req.LocationID.String(),
		telemetry.SpanAttrQuantity, req.Adjustment,
	)

	item, err := s.itemRepo.FindByProductAndLocation(ctx, req.ProductID, req.LocationID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			telemetry.RecordError(span, err)
			return nil, err
		}
		return s.adjustMissingItem(ctx, req)
	}

	movement, err := item.AdjustStock(req.Adjustment, req.Reason)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if err := s.itemRepo.SaveWithLock(ctx, item); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	telemetry.AddEvent(span, "stock_adjusted",
		telemetry.SpanAttrMovementType, string(movement.Type),
		"balance_after", item.Quantity.String(),
	)

	s.logger.Info("Stock adjusted",
		zap.String("item_id", item.ID.String()),
		zap.Int64("adjustment", req.Adjustment),
		zap.String("balance", item.Quantity.String()))

	return &AdjustStockResponse{
		Item:     ToInventoryItemResponse(item),
		Movement: ToStockMovementResponse(movement),
	}, nil
}

// Positive adjustments may create the item on the fly; negative ones have
// nothing to take stock from
func (s *StockService) adjustMissingItem(ctx context.Context, req AdjustStockRequest) (*AdjustStockResponse, error) {
	if req.Adjustment <= 0 {
		return nil, shared.NewDomainError("ITEM_NOT_FOUND",
			"Cannot reduce stock for non-existent inventory item")
	}

	if err := s.verifyProductAndLocation(ctx, req.ProductID, req.LocationID); err != nil {
		return nil, err
	}

	item, err := inventory.NewInventoryItem(req.ProductID, req.LocationID, valueobject.ZeroQuantity(), "")
	if err != nil {
		return nil, err
	}
	movement, err := item.AdjustStock(req.Adjustment, req.Reason)
	if err != nil {
		return nil, err
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("Inventory item created by adjustment",
		zap.String("item_id", item.ID.String()),
		zap.Int64("adjustment", req.Adjustment))

	return &AdjustStockResponse{
		Item:     ToInventoryItemResponse(item),
		Movement: ToStockMovementResponse(movement),
	}, nil
}

// GetStockLevel returns per-location quantities and the total for a product
func (s *StockService) GetStockLevel(ctx context.Context, productID uuid.UUID) (*StockLevelResponse, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	items, err := s.itemRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	locations := make([]LocationStockResponse, 0, len(items))
	total := decimal.Zero
	for i := range items {
		item := &items[i]
		code := ""
		location, err := s.locationRepo.FindByID(ctx, item.LocationID)
		if err == nil {
			code = location.Code
		} else if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		locations = append(locations, LocationStockResponse{
			LocationID:   item.LocationID,
			LocationCode: code,
			Quantity:     item.Quantity.Amount(),
		})
		total = total.Add(item.Quantity.Amount())
	}

	sort.Slice(locations, func(i, j int) bool {
		return locations[i].LocationCode < locations[j].LocationCode
	})

	return &StockLevelResponse{
		ProductID: productID,
		Locations: locations,
		Total:     total,
	}, nil
}

// GetMovementHistory returns a product's most recent movements, newest first
func (s *StockService) GetMovementHistory(ctx context.Context, productID uuid.UUID, limit int) ([]StockMovementResponse, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultMovementHistoryLimit
	}

	movements, err := s.itemRepo.FindMovementsByProduct(ctx, productID, limit)
	if err != nil {
		return nil, err
	}

	return ToStockMovementResponses(movements), nil
}

func (s *StockService) verifyProductAndLocation(ctx context.Context, productID, locationID uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("UNKNOWN_PRODUCT",
				fmt.Sprintf("Product %s does not exist", productID))
		}
		return err
	}
	if _, err := s.locationRepo.FindByID(ctx, locationID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("UNKNOWN_LOCATION",
				fmt.Sprintf("Location %s does not exist", locationID))
		}
		return err
	}
	return nil
}
