package inbound

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wms/backend/internal/domain/inbound"
	"github.com/wms/backend/internal/domain/inventory"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/domain/shared/valueobject"
	"github.com/wms/backend/internal/infrastructure/cache"
)

// Cache keys for purchase order views
const (
	orderCachePrefix  = "inbound:purchase-orders:"
	orderListCacheKey = orderCachePrefix + "list:"
)

func orderDetailKey(id uuid.UUID) string {
	return orderCachePrefix + id.String()
}

func orderListKey(status *inbound.PurchaseOrderStatus) string {
	if status == nil {
		return orderListCacheKey + "all"
	}
	return orderListCacheKey + string(*status)
}

// PurchaseOrderService handles purchase order business operations
type PurchaseOrderService struct {
	orderRepo   inbound.PurchaseOrderRepository
	productRepo inventory.ProductRepository
	viewCache   cache.ViewCache
	logger      *zap.Logger
}

// NewPurchaseOrderService creates a new PurchaseOrderService
func NewPurchaseOrderService(orderRepo inbound.PurchaseOrderRepository, productRepo inventory.ProductRepository) *PurchaseOrderService {
	return &PurchaseOrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      zap.NewNop(),
	}
}

// SetViewCache sets the cache used for read views
func (s *PurchaseOrderService) SetViewCache(viewCache cache.ViewCache) {
	s.viewCache = viewCache
}

// SetLogger sets the service logger
func (s *PurchaseOrderService) SetLogger(logger *zap.Logger) {
	s.logger = logger
}

// Create creates a new purchase order with its lines
func (s *PurchaseOrderService) Create(ctx context.Context, req CreatePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	orderNumber := inbound.NormalizeOrderNumber(req.OrderNumber)

	taken, err := s.orderRepo.ExistsByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, shared.NewDomainError("DUPLICATE_ORDER_NUMBER",
			fmt.Sprintf("Order number %s is already in use", orderNumber))
	}

	if len(req.Lines) == 0 {
		return nil, shared.NewDomainError("NO_LINES", "A purchase order needs at least one line")
	}

	order, err := inbound.NewPurchaseOrder(req.OrderNumber, req.SupplierName, req.ExpectedDeliveryDate, req.Notes)
	if err != nil {
		return nil, err
	}

	for _, line := range req.Lines {
		if err := s.verifyProductExists(ctx, line.ProductID); err != nil {
			return nil, err
		}
		quantity, err := valueobject.NewQuantity(line.Quantity)
		if err != nil {
			return nil, err
		}
		unitCost, err := valueobject.NewMoney(line.UnitCost, valueobject.Currency(line.Currency))
		if err != nil {
			return nil, err
		}
		if _, err := order.AddLine(line.ProductID, line.ProductName, line.SKU, quantity, unitCost); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	s.invalidateOrderViews(ctx)

	s.logger.Info("Purchase order created",
		zap.String("order_id", order.ID.String()),
		zap.String("order_number", order.OrderNumber),
		zap.Int("lines", order.LineCount()))

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// AddLine adds a line to an existing purchase order
func (s *PurchaseOrderService) AddLine(ctx context.Context, orderID uuid.UUID, req AddPurchaseOrderLineRequest) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := s.verifyProductExists(ctx, req.ProductID); err != nil {
		return nil, err
	}
	quantity, err := valueobject.NewQuantity(req.Quantity)
	if err != nil {
		return nil, err
	}
	unitCost, err := valueobject.NewMoney(req.UnitCost, valueobject.Currency(req.Currency))
	if err != nil {
		return nil, err
	}

	if _, err := order.AddLine(req.ProductID, req.ProductName, req.SKU, quantity, unitCost); err != nil {
		return nil, err
	}

	if err := s.orderRepo.SaveWithLock(ctx, order); err != nil {
		return nil, err
	}

	s.invalidateOrderViews(ctx)

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// Submit moves a draft order to SUBMITTED
func (s *PurchaseOrderService) Submit(ctx context.Context, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.Submit(); err != nil {
		return nil, err
	}

	if err := s.orderRepo.SaveWithLock(ctx, order); err != nil {
		return nil, err
	}

	s.invalidateOrderViews(ctx)

	s.logger.Info("Purchase order submitted",
		zap.String("order_id", order.ID.String()),
		zap.String("order_number", order.OrderNumber))

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// Cancel cancels a purchase order with a reason
func (s *PurchaseOrderService) Cancel(ctx context.Context, orderID uuid.UUID, req CancelPurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.Cancel(req.Reason); err != nil {
		return nil, err
	}

	if err := s.orderRepo.SaveWithLock(ctx, order); err != nil {
		return nil, err
	}

	s.invalidateOrderViews(ctx)

	s.logger.Info("Purchase order cancelled",
		zap.String("order_id", order.ID.String()),
		zap.String("order_number", order.OrderNumber),
		zap.String("reason", order.CancelReason))

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// GetByID retrieves a purchase order by ID
func (s *PurchaseOrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	if s.viewCache != nil {
		var cached PurchaseOrderResponse
		found, err := s.viewCache.Get(ctx, orderDetailKey(orderID), &cached)
		if err != nil {
			s.logger.Warn("Order view cache read failed", zap.Error(err))
		} else if found {
			return &cached, nil
		}
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	if s.viewCache != nil {
		if err := s.viewCache.Set(ctx, orderDetailKey(orderID), response, cache.DetailTTL); err != nil {
			s.logger.Warn("Order view cache write failed", zap.Error(err))
		}
	}
	return &response, nil
}

// GetByOrderNumber retrieves a purchase order by its order number
func (s *PurchaseOrderService) GetByOrderNumber(ctx context.Context, orderNumber string) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByOrderNumber(ctx, inbound.NormalizeOrderNumber(orderNumber))
	if err != nil {
		return nil, err
	}
	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// List retrieves purchase orders with optional status filtering
func (s *PurchaseOrderService) List(ctx context.Context, filter PurchaseOrderListFilter) ([]PurchaseOrderListItemResponse, int64, error) {
	cacheable := filter.Search == "" && filter.Page <= 1 && filter.PageSize == 0
	listKey := orderListKey(filter.Status)

	type cachedList struct {
		Items []PurchaseOrderListItemResponse `json:"items"`
		Total int64                           `json:"total"`
	}

	if s.viewCache != nil && cacheable {
		var cached cachedList
		found, err := s.viewCache.Get(ctx, listKey, &cached)
		if err != nil {
			s.logger.Warn("Order list cache read failed", zap.Error(err))
		} else if found {
			return cached.Items, cached.Total, nil
		}
	}

	domainFilter := buildFilter(filter.Page, filter.PageSize, filter.OrderBy, filter.OrderDir, filter.Search)

	var (
		orders []inbound.PurchaseOrder
		err    error
	)
	if filter.Status != nil {
		if !filter.Status.IsValid() {
			return nil, 0, shared.NewDomainError("INVALID_STATUS",
				fmt.Sprintf("Unknown purchase order status: %s", *filter.Status))
		}
		domainFilter.Filters["status"] = string(*filter.Status)
		orders, err = s.orderRepo.FindByStatus(ctx, *filter.Status, domainFilter)
	} else {
		orders, err = s.orderRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, 0, err
	}

	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	items := ToPurchaseOrderListItemResponses(orders)
	if s.viewCache != nil && cacheable {
		if err := s.viewCache.Set(ctx, listKey, cachedList{Items: items, Total: total}, cache.ListTTL); err != nil {
			s.logger.Warn("Order list cache write failed", zap.Error(err))
		}
	}
	return items, total, nil
}

func (s *PurchaseOrderService) verifyProductExists(ctx context.Context, productID uuid.UUID) error {
	if s.productRepo == nil {
		return nil
	}
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("UNKNOWN_PRODUCT",
				fmt.Sprintf("Product %s does not exist", productID))
		}
		return err
	}
	return nil
}

// Writes over-invalidate: every order mutation drops all order views
func (s *PurchaseOrderService) invalidateOrderViews(ctx context.Context) {
	if s.viewCache == nil {
		return
	}
	if err := s.viewCache.DeleteByPrefix(ctx, orderCachePrefix); err != nil {
		s.logger.Warn("Order view cache invalidation failed", zap.Error(err))
	}
}

func buildFilter(page, pageSize int, orderBy, orderDir, search string) shared.Filter {
	filter := shared.DefaultFilter()
	if page > 0 {
		filter.Page = page
	}
	if pageSize > 0 {
		filter.PageSize = pageSize
	}
	if orderBy != "" {
		filter.OrderBy = orderBy
	}
	if orderDir != "" {
		filter.OrderDir = orderDir
	}
	filter.Search = search
	return filter
}
