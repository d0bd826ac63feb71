package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wms/backend/internal/domain/inbound"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/domain/shared/valueobject"
	"github.com/wms/backend/internal/infrastructure/cache"
	"github.com/wms/backend/internal/infrastructure/telemetry"
)

// Cache keys for receipt views
const (
	receiptCachePrefix  = "inbound:receipts:"
	receiptListCacheKey = receiptCachePrefix + "list:"
)

func receiptDetailKey(id uuid.UUID) string {
	return receiptCachePrefix + id.String()
}

func receiptListKey(purchaseOrderID *uuid.UUID) string {
	if purchaseOrderID == nil {
		return receiptListCacheKey + "all"
	}
	return receiptListCacheKey + purchaseOrderID.String()
}

// ReceiptService records deliveries against purchase orders
type ReceiptService struct {
	orderRepo   inbound.PurchaseOrderRepository
	receiptRepo inbound.ReceiptRepository
	txScope     TransactionScope
	viewCache   cache.ViewCache
	logger      *zap.Logger
}

// NewReceiptService creates a new ReceiptService
func NewReceiptService(orderRepo inbound.PurchaseOrderRepository, receiptRepo inbound.ReceiptRepository) *ReceiptService {
	return &ReceiptService{
		orderRepo:   orderRepo,
		receiptRepo: receiptRepo,
		txScope:     NewNoOpTransactionScope(orderRepo, receiptRepo),
		logger:      zap.NewNop(),
	}
}

// SetTransactionScope sets the scope used to persist the order and its
// receipt atomically
func (s *ReceiptService) SetTransactionScope(txScope TransactionScope) {
	s.txScope = txScope
}

// SetViewCache sets the cache used for read views
func (s *ReceiptService) SetViewCache(viewCache cache.ViewCache) {
	s.viewCache = viewCache
}

// SetLogger sets the service logger
func (s *ReceiptService) SetLogger(logger *zap.Logger) {
	s.logger = logger
}

// Apply records a delivery: the order's lines are advanced and an immutable
// receipt is stored. The whole receipt is validated against the order before
// anything is mutated.
func (s *ReceiptService) Apply(ctx context.Context, req ApplyReceiptRequest) (*ApplyReceiptResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "receipt", "apply")
	defer span.End()

	telemetry.SetAttributes(span,
		telemetry.SpanAttrOrderID, req.PurchaseOrderID.String(),
		telemetry.SpanAttrLineCount, len(req.Lines),
	)

	order, err := s.orderRepo.FindByID(ctx, req.PurchaseOrderID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	requests := make([]inbound.ReceiptRequest, len(req.Lines))
	for i, line := range req.Lines {
		quantity, err := valueobject.NewQuantity(line.Quantity)
		if err != nil {
			return nil, err
		}
		requests[i] = inbound.ReceiptRequest{
			LineID:   line.LineID,
			Quantity: quantity,
		}
	}

	if err := order.ApplyReceipt(requests); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	// Snapshot product and cost from the order lines
	receiptLines := make([]inbound.ReceiptLine, 0, len(requests))
	for _, request := range requests {
		orderLine := order.GetLine(request.LineID)
		if orderLine == nil {
			return nil, shared.NewDomainError("LINE_NOT_FOUND", "Order line disappeared while receiving")
		}
		receiptLine, err := inbound.NewReceiptLine(orderLine.ID, orderLine.ProductID, request.Quantity, orderLine.UnitCost)
		if err != nil {
			return nil, err
		}
		receiptLines = append(receiptLines, *receiptLine)
	}

	receivedAt := time.Now()
	if req.ReceivedAt != nil {
		receivedAt = *req.ReceivedAt
	}

	receipt, err := inbound.NewReceipt(order.ID, receivedAt, req.Notes, receiptLines)
	if err != nil {
		return nil, err
	}

	// The order's advanced line quantities and the receipt record must land
	// together or not at all
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.OrderRepo().SaveWithLock(ctx, order); err != nil {
			return err
		}
		return repos.ReceiptRepo().Save(ctx, receipt)
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	s.invalidateReceiptViews(ctx)

	telemetry.AddEvent(span, "receipt_applied",
		telemetry.SpanAttrReceiptID, receipt.ID.String(),
		telemetry.SpanAttrOrderStatus, string(order.Status),
	)

	s.logger.Info("Receipt applied",
		zap.String("receipt_id", receipt.ID.String()),
		zap.String("order_id", order.ID.String()),
		zap.String("order_status", string(order.Status)),
		zap.Int("lines", len(receipt.Lines)))

	return &ApplyReceiptResponse{
		Receipt: ToReceiptResponse(receipt),
		Order:   ToPurchaseOrderResponse(order),
	}, nil
}

// GetByID retrieves a receipt by ID
func (s *ReceiptService) GetByID(ctx context.Context, receiptID uuid.UUID) (*ReceiptResponse, error) {
	if s.viewCache != nil {
		var cached ReceiptResponse
		found, err := s.viewCache.Get(ctx, receiptDetailKey(receiptID), &cached)
		if err != nil {
			s.logger.Warn("Receipt view cache read failed", zap.Error(err))
		} else if found {
			return &cached, nil
		}
	}

	receipt, err := s.receiptRepo.FindByID(ctx, receiptID)
	if err != nil {
		return nil, err
	}

	response := ToReceiptResponse(receipt)
	if s.viewCache != nil {
		if err := s.viewCache.Set(ctx, receiptDetailKey(receiptID), response, cache.DetailTTL); err != nil {
			s.logger.Warn("Receipt view cache write failed", zap.Error(err))
		}
	}
	return &response, nil
}

// List retrieves receipts, optionally scoped to one purchase order
func (s *ReceiptService) List(ctx context.Context, filter ReceiptListFilter) ([]ReceiptResponse, int64, error) {
	cacheable := filter.Page <= 1 && filter.PageSize == 0
	listKey := receiptListKey(filter.PurchaseOrderID)

	type cachedList struct {
		Items []ReceiptResponse `json:"items"`
		Total int64             `json:"total"`
	}

	if s.viewCache != nil && cacheable {
		var cached cachedList
		found, err := s.viewCache.Get(ctx, listKey, &cached)
		if err != nil {
			s.logger.Warn("Receipt list cache read failed", zap.Error(err))
		} else if found {
			return cached.Items, cached.Total, nil
		}
	}

	domainFilter := buildFilter(filter.Page, filter.PageSize, filter.OrderBy, filter.OrderDir, "")

	var (
		receipts []inbound.Receipt
		err      error
	)
	if filter.PurchaseOrderID != nil {
		domainFilter.Filters["purchase_order_id"] = *filter.PurchaseOrderID
		receipts, err = s.receiptRepo.FindByPurchaseOrder(ctx, *filter.PurchaseOrderID, domainFilter)
	} else {
		receipts, err = s.receiptRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, 0, err
	}

	total, err := s.receiptRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	items := ToReceiptResponses(receipts)
	if s.viewCache != nil && cacheable {
		if err := s.viewCache.Set(ctx, listKey, cachedList{Items: items, Total: total}, cache.ListTTL); err != nil {
			s.logger.Warn("Receipt list cache write failed", zap.Error(err))
		}
	}
	return items, total, nil
}

// Applying a receipt changes both the receipt views and the order views
func (s *ReceiptService) invalidateReceiptViews(ctx context.Context) {
	if s.viewCache == nil {
		return
	}
	if err := s.viewCache.DeleteByPrefix(ctx, receiptCachePrefix); err != nil {
		s.logger.Warn("Receipt view cache invalidation failed", zap.Error(err))
	}
	if err := s.viewCache.DeleteByPrefix(ctx, orderCachePrefix); err != nil {
		s.logger.Warn("Order view cache invalidation failed", zap.Error(err))
	}
}
