package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	inboundapp "github.com/wms/backend/internal/application/inbound"
)

// PurchaseOrderHandler handles purchase order endpoints
type PurchaseOrderHandler struct {
	BaseHandler
	service *inboundapp.PurchaseOrderService
}

// NewPurchaseOrderHandler creates a new purchase order handler
func NewPurchaseOrderHandler(service *inboundapp.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{service: service}
}

// Create handles POST /purchase-orders
// @Summary Create a draft purchase order
// @Tags purchase-orders
// @Router /api/v1/inbound/purchase-orders [post]
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	var req inboundapp.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	order, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, order)
}

// GetByID handles GET /purchase-orders/:id
// @Summary Get a purchase order by ID
// @Tags purchase-orders
// @Router /api/v1/inbound/purchase-orders/{id} [get]
func (h *PurchaseOrderHandler) GetByID(c *gin.Context) {
	orderID, ok := h.parseID(c)
	if !ok {
		return
	}

	order, err := h.service.GetByID(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// GetByOrderNumber handles GET /purchase-orders/by-number/:number
// @Summary Get a purchase order by its order number
// @Tags purchase-orders
// @Router /api/v1/inbound/purchase-orders/by-number/{number} [get]
func (h *PurchaseOrderHandler) GetByOrderNumber(c *gin.Context) {
	number := c.Param("number")
	if number == "" {
		h.BadRequest(c, "order number is required")
		return
	}

	order, err := h.service.GetByOrderNumber(c.Request.Context(), number)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// List handles GET /purchase-orders
// @Summary List purchase orders
// @Tags purchase-orders
// @Router /api/v1/inbound/purchase-orders [get]
func (h *PurchaseOrderHandler) List(c *gin.Context) {
	var filter inboundapp.PurchaseOrderListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.ValidationError(c, err)
		return
	}

	orders, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page, pageSize := normalizePage(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, orders, total, page, pageSize)
}

// AddLine handles POST /purchase-orders/:id/lines
// @Summary Add a line to a draft purchase order
// @Tags purchase-orders
// @Router /api/v1/inbound/purchase-orders/{id}/lines [post]
func (h *PurchaseOrderHandler) AddLine(c *gin.Context) {
	orderID, ok := h.parseID(c)
	if !ok {
		return
	}

	var req inboundapp.AddPurchaseOrderLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	order, err := h.service.AddLine(c.Request.Context(), orderID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// Submit handles POST /purchase-orders/:id/submit
// @Summary Submit a draft purchase order for receiving
// @Tags purchase-orders
// @Router /api/v1/inbound/purchase-orders/{id}/submit [post]
func (h *PurchaseOrderHandler) Submit(c *gin.Context) {
	orderID, ok := h.parseID(c)
	if !ok {
		return
	}

	order, err := h.service.Submit(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// Cancel handles POST /purchase-orders/:id/cancel
// @Summary Cancel a purchase order
// @Tags purchase-orders
// @Router /api/v1/inbound/purchase-orders/{id}/cancel [post]
func (h *PurchaseOrderHandler) Cancel(c *gin.Context) {
	orderID, ok := h.parseID(c)
	if !ok {
		return
	}

	var req inboundapp.CancelPurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	order, err := h.service.Cancel(c.Request.Context(), orderID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

func (h *PurchaseOrderHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid order ID")
		return uuid.Nil, false
	}
	return id, true
}
