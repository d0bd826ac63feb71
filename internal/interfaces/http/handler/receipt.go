package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	inboundapp "github.com/wms/backend/internal/application/inbound"
)

// ReceiptHandler handles goods receipt endpoints
type ReceiptHandler struct {
	BaseHandler
	service *inboundapp.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(service *inboundapp.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{service: service}
}

// Apply handles POST /receipts
// @Summary Record a delivery against a submitted purchase order
// @Tags receipts
// @Router /api/v1/inbound/receipts [post]
func (h *ReceiptHandler) Apply(c *gin.Context) {
	var req inboundapp.ApplyReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	result, err := h.service.Apply(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// GetByID handles GET /receipts/:id
// @Summary Get a receipt by ID
// @Tags receipts
// @Router /api/v1/inbound/receipts/{id} [get]
func (h *ReceiptHandler) GetByID(c *gin.Context) {
	receiptID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid receipt ID")
		return
	}

	receipt, err := h.service.GetByID(c.Request.Context(), receiptID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, receipt)
}

// List handles GET /receipts
// @Summary List receipts, optionally filtered by purchase order
// @Tags receipts
// @Router /api/v1/inbound/receipts [get]
func (h *ReceiptHandler) List(c *gin.Context) {
	var filter inboundapp.ReceiptListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.ValidationError(c, err)
		return
	}

	receipts, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page, pageSize := normalizePage(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, receipts, total, page, pageSize)
}
