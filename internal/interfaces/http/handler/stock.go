package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	inventoryapp "github.com/wms/backend/internal/application/inventory"
)

// StockHandler handles inventory stock endpoints
type StockHandler struct {
	BaseHandler
	service *inventoryapp.StockService
}

// NewStockHandler creates a new stock handler
func NewStockHandler(service *inventoryapp.StockService) *StockHandler {
	return &StockHandler{service: service}
}

// CreateItem handles POST /stock
// @Summary Start tracking stock for a product at a location
// @Tags stock
// @Router /api/v1/inventory/stock [post]
func (h *StockHandler) CreateItem(c *gin.Context) {
	var req inventoryapp.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	item, err := h.service.CreateItem(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, item)
}

// AdjustStock handles POST /stock/adjust
// @Summary Apply a signed stock adjustment
// @Tags stock
// @Router /api/v1/inventory/stock/adjust [post]
func (h *StockHandler) AdjustStock(c *gin.Context) {
	var req inventoryapp.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	result, err := h.service.AdjustStock(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// GetStockLevel handles GET /stock/:productId
// @Summary Get total stock of a product across locations
// @Tags stock
// @Router /api/v1/inventory/stock/{productId} [get]
func (h *StockHandler) GetStockLevel(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		h.BadRequest(c, "invalid product ID")
		return
	}

	level, err := h.service.GetStockLevel(c.Request.Context(), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, level)
}

// GetMovementHistory handles GET /stock/:productId/movements
// @Summary List recent stock movements for a product
// @Tags stock
// @Router /api/v1/inventory/stock/{productId}/movements [get]
func (h *StockHandler) GetMovementHistory(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		h.BadRequest(c, "invalid product ID")
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.BadRequest(c, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	movements, err := h.service.GetMovementHistory(c.Request.Context(), productID, limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, movements)
}
