package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	inventoryapp "github.com/wms/backend/internal/application/inventory"
)

// CatalogHandler handles product and storage location endpoints
type CatalogHandler struct {
	BaseHandler
	service *inventoryapp.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service *inventoryapp.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// CreateProduct handles POST /products
// @Summary Create a product
// @Tags catalog
// @Router /api/v1/inventory/products [post]
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req inventoryapp.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	product, err := h.service.CreateProduct(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, product)
}

// GetProduct handles GET /products/:id
// @Summary Get a product by ID
// @Tags catalog
// @Router /api/v1/inventory/products/{id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid product ID")
		return
	}

	product, err := h.service.GetProduct(c.Request.Context(), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// ListProducts handles GET /products
// @Summary List products with optional SKU or name search
// @Tags catalog
// @Router /api/v1/inventory/products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var filter inventoryapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.ValidationError(c, err)
		return
	}

	products, total, err := h.service.ListProducts(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page, pageSize := normalizePage(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, products, total, page, pageSize)
}

// CreateLocation handles POST /locations
// @Summary Create a storage location
// @Tags catalog
// @Router /api/v1/inventory/locations [post]
func (h *CatalogHandler) CreateLocation(c *gin.Context) {
	var req inventoryapp.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	location, err := h.service.CreateLocation(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, location)
}

// GetLocation handles GET /locations/:id
// @Summary Get a storage location by ID
// @Tags catalog
// @Router /api/v1/inventory/locations/{id} [get]
func (h *CatalogHandler) GetLocation(c *gin.Context) {
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid location ID")
		return
	}

	location, err := h.service.GetLocation(c.Request.Context(), locationID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, location)
}

// ListLocations handles GET /locations
// @Summary List storage locations
// @Tags catalog
// @Router /api/v1/inventory/locations [get]
func (h *CatalogHandler) ListLocations(c *gin.Context) {
	var filter inventoryapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.ValidationError(c, err)
		return
	}

	locations, total, err := h.service.ListLocations(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page, pageSize := normalizePage(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, locations, total, page, pageSize)
}
