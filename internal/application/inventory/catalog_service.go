package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wms/backend/internal/domain/inventory"
	"github.com/wms/backend/internal/domain/shared"
)

// CatalogService handles product and location master data
type CatalogService struct {
	productRepo  inventory.ProductRepository
	locationRepo inventory.LocationRepository
	logger       *zap.Logger
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(productRepo inventory.ProductRepository, locationRepo inventory.LocationRepository) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		locationRepo: locationRepo,
		logger:       zap.NewNop(),
	}
}

// SetLogger sets the service logger
func (s *CatalogService) SetLogger(logger *zap.Logger) {
	s.logger = logger
}

// CreateProduct creates a new product
func (s *CatalogService) CreateProduct(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	sku := strings.ToUpper(strings.TrimSpace(req.SKU))
	taken, err := s.productRepo.ExistsBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, shared.NewDomainError("DUPLICATE_SKU",
			fmt.Sprintf("SKU %s is already in use", sku))
	}

	product, err := inventory.NewProduct(req.SKU, req.Name, req.Description,
		req.Weight, req.Length, req.Width, req.Height)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("sku", product.SKU))

	response := ToProductResponse(product)
	return &response, nil
}

// GetProduct retrieves a product by ID
func (s *CatalogService) GetProduct(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// ListProducts retrieves products with filtering
func (s *CatalogService) ListProducts(ctx context.Context, filter ListFilter) ([]ProductResponse, int64, error) {
	domainFilter := toDomainFilter(filter)

	products, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToProductResponses(products), total, nil
}

// CreateLocation creates a new storage location from a code or its parts
func (s *CatalogService) CreateLocation(ctx context.Context, req CreateLocationRequest) (*LocationResponse, error) {
	capacity := req.Capacity
	if capacity == 0 {
		capacity = inventory.DefaultLocationCapacity
	}

	var (
		location *inventory.Location
		err      error
	)
	if req.Code != "" {
		location, err = inventory.NewLocationFromCode(req.Code, req.Name, capacity)
	} else {
		location, err = inventory.NewLocation(req.Zone, req.Aisle, req.Rack, req.Bin, req.Name, capacity)
	}
	if err != nil {
		return nil, err
	}

	taken, err := s.locationRepo.ExistsByCode(ctx, location.Code)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, shared.NewDomainError("DUPLICATE_LOCATION",
			fmt.Sprintf("Location %s already exists", location.Code))
	}

	if err := s.locationRepo.Save(ctx, location); err != nil {
		return nil, err
	}

	s.logger.Info("Location created",
		zap.String("location_id", location.ID.String()),
		zap.String("code", location.Code))

	response := ToLocationResponse(location)
	return &response, nil
}

// GetLocation retrieves a location by ID
func (s *CatalogService) GetLocation(ctx context.Context, locationID uuid.UUID) (*LocationResponse, error) {
	location, err := s.locationRepo.FindByID(ctx, locationID)
	if err != nil {
		return nil, err
	}
	response := ToLocationResponse(location)
	return &response, nil
}

// ListLocations retrieves locations with filtering
func (s *CatalogService) ListLocations(ctx context.Context, filter ListFilter) ([]LocationResponse, int64, error) {
	domainFilter := toDomainFilter(filter)
	if filter.OrderBy == "" {
		domainFilter.OrderBy = "code"
		domainFilter.OrderDir = "asc"
	}

	locations, err := s.locationRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.locationRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToLocationResponses(locations), total, nil
}

func toDomainFilter(filter ListFilter) shared.Filter {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search
	return domainFilter
}
