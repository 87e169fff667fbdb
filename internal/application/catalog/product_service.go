package catalog

import (
	"context"
	"errors"

	"github.com/univendor/backend/internal/domain/catalog"
	"github.com/univendor/backend/internal/domain/identity"
	"github.com/univendor/backend/internal/domain/shared"
	"github.com/univendor/backend/internal/domain/vendor"
	"github.com/google/uuid"
)

// errVendorNotFound is the pinned signal for a seller without a storefront
var errVendorNotFound = shared.NewDomainError("NOT_FOUND", "Vendor not found")

// ProductService handles the product catalog. Reads are public;
// mutations are scoped to the seller's own vendor, resolved by
// ownership lookup rather than a client-supplied vendor ID.
type ProductService struct {
	productRepo catalog.ProductRepository
	vendorRepo  vendor.VendorRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, vendorRepo vendor.VendorRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		vendorRepo:  vendorRepo,
	}
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	p, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(p), nil
}

// List retrieves products matching the filter
func (s *ProductService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[ProductResponse], error) {
	products, err := s.productRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.productRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, *ToProductResponse(&products[i]))
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = len(responses)
		if pageSize == 0 {
			pageSize = 1
		}
	}
	result := shared.NewPaginated(responses, total, page, pageSize)
	return &result, nil
}

// Create lists a new product under the actor's vendor. A super admin
// must name the vendor explicitly; a seller always writes into their
// own storefront.
func (s *ProductService) Create(ctx context.Context, actor *identity.User, req CreateProductRequest) (*ProductResponse, error) {
	vendorID, err := s.resolveWriteVendor(ctx, actor, req.VendorID)
	if err != nil {
		return nil, err
	}

	mrp := req.SellingPrice
	if req.MRP != nil {
		mrp = *req.MRP
	}

	p, err := catalog.NewProduct(vendorID, req.Name, req.SellingPrice, mrp)
	if err != nil {
		return nil, err
	}
	p.Description = req.Description
	p.ImageURL = req.ImageURL
	p.SetCategory(req.CategoryID)
	if req.StockQuantity > 0 {
		if err := p.SetStock(req.StockQuantity); err != nil {
			return nil, err
		}
	}
	p.SetCreatedBy(actor.ID)

	if err := s.productRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	return ToProductResponse(p), nil
}

// Update changes a product owned by the actor's vendor
func (s *ProductService) Update(ctx context.Context, actor *identity.User, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	p, err := s.authorizeProduct(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	mrp := req.SellingPrice
	if req.MRP != nil {
		mrp = *req.MRP
	}
	if err := p.Update(req.Name, req.Description, req.SellingPrice, mrp); err != nil {
		return nil, err
	}

	p.SetCategory(req.CategoryID)
	p.ImageURL = req.ImageURL
	if req.StockQuantity != nil {
		if err := p.SetStock(*req.StockQuantity); err != nil {
			return nil, err
		}
	}
	if req.IsActive != nil {
		if *req.IsActive {
			p.Activate()
		} else {
			p.Deactivate()
		}
	}

	if err := s.productRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	return ToProductResponse(p), nil
}

// Delete removes a product owned by the actor's vendor
func (s *ProductService) Delete(ctx context.Context, actor *identity.User, id uuid.UUID) error {
	if _, err := s.authorizeProduct(ctx, actor, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

// resolveWriteVendor determines which vendor a mutation targets
func (s *ProductService) resolveWriteVendor(ctx context.Context, actor *identity.User, requested *uuid.UUID) (uuid.UUID, error) {
	if actor.Role == identity.RoleSuperAdmin {
		if requested == nil {
			return uuid.Nil, shared.NewDomainError("INVALID_INPUT", "Vendor ID is required")
		}
		if _, err := s.vendorRepo.FindByID(ctx, *requested); err != nil {
			return uuid.Nil, err
		}
		return *requested, nil
	}

	if actor.Role != identity.RoleSeller {
		return uuid.Nil, shared.ErrForbidden
	}

	own, err := s.vendorRepo.FindByOwner(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return uuid.Nil, errVendorNotFound
		}
		return uuid.Nil, err
	}
	return own.ID, nil
}

// authorizeProduct loads a product and verifies the actor may modify it.
// Ownership failures surface as not-found.
func (s *ProductService) authorizeProduct(ctx context.Context, actor *identity.User, id uuid.UUID) (*catalog.Product, error) {
	p, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if actor.Role == identity.RoleSuperAdmin {
		return p, nil
	}
	if actor.Role != identity.RoleSeller {
		return nil, shared.ErrForbidden
	}

	own, err := s.vendorRepo.FindByOwner(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, errVendorNotFound
		}
		return nil, err
	}
	if !p.BelongsToVendor(own.ID) {
		return nil, shared.ErrNotFound
	}

	return p, nil
}
