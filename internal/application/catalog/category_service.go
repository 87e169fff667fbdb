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

// CategoryService handles the partitioned category catalog: global
// categories belong to platform administrators, vendor categories to
// the owning seller. Neither side can write into the other partition.
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
	vendorRepo   vendor.VendorRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo catalog.CategoryRepository, vendorRepo vendor.VendorRepository) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		vendorRepo:   vendorRepo,
	}
}

// List returns the categories visible to the actor: everything for a
// super admin, global plus own-vendor for a seller, global otherwise.
func (s *CategoryService) List(ctx context.Context, actor *identity.User, filter shared.Filter) ([]CategoryResponse, error) {
	var (
		categories []catalog.Category
		err        error
	)

	switch {
	case actor != nil && actor.Role == identity.RoleSuperAdmin:
		categories, err = s.categoryRepo.FindAll(ctx, filter)
	case actor != nil && actor.Role == identity.RoleSeller:
		var own *vendor.Vendor
		own, err = s.vendorRepo.FindByOwner(ctx, actor.ID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				categories, err = s.categoryRepo.FindGlobal(ctx)
				break
			}
			return nil, err
		}
		categories, err = s.categoryRepo.FindVisibleToVendor(ctx, own.ID)
	default:
		categories, err = s.categoryRepo.FindGlobal(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, *ToCategoryResponse(&categories[i]))
	}
	return responses, nil
}

// GetByID retrieves a category by ID
func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*CategoryResponse, error) {
	c, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToCategoryResponse(c), nil
}

// Create adds a category to the actor's partition. A super admin may
// only create global categories; a seller only vendor categories of
// their own storefront.
func (s *CategoryService) Create(ctx context.Context, actor *identity.User, req CreateCategoryRequest) (*CategoryResponse, error) {
	var (
		c   *catalog.Category
		err error
	)

	switch actor.Role {
	case identity.RoleSuperAdmin:
		if !req.IsGlobal {
			return nil, shared.NewDomainError("FORBIDDEN", "Super admin manages global categories only")
		}
		c, err = catalog.NewGlobalCategory(req.Name, req.Description, req.ParentID)
	case identity.RoleSeller:
		if req.IsGlobal {
			return nil, shared.ErrForbidden
		}
		own, verr := s.vendorRepo.FindByOwner(ctx, actor.ID)
		if verr != nil {
			if errors.Is(verr, shared.ErrNotFound) {
				return nil, errVendorNotFound
			}
			return nil, verr
		}
		c, err = catalog.NewVendorCategory(req.Name, req.Description, own.ID, req.ParentID)
	default:
		return nil, shared.ErrForbidden
	}
	if err != nil {
		return nil, err
	}
	c.SetCreatedBy(actor.ID)

	if err := s.categoryRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	return ToCategoryResponse(c), nil
}

// Update changes a category in the actor's partition
func (s *CategoryService) Update(ctx context.Context, actor *identity.User, id uuid.UUID, req UpdateCategoryRequest) (*CategoryResponse, error) {
	c, err := s.authorizeCategory(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if err := c.Update(req.Name, req.Description); err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	return ToCategoryResponse(c), nil
}

// Delete removes a category in the actor's partition. Categories with
// children cannot be removed.
func (s *CategoryService) Delete(ctx context.Context, actor *identity.User, id uuid.UUID) error {
	c, err := s.authorizeCategory(ctx, actor, id)
	if err != nil {
		return err
	}

	hasChildren, err := s.categoryRepo.HasChildren(ctx, c.ID)
	if err != nil {
		return err
	}
	if hasChildren {
		return shared.NewDomainError("INVALID_STATE", "Category has subcategories")
	}

	return s.categoryRepo.Delete(ctx, c.ID)
}

// authorizeCategory loads a category and verifies partition ownership.
// Cross-partition access surfaces as not-found.
func (s *CategoryService) authorizeCategory(ctx context.Context, actor *identity.User, id uuid.UUID) (*catalog.Category, error) {
	c, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch actor.Role {
	case identity.RoleSuperAdmin:
		if !c.IsGlobal {
			return nil, shared.ErrNotFound
		}
		return c, nil
	case identity.RoleSeller:
		if c.IsGlobal {
			return nil, shared.ErrForbidden
		}
		own, err := s.vendorRepo.FindByOwner(ctx, actor.ID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, errVendorNotFound
			}
			return nil, err
		}
		if !c.BelongsToVendor(own.ID) {
			return nil, shared.ErrNotFound
		}
		return c, nil
	default:
		return nil, shared.ErrForbidden
	}
}
