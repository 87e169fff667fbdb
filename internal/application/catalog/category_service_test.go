package catalog

import (
	"context"
	"testing"

	"github.com/univendor/backend/internal/domain/catalog"
	"github.com/univendor/backend/internal/domain/identity"
	"github.com/univendor/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("super admin creates a global category", func(t *testing.T) {
		admin, err := identity.NewUser("root@example.com", identity.RoleSuperAdmin)
		require.NoError(t, err)

		categoryRepo := new(MockCategoryRepository)
		service := NewCategoryService(categoryRepo, new(MockVendorRepository))

		categoryRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Category")).Return(nil)

		resp, err := service.Create(ctx, admin, CreateCategoryRequest{Name: "Shoes", IsGlobal: true})

		require.NoError(t, err)
		assert.True(t, resp.IsGlobal)
		assert.Nil(t, resp.VendorID)
	})

	t.Run("super admin cannot create a vendor category", func(t *testing.T) {
		admin, err := identity.NewUser("root@example.com", identity.RoleSuperAdmin)
		require.NoError(t, err)

		categoryRepo := new(MockCategoryRepository)
		service := NewCategoryService(categoryRepo, new(MockVendorRepository))

		_, err = service.Create(ctx, admin, CreateCategoryRequest{Name: "Shoes", IsGlobal: false})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "FORBIDDEN", domainErr.Code)
		categoryRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("seller creates a category for their vendor", func(t *testing.T) {
		seller, v := newSeller(t)

		categoryRepo := new(MockCategoryRepository)
		vendorRepo := new(MockVendorRepository)
		service := NewCategoryService(categoryRepo, vendorRepo)

		vendorRepo.On("FindByOwner", ctx, seller.ID).Return(v, nil)
		categoryRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Category")).Return(nil)

		resp, err := service.Create(ctx, seller, CreateCategoryRequest{Name: "Sale"})

		require.NoError(t, err)
		assert.False(t, resp.IsGlobal)
		require.NotNil(t, resp.VendorID)
		assert.Equal(t, v.ID, *resp.VendorID)
	})

	t.Run("seller without a vendor gets vendor not found", func(t *testing.T) {
		seller, _ := newSeller(t)

		categoryRepo := new(MockCategoryRepository)
		vendorRepo := new(MockVendorRepository)
		service := NewCategoryService(categoryRepo, vendorRepo)

		vendorRepo.On("FindByOwner", ctx, seller.ID).Return(nil, shared.ErrNotFound)

		_, err := service.Create(ctx, seller, CreateCategoryRequest{Name: "Sale"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
		assert.Equal(t, "Vendor not found", domainErr.Message)
	})

	t.Run("seller cannot create a global category", func(t *testing.T) {
		seller, _ := newSeller(t)

		service := NewCategoryService(new(MockCategoryRepository), new(MockVendorRepository))

		_, err := service.Create(ctx, seller, CreateCategoryRequest{Name: "Shoes", IsGlobal: true})

		assert.ErrorIs(t, err, shared.ErrForbidden)
	})
}

func TestCategoryService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("seller sees global plus own-vendor categories", func(t *testing.T) {
		seller, v := newSeller(t)

		global, err := catalog.NewGlobalCategory("Shoes", "", nil)
		require.NoError(t, err)
		own, err := catalog.NewVendorCategory("Sale", "", v.ID, nil)
		require.NoError(t, err)

		categoryRepo := new(MockCategoryRepository)
		vendorRepo := new(MockVendorRepository)
		service := NewCategoryService(categoryRepo, vendorRepo)

		vendorRepo.On("FindByOwner", ctx, seller.ID).Return(v, nil)
		categoryRepo.On("FindVisibleToVendor", ctx, v.ID).Return([]catalog.Category{*global, *own}, nil)

		categories, err := service.List(ctx, seller, shared.Filter{})

		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.True(t, categories[0].IsGlobal)
		assert.False(t, categories[1].IsGlobal)
	})

	t.Run("anonymous callers see global categories only", func(t *testing.T) {
		global, err := catalog.NewGlobalCategory("Shoes", "", nil)
		require.NoError(t, err)

		categoryRepo := new(MockCategoryRepository)
		service := NewCategoryService(categoryRepo, new(MockVendorRepository))

		categoryRepo.On("FindGlobal", ctx).Return([]catalog.Category{*global}, nil)

		categories, err := service.List(ctx, nil, shared.Filter{})

		require.NoError(t, err)
		require.Len(t, categories, 1)
		assert.True(t, categories[0].IsGlobal)
	})
}

func TestCategoryService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("seller deletes an empty own category", func(t *testing.T) {
		seller, v := newSeller(t)
		c, err := catalog.NewVendorCategory("Sale", "", v.ID, nil)
		require.NoError(t, err)

		categoryRepo := new(MockCategoryRepository)
		vendorRepo := new(MockVendorRepository)
		service := NewCategoryService(categoryRepo, vendorRepo)

		categoryRepo.On("FindByID", ctx, c.ID).Return(c, nil)
		vendorRepo.On("FindByOwner", ctx, seller.ID).Return(v, nil)
		categoryRepo.On("HasChildren", ctx, c.ID).Return(false, nil)
		categoryRepo.On("Delete", ctx, c.ID).Return(nil)

		require.NoError(t, service.Delete(ctx, seller, c.ID))
	})

	t.Run("category with children is kept", func(t *testing.T) {
		admin, err := identity.NewUser("root@example.com", identity.RoleSuperAdmin)
		require.NoError(t, err)
		c, err := catalog.NewGlobalCategory("Shoes", "", nil)
		require.NoError(t, err)

		categoryRepo := new(MockCategoryRepository)
		service := NewCategoryService(categoryRepo, new(MockVendorRepository))

		categoryRepo.On("FindByID", ctx, c.ID).Return(c, nil)
		categoryRepo.On("HasChildren", ctx, c.ID).Return(true, nil)

		err = service.Delete(ctx, admin, c.ID)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
		categoryRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("another vendor's category surfaces as not found", func(t *testing.T) {
		seller, v := newSeller(t)
		foreign, err := catalog.NewVendorCategory("Other", "", uuid.New(), nil)
		require.NoError(t, err)

		categoryRepo := new(MockCategoryRepository)
		vendorRepo := new(MockVendorRepository)
		service := NewCategoryService(categoryRepo, vendorRepo)

		categoryRepo.On("FindByID", ctx, foreign.ID).Return(foreign, nil)
		vendorRepo.On("FindByOwner", ctx, seller.ID).Return(v, nil)

		err = service.Delete(ctx, seller, foreign.ID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
