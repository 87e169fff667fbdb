package order

import (
	"context"
	"testing"

	"github.com/univendor/backend/internal/domain/identity"
	"github.com/univendor/backend/internal/domain/order"
	"github.com/univendor/backend/internal/domain/shared"
	"github.com/univendor/backend/internal/domain/vendor"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func buildOrder(t *testing.T, customerID, vendorID uuid.UUID) *order.Order {
	t.Helper()
	item, err := order.NewOrderItem(uuid.New(), "Shoe", decimal.NewFromFloat(49.99), 1, "", "")
	require.NoError(t, err)
	o, err := order.NewOrder(customerID, vendorID, []order.OrderItem{item},
		decimal.NewFromFloat(9.99), decimal.NewFromFloat(0.08), order.Address{Name: "Jane", Line1: "1 Main St", City: "X", PostalCode: "1", Country: "US"})
	require.NoError(t, err)
	return o
}

func TestOrderService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("buyer sees own orders", func(t *testing.T) {
		buyer, err := identity.NewBuyer("buyer@example.com", "", "")
		require.NoError(t, err)
		own := buildOrder(t, buyer.ID, uuid.New())

		orderRepo := new(MockOrderRepository)
		service := NewOrderService(orderRepo, new(MockVendorRepository))

		filter := shared.Filter{}
		orderRepo.On("FindByCustomer", ctx, buyer.ID, filter).Return([]order.Order{*own}, nil)

		orders, err := service.List(ctx, buyer, filter)

		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, buyer.ID, orders[0].CustomerID)
	})

	t.Run("seller sees their vendor's orders", func(t *testing.T) {
		seller, err := identity.NewUser("seller@example.com", identity.RoleSeller)
		require.NoError(t, err)
		v, err := vendor.NewVendor("Acme", "", "acme", seller.ID)
		require.NoError(t, err)
		incoming := buildOrder(t, uuid.New(), v.ID)

		orderRepo := new(MockOrderRepository)
		vendorRepo := new(MockVendorRepository)
		service := NewOrderService(orderRepo, vendorRepo)

		filter := shared.Filter{}
		vendorRepo.On("FindByOwner", ctx, seller.ID).Return(v, nil)
		orderRepo.On("FindByVendor", ctx, v.ID, filter).Return([]order.Order{*incoming}, nil)

		orders, err := service.List(ctx, seller, filter)

		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, v.ID, orders[0].VendorID)
	})

	t.Run("seller without a vendor gets vendor not found", func(t *testing.T) {
		seller, err := identity.NewUser("seller@example.com", identity.RoleSeller)
		require.NoError(t, err)

		vendorRepo := new(MockVendorRepository)
		service := NewOrderService(new(MockOrderRepository), vendorRepo)

		vendorRepo.On("FindByOwner", ctx, seller.ID).Return(nil, shared.ErrNotFound)

		_, err = service.List(ctx, seller, shared.Filter{})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "Vendor not found", domainErr.Message)
	})

	t.Run("admin sees everything", func(t *testing.T) {
		admin, err := identity.NewUser("admin@example.com", identity.RoleAdmin)
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		service := NewOrderService(orderRepo, new(MockVendorRepository))

		filter := shared.Filter{}
		orderRepo.On("FindAll", ctx, filter).Return([]order.Order{}, nil)

		_, err = service.List(ctx, admin, filter)

		require.NoError(t, err)
		orderRepo.AssertExpectations(t)
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("seller confirms an incoming order", func(t *testing.T) {
		seller, err := identity.NewUser("seller@example.com", identity.RoleSeller)
		require.NoError(t, err)
		v, err := vendor.NewVendor("Acme", "", "acme", seller.ID)
		require.NoError(t, err)
		o := buildOrder(t, uuid.New(), v.ID)

		orderRepo := new(MockOrderRepository)
		vendorRepo := new(MockVendorRepository)
		service := NewOrderService(orderRepo, vendorRepo)

		orderRepo.On("FindByID", ctx, o.ID).Return(o, nil)
		vendorRepo.On("FindByOwner", ctx, seller.ID).Return(v, nil)
		orderRepo.On("Save", ctx, o).Return(nil)

		resp, err := service.UpdateStatus(ctx, seller, o.ID, UpdateStatusRequest{Status: "confirmed"})

		require.NoError(t, err)
		assert.Equal(t, order.StatusConfirmed, resp.Status)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		admin, err := identity.NewUser("admin@example.com", identity.RoleAdmin)
		require.NoError(t, err)
		o := buildOrder(t, uuid.New(), uuid.New())

		orderRepo := new(MockOrderRepository)
		service := NewOrderService(orderRepo, new(MockVendorRepository))

		orderRepo.On("FindByID", ctx, o.ID).Return(o, nil)

		_, err = service.UpdateStatus(ctx, admin, o.ID, UpdateStatusRequest{Status: "refunded"})

		require.Error(t, err)
		orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("another vendor's order surfaces as not found", func(t *testing.T) {
		seller, err := identity.NewUser("seller@example.com", identity.RoleSeller)
		require.NoError(t, err)
		v, err := vendor.NewVendor("Acme", "", "acme", seller.ID)
		require.NoError(t, err)
		foreign := buildOrder(t, uuid.New(), uuid.New())

		orderRepo := new(MockOrderRepository)
		vendorRepo := new(MockVendorRepository)
		service := NewOrderService(orderRepo, vendorRepo)

		orderRepo.On("FindByID", ctx, foreign.ID).Return(foreign, nil)
		vendorRepo.On("FindByOwner", ctx, seller.ID).Return(v, nil)

		_, err = service.UpdateStatus(ctx, seller, foreign.ID, UpdateStatusRequest{Status: "confirmed"})

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("buyer may cancel a pending order only", func(t *testing.T) {
		buyer, err := identity.NewBuyer("buyer@example.com", "", "")
		require.NoError(t, err)
		o := buildOrder(t, buyer.ID, uuid.New())

		orderRepo := new(MockOrderRepository)
		service := NewOrderService(orderRepo, new(MockVendorRepository))

		orderRepo.On("FindByID", ctx, o.ID).Return(o, nil)
		orderRepo.On("Save", ctx, o).Return(nil)

		resp, err := service.UpdateStatus(ctx, buyer, o.ID, UpdateStatusRequest{Status: "cancelled"})
		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, resp.Status)

		// once cancelled it is no longer pending, so a second transition fails
		_, err = service.UpdateStatus(ctx, buyer, o.ID, UpdateStatusRequest{Status: "confirmed"})
		assert.ErrorIs(t, err, shared.ErrForbidden)
	})
}
