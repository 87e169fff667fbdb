package order

import (
	"context"
	"errors"

	"github.com/univendor/backend/internal/domain/identity"
	"github.com/univendor/backend/internal/domain/order"
	"github.com/univendor/backend/internal/domain/shared"
	"github.com/univendor/backend/internal/domain/vendor"
	"github.com/google/uuid"
)

// errVendorNotFound is the pinned signal for a seller without a storefront
var errVendorNotFound = shared.NewDomainError("NOT_FOUND", "Vendor not found")

// OrderService is the role-scoped order surface: buyers see their own
// orders, sellers their vendor's, administrators everything.
type OrderService struct {
	orderRepo  order.OrderRepository
	vendorRepo vendor.VendorRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo order.OrderRepository, vendorRepo vendor.VendorRepository) *OrderService {
	return &OrderService{
		orderRepo:  orderRepo,
		vendorRepo: vendorRepo,
	}
}

// List returns the orders visible to the actor
func (s *OrderService) List(ctx context.Context, actor *identity.User, filter shared.Filter) ([]OrderResponse, error) {
	var (
		orders []order.Order
		err    error
	)

	switch actor.Role {
	case identity.RoleAdmin, identity.RoleSuperAdmin:
		orders, err = s.orderRepo.FindAll(ctx, filter)
	case identity.RoleSeller:
		var own *vendor.Vendor
		own, err = s.vendorRepo.FindByOwner(ctx, actor.ID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, errVendorNotFound
			}
			return nil, err
		}
		orders, err = s.orderRepo.FindByVendor(ctx, own.ID, filter)
	default:
		orders, err = s.orderRepo.FindByCustomer(ctx, actor.ID, filter)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, *ToOrderResponse(&orders[i]))
	}
	return responses, nil
}

// GetByID returns one order if the actor may see it
func (s *OrderService) GetByID(ctx context.Context, actor *identity.User, id uuid.UUID) (*OrderResponse, error) {
	o, err := s.authorizeOrder(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(o), nil
}

// UpdateStatus moves an order through its lifecycle. Sellers manage
// their vendor's orders; buyers may only cancel their own pending ones.
func (s *OrderService) UpdateStatus(ctx context.Context, actor *identity.User, id uuid.UUID, req UpdateStatusRequest) (*OrderResponse, error) {
	o, err := s.authorizeOrder(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	status := order.OrderStatus(req.Status)
	if actor.Role == identity.RoleBuyer {
		if status != order.StatusCancelled || o.Status != order.StatusPending {
			return nil, shared.ErrForbidden
		}
	}

	if err := o.UpdateStatus(status); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	return ToOrderResponse(o), nil
}

// authorizeOrder loads an order and verifies visibility. Foreign orders
// surface as not-found.
func (s *OrderService) authorizeOrder(ctx context.Context, actor *identity.User, id uuid.UUID) (*order.Order, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch actor.Role {
	case identity.RoleAdmin, identity.RoleSuperAdmin:
		return o, nil
	case identity.RoleSeller:
		own, err := s.vendorRepo.FindByOwner(ctx, actor.ID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, errVendorNotFound
			}
			return nil, err
		}
		if !o.BelongsToVendor(own.ID) {
			return nil, shared.ErrNotFound
		}
		return o, nil
	default:
		if !o.BelongsToCustomer(actor.ID) {
			return nil, shared.ErrNotFound
		}
		return o, nil
	}
}
