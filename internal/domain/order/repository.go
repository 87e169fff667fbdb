package order

import (
	"context"

	"github.com/univendor/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OrderRepository defines the persistence interface for orders
type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]Order, error)
	FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]Order, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, o *Order) error
	// PlaceAll persists every order from one checkout and clears the
	// customer's cart in a single transaction. Either all orders land
	// and the cart empties, or nothing changes.
	PlaceAll(ctx context.Context, orders []*Order, customerID uuid.UUID) error
}
