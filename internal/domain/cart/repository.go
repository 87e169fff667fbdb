package cart

import (
	"context"

	"github.com/google/uuid"
)

// CartItemRepository defines the persistence interface for cart lines
type CartItemRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CartItem, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]CartItem, error)
	FindByUserAndVariant(ctx context.Context, userID, productID uuid.UUID, color, size string) (*CartItem, error)
	Save(ctx context.Context, item *CartItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
