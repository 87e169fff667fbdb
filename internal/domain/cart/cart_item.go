package cart

import (
	"time"

	"github.com/univendor/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CartItem is a line in a buyer's cart. Lines are keyed by
// (user, product, color, size): adding the same combination again
// merges into the existing line instead of creating a duplicate.
type CartItem struct {
	shared.BaseEntity
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_cart_user_variant,unique"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index:idx_cart_user_variant,unique"`
	Quantity  int       `gorm:"not null"`
	Color     string    `gorm:"type:varchar(50);index:idx_cart_user_variant,unique"`
	Size      string    `gorm:"type:varchar(50);index:idx_cart_user_variant,unique"`
}

// TableName returns the table name for GORM
func (CartItem) TableName() string {
	return "cart_items"
}

// NewCartItem creates a cart line for a product variant
func NewCartItem(userID, productID uuid.UUID, quantity int, color, size string) (*CartItem, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "Cart item requires a user")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Cart item requires a product")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	return &CartItem{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		ProductID:  productID,
		Quantity:   quantity,
		Color:      color,
		Size:       size,
	}, nil
}

// AddQuantity merges an additional quantity into this line
func (c *CartItem) AddQuantity(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	c.Quantity += quantity
	c.UpdatedAt = time.Now()
	return nil
}

// SetQuantity replaces the line quantity. Quantities of zero or less
// mean the line should be removed, which is the caller's decision.
func (c *CartItem) SetQuantity(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	c.Quantity = quantity
	c.UpdatedAt = time.Now()
	return nil
}

// SameVariant reports whether another (product, color, size) combination
// refers to this line
func (c *CartItem) SameVariant(productID uuid.UUID, color, size string) bool {
	return c.ProductID == productID && c.Color == color && c.Size == size
}

// IsOwnedBy reports whether the line belongs to the given user
func (c *CartItem) IsOwnedBy(userID uuid.UUID) bool {
	return c.UserID == userID
}
