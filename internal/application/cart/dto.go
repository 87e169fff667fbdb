package cart

import (
	"time"

	"github.com/univendor/backend/internal/domain/cart"
	"github.com/univendor/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddItemRequest puts a product variant into the cart
type AddItemRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
	Color     string    `json:"color" binding:"omitempty,max=50"`
	Size      string    `json:"size" binding:"omitempty,max=50"`
}

// UpdateItemRequest changes the quantity of a cart line. A quantity of
// zero or less removes the line.
type UpdateItemRequest struct {
	Quantity int    `json:"quantity"`
	Color    string `json:"color" binding:"omitempty,max=50"`
	Size     string `json:"size" binding:"omitempty,max=50"`
}

// LineResponse is one cart line with its product attached
type LineResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"productId"`
	VendorID  uuid.UUID       `json:"vendorId"`
	Name      string          `json:"name"`
	ImageURL  string          `json:"imageUrl,omitempty"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
	Color     string          `json:"color,omitempty"`
	Size      string          `json:"size,omitempty"`
	LineTotal decimal.Decimal `json:"lineTotal"`
	AddedAt   time.Time       `json:"addedAt"`
}

// CartResponse is the full cart with its running total
type CartResponse struct {
	Items    []LineResponse  `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// ToLineResponse joins a cart item with its product
func ToLineResponse(item *cart.CartItem, product *catalog.Product) LineResponse {
	line := LineResponse{
		ID:        item.ID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		Color:     item.Color,
		Size:      item.Size,
		AddedAt:   item.CreatedAt,
	}
	if product != nil {
		line.VendorID = product.VendorID
		line.Name = product.Name
		line.ImageURL = product.ImageURL
		line.UnitPrice = product.SellingPrice
		line.LineTotal = product.SellingPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
	}
	return line
}
