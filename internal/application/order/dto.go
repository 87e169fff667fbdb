package order

import (
	"time"

	"github.com/univendor/backend/internal/domain/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutRequest turns the cart into orders, one per vendor
type CheckoutRequest struct {
	ShipTo AddressRequest `json:"shipTo" binding:"required"`
}

// AddressRequest is the shipping destination supplied at checkout
type AddressRequest struct {
	Name       string `json:"name" binding:"required,max=200"`
	Line1      string `json:"line1" binding:"required,max=200"`
	Line2      string `json:"line2" binding:"omitempty,max=200"`
	City       string `json:"city" binding:"required,max=100"`
	State      string `json:"state" binding:"omitempty,max=100"`
	PostalCode string `json:"postalCode" binding:"required,max=20"`
	Country    string `json:"country" binding:"required,max=100"`
	Phone      string `json:"phone" binding:"omitempty,max=30"`
}

func (r AddressRequest) toAddress() order.Address {
	return order.Address{
		Name:       r.Name,
		Line1:      r.Line1,
		Line2:      r.Line2,
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
		Country:    r.Country,
		Phone:      r.Phone,
	}
}

// UpdateStatusRequest moves an order to a new status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ItemResponse is one order line with its price snapshot
type ItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"productId"`
	ProductName string          `json:"productName"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
	Color       string          `json:"color,omitempty"`
	Size        string          `json:"size,omitempty"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// OrderResponse is the API representation of an order
type OrderResponse struct {
	ID             uuid.UUID         `json:"id"`
	CustomerID     uuid.UUID         `json:"customerId"`
	VendorID       uuid.UUID         `json:"vendorId"`
	Status         order.OrderStatus `json:"status"`
	Subtotal       decimal.Decimal   `json:"subtotal"`
	ShippingCharge decimal.Decimal   `json:"shippingCharge"`
	TaxAmount      decimal.Decimal   `json:"taxAmount"`
	TotalAmount    decimal.Decimal   `json:"totalAmount"`
	Items          []ItemResponse    `json:"items"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// ToOrderResponse converts an order to its API representation
func ToOrderResponse(o *order.Order) *OrderResponse {
	items := make([]ItemResponse, 0, len(o.Items))
	for i := range o.Items {
		item := &o.Items[i]
		items = append(items, ItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Color:       item.Color,
			Size:        item.Size,
			LineTotal:   item.LineTotal(),
		})
	}

	return &OrderResponse{
		ID:             o.ID,
		CustomerID:     o.CustomerID,
		VendorID:       o.VendorID,
		Status:         o.Status,
		Subtotal:       o.Subtotal,
		ShippingCharge: o.ShippingCharge,
		TaxAmount:      o.TaxAmount,
		TotalAmount:    o.TotalAmount,
		Items:          items,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}
