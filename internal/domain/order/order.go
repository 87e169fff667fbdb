package order

import (
	"time"

	"github.com/univendor/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the fulfillment state of an order
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// AllStatuses lists every valid order status
var AllStatuses = []OrderStatus{
	StatusPending,
	StatusConfirmed,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

// IsValid reports whether the status is one of the known states
func (s OrderStatus) IsValid() bool {
	for _, status := range AllStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Address is the shipping destination captured at checkout time
type Address struct {
	Name       string `gorm:"type:varchar(200)"`
	Line1      string `gorm:"type:varchar(200)"`
	Line2      string `gorm:"type:varchar(200)"`
	City       string `gorm:"type:varchar(100)"`
	State      string `gorm:"type:varchar(100)"`
	PostalCode string `gorm:"type:varchar(20)"`
	Country    string `gorm:"type:varchar(100)"`
	Phone      string `gorm:"type:varchar(30)"`
}

// Order is a purchase from a single vendor. Checkout partitions the
// buyer's cart by vendor, so one checkout can produce several orders.
// Monetary amounts are snapshots taken at checkout; later price changes
// do not affect placed orders.
type Order struct {
	shared.OwnedAggregateRoot
	CustomerID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	VendorID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status         OrderStatus     `gorm:"type:varchar(20);not null;default:'pending'"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ShippingCharge decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TaxAmount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ShippingAddr   Address         `gorm:"embedded;embeddedPrefix:ship_"`
	Items          []OrderItem     `gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a pending order for a single vendor's items.
// The subtotal is the sum of line totals, tax is applied to the
// subtotal, and the shipping charge is added as-is.
func NewOrder(customerID, vendorID uuid.UUID, items []OrderItem, shippingCharge, taxRate decimal.Decimal, shipTo Address) (*Order, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Order requires a customer")
	}
	if vendorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VENDOR", "Order requires a vendor")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("EMPTY_ORDER", "Order must contain at least one item")
	}
	if shippingCharge.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Shipping charge cannot be negative")
	}
	if taxRate.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Tax rate cannot be negative")
	}

	subtotal := decimal.Zero
	for i := range items {
		subtotal = subtotal.Add(items[i].LineTotal())
	}
	taxAmount := subtotal.Mul(taxRate).Round(2)

	o := &Order{
		OwnedAggregateRoot: shared.NewOwnedAggregateRootWithCreator(customerID),
		CustomerID:         customerID,
		VendorID:           vendorID,
		Status:             StatusPending,
		Subtotal:           subtotal,
		ShippingCharge:     shippingCharge,
		TaxAmount:          taxAmount,
		TotalAmount:        subtotal.Add(shippingCharge).Add(taxAmount),
		ShippingAddr:       shipTo,
		Items:              items,
	}

	for i := range o.Items {
		o.Items[i].OrderID = o.ID
	}

	o.AddDomainEvent(NewOrderPlacedEvent(o))

	return o, nil
}

// UpdateStatus moves the order to the given status. Any member of the
// known status set is accepted.
func (o *Order) UpdateStatus(status OrderStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status")
	}
	if o.Status == status {
		return nil
	}

	previous := o.Status
	o.Status = status
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	o.AddDomainEvent(NewOrderStatusChangedEvent(o, previous))

	return nil
}

// BelongsToCustomer reports whether the order was placed by the given user
func (o *Order) BelongsToCustomer(userID uuid.UUID) bool {
	return o.CustomerID == userID
}

// BelongsToVendor reports whether the order is addressed to the given vendor
func (o *Order) BelongsToVendor(vendorID uuid.UUID) bool {
	return o.VendorID == vendorID
}
