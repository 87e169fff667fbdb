package catalog

import (
	"strings"
	"time"

	"github.com/univendor/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a sellable item in a vendor's catalog
type Product struct {
	shared.OwnedAggregateRoot
	Name          string          `gorm:"type:varchar(200);not null"`
	Description   string          `gorm:"type:text"`
	VendorID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID    *uuid.UUID      `gorm:"type:uuid;index"`
	SellingPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MRP           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(12,2)"`
	StockQuantity int             `gorm:"not null;default:0"`
	ImageURL      string          `gorm:"type:varchar(500)"`
	Weight        decimal.Decimal `gorm:"type:decimal(10,3)"`
	Length        decimal.Decimal `gorm:"type:decimal(10,2)"`
	Width         decimal.Decimal `gorm:"type:decimal(10,2)"`
	Height        decimal.Decimal `gorm:"type:decimal(10,2)"`
	IsActive      bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product in a vendor's catalog
func NewProduct(vendorID uuid.UUID, name string, sellingPrice, mrp decimal.Decimal) (*Product, error) {
	if vendorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VENDOR", "Product requires a vendor")
	}
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if sellingPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Selling price cannot be negative")
	}
	if mrp.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "MRP cannot be negative")
	}
	if mrp.IsZero() {
		mrp = sellingPrice
	}

	product := &Product{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(),
		Name:               strings.TrimSpace(name),
		VendorID:           vendorID,
		SellingPrice:       sellingPrice,
		MRP:                mrp,
		IsActive:           true,
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// Update updates the product's descriptive and pricing fields
func (p *Product) Update(name, description string, sellingPrice, mrp decimal.Decimal) error {
	if err := validateProductName(name); err != nil {
		return err
	}
	if sellingPrice.IsNegative() || mrp.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Prices cannot be negative")
	}

	p.Name = strings.TrimSpace(name)
	p.Description = description
	p.SellingPrice = sellingPrice
	if !mrp.IsZero() {
		p.MRP = mrp
	}
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetCategory assigns the product to a category (nil clears it)
func (p *Product) SetCategory(categoryID *uuid.UUID) {
	p.CategoryID = categoryID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetStock replaces the on-hand quantity
func (p *Product) SetStock(quantity int) error {
	if quantity < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock quantity cannot be negative")
	}
	p.StockQuantity = quantity
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// SetDimensions records shipping dimensions and weight
func (p *Product) SetDimensions(length, width, height, weight decimal.Decimal) {
	p.Length = length
	p.Width = width
	p.Height = height
	p.Weight = weight
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// Activate makes the product visible on the storefront
func (p *Product) Activate() {
	if p.IsActive {
		return
	}
	p.IsActive = true
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// Deactivate hides the product from the storefront
func (p *Product) Deactivate() {
	if !p.IsActive {
		return
	}
	p.IsActive = false
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// BelongsToVendor reports whether this product is listed by the given vendor
func (p *Product) BelongsToVendor(vendorID uuid.UUID) bool {
	return p.VendorID == vendorID
}

func validateProductName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
