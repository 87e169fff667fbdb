package catalog

import (
	"strings"
	"time"

	"github.com/univendor/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Category represents a product grouping. The catalog is partitioned:
// global categories (VendorID nil, IsGlobal true) are platform-wide and
// managed by platform administrators, vendor categories belong to a
// single storefront. Categories form a tree via ParentID.
type Category struct {
	shared.OwnedAggregateRoot
	Name        string     `gorm:"type:varchar(100);not null"`
	Description string     `gorm:"type:text"`
	VendorID    *uuid.UUID `gorm:"type:uuid;index"`
	ParentID    *uuid.UUID `gorm:"type:uuid;index"`
	IsGlobal    bool       `gorm:"not null;default:false"`
	SortOrder   int        `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewGlobalCategory creates a platform-wide category
func NewGlobalCategory(name, description string, parentID *uuid.UUID) (*Category, error) {
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}

	return &Category{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(),
		Name:               strings.TrimSpace(name),
		Description:        description,
		ParentID:           parentID,
		IsGlobal:           true,
	}, nil
}

// NewVendorCategory creates a category scoped to a single vendor
func NewVendorCategory(name, description string, vendorID uuid.UUID, parentID *uuid.UUID) (*Category, error) {
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}
	if vendorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VENDOR", "Vendor category requires a vendor")
	}

	return &Category{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(),
		Name:               strings.TrimSpace(name),
		Description:        description,
		VendorID:           &vendorID,
		ParentID:           parentID,
		IsGlobal:           false,
	}, nil
}

// Update updates the category's basic information
func (c *Category) Update(name, description string) error {
	if err := validateCategoryName(name); err != nil {
		return err
	}

	c.Name = strings.TrimSpace(name)
	c.Description = description
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetSortOrder sets the display order of the category
func (c *Category) SetSortOrder(order int) {
	c.SortOrder = order
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// BelongsToVendor reports whether the category is scoped to the given vendor
func (c *Category) BelongsToVendor(vendorID uuid.UUID) bool {
	return c.VendorID != nil && *c.VendorID == vendorID
}

// IsRoot returns true if this is a top-level category
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}

func validateCategoryName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot exceed 100 characters")
	}
	return nil
}
