package catalog

import (
	"time"

	"github.com/univendor/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest carries the data to list a new product
type CreateProductRequest struct {
	Name          string           `json:"name" binding:"required,max=200"`
	Description   string           `json:"description"`
	VendorID      *uuid.UUID       `json:"vendorId"`
	CategoryID    *uuid.UUID       `json:"categoryId"`
	SellingPrice  decimal.Decimal  `json:"sellingPrice" binding:"required"`
	MRP           *decimal.Decimal `json:"mrp"`
	StockQuantity int              `json:"stockQuantity" binding:"omitempty,min=0"`
	ImageURL      string           `json:"imageUrl" binding:"omitempty,max=500"`
}

// UpdateProductRequest carries updatable product fields
type UpdateProductRequest struct {
	Name          string           `json:"name" binding:"required,max=200"`
	Description   string           `json:"description"`
	CategoryID    *uuid.UUID       `json:"categoryId"`
	SellingPrice  decimal.Decimal  `json:"sellingPrice" binding:"required"`
	MRP           *decimal.Decimal `json:"mrp"`
	StockQuantity *int             `json:"stockQuantity"`
	ImageURL      string           `json:"imageUrl" binding:"omitempty,max=500"`
	IsActive      *bool            `json:"isActive"`
}

// ProductResponse is the API representation of a product
type ProductResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	VendorID      uuid.UUID       `json:"vendorId"`
	CategoryID    *uuid.UUID      `json:"categoryId,omitempty"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	MRP           decimal.Decimal `json:"mrp"`
	StockQuantity int             `json:"stockQuantity"`
	ImageURL      string          `json:"imageUrl,omitempty"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ToProductResponse converts a product to its API representation
func ToProductResponse(p *catalog.Product) *ProductResponse {
	return &ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		VendorID:      p.VendorID,
		CategoryID:    p.CategoryID,
		SellingPrice:  p.SellingPrice,
		MRP:           p.MRP,
		StockQuantity: p.StockQuantity,
		ImageURL:      p.ImageURL,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// CreateCategoryRequest carries the data to create a category.
// IsGlobal selects the partition: platform-wide or vendor-scoped.
type CreateCategoryRequest struct {
	Name        string     `json:"name" binding:"required,max=100"`
	Description string     `json:"description"`
	ParentID    *uuid.UUID `json:"parentId"`
	IsGlobal    bool       `json:"isGlobal"`
}

// UpdateCategoryRequest carries updatable category fields
type UpdateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
}

// CategoryResponse is the API representation of a category
type CategoryResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	VendorID    *uuid.UUID `json:"vendorId,omitempty"`
	ParentID    *uuid.UUID `json:"parentId,omitempty"`
	IsGlobal    bool       `json:"isGlobal"`
	SortOrder   int        `json:"sortOrder"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ToCategoryResponse converts a category to its API representation
func ToCategoryResponse(c *catalog.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		VendorID:    c.VendorID,
		ParentID:    c.ParentID,
		IsGlobal:    c.IsGlobal,
		SortOrder:   c.SortOrder,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
