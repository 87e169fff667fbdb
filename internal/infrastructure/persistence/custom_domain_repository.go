package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/univendor/backend/internal/domain/shared"
	"github.com/univendor/backend/internal/domain/vendor"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCustomDomainRepository implements CustomDomainRepository using GORM
type GormCustomDomainRepository struct {
	db *gorm.DB
}

// NewGormCustomDomainRepository creates a new GormCustomDomainRepository
func NewGormCustomDomainRepository(db *gorm.DB) *GormCustomDomainRepository {
	return &GormCustomDomainRepository{db: db}
}

// FindByID finds a custom domain by its ID
func (r *GormCustomDomainRepository) FindByID(ctx context.Context, id uuid.UUID) (*vendor.CustomDomain, error) {
	var d vendor.CustomDomain
	if err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// FindByHostname finds a custom domain by its hostname
func (r *GormCustomDomainRepository) FindByHostname(ctx context.Context, domain string) (*vendor.CustomDomain, error) {
	var d vendor.CustomDomain
	if err := r.db.WithContext(ctx).
		Where("domain = ?", strings.ToLower(domain)).
		First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// FindByVendor finds all custom domains registered for a vendor
func (r *GormCustomDomainRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]vendor.CustomDomain, error) {
	var domains []vendor.CustomDomain
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at ASC").
		Find(&domains).Error; err != nil {
		return nil, err
	}
	return domains, nil
}

// FindAll finds all custom domains matching the filter
func (r *GormCustomDomainRepository) FindAll(ctx context.Context, filter shared.Filter) ([]vendor.CustomDomain, error) {
	var domains []vendor.CustomDomain
	query := r.db.WithContext(ctx).Model(&vendor.CustomDomain{})

	if filter.Search != "" {
		query = query.Where("domain ILIKE ?", "%"+filter.Search+"%")
	}
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	if filter.OrderBy != "" {
		field := ValidateSortField(filter.OrderBy, CustomDomainSortFields, "created_at")
		query = query.Order(field + " " + ValidateSortOrder(filter.OrderDir))
	}

	if err := query.Find(&domains).Error; err != nil {
		return nil, err
	}
	return domains, nil
}

// Save creates or updates a custom domain
func (r *GormCustomDomainRepository) Save(ctx context.Context, domain *vendor.CustomDomain) error {
	return r.db.WithContext(ctx).Save(domain).Error
}

// Delete deletes a custom domain
func (r *GormCustomDomainRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&vendor.CustomDomain{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormCustomDomainRepository implements CustomDomainRepository
var _ vendor.CustomDomainRepository = (*GormCustomDomainRepository)(nil)
