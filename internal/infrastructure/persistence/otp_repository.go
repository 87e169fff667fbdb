package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/univendor/backend/internal/domain/identity"
	"github.com/univendor/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOtpRepository implements OtpRepository using GORM
type GormOtpRepository struct {
	db *gorm.DB
}

// NewGormOtpRepository creates a new GormOtpRepository
func NewGormOtpRepository(db *gorm.DB) *GormOtpRepository {
	return &GormOtpRepository{db: db}
}

// Save creates or updates a one-time code
func (r *GormOtpRepository) Save(ctx context.Context, code *identity.OtpCode) error {
	return r.db.WithContext(ctx).Save(code).Error
}

// FindValid returns the newest unused, unexpired code matching the email
// and submitted code. Both sides are compared case-insensitively.
func (r *GormOtpRepository) FindValid(ctx context.Context, email, code string) (*identity.OtpCode, error) {
	var otp identity.OtpCode
	if err := r.db.WithContext(ctx).
		Where("LOWER(email) = ? AND LOWER(code) = ? AND is_used = ? AND expires_at > ?",
			strings.ToLower(strings.TrimSpace(email)),
			strings.ToLower(strings.TrimSpace(code)),
			false,
			time.Now()).
		Order("created_at DESC").
		First(&otp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &otp, nil
}

// MarkUsed flags a code as consumed so it cannot be replayed
func (r *GormOtpRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&identity.OtpCode{}).
		Where("id = ?", id).
		Update("is_used", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteExpired removes every expired code regardless of owner
func (r *GormOtpRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at <= ?", time.Now()).
		Delete(&identity.OtpCode{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Ensure GormOtpRepository implements OtpRepository
var _ identity.OtpRepository = (*GormOtpRepository)(nil)
