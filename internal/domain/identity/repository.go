package identity

import (
	"context"

	"github.com/univendor/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// UserRepository defines persistence operations for users
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]User, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Save(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// OtpRepository defines persistence operations for one-time login codes
type OtpRepository interface {
	Save(ctx context.Context, code *OtpCode) error
	// FindValid returns the newest unused, unexpired code matching the
	// email and submitted code. Matching is case-insensitive on both.
	FindValid(ctx context.Context, email, code string) (*OtpCode, error)
	MarkUsed(ctx context.Context, id uuid.UUID) error
	// DeleteExpired removes every expired code regardless of owner
	DeleteExpired(ctx context.Context) (int64, error)
}
