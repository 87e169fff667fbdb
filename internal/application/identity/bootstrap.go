package identity

import (
	"context"
	"errors"

	"github.com/univendor/backend/internal/domain/identity"
	"github.com/univendor/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Bootstrap seeds the platform's trust anchor: a verified, non-deletable
// super admin account taken from configuration. Login still goes through
// the regular OTP flow; no code path bypasses verification.
type Bootstrap struct {
	userRepo identity.UserRepository
	logger   *zap.Logger
}

// NewBootstrap creates a new Bootstrap seeder
func NewBootstrap(userRepo identity.UserRepository, logger *zap.Logger) *Bootstrap {
	return &Bootstrap{userRepo: userRepo, logger: logger}
}

// Run provisions the bootstrap super admin if the address has no account
// yet. An empty email disables seeding.
func (b *Bootstrap) Run(ctx context.Context, email string) error {
	if email == "" {
		b.logger.Info("no bootstrap admin configured, skipping seed")
		return nil
	}

	normalized, err := identity.NormalizeEmail(email)
	if err != nil {
		return err
	}

	existing, err := b.userRepo.FindByEmail(ctx, normalized)
	if err == nil {
		if existing.Role != identity.RoleSuperAdmin {
			b.logger.Warn("bootstrap admin email belongs to a non-admin account, leaving it untouched",
				zap.String("email", normalized),
				zap.String("role", string(existing.Role)))
		}
		return nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return err
	}

	admin, err := identity.NewSystemAdmin(normalized)
	if err != nil {
		return err
	}
	if err := b.userRepo.Save(ctx, admin); err != nil {
		return err
	}

	b.logger.Info("seeded bootstrap super admin", zap.String("email", normalized))
	return nil
}
