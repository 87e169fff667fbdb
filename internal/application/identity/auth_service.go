package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/univendor/backend/internal/domain/identity"
	"github.com/univendor/backend/internal/domain/shared"
	"github.com/univendor/backend/internal/infrastructure/mail"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionStore keeps server-side login sessions keyed by an opaque ID
type SessionStore interface {
	Create(ctx context.Context, sess *identity.Session) (string, error)
	Get(ctx context.Context, id string) (*identity.Session, error)
	Update(ctx context.Context, id string, sess *identity.Session) error
	Delete(ctx context.Context, id string) error
}

// Principal is the resolved identity behind a request. During
// impersonation User is the impersonated account and OriginalUser the
// administrator driving the session.
type Principal struct {
	User         *identity.User
	OriginalUser *identity.User
}

// IsImpersonating reports whether the principal is an impersonation overlay
func (p *Principal) IsImpersonating() bool {
	return p.OriginalUser != nil
}

// AuthService handles passwordless login, sessions and impersonation
type AuthService struct {
	userRepo identity.UserRepository
	otpRepo  identity.OtpRepository
	sessions SessionStore
	mailer   mail.Mailer
	otpTTL   time.Duration
	logger   *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo identity.UserRepository,
	otpRepo identity.OtpRepository,
	sessions SessionStore,
	mailer mail.Mailer,
	otpTTL time.Duration,
	logger *zap.Logger,
) *AuthService {
	if otpTTL == 0 {
		otpTTL = identity.DefaultOtpTTL
	}
	return &AuthService{
		userRepo: userRepo,
		otpRepo:  otpRepo,
		sessions: sessions,
		mailer:   mailer,
		otpTTL:   otpTTL,
		logger:   logger,
	}
}

// RequestCode generates a one-time login code and emails it. The reply
// carries no hint whether an account exists for the address. Each call
// also purges expired codes for all users.
func (s *AuthService) RequestCode(ctx context.Context, req RequestCodeRequest) error {
	email, err := identity.NormalizeEmail(req.Email)
	if err != nil {
		return err
	}

	// Opportunistic housekeeping: drop every expired code
	if purged, err := s.otpRepo.DeleteExpired(ctx); err != nil {
		s.logger.Warn("failed to purge expired login codes", zap.Error(err))
	} else if purged > 0 {
		s.logger.Debug("purged expired login codes", zap.Int64("count", purged))
	}

	otp, err := identity.NewOtpCode(email, s.otpTTL)
	if err != nil {
		return err
	}
	if err := s.otpRepo.Save(ctx, otp); err != nil {
		return err
	}

	msg := mail.Message{
		To:       email,
		Subject:  "Your login code",
		TextBody: fmt.Sprintf("Your login code is %s. It expires in %d minutes.", otp.Code, int(s.otpTTL.Minutes())),
		HTMLBody: fmt.Sprintf("<p>Your login code is <strong>%s</strong>.</p><p>It expires in %d minutes.</p>", otp.Code, int(s.otpTTL.Minutes())),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to deliver login code: %w", err)
	}

	return nil
}

// VerifyCode redeems a login code. A matching account gets a session;
// an unknown email gets RequiresRegistration instead. Codes are single
// use: redeeming marks the code consumed before the account lookup.
func (s *AuthService) VerifyCode(ctx context.Context, req VerifyCodeRequest) (*VerifyCodeResponse, string, error) {
	email, err := identity.NormalizeEmail(req.Email)
	if err != nil {
		return nil, "", err
	}

	otp, err := s.otpRepo.FindValid(ctx, email, req.Code)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, "", shared.NewDomainError("INVALID_OTP", "Invalid or expired code")
		}
		return nil, "", err
	}
	if err := s.otpRepo.MarkUsed(ctx, otp.ID); err != nil {
		return nil, "", err
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return &VerifyCodeResponse{RequiresRegistration: true}, "", nil
		}
		return nil, "", err
	}

	if !user.IsEmailVerified {
		user.MarkEmailVerified()
		if err := s.userRepo.Save(ctx, user); err != nil {
			return nil, "", err
		}
	}

	sessionID, err := s.sessions.Create(ctx, identity.NewSession(user.ID))
	if err != nil {
		return nil, "", err
	}

	return &VerifyCodeResponse{User: ToUserResponse(user)}, sessionID, nil
}

// Register creates a buyer account and logs it in
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*UserResponse, string, error) {
	user, err := identity.NewBuyer(req.Email, req.FirstName, req.LastName)
	if err != nil {
		return nil, "", err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, user.Email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", shared.NewDomainError("ALREADY_EXISTS", "An account with this email already exists")
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, "", err
	}

	sessionID, err := s.sessions.Create(ctx, identity.NewSession(user.ID))
	if err != nil {
		return nil, "", err
	}

	return ToUserResponse(user), sessionID, nil
}

// Logout removes the session
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// Resolve turns a session ID into the effective principal. Roles are
// read fresh on every call, so an impersonation overlay survives only
// while the original user still holds an administrative role; otherwise
// it is silently dropped and the base identity takes over.
func (s *AuthService) Resolve(ctx context.Context, sessionID string) (*Principal, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	base, err := s.userRepo.FindByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrUnauthorized
		}
		return nil, err
	}

	if !sess.IsImpersonating() {
		return &Principal{User: base}, nil
	}

	original, err := s.userRepo.FindByID(ctx, *sess.OriginalUserID)
	if err != nil || !original.CanImpersonate() {
		return s.dropOverlay(ctx, sessionID, sess, base)
	}

	target, err := s.userRepo.FindByID(ctx, *sess.ImpersonatedUserID)
	if err != nil {
		return s.dropOverlay(ctx, sessionID, sess, base)
	}

	return &Principal{User: target, OriginalUser: original}, nil
}

// dropOverlay clears an impersonation overlay that can no longer be
// honored and resolves to the base identity
func (s *AuthService) dropOverlay(ctx context.Context, sessionID string, sess *identity.Session, base *identity.User) (*Principal, error) {
	sess.ClearImpersonation()
	if err := s.sessions.Update(ctx, sessionID, sess); err != nil {
		s.logger.Warn("failed to clear impersonation overlay", zap.Error(err))
	}
	return &Principal{User: base}, nil
}

// Impersonate overlays the session with the target user's identity.
// Only administrators may impersonate, and the target must exist.
func (s *AuthService) Impersonate(ctx context.Context, sessionID string, targetID uuid.UUID) (*UserResponse, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.IsImpersonating() {
		return nil, shared.NewDomainError("INVALID_STATE", "Already impersonating another user")
	}

	actor, err := s.userRepo.FindByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrUnauthorized
		}
		return nil, err
	}

	target, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if err := sess.StartImpersonation(actor, target.ID); err != nil {
		return nil, err
	}
	if err := s.sessions.Update(ctx, sessionID, sess); err != nil {
		return nil, err
	}

	return ToUserResponse(target), nil
}

// ExitImpersonation restores the administrator's own identity
func (s *AuthService) ExitImpersonation(ctx context.Context, sessionID string) (*UserResponse, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := sess.ExitImpersonation(); err != nil {
		return nil, err
	}
	if err := s.sessions.Update(ctx, sessionID, sess); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrUnauthorized
		}
		return nil, err
	}

	return ToUserResponse(user), nil
}
