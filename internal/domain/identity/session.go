package identity

import (
	"github.com/univendor/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Session is the server-side login state referenced by the session cookie.
// UserID is the account that logged in. While an administrator impersonates
// another account, ImpersonatedUserID and OriginalUserID are both set;
// otherwise both are nil.
type Session struct {
	UserID             uuid.UUID  `json:"user_id"`
	ImpersonatedUserID *uuid.UUID `json:"impersonated_user_id,omitempty"`
	OriginalUserID     *uuid.UUID `json:"original_user_id,omitempty"`
}

// NewSession creates a session for a freshly authenticated user
func NewSession(userID uuid.UUID) *Session {
	return &Session{UserID: userID}
}

// IsImpersonating reports whether an impersonation overlay is active
func (s *Session) IsImpersonating() bool {
	return s.ImpersonatedUserID != nil && s.OriginalUserID != nil
}

// StartImpersonation overlays the session with a target identity.
// The actor must currently hold an administrative role; impersonating
// yourself is rejected.
func (s *Session) StartImpersonation(actor *User, targetID uuid.UUID) error {
	if actor == nil || !actor.CanImpersonate() {
		return shared.ErrForbidden
	}
	if targetID == actor.ID {
		return shared.NewDomainError("INVALID_INPUT", "Cannot impersonate yourself")
	}

	original := actor.ID
	s.ImpersonatedUserID = &targetID
	s.OriginalUserID = &original

	return nil
}

// ExitImpersonation clears the impersonation overlay and restores the
// original identity
func (s *Session) ExitImpersonation() error {
	if !s.IsImpersonating() {
		return shared.NewDomainError("INVALID_STATE", "Not currently impersonating")
	}

	s.UserID = *s.OriginalUserID
	s.ImpersonatedUserID = nil
	s.OriginalUserID = nil

	return nil
}

// ClearImpersonation drops the overlay without restoring state. Used when
// the overlay can no longer be honored, for example after the original
// account lost its administrative role.
func (s *Session) ClearImpersonation() {
	s.ImpersonatedUserID = nil
	s.OriginalUserID = nil
}
