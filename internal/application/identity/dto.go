package identity

import (
	"time"

	"github.com/univendor/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// RequestCodeRequest asks for a one-time login code
type RequestCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// VerifyCodeRequest redeems a one-time login code
type VerifyCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,min=4,max=10"`
}

// RegisterRequest creates a buyer account
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"firstName" binding:"max=100"`
	LastName  string `json:"lastName" binding:"max=100"`
}

// UpdateRoleRequest changes a user's role
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID              uuid.UUID  `json:"id"`
	Email           string     `json:"email"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	ProfileImageURL string     `json:"profileImageUrl,omitempty"`
	Role            string     `json:"role"`
	IsEmailVerified bool       `json:"isEmailVerified"`
	IsDeletable     bool       `json:"isDeletable"`
	CreatedBy       *uuid.UUID `json:"createdBy,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// ToUserResponse converts a domain user to a response DTO
func ToUserResponse(u *identity.User) *UserResponse {
	return &UserResponse{
		ID:              u.ID,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		ProfileImageURL: u.ProfileImageURL,
		Role:            string(u.Role),
		IsEmailVerified: u.IsEmailVerified,
		IsDeletable:     u.IsDeletable,
		CreatedBy:       u.GetCreatedBy(),
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

// AuthStateResponse describes the authenticated caller, including any
// active impersonation overlay
type AuthStateResponse struct {
	User            *UserResponse `json:"user"`
	IsImpersonating bool          `json:"isImpersonating"`
	OriginalUser    *UserResponse `json:"originalUser,omitempty"`
}

// ToAuthStateResponse converts a resolved principal into an auth state DTO
func ToAuthStateResponse(p *Principal) *AuthStateResponse {
	resp := &AuthStateResponse{
		User:            ToUserResponse(p.User),
		IsImpersonating: p.IsImpersonating(),
	}
	if p.OriginalUser != nil {
		resp.OriginalUser = ToUserResponse(p.OriginalUser)
	}
	return resp
}

// VerifyCodeResponse is the outcome of redeeming a login code. When the
// email has no account yet, RequiresRegistration is set and no session
// is issued.
type VerifyCodeResponse struct {
	User                 *UserResponse `json:"user,omitempty"`
	RequiresRegistration bool          `json:"requiresRegistration"`
}
