package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/univendor/backend/internal/domain/shared"
)

// Role represents the access level of a user
type Role string

const (
	RoleBuyer      Role = "buyer"
	RoleSeller     Role = "seller"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// AllRoles lists every assignable role
var AllRoles = []Role{RoleBuyer, RoleSeller, RoleAdmin, RoleSuperAdmin}

// IsValid reports whether the role is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// IsAdministrative reports whether the role grants platform administration rights
func (r Role) IsAdministrative() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// User represents an account in the system
// It is the aggregate root for account-related operations
type User struct {
	shared.OwnedAggregateRoot
	Email           string `gorm:"type:varchar(200);not null;uniqueIndex"`
	FirstName       string `gorm:"type:varchar(100)"`
	LastName        string `gorm:"type:varchar(100)"`
	ProfileImageURL string `gorm:"type:varchar(500)"`
	Role            Role   `gorm:"type:varchar(20);not null;default:'buyer'"`
	IsEmailVerified bool   `gorm:"not null;default:false"`
	IsDeletable     bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user with the given role
func NewUser(email string, role Role) (*User, error) {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown role")
	}

	user := &User{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(),
		Email:              normalized,
		Role:               role,
		IsDeletable:        true,
	}

	user.AddDomainEvent(NewUserCreatedEvent(user))

	return user, nil
}

// NewBuyer creates a new buyer account with a verified email.
// Registration only happens after a successful code verification,
// so the email is trusted at this point.
func NewBuyer(email, firstName, lastName string) (*User, error) {
	user, err := NewUser(email, RoleBuyer)
	if err != nil {
		return nil, err
	}

	user.FirstName = strings.TrimSpace(firstName)
	user.LastName = strings.TrimSpace(lastName)
	user.IsEmailVerified = true

	return user, nil
}

// NewSystemAdmin creates the bootstrap platform administrator.
// The account cannot be deleted through the admin API.
func NewSystemAdmin(email string) (*User, error) {
	user, err := NewUser(email, RoleSuperAdmin)
	if err != nil {
		return nil, err
	}

	user.IsEmailVerified = true
	user.IsDeletable = false

	return user, nil
}

// ChangeRole changes the user's role
func (u *User) ChangeRole(role Role) error {
	if !role.IsValid() {
		return shared.NewDomainError("INVALID_ROLE", "Unknown role")
	}
	if u.Role == role {
		return nil
	}

	oldRole := u.Role
	u.Role = role
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	u.AddDomainEvent(NewUserRoleChangedEvent(u, oldRole, role))

	return nil
}

// MarkEmailVerified marks the user's email as verified
func (u *User) MarkEmailVerified() {
	if u.IsEmailVerified {
		return
	}
	u.IsEmailVerified = true
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
}

// SetProfile updates the user's profile fields
func (u *User) SetProfile(firstName, lastName, profileImageURL string) error {
	if len(firstName) > 100 || len(lastName) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 100 characters")
	}
	if len(profileImageURL) > 500 {
		return shared.NewDomainError("INVALID_PROFILE_IMAGE", "Profile image URL cannot exceed 500 characters")
	}

	u.FirstName = strings.TrimSpace(firstName)
	u.LastName = strings.TrimSpace(lastName)
	u.ProfileImageURL = profileImageURL
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// EnsureDeletable returns an error when the account is protected from deletion
func (u *User) EnsureDeletable() error {
	if !u.IsDeletable {
		return shared.NewDomainError("FORBIDDEN", "This user cannot be deleted")
	}
	return nil
}

// CanImpersonate reports whether the user may act on behalf of another account
func (u *User) CanImpersonate() bool {
	return u.Role.IsAdministrative()
}

// FullName returns the user's display name
func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Email
	}
	return name
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// NormalizeEmail lowercases and trims an email address, validating its format
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 {
		return "", shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return "", shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return email, nil
}
