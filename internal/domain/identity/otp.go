package identity

import (
	"crypto/rand"
	"math/big"
	"strings"
	"time"

	"github.com/univendor/backend/internal/domain/shared"
)

// DefaultOtpTTL is how long a login code stays valid
const DefaultOtpTTL = 5 * time.Minute

// otp codes are six digits, uniformly drawn from [100000, 999999]
const (
	otpMin  = 100000
	otpSpan = 900000
)

// OtpCode represents a one-time login code issued for an email address.
// Codes are single-use and expire after a short window.
type OtpCode struct {
	shared.BaseEntity
	Email     string    `gorm:"type:varchar(200);not null;index"`
	Code      string    `gorm:"type:varchar(10);not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	IsUsed    bool      `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (OtpCode) TableName() string {
	return "otp_codes"
}

// NewOtpCode issues a fresh code for the given email with the given lifetime
func NewOtpCode(email string, ttl time.Duration) (*OtpCode, error) {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = DefaultOtpTTL
	}

	code, err := GenerateCode()
	if err != nil {
		return nil, err
	}

	return &OtpCode{
		BaseEntity: shared.NewBaseEntity(),
		Email:      normalized,
		Code:       code,
		ExpiresAt:  time.Now().Add(ttl),
	}, nil
}

// GenerateCode returns a six-digit numeric code drawn uniformly from
// [100000, 999999] using a cryptographically secure source
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpSpan))
	if err != nil {
		return "", shared.NewDomainError("CODE_GENERATION_FAILED", "Failed to generate login code")
	}
	return big.NewInt(0).Add(n, big.NewInt(otpMin)).String(), nil
}

// Matches reports whether the submitted code matches this one.
// Comparison ignores case and surrounding whitespace.
func (o *OtpCode) Matches(submitted string) bool {
	return strings.EqualFold(o.Code, strings.TrimSpace(submitted))
}

// IsExpired reports whether the code has passed its expiry
func (o *OtpCode) IsExpired() bool {
	return time.Now().After(o.ExpiresAt)
}

// Consume marks the code as used. A code can only be consumed once
// and only while valid.
func (o *OtpCode) Consume() error {
	if o.IsUsed {
		return shared.NewDomainError("INVALID_STATE", "Code has already been used")
	}
	if o.IsExpired() {
		return shared.NewDomainError("INVALID_STATE", "Code has expired")
	}

	o.IsUsed = true
	o.UpdatedAt = time.Now()

	return nil
}
