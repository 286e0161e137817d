package identity

import (
	"strings"
	"time"

	"github.com/expenze/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// EmailChangeRequest is a pending email change for an existing user. The
// OTP goes to the new address; at most one request per user is kept.
type EmailChangeRequest struct {
	shared.BaseEntity
	UserID    uuid.UUID
	NewEmail  string
	OTPCode   string
	ExpiresAt time.Time
}

func NewEmailChangeRequest(userID uuid.UUID, newEmail string, ttl time.Duration) (*EmailChangeRequest, error) {
	newEmail = normalizeEmail(newEmail)
	if err := validateEmail(newEmail); err != nil {
		return nil, err
	}
	code, err := GenerateOTP()
	if err != nil {
		return nil, err
	}
	return &EmailChangeRequest{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		NewEmail:   newEmail,
		OTPCode:    code,
		ExpiresAt:  time.Now().Add(ttl),
	}, nil
}

func (r *EmailChangeRequest) Confirm(code string) error {
	if time.Now().After(r.ExpiresAt) {
		return ErrOTPExpired
	}
	if r.OTPCode != strings.TrimSpace(code) {
		return ErrInvalidOTP
	}
	return nil
}
