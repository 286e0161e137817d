package identity

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/expenze/backend/internal/domain/shared"
)

// DeliveryStatus tracks the OTP email lifecycle. Sending is asynchronous,
// so the status lets the client poll how the mail fared.
type DeliveryStatus string

const (
	DeliveryPending DeliveryStatus = "pending"
	DeliverySent    DeliveryStatus = "sent"
	DeliveryFailed  DeliveryStatus = "failed"
)

// Verification is a pending registration keyed by email. Re-registering
// the same email replaces the previous record; confirming the OTP promotes
// it to a User and deletes it.
type Verification struct {
	shared.BaseEntity
	Email          string
	Username       string
	Phone          string
	PasswordHash   string
	OTPCode        string
	ExpiresAt      time.Time
	DeliveryStatus DeliveryStatus
	DeliveryError  string
}

// NewVerification hashes the password and issues a fresh OTP valid for ttl.
func NewVerification(username, email, phone, password string, ttl time.Duration) (*Verification, error) {
	username = strings.TrimSpace(username)
	email = normalizeEmail(email)
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	code, err := GenerateOTP()
	if err != nil {
		return nil, err
	}
	return &Verification{
		BaseEntity:     shared.NewBaseEntity(),
		Email:          email,
		Username:       username,
		Phone:          strings.TrimSpace(phone),
		PasswordHash:   hash,
		OTPCode:        code,
		ExpiresAt:      time.Now().Add(ttl),
		DeliveryStatus: DeliveryPending,
	}, nil
}

// Refresh issues a new OTP and resets the delivery state.
func (v *Verification) Refresh(ttl time.Duration) error {
	code, err := GenerateOTP()
	if err != nil {
		return err
	}
	v.OTPCode = code
	v.ExpiresAt = time.Now().Add(ttl)
	v.DeliveryStatus = DeliveryPending
	v.DeliveryError = ""
	v.Touch()
	return nil
}

// Confirm checks the submitted code. Expiry is checked before the code so
// a stale-but-correct code still reports expiry.
func (v *Verification) Confirm(code string) error {
	if time.Now().After(v.ExpiresAt) {
		return ErrOTPExpired
	}
	if v.OTPCode != strings.TrimSpace(code) {
		return ErrInvalidOTP
	}
	return nil
}

func (v *Verification) MarkSent() {
	v.DeliveryStatus = DeliverySent
	v.DeliveryError = ""
	v.Touch()
}

func (v *Verification) MarkFailed(reason string) {
	v.DeliveryStatus = DeliveryFailed
	v.DeliveryError = reason
	v.Touch()
}

// GenerateOTP returns a 6-digit code from crypto/rand.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", shared.WrapDomainError("ERR_OTP_GENERATE", "failed to generate verification code", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
