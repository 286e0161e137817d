package identity

import (
	"time"

	"github.com/expenze/backend/internal/domain/identity"
	"github.com/expenze/backend/internal/infrastructure/auth"
	"github.com/shopspring/decimal"
)

// RegisterInput is the registration payload
type RegisterInput struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"max=32"`
	Password string `json:"password" binding:"required,min=6"`
}

// VerifyOTPInput confirms a pending registration
type VerifyOTPInput struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

// LoginInput is the login payload
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshInput carries a refresh token
type RefreshInput struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UserDTO is the API representation of a user
type UserDTO struct {
	ID            string          `json:"id"`
	Username      string          `json:"username"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone,omitempty"`
	Role          string          `json:"role"`
	IsVerified    bool            `json:"is_verified"`
	DefaultBudget decimal.Decimal `json:"default_budget"`
	CreatedAt     time.Time       `json:"created_at"`
}

// AuthResult is returned by login, verify-otp, and refresh
type AuthResult struct {
	User   UserDTO         `json:"user"`
	Tokens *auth.TokenPair `json:"tokens"`
}

// RegistrationStatusDTO reports the state of a pending registration
type RegistrationStatusDTO struct {
	Email          string    `json:"email"`
	DeliveryStatus string    `json:"delivery_status"`
	DeliveryError  string    `json:"delivery_error,omitempty"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// UpdateProfileInput updates the caller's own profile
type UpdateProfileInput struct {
	Phone         string          `json:"phone" binding:"max=32"`
	DefaultBudget decimal.Decimal `json:"default_budget"`
}

// RequestEmailChangeInput starts an email change
type RequestEmailChangeInput struct {
	NewEmail string `json:"new_email" binding:"required,email"`
}

// VerifyEmailChangeInput confirms an email change
type VerifyEmailChangeInput struct {
	Code string `json:"code" binding:"required,len=6"`
}

// AdminUpdateUserInput is the admin user-management payload
type AdminUpdateUserInput struct {
	Role       *string `json:"role" binding:"omitempty,oneof=user admin"`
	IsVerified *bool   `json:"is_verified"`
}

func toUserDTO(u *identity.User) UserDTO {
	return UserDTO{
		ID:            u.ID.String(),
		Username:      u.Username,
		Email:         u.Email,
		Phone:         u.Phone,
		Role:          string(u.Role),
		IsVerified:    u.IsVerified,
		DefaultBudget: u.DefaultBudget,
		CreatedAt:     u.CreatedAt,
	}
}

func toRegistrationStatusDTO(v *identity.Verification) RegistrationStatusDTO {
	return RegistrationStatusDTO{
		Email:          v.Email,
		DeliveryStatus: string(v.DeliveryStatus),
		DeliveryError:  v.DeliveryError,
		ExpiresAt:      v.ExpiresAt,
	}
}
