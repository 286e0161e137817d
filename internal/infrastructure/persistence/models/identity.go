package models

import (
	"time"

	"github.com/expenze/backend/internal/domain/identity"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserModel maps identity.User to the users table
type UserModel struct {
	BaseModel
	Username      string          `gorm:"size:50;not null;uniqueIndex"`
	Email         string          `gorm:"size:255;not null;uniqueIndex"`
	Phone         string          `gorm:"size:32"`
	PasswordHash  string          `gorm:"size:255;not null"`
	Role          string          `gorm:"size:16;not null;default:user"`
	IsVerified    bool            `gorm:"not null;default:true"`
	DefaultBudget decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseEntity:    m.BaseModel.ToDomain(),
		Username:      m.Username,
		Email:         m.Email,
		Phone:         m.Phone,
		PasswordHash:  m.PasswordHash,
		Role:          identity.Role(m.Role),
		IsVerified:    m.IsVerified,
		DefaultBudget: m.DefaultBudget,
	}
}

func (m *UserModel) FromDomainUser(u *identity.User) {
	m.BaseModel.FromDomain(u.BaseEntity)
	m.Username = u.Username
	m.Email = u.Email
	m.Phone = u.Phone
	m.PasswordHash = u.PasswordHash
	m.Role = string(u.Role)
	m.IsVerified = u.IsVerified
	m.DefaultBudget = u.DefaultBudget
}

// VerificationModel maps identity.Verification to the user_verifications
// table. Email is unique so re-registering replaces the pending record.
type VerificationModel struct {
	BaseModel
	Email          string    `gorm:"size:255;not null;uniqueIndex"`
	Username       string    `gorm:"size:50;not null"`
	Phone          string    `gorm:"size:32"`
	PasswordHash   string    `gorm:"size:255;not null"`
	OTPCode        string    `gorm:"size:6;not null"`
	ExpiresAt      time.Time `gorm:"not null"`
	DeliveryStatus string    `gorm:"size:16;not null;default:pending"`
	DeliveryError  string    `gorm:"size:512"`
}

func (VerificationModel) TableName() string { return "user_verifications" }

func (m *VerificationModel) ToDomain() *identity.Verification {
	return &identity.Verification{
		BaseEntity:     m.BaseModel.ToDomain(),
		Email:          m.Email,
		Username:       m.Username,
		Phone:          m.Phone,
		PasswordHash:   m.PasswordHash,
		OTPCode:        m.OTPCode,
		ExpiresAt:      m.ExpiresAt,
		DeliveryStatus: identity.DeliveryStatus(m.DeliveryStatus),
		DeliveryError:  m.DeliveryError,
	}
}

func (m *VerificationModel) FromDomainVerification(v *identity.Verification) {
	m.BaseModel.FromDomain(v.BaseEntity)
	m.Email = v.Email
	m.Username = v.Username
	m.Phone = v.Phone
	m.PasswordHash = v.PasswordHash
	m.OTPCode = v.OTPCode
	m.ExpiresAt = v.ExpiresAt
	m.DeliveryStatus = string(v.DeliveryStatus)
	m.DeliveryError = v.DeliveryError
}

// EmailChangeModel maps identity.EmailChangeRequest to the
// email_change_requests table. One pending request per user.
type EmailChangeModel struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	NewEmail  string    `gorm:"size:255;not null"`
	OTPCode   string    `gorm:"size:6;not null"`
	ExpiresAt time.Time `gorm:"not null"`
}

func (EmailChangeModel) TableName() string { return "email_change_requests" }

func (m *EmailChangeModel) ToDomain() *identity.EmailChangeRequest {
	return &identity.EmailChangeRequest{
		BaseEntity: m.BaseModel.ToDomain(),
		UserID:     m.UserID,
		NewEmail:   m.NewEmail,
		OTPCode:    m.OTPCode,
		ExpiresAt:  m.ExpiresAt,
	}
}

func (m *EmailChangeModel) FromDomainRequest(r *identity.EmailChangeRequest) {
	m.BaseModel.FromDomain(r.BaseEntity)
	m.UserID = r.UserID
	m.NewEmail = r.NewEmail
	m.OTPCode = r.OTPCode
	m.ExpiresAt = r.ExpiresAt
}
