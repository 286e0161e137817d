package identity

import (
	"strings"

	"github.com/expenze/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Role determines which parts of the API a user can reach.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

const bcryptCost = 10

// User is a verified account. Unverified registrations live in
// Verification until the OTP is confirmed; only then is a User created.
type User struct {
	shared.BaseEntity
	Username      string
	Email         string
	Phone         string
	PasswordHash  string
	Role          Role
	IsVerified    bool
	DefaultBudget decimal.Decimal
}

// NewUser creates a verified user with a freshly hashed password.
func NewUser(username, email, password string) (*User, error) {
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
	return &User{
		BaseEntity:    shared.NewBaseEntity(),
		Username:      username,
		Email:         email,
		PasswordHash:  hash,
		Role:          RoleUser,
		IsVerified:    true,
		DefaultBudget: decimal.Zero,
	}, nil
}

// NewUserFromVerification promotes a confirmed registration into a user,
// reusing the already-hashed password.
func NewUserFromVerification(v *Verification) *User {
	return &User{
		BaseEntity:    shared.NewBaseEntity(),
		Username:      v.Username,
		Email:         v.Email,
		Phone:         v.Phone,
		PasswordHash:  v.PasswordHash,
		Role:          RoleUser,
		IsVerified:    true,
		DefaultBudget: decimal.Zero,
	}
}

// VerifyPassword compares a plaintext candidate against the stored hash.
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ChangePassword validates and re-hashes the password.
func (u *User) ChangePassword(password string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	u.Touch()
	return nil
}

func (u *User) UpdateProfile(phone string, defaultBudget decimal.Decimal) error {
	if defaultBudget.IsNegative() {
		return ErrNegativeBudget
	}
	u.Phone = strings.TrimSpace(phone)
	u.DefaultBudget = defaultBudget
	u.Touch()
	return nil
}

func (u *User) ChangeEmail(email string) error {
	email = normalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return err
	}
	u.Email = email
	u.Touch()
	return nil
}

func (u *User) SetRole(role Role) error {
	if !role.Valid() {
		return ErrInvalidRole
	}
	u.Role = role
	u.Touch()
	return nil
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HashPassword validates password strength and returns the bcrypt hash.
func HashPassword(password string) (string, error) {
	if len(password) < 6 {
		return "", ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", shared.WrapDomainError("ERR_PASSWORD_HASH", "failed to hash password", err)
	}
	return string(hash), nil
}

func validateUsername(username string) error {
	if len(username) < 3 || len(username) > 50 {
		return ErrInvalidUsername
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) < 5 || !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return ErrInvalidEmail
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
