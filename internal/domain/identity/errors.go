package identity

import "github.com/expenze/backend/internal/domain/shared"

var (
	ErrInvalidUsername     = shared.NewDomainError("ERR_INVALID_USERNAME", "username must be between 3 and 50 characters")
	ErrInvalidEmail        = shared.NewDomainError("ERR_INVALID_EMAIL", "invalid email address")
	ErrWeakPassword        = shared.NewDomainError("ERR_WEAK_PASSWORD", "password must be at least 6 characters")
	ErrInvalidRole         = shared.NewDomainError("ERR_INVALID_ROLE", "role must be user or admin")
	ErrNegativeBudget      = shared.NewDomainError("ERR_NEGATIVE_BUDGET", "default budget cannot be negative")
	ErrUserExists          = shared.NewDomainError("ERR_USER_EXISTS", "username or email already registered")
	ErrEmailTaken          = shared.NewDomainError("ERR_EMAIL_TAKEN", "email already registered")
	ErrInvalidCredentials  = shared.NewDomainError("ERR_INVALID_CREDENTIALS", "invalid email or password")
	ErrInvalidOTP          = shared.NewDomainError("ERR_INVALID_OTP", "invalid verification code")
	ErrOTPExpired          = shared.NewDomainError("ERR_OTP_EXPIRED", "verification code has expired")
	ErrNoPendingSignup     = shared.NewDomainError("ERR_NO_PENDING_SIGNUP", "no pending registration for this email")
	ErrNoPendingChange     = shared.NewDomainError("ERR_NO_PENDING_CHANGE", "no pending email change request")
	ErrSelfDeleteForbidden = shared.NewDomainError("ERR_SELF_DELETE", "admins cannot delete their own account")
)
