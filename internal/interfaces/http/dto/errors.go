package dto

import "net/http"

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation error codes
const (
	// ErrCodeValidation is the base code for validation errors
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
)

// Authentication error codes
const (
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	// ErrCodeForbidden is used when the user lacks permission
	ErrCodeForbidden = "ERR_FORBIDDEN"
	// ErrCodeTokenExpired is used when the auth token has expired
	ErrCodeTokenExpired = "ERR_TOKEN_EXPIRED"
	// ErrCodeTokenInvalid is used when the auth token is invalid
	ErrCodeTokenInvalid = "ERR_TOKEN_INVALID"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "ERR_CONFLICT"
)

// Rate limiting error codes
const (
	// ErrCodeRateLimited is used when rate limit is exceeded
	ErrCodeRateLimited = "ERR_RATE_LIMITED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes. Domain
// error codes are listed alongside the transport-level ones so handlers
// can pass any DomainError straight through.
var ErrorCodeHTTPStatus = map[string]int{
	// General errors
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	// Validation and input errors -> 400 Bad Request
	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,

	// Auth errors
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeTokenExpired: http.StatusUnauthorized,
	ErrCodeTokenInvalid: http.StatusUnauthorized,

	// Resource errors
	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeConflict:      http.StatusConflict,

	// Rate limiting -> 429 Too Many Requests
	ErrCodeRateLimited: http.StatusTooManyRequests,

	// Identity domain
	"ERR_INVALID_USERNAME":      http.StatusBadRequest,
	"ERR_INVALID_EMAIL":         http.StatusBadRequest,
	"ERR_WEAK_PASSWORD":         http.StatusBadRequest,
	"ERR_INVALID_ROLE":          http.StatusBadRequest,
	"ERR_NEGATIVE_BUDGET":       http.StatusBadRequest,
	"ERR_USER_EXISTS":           http.StatusConflict,
	"ERR_EMAIL_TAKEN":           http.StatusConflict,
	"ERR_INVALID_CREDENTIALS":   http.StatusUnauthorized,
	"ERR_INVALID_OTP":           http.StatusBadRequest,
	"ERR_OTP_EXPIRED":           http.StatusBadRequest,
	"ERR_NO_PENDING_SIGNUP":     http.StatusNotFound,
	"ERR_NO_PENDING_CHANGE":     http.StatusNotFound,
	"ERR_SELF_DELETE_FORBIDDEN": http.StatusForbidden,

	// Planning domain
	"ERR_INVALID_MONTH_KEY":  http.StatusBadRequest,
	"ERR_EMPTY_NAME":         http.StatusBadRequest,
	"ERR_NEGATIVE_AMOUNT":    http.StatusBadRequest,
	"ERR_INVERTED_WINDOW":    http.StatusBadRequest,
	"ERR_INVALID_FREQUENCY":  http.StatusBadRequest,
	"ERR_CATEGORY_NOT_FOUND": http.StatusNotFound,
	"ERR_TEMPLATE_NOT_FOUND": http.StatusNotFound,
	"ERR_ITEM_NOT_FOUND":     http.StatusNotFound,
	"ERR_PLAN_NOT_FOUND":     http.StatusNotFound,
	// scoped lookups answer 404 so existence is not leaked across users
	"ERR_CATEGORY_NOT_OWNED": http.StatusNotFound,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
