package handler

import (
	identityapp "github.com/expenze/backend/internal/application/identity"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login endpoints. All of its
// routes are public; the JWT middleware skips them.
type AuthHandler struct {
	BaseHandler
	authService *identityapp.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *identityapp.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register starts a registration: the account stays pending until the
// emailed OTP is confirmed.
func (h *AuthHandler) Register(c *gin.Context) {
	var req identityapp.RegisterInput
	if !h.BindJSON(c, &req) {
		return
	}

	status, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, status)
}

// VerifyOTP confirms the emailed code and returns the first token pair.
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req identityapp.VerifyOTPInput
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.authService.VerifyOTP(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// ResendOTPRequest asks for a fresh code for a pending registration
type ResendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResendOTP issues and emails a fresh code
func (h *AuthHandler) ResendOTP(c *gin.Context) {
	var req ResendOTPRequest
	if !h.BindJSON(c, &req) {
		return
	}

	status, err := h.authService.ResendOTP(c.Request.Context(), req.Email)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, status)
}

// RegistrationStatus reports delivery state for a pending registration
func (h *AuthHandler) RegistrationStatus(c *gin.Context) {
	email := c.Param("email")
	if email == "" {
		h.BadRequest(c, "Email is required")
		return
	}

	status, err := h.authService.RegistrationStatus(c.Request.Context(), email)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, status)
}

// Login authenticates with email and password
func (h *AuthHandler) Login(c *gin.Context) {
	var req identityapp.LoginInput
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Refresh exchanges a refresh token for a new token pair
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req identityapp.RefreshInput
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// RegisterRoutes registers all auth routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/verify-otp", h.VerifyOTP)
		auth.POST("/resend-otp", h.ResendOTP)
		auth.GET("/registration-status/:email", h.RegistrationStatus)
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.Refresh)
	}
}
