package handler

import (
	identityapp "github.com/expenze/backend/internal/application/identity"
	"github.com/gin-gonic/gin"
)

// UserHandler handles the authenticated user's profile endpoints
type UserHandler struct {
	BaseHandler
	userService *identityapp.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *identityapp.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetProfile returns the caller's profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	profile, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, profile)
}

// UpdateProfile updates phone and default budget
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req identityapp.UpdateProfileInput
	if !h.BindJSON(c, &req) {
		return
	}

	profile, err := h.userService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, profile)
}

// RequestEmailChange sends an OTP to the new address
func (h *UserHandler) RequestEmailChange(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req identityapp.RequestEmailChangeInput
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.userService.RequestEmailChange(c.Request.Context(), userID, req); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Verification code sent to the new address"})
}

// VerifyEmailChange confirms the OTP and applies the new address
func (h *UserHandler) VerifyEmailChange(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req identityapp.VerifyEmailChangeInput
	if !h.BindJSON(c, &req) {
		return
	}

	profile, err := h.userService.VerifyEmailChange(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, profile)
}

// RegisterRoutes registers all profile routes
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	profile := rg.Group("/profile")
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
		profile.POST("/email-change", h.RequestEmailChange)
		profile.POST("/email-change/verify", h.VerifyEmailChange)
	}
}
