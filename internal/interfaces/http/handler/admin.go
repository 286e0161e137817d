package handler

import (
	identityapp "github.com/expenze/backend/internal/application/identity"
	settingsapp "github.com/expenze/backend/internal/application/settings"
	"github.com/expenze/backend/internal/interfaces/http/dto"
	"github.com/expenze/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler handles user management and system settings. Every
// route requires the admin role.
type AdminHandler struct {
	BaseHandler
	userService     *identityapp.UserService
	settingsService *settingsapp.Service
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(userService *identityapp.UserService, settingsService *settingsapp.Service) *AdminHandler {
	return &AdminHandler{
		userService:     userService,
		settingsService: settingsService,
	}
}

// ListUsers returns all registered users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, users)
}

// UpdateUser changes a user's role or verified flag
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}
	userID := uuid.MustParse(uri.ID)

	var req identityapp.AdminUpdateUserInput
	if !h.BindJSON(c, &req) {
		return
	}

	user, err := h.userService.AdminUpdateUser(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

// DeleteUser removes a user. Admins cannot delete themselves.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}
	targetID := uuid.MustParse(uri.ID)

	actorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.userService.AdminDeleteUser(c.Request.Context(), actorID, targetID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListSettings returns every setting including private ones
func (h *AdminHandler) ListSettings(c *gin.Context) {
	settings, err := h.settingsService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, settings)
}

// UpsertSetting writes a setting and invalidates the cached snapshot
func (h *AdminHandler) UpsertSetting(c *gin.Context) {
	var req settingsapp.UpsertSettingInput
	if !h.BindJSON(c, &req) {
		return
	}

	setting, err := h.settingsService.Upsert(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, setting)
}

// RegisterRoutes registers all admin routes
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/users", h.ListUsers)
		admin.PUT("/users/:id", h.UpdateUser)
		admin.DELETE("/users/:id", h.DeleteUser)
		admin.GET("/settings", h.ListSettings)
		admin.POST("/settings", h.UpsertSetting)
	}
}
