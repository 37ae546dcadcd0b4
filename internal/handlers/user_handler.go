package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"influmatch_backend/internal/middleware"
	"influmatch_backend/internal/models"
	"influmatch_backend/internal/services"
	"influmatch_backend/internal/services/dto"
)

// UserHandler serves the admin user management endpoints plus the
// trial status endpoint for the authenticated user.
type UserHandler struct {
	*BaseHandler
	userService  services.UserService
	trialService services.TrialService
}

func NewUserHandler(base *BaseHandler, userService services.UserService, trialService services.TrialService) *UserHandler {
	return &UserHandler{BaseHandler: base, userService: userService, trialService: trialService}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	users := r.Group("/users")
	users.Use(authMW)
	{
		users.GET("/trial-status", h.TrialStatus)
	}

	admin := r.Group("/users")
	admin.Use(authMW, middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("", h.List)
		admin.POST("/:id/approve", h.Approve)
		admin.POST("/:id/deactivate", h.Deactivate)
	}
}

// List returns users filtered by role/approval/activity. Admin only.
func (h *UserHandler) List(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.UserListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.userService.ListUsers(adminID, query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Approve marks an influencer account as approved. Admin only.
func (h *UserHandler) Approve(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.ApproveUser(adminID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserDTO(user))
}

// Deactivate disables an account. Admin only.
func (h *UserHandler) Deactivate(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.userService.DeactivateUser(adminID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deactivated"})
}

// TrialStatus reports the caller's free trial state.
func (h *UserHandler) TrialStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	status, err := h.trialService.GetTrialStatus(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}
