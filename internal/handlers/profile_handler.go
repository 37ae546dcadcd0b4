package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"influmatch_backend/internal/middleware"
	"influmatch_backend/internal/models"
	"influmatch_backend/internal/services"
	"influmatch_backend/internal/services/dto"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{BaseHandler: base, profileService: profileService}
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	profiles := r.Group("/profiles")
	profiles.Use(authMW)
	{
		profiles.GET("", h.List)
		profiles.GET("/:id", h.Get)
	}

	// Profile ownership endpoints, influencers only.
	mine := r.Group("/profiles")
	mine.Use(authMW, middleware.RequireRoles(models.UserRoleInfluencer))
	{
		mine.POST("", h.Create)
		mine.GET("/me", h.GetMe)
		mine.PUT("/me", h.UpdateMe)
	}
}

// Create sets up the influencer's public profile.
func (h *ProfileHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.profileService.CreateProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// UpdateMe applies a partial update to the caller's own profile.
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpdateMyProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetMe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetMyProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// List returns the influencer catalogue. Browsing the list is free;
// only the detail view goes through the trial gate.
func (h *ProfileHandler) List(c *gin.Context) {
	var query dto.ProfileListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	profiles, err := h.profileService.ListProfiles(query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profiles": profiles, "total": len(profiles)})
}

// Get returns a single influencer profile, enforcing the viewer's
// subscription or trial entitlement.
func (h *ProfileHandler) Get(c *gin.Context) {
	viewerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(viewerID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
