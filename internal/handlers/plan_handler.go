package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"influmatch_backend/internal/middleware"
	"influmatch_backend/internal/models"
	"influmatch_backend/internal/services"
	"influmatch_backend/internal/services/dto"
)

// PlanHandler serves the subscription plan catalogue and the
// simplified subscription checkout.
type PlanHandler struct {
	*BaseHandler
	planService services.PlanService
}

func NewPlanHandler(base *BaseHandler, planService services.PlanService) *PlanHandler {
	return &PlanHandler{BaseHandler: base, planService: planService}
}

func (h *PlanHandler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	public := r.Group("/plans")
	{
		public.GET("", h.List)
		public.GET("/:id", h.Get)
	}

	admin := r.Group("/plans")
	admin.Use(authMW, middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}

	subscriptions := r.Group("/subscriptions")
	subscriptions.Use(authMW, middleware.RequireRoles(models.UserRoleBrand))
	{
		subscriptions.POST("/activate", h.Subscribe)
	}
}

// List returns the active plans, public.
func (h *PlanHandler) List(c *gin.Context) {
	plans, err := h.planService.GetPlans()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

func (h *PlanHandler) Get(c *gin.Context) {
	plan, err := h.planService.GetPlan(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// Create adds a plan to the catalogue. Admin only.
func (h *PlanHandler) Create(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePlanRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	plan, err := h.planService.CreatePlan(adminID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// Update edits a plan. Admin only.
func (h *PlanHandler) Update(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePlanRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	plan, err := h.planService.UpdatePlan(adminID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// Delete removes a plan. Admin only.
func (h *PlanHandler) Delete(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.planService.DeletePlan(adminID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Plan deleted"})
}

// Subscribe activates a subscription for the calling brand.
func (h *PlanHandler) Subscribe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ActivateSubscriptionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.planService.ActivateSubscription(userID, req.PlanID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscription activated"})
}
