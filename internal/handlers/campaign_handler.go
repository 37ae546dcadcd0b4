package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"influmatch_backend/internal/middleware"
	"influmatch_backend/internal/models"
	"influmatch_backend/internal/services"
	"influmatch_backend/internal/services/dto"
)

type CampaignHandler struct {
	*BaseHandler
	campaignService services.CampaignService
}

func NewCampaignHandler(base *BaseHandler, campaignService services.CampaignService) *CampaignHandler {
	return &CampaignHandler{BaseHandler: base, campaignService: campaignService}
}

func (h *CampaignHandler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	campaigns := r.Group("/campaigns")
	campaigns.Use(authMW)
	{
		campaigns.GET("", h.List)
		campaigns.GET("/:id", h.Get)
	}

	brand := r.Group("/campaigns")
	brand.Use(authMW, middleware.RequireRoles(models.UserRoleBrand))
	{
		brand.POST("", h.Create)
		brand.POST("/:id/cancel", h.Cancel)
	}

	influencer := r.Group("/campaigns")
	influencer.Use(authMW, middleware.RequireRoles(models.UserRoleInfluencer))
	{
		influencer.POST("/:id/accept", h.Accept)
		influencer.POST("/:id/reject", h.Reject)
		influencer.POST("/:id/negotiate", h.Negotiate)
	}

	// Completion can come from the brand or from an admin resolving a
	// dispute; the service checks the actor against the campaign.
	completion := r.Group("/campaigns")
	completion.Use(authMW, middleware.RequireRoles(models.UserRoleBrand, models.UserRoleAdmin))
	{
		completion.POST("/:id/complete", h.Complete)
	}
}

// Create submits a campaign proposal to an influencer. Brand only.
func (h *CampaignHandler) Create(c *gin.Context) {
	brandID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCampaignRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	campaign, err := h.campaignService.CreateCampaign(brandID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, campaign)
}

func (h *CampaignHandler) Get(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	campaign, err := h.campaignService.GetCampaign(actorID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// List returns the caller's campaigns, as brand or as influencer.
func (h *CampaignHandler) List(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.CampaignListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	campaigns, err := h.campaignService.GetUserCampaigns(actorID, query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"campaigns": campaigns, "total": len(campaigns)})
}

// Accept moves a proposal to active. Influencer only.
func (h *CampaignHandler) Accept(c *gin.Context) {
	h.transition(c, h.campaignService.AcceptCampaign)
}

// Reject declines a proposal, with an optional reason passed on to the
// brand. Influencer only.
func (h *CampaignHandler) Reject(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	// The body is optional; reject without a reason is a bare POST.
	var req dto.RejectCampaignRequest
	if c.Request.ContentLength > 0 {
		if !h.BindAndValidate_JSON(c, &req) {
			return
		}
	}

	campaign, err := h.campaignService.RejectCampaign(actorID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// Negotiate counters the proposed budget. Influencer only.
func (h *CampaignHandler) Negotiate(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.NegotiateCampaignRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	campaign, err := h.campaignService.NegotiateCampaign(actorID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// Complete marks an active campaign as delivered. Brand or admin.
func (h *CampaignHandler) Complete(c *gin.Context) {
	h.transition(c, h.campaignService.CompleteCampaign)
}

// Cancel withdraws a proposal before it is accepted. Brand only.
func (h *CampaignHandler) Cancel(c *gin.Context) {
	h.transition(c, h.campaignService.CancelCampaign)
}

func (h *CampaignHandler) transition(c *gin.Context, fn func(actorID, campaignID string) (*models.Campaign, error)) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	campaign, err := fn(actorID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}
