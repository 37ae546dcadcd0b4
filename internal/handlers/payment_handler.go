package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"influmatch_backend/internal/middleware"
	"influmatch_backend/internal/models"
	"influmatch_backend/internal/services"
	"influmatch_backend/internal/services/dto"
)

type PaymentHandler struct {
	*BaseHandler
	paymentService services.PaymentService
}

func NewPaymentHandler(base *BaseHandler, paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{BaseHandler: base, paymentService: paymentService}
}

func (h *PaymentHandler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	payments := r.Group("/payments")
	payments.Use(authMW)
	{
		payments.GET("", h.List)
		payments.GET("/:id", h.Get)
	}

	brand := r.Group("/payments")
	brand.Use(authMW, middleware.RequireRoles(models.UserRoleBrand))
	{
		brand.POST("", h.Create)
	}

	admin := r.Group("/payments")
	admin.Use(authMW, middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.POST("/:id/release", h.Release)
	}
}

// Create charges the brand and places the funds in escrow. Brand only.
func (h *PaymentHandler) Create(c *gin.Context) {
	brandID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePaymentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	payment, err := h.paymentService.CreatePayment(brandID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// Release pays out held funds to the influencer. Admin only.
func (h *PaymentHandler) Release(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	payment, err := h.paymentService.ReleasePayment(adminID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) Get(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	payment, err := h.paymentService.GetPayment(actorID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

// List returns the caller's payments, as payer or payee.
func (h *PaymentHandler) List(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	limit, offset := h.ParsePagination(c)
	payments, err := h.paymentService.GetUserPayments(actorID, limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payments": payments, "total": len(payments)})
}
