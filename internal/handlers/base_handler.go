package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"influmatch_backend/internal/appErrors"
	"influmatch_backend/internal/logger"
	"influmatch_backend/internal/middleware"
	"influmatch_backend/internal/validator"
)

// BaseHandler carries the helpers shared by every HTTP handler.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// BindAndValidate_JSON binds the JSON body into obj and runs the custom
// validation rules on top of gin's binding tags.
func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWarn(c.Request.Context(), "JSON binding failed", "error", err)
		appErrors.HandleError(c, appErrors.NewBadRequestError(err.Error()))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			appErrors.HandleError(c, appErrors.ValidationError(vErr.Errors))
		} else {
			appErrors.HandleError(c, err)
		}
		return false
	}
	return true
}

// BindAndValidate_Query does the same for query string parameters.
func (h *BaseHandler) BindAndValidate_Query(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		logger.CtxWarn(c.Request.Context(), "query binding failed", "error", err)
		appErrors.HandleError(c, appErrors.NewBadRequestError(err.Error()))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			appErrors.HandleError(c, appErrors.ValidationError(vErr.Errors))
		} else {
			appErrors.HandleError(c, err)
		}
		return false
	}
	return true
}

// HandleServiceError maps a service error onto the HTTP response.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	appErrors.HandleError(c, err)
}

// GetAndAuthorizeUserID returns the authenticated user's ID or aborts
// with 401 when the auth middleware did not run.
func (h *BaseHandler) GetAndAuthorizeUserID(c *gin.Context) (string, bool) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return "", false
	}
	return userID, true
}

func (h *BaseHandler) ParseQueryInt(c *gin.Context, key string, defaultValue int) int {
	valStr := c.Query(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultValue
	}
	return val
}

// ParsePagination normalizes page/page_size query params into
// limit/offset. Page size is capped at 100.
func (h *BaseHandler) ParsePagination(c *gin.Context) (limit, offset int) {
	page := h.ParseQueryInt(c, "page", 1)
	pageSize := h.ParseQueryInt(c, "page_size", 20)

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return pageSize, (page - 1) * pageSize
}
