package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"influmatch_backend/internal/auth"
	"influmatch_backend/internal/handlers"
	"influmatch_backend/internal/middleware"
)

// RegisterRoutes mounts every HTTP route under /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, tokens *auth.TokenManager) {
	authMW := middleware.AuthMiddleware(tokens)

	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.Auth.RegisterRoutes(api, authMW)
		appHandlers.User.RegisterRoutes(api, authMW)
		appHandlers.Profile.RegisterRoutes(api, authMW)
		appHandlers.Campaign.RegisterRoutes(api, authMW)
		appHandlers.Payment.RegisterRoutes(api, authMW)
		appHandlers.Notification.RegisterRoutes(api, authMW)
		appHandlers.Plan.RegisterRoutes(api, authMW)
	}
}
