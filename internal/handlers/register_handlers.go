package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	portssvc "github.com/newwork/staffhub/internal/core/ports/services"
	"github.com/newwork/staffhub/internal/middleware"
	"github.com/newwork/staffhub/internal/platform/config"
)

// RegisterRoutes sets up all API routes for the application.
func RegisterRoutes(r *gin.Engine, services *portssvc.ServiceContainer, cfg *config.Config) {
	registerCustomValidators()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendBaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Public routes
	registerAuthRoutes(api, services.Auth)
	registerConfigRoutes(api)

	// Authenticated routes
	authed := api.Group("")
	authed.Use(middleware.SessionAuthMiddleware(services.Auth))
	{
		registerProfileRoutes(authed, services.Profile)
		registerAbsenceRoutes(authed, services.Absence)
		registerFeedbackRoutes(authed, services.Feedback)
	}
}
