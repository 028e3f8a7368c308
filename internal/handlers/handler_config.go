package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/newwork/staffhub/internal/core/domain"
)

// registerConfigRoutes exposes the shared application constants so the
// frontend can stay in sync with server-side validation. Public route.
func registerConfigRoutes(rg *gin.RouterGroup) {
	rg.GET("/config", func(c *gin.Context) {
		respondOK(c, domain.CurrentAppConfig())
	})
}
