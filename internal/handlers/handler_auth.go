package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/newwork/staffhub/internal/core/ports/services"
	"github.com/newwork/staffhub/internal/dto"
	"github.com/newwork/staffhub/internal/middleware"
)

// authHandler handles login, logout and session introspection.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes sets up the authentication routes. Login is rate
// limited per client IP.
func registerAuthRoutes(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade) {
	h := newAuthHandler(authService)

	// 5 login attempts per minute per IP
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	limitMiddleware := limitergin.NewMiddleware(limiter.New(store, rate))

	auth := rg.Group("/auth")
	{
		auth.POST("/login", limitMiddleware, h.login)
		auth.POST("/logout", h.logout)
		auth.GET("/me", middleware.SessionAuthMiddleware(authService), h.me)
	}
}

func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Email and role are required")
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Role)
	if err != nil {
		logger.Warn("Login failed", slog.String("email", req.Email))
		c.JSON(http.StatusUnauthorized, APIResponse{Success: false, Error: "Invalid credentials"})
		return
	}

	respondOK(c, dto.LoginResponse{User: *user, Token: token})
}

func (h *authHandler) logout(c *gin.Context) {
	if token, ok := middleware.BearerToken(c); ok {
		h.authService.Logout(c.Request.Context(), token)
	}
	respondMessage(c, "Logged out successfully")
}

func (h *authHandler) me(c *gin.Context) {
	user, ok := middleware.GetSessionUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIResponse{Success: false, Error: "Not authenticated"})
		return
	}
	respondOK(c, dto.MeResponse{User: user})
}
