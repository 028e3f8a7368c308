package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/newwork/staffhub/internal/apperrors"
	"github.com/newwork/staffhub/internal/middleware"
)

// APIResponse is the uniform envelope for every endpoint.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

func respondCreated(c *gin.Context, data any, message string) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data, Message: message})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Message: message})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, APIResponse{Success: false, Error: message})
}

// errUnauthenticated is the error for requests that reach a handler without a
// session user in context. The auth middleware normally filters these out.
func errUnauthenticated() error {
	return apperrors.ErrUnauthorized
}

// errForbidden is the error for controller-level policy denials.
func errForbidden() error {
	return apperrors.ErrForbidden
}

// respondError maps a service error to its HTTP status. Unexpected errors
// come back as a generic 500; the detail stays server-side in the log.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, APIResponse{Success: false, Error: apperrors.Message(err)})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, APIResponse{Success: false, Error: apperrors.Message(err)})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, APIResponse{Success: false, Error: "Authentication required"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, APIResponse{Success: false, Error: "Access denied"})
	default:
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Unexpected error handling request", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, APIResponse{Success: false, Error: "Internal server error"})
	}
}
