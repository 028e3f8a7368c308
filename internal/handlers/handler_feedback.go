package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/newwork/staffhub/internal/core/domain"
	"github.com/newwork/staffhub/internal/core/policy"
	portssvc "github.com/newwork/staffhub/internal/core/ports/services"
	"github.com/newwork/staffhub/internal/dto"
	"github.com/newwork/staffhub/internal/middleware"
)

// feedbackHandler handles peer feedback and AI text enhancement.
type feedbackHandler struct {
	feedbackService portssvc.FeedbackSvcFacade
}

func newFeedbackHandler(fs portssvc.FeedbackSvcFacade) *feedbackHandler {
	return &feedbackHandler{feedbackService: fs}
}

// registerFeedbackRoutes sets up the feedback routes on an authenticated
// group. Enhancement calls an external model, so it gets its own rate limit.
func registerFeedbackRoutes(rg *gin.RouterGroup, feedbackService portssvc.FeedbackSvcFacade) {
	h := newFeedbackHandler(feedbackService)

	// 5 enhancement calls per minute per IP
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	enhanceLimit := limitergin.NewMiddleware(limiter.New(store, rate))

	feedback := rg.Group("/feedback")
	{
		feedback.GET("/received", h.listReceived)
		feedback.POST("/enhance", enhanceLimit, h.enhance)
		feedback.GET("/profiles/:profileId", h.listForProfile)
		feedback.POST("/profiles/:profileId", h.createFeedback)
		feedback.GET("/:feedbackId", h.getFeedback)
		feedback.PUT("/:feedbackId", h.updateFeedback)
		feedback.DELETE("/:feedbackId", h.deleteFeedback)
	}
}

func (h *feedbackHandler) createFeedback(c *gin.Context) {
	author, ok := middleware.GetSessionUser(c)
	if !ok {
		respondError(c, errUnauthenticated())
		return
	}

	var req dto.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Feedback content is required")
		return
	}

	created, err := h.feedbackService.CreateFeedback(c.Request.Context(), author, c.Param("profileId"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, created, "Feedback submitted successfully")
}

func (h *feedbackHandler) listForProfile(c *gin.Context) {
	viewer, ok := middleware.GetSessionUser(c)
	if !ok {
		respondError(c, errUnauthenticated())
		return
	}

	entries, err := h.feedbackService.ListForProfile(c.Request.Context(), viewer, c.Param("profileId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, entries)
}

func (h *feedbackHandler) listReceived(c *gin.Context) {
	viewer, ok := middleware.GetSessionUser(c)
	if !ok {
		respondError(c, errUnauthenticated())
		return
	}

	entries, err := h.feedbackService.ListReceived(c.Request.Context(), viewer)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, entries)
}

func (h *feedbackHandler) getFeedback(c *gin.Context) {
	viewer, ok := middleware.GetSessionUser(c)
	if !ok {
		respondError(c, errUnauthenticated())
		return
	}

	entry, err := h.feedbackService.GetFeedbackByID(c.Request.Context(), c.Param("feedbackId"))
	if err != nil {
		respondError(c, err)
		return
	}
	if viewer.Role != domain.RoleManager && viewer.ID != entry.ToUserID && viewer.ID != entry.FromUserID {
		respondError(c, errForbidden())
		return
	}
	respondOK(c, entry)
}

func (h *feedbackHandler) updateFeedback(c *gin.Context) {
	viewer, ok := middleware.GetSessionUser(c)
	if !ok {
		respondError(c, errUnauthenticated())
		return
	}

	entry, err := h.feedbackService.GetFeedbackByID(c.Request.Context(), c.Param("feedbackId"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !policy.CanDeleteFeedback(viewer, *entry) {
		respondError(c, errForbidden())
		return
	}

	var req dto.UpdateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.feedbackService.UpdateFeedback(c.Request.Context(), c.Param("feedbackId"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, updated)
}

func (h *feedbackHandler) deleteFeedback(c *gin.Context) {
	viewer, ok := middleware.GetSessionUser(c)
	if !ok {
		respondError(c, errUnauthenticated())
		return
	}

	if err := h.feedbackService.DeleteFeedback(c.Request.Context(), viewer, c.Param("feedbackId")); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Feedback deleted successfully")
}

func (h *feedbackHandler) enhance(c *gin.Context) {
	var req dto.EnhanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Text is required")
		return
	}

	enhanced := h.feedbackService.Enhance(c.Request.Context(), req.Text, req.EmployeeName)
	respondOK(c, dto.EnhanceResponse{
		OriginalText: req.Text,
		EnhancedText: enhanced,
		IsEnhanced:   enhanced != req.Text,
	})
}
