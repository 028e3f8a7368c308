package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/newwork/staffhub/internal/core/domain"
	portssvc "github.com/newwork/staffhub/internal/core/ports/services"
	"github.com/newwork/staffhub/internal/dto"
	"github.com/newwork/staffhub/internal/middleware"
)

// profileHandler handles the role-filtered profile views and updates.
type profileHandler struct {
	profileService portssvc.ProfileSvcFacade
}

func newProfileHandler(ps portssvc.ProfileSvcFacade) *profileHandler {
	return &profileHandler{profileService: ps}
}

// registerProfileRoutes sets up the profile routes on an authenticated group.
func registerProfileRoutes(rg *gin.RouterGroup, profileService portssvc.ProfileSvcFacade) {
	h := newProfileHandler(profileService)

	profiles := rg.Group("/profiles")
	{
		profiles.GET("/list/all", middleware.RequireRoles(domain.RoleManager), h.listProfiles)
		profiles.GET("/browse", h.browseProfiles)
		profiles.GET("/departments/list", middleware.RequireRoles(domain.RoleManager), h.listDepartments)
		profiles.GET("/:profileId", h.getProfile)
		profiles.PUT("/:profileId", h.updateProfile)
	}
}

func (h *profileHandler) getProfile(c *gin.Context) {
	viewer, ok := middleware.GetSessionUser(c)
	if !ok {
		respondError(c, errUnauthenticated())
		return
	}

	view, err := h.profileService.GetProfile(c.Request.Context(), viewer, c.Param("profileId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, dto.ToProfileResponse(*view))
}

func (h *profileHandler) updateProfile(c *gin.Context) {
	viewer, ok := middleware.GetSessionUser(c)
	if !ok {
		respondError(c, errUnauthenticated())
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	view, err := h.profileService.UpdateProfile(c.Request.Context(), viewer, c.Param("profileId"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, dto.ToProfileResponse(*view))
}

func (h *profileHandler) listProfiles(c *gin.Context) {
	profiles, err := h.profileService.ListProfiles(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	rows := make([]dto.ProfileSummary, 0, len(profiles))
	for _, p := range profiles {
		rows = append(rows, dto.ToProfileSummary(p))
	}
	respondOK(c, rows)
}

func (h *profileHandler) browseProfiles(c *gin.Context) {
	profiles, err := h.profileService.BrowseProfiles(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	cards := make([]dto.ProfileCard, 0, len(profiles))
	for _, p := range profiles {
		cards = append(cards, dto.ToProfileCard(p))
	}
	respondOK(c, cards)
}

func (h *profileHandler) listDepartments(c *gin.Context) {
	departments, err := h.profileService.ListDepartments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, departments)
}
