package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/newwork/staffhub/internal/core/domain"
	"github.com/newwork/staffhub/internal/core/policy"
	portssvc "github.com/newwork/staffhub/internal/core/ports/services"
	"github.com/newwork/staffhub/internal/dto"
	"github.com/newwork/staffhub/internal/middleware"
)

// absenceHandler handles the absence request lifecycle.
type absenceHandler struct {
	absenceService portssvc.AbsenceSvcFacade
}

func newAbsenceHandler(as portssvc.AbsenceSvcFacade) *absenceHandler {
	return &absenceHandler{absenceService: as}
}

// registerAbsenceRoutes sets up the absence routes on an authenticated group.
func registerAbsenceRoutes(rg *gin.RouterGroup, absenceService portssvc.AbsenceSvcFacade) {
	h := newAbsenceHandler(absenceService)

	absence := rg.Group("/absence")
	{
		absence.GET("/all", middleware.RequireRoles(domain.RoleManager), h.listAll)
		absence.GET("/employee/:employeeId", h.listByEmployee)
		absence.POST("/employee/:employeeId", h.createRequest)
		absence.GET("/employee/:employeeId/statistics", h.statistics)
		absence.PUT("/:requestId/status", middleware.RequireRoles(domain.RoleManager), h.updateStatus)
		absence.DELETE("/:requestId/employee/:employeeId", h.deleteRequest)
	}
}

func (h *absenceHandler) listAll(c *gin.Context) {
	requests, err := h.absenceService.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, requests)
}

func (h *absenceHandler) listByEmployee(c *gin.Context) {
	requests, err := h.absenceService.ListByEmployee(c.Request.Context(), c.Param("employeeId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, requests)
}

func (h *absenceHandler) createRequest(c *gin.Context) {
	var req dto.CreateAbsenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "startDate, endDate and reason are required")
		return
	}

	created, err := h.absenceService.CreateRequest(c.Request.Context(), c.Param("employeeId"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, created, "Absence request submitted successfully")
}

func (h *absenceHandler) statistics(c *gin.Context) {
	stats, err := h.absenceService.Statistics(c.Request.Context(), c.Param("employeeId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, stats)
}

func (h *absenceHandler) updateStatus(c *gin.Context) {
	manager, ok := middleware.GetSessionUser(c)
	if !ok {
		respondError(c, errUnauthenticated())
		return
	}

	var req dto.UpdateAbsenceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Status must be one of pending, approved, rejected")
		return
	}

	updated, err := h.absenceService.UpdateStatus(c.Request.Context(), c.Param("requestId"), req.Status, manager.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, updated)
}

func (h *absenceHandler) deleteRequest(c *gin.Context) {
	viewer, ok := middleware.GetSessionUser(c)
	if !ok {
		respondError(c, errUnauthenticated())
		return
	}

	employeeID := c.Param("employeeId")
	if !policy.CanDeleteAbsence(viewer, employeeID) {
		respondError(c, errForbidden())
		return
	}

	if err := h.absenceService.DeleteRequest(c.Request.Context(), c.Param("requestId"), employeeID); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Absence request deleted successfully")
}
