package handlers

import (
	"net/http"

	"github.com/bloghive/backend/internal/models"
	"github.com/bloghive/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// ReportHandler handles report submission by regular users
type ReportHandler struct {
	moderationService *services.ModerationService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(moderationService *services.ModerationService) *ReportHandler {
	return &ReportHandler{moderationService: moderationService}
}

// RegisterReportRoutes registers report-related routes
func (h *ReportHandler) RegisterReportRoutes(g *echo.Group) {
	g.POST("/reports", h.SubmitReport)
}

// SubmitReport files a report against a user or a post
func (h *ReportHandler) SubmitReport(c echo.Context) error {
	user := currentUser(c)

	var req models.CreateReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	report, err := h.moderationService.SubmitReport(user.ID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, report)
}
