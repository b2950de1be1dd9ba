package handlers

import (
	"net/http"

	"github.com/bloghive/backend/internal/middleware"
	"github.com/bloghive/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// AdminHandler exposes the moderation surface. Every route requires the
// ADMIN role.
type AdminHandler struct {
	moderationService *services.ModerationService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(moderationService *services.ModerationService) *AdminHandler {
	return &AdminHandler{moderationService: moderationService}
}

// RegisterAdminRoutes registers admin-only routes under /admin
func (h *AdminHandler) RegisterAdminRoutes(g *echo.Group) {
	admin := g.Group("/admin", middleware.AdminRequired())

	admin.GET("/reports", h.ListReports)
	admin.PUT("/reports/:id/dismiss", h.DismissReport)
	admin.GET("/users", h.ListUsers)
	admin.PUT("/users/:id/ban", h.BanUser)
	admin.PUT("/users/:id/unban", h.UnbanUser)
	admin.DELETE("/users/:id", h.DeleteUser)
	admin.PUT("/posts/:id/hide", h.HidePost)
	admin.PUT("/posts/:id/unhide", h.UnhidePost)
}

// ListReports returns a cursor page of reports with their context
func (h *AdminHandler) ListReports(c echo.Context) error {
	page, err := h.moderationService.ListReports(parseCursor(c), parsePageSize(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// DismissReport marks a report as resolved without further action
func (h *AdminHandler) DismissReport(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.moderationService.DismissReport(id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Report dismissed"})
}

// ListUsers returns a cursor page of user profiles
func (h *AdminHandler) ListUsers(c echo.Context) error {
	page, err := h.moderationService.ListUsers(parseCursor(c), parsePageSize(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// BanUser disables a non-admin account
func (h *AdminHandler) BanUser(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.moderationService.BanUser(id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "User banned"})
}

// UnbanUser re-enables a disabled account
func (h *AdminHandler) UnbanUser(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.moderationService.UnbanUser(id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "User unbanned"})
}

// DeleteUser removes a user and all content tied to them
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.moderationService.DeleteUser(id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// HidePost hides a post from non-admin viewers
func (h *AdminHandler) HidePost(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.moderationService.SetPostVisibility(id, true); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Post hidden"})
}

// UnhidePost restores a hidden post
func (h *AdminHandler) UnhidePost(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.moderationService.SetPostVisibility(id, false); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Post restored"})
}
