package handlers

import (
	"net/http"

	"github.com/bloghive/backend/internal/models"
	"github.com/bloghive/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// UserHandler handles profile-related HTTP requests
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterUserRoutes registers user-related routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/users/me", h.GetMe)
	g.GET("/users/search", h.SearchUsers)
	g.GET("/users/:id", h.GetProfile)
	g.PUT("/users/me/bio", h.UpdateBio)
	g.PUT("/users/me/profile-picture", h.UpdateProfilePicture)
}

// GetMe returns the current user's own profile
func (h *UserHandler) GetMe(c echo.Context) error {
	user := currentUser(c)

	profile, err := h.userService.GetProfile(user.ID, user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// GetProfile returns another user's profile with relationship counts
func (h *UserHandler) GetProfile(c echo.Context) error {
	user := currentUser(c)
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	profile, err := h.userService.GetProfile(userID, user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// SearchUsers finds users whose username contains the query string
func (h *UserHandler) SearchUsers(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Query parameter 'q' is required")
	}

	users, err := h.userService.SearchUsers(query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateBio updates the current user's bio
func (h *UserHandler) UpdateBio(c echo.Context) error {
	user := currentUser(c)

	var req models.UpdateBioRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.userService.UpdateBio(user.Username, req.Bio); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Bio updated"})
}

// UpdateProfilePicture updates the current user's profile picture URL
func (h *UserHandler) UpdateProfilePicture(c echo.Context) error {
	user := currentUser(c)

	var req models.UpdateProfilePictureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.userService.UpdateProfilePicture(user.Username, req.ProfilePictureURL); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Profile picture updated"})
}
