package handlers

import (
	"net/http"
	"strconv"

	"github.com/bloghive/backend/internal/models"
	"github.com/labstack/echo/v4"
)

// Context keys set by the auth middleware.
const (
	ContextKeyUser = "currentUser"
)

// currentUser returns the authenticated user the middleware attached, or
// nil for unauthenticated requests.
func currentUser(c echo.Context) *models.User {
	user, _ := c.Get(ContextKeyUser).(*models.User)
	return user
}

func parseIDParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name)
	}
	return uint(id), nil
}

// parseCursor reads the optional cursor query parameter; absent or
// malformed means "start from the newest row".
func parseCursor(c echo.Context) *uint {
	raw := c.QueryParam("cursor")
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	cursor := uint(v)
	return &cursor
}

func parsePageSize(c echo.Context) int {
	size, _ := strconv.Atoi(c.QueryParam("size"))
	if size < 1 || size > 50 {
		return 10
	}
	return size
}
