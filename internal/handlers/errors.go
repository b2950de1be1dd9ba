package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/bloghive/backend/internal/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler maps the engine's error kinds onto HTTP statuses in
// one place so handlers can return domain errors as-is.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Internal server error"

	var (
		httpErr     *echo.HTTPError
		notFound    *apperrors.NotFoundError
		forbidden   *apperrors.ForbiddenError
		selfFollow  *apperrors.SelfFollowError
		locked      *apperrors.ContentLockedError
		validation  *apperrors.ValidationError
		conflict    *apperrors.ConflictError
		fieldErrors validator.ValidationErrors
	)

	switch {
	case errors.As(err, &httpErr):
		status = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(status)
		}
	case errors.As(err, &notFound):
		status = http.StatusNotFound
		message = notFound.Error()
	case errors.As(err, &forbidden):
		status = http.StatusForbidden
		message = forbidden.Error()
	case errors.As(err, &selfFollow):
		status = http.StatusBadRequest
		message = selfFollow.Error()
	case errors.As(err, &locked):
		status = http.StatusForbidden
		message = locked.Error()
	case errors.As(err, &validation):
		status = http.StatusBadRequest
		message = validation.Error()
	case errors.As(err, &fieldErrors):
		status = http.StatusBadRequest
		message = fieldErrors.Error()
	case errors.As(err, &conflict):
		status = http.StatusConflict
		message = conflict.Error()
	}

	_ = c.JSON(status, echo.Map{
		"status":    status,
		"message":   message,
		"timestamp": time.Now().UTC(),
	})
}
