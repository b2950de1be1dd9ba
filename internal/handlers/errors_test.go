package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bloghive/backend/internal/apperrors"
	"github.com/labstack/echo/v4"
)

func errorStatus(t *testing.T, err error) int {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	HTTPErrorHandler(err, c)
	return rec.Code
}

func TestHTTPErrorHandler(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", apperrors.NewNotFound("post", 7), http.StatusNotFound},
		{"forbidden", &apperrors.ForbiddenError{Reason: "no"}, http.StatusForbidden},
		{"self follow", &apperrors.SelfFollowError{UserID: 1}, http.StatusBadRequest},
		{"content locked", &apperrors.ContentLockedError{PostID: 3}, http.StatusForbidden},
		{"validation", &apperrors.ValidationError{Reason: "bad"}, http.StatusBadRequest},
		{"conflict", &apperrors.ConflictError{Resource: "like"}, http.StatusConflict},
		{"echo error passthrough", echo.NewHTTPError(http.StatusTeapot, "short and stout"), http.StatusTeapot},
		{"unknown error", apperrors.Storage("op", http.ErrBodyNotAllowed), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := errorStatus(t, tc.err); got != tc.want {
				t.Errorf("status = %d, want %d", got, tc.want)
			}
		})
	}
}
