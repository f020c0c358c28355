package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/wfl/dashboard-api/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"unauthenticated", domain.ErrUnauthenticated, http.StatusUnauthorized, `{"error":"Could not validate credentials"}`},
		{"invalid token", fmt.Errorf("resolve: %w", domain.ErrInvalidToken), http.StatusUnauthorized, `{"error":"Could not validate credentials"}`},
		{"bad login", domain.ErrInvalidCredentials, http.StatusUnauthorized, `{"error":"Incorrect email or password"}`},
		{"throttled", domain.ErrTooManyAttempts, http.StatusTooManyRequests, `{"error":"Too many failed login attempts, try again later"}`},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, `{"error":"Insufficient permissions"}`},
		{"forbidden with reason", domain.Forbidden("Cannot modify this task"), http.StatusForbidden, `{"error":"Cannot modify this task"}`},
		{"not found", fmt.Errorf("get: %w", domain.NotFound("Task")), http.StatusNotFound, `{"error":"Task not found"}`},
		{"conflict", domain.Conflict("Email already registered"), http.StatusConflict, `{"error":"Email already registered"}`},
		{"invalid", domain.Invalid("limit must be between 1 and %d", 100), http.StatusUnprocessableEntity, `{"error":"limit must be between 1 and 100"}`},
		{"echo error", echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), http.StatusMethodNotAllowed, `{"error":"Method Not Allowed"}`},
		{"unexpected", errors.New("mongo: connection reset"), http.StatusInternalServerError, `{"error":"internal server error"}`},
	}

	h := NewHTTPErrorHandler(zerolog.Nop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			h(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			if tt.wantCode == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
			} else {
				assert.Empty(t, rec.Header().Get(echo.HeaderWWWAuthenticate))
			}
		})
	}
}

func TestHTTPErrorHandler_SkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.NoContent(http.StatusNoContent)

	NewHTTPErrorHandler(zerolog.Nop())(domain.ErrForbidden, c)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
