package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wfl/dashboard-api/internal/core/domain"
)

// AuditRecorder accepts audit entries without blocking.
type AuditRecorder interface {
	Record(entry domain.AuditEntry)
}

// Audit records every successful mutating request. Reads and failed
// requests are not recorded.
func Audit(rec AuditRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			req := c.Request()
			if err != nil || !mutating(req.Method) {
				return err
			}

			status := c.Response().Status
			if status >= http.StatusBadRequest {
				return nil
			}

			entry := domain.AuditEntry{
				Method:    req.Method,
				Path:      req.URL.Path,
				Status:    status,
				RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
				At:        time.Now().UTC(),
			}
			if p := PrincipalFrom(c); p != nil {
				entry.ActorID = p.UserID
				entry.ActorEmail = p.Email
			}
			rec.Record(entry)
			return nil
		}
	}
}

func mutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}
