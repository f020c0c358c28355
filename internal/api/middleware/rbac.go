package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/wfl/dashboard-api/internal/api/metrics"
	"github.com/wfl/dashboard-api/internal/core/domain"
	"github.com/wfl/dashboard-api/internal/core/policy"
)

// Authorizer decides whether a principal may perform an operation.
type Authorizer interface {
	Authorize(p *domain.Principal, op policy.Operation) error
}

// RBAC enforces the role table for op. It must run after Authenticate.
func RBAC(authz Authorizer, op policy.Operation) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := authz.Authorize(PrincipalFrom(c), op); err != nil {
				metrics.AuthorizationDeniedTotal.WithLabelValues(string(op)).Inc()
				return err
			}
			return next(c)
		}
	}
}
