package handler

import (
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wfl/dashboard-api/internal/api/middleware"
	"github.com/wfl/dashboard-api/internal/core/domain"
)

// principal returns the caller resolved by the Authenticate middleware.
// Handlers behind Authenticate can rely on it being non-nil; the check here
// turns a routing mistake into a 401 instead of a nil dereference.
func principal(c echo.Context) (*domain.Principal, error) {
	p := middleware.PrincipalFrom(c)
	if p == nil {
		return nil, domain.ErrUnauthenticated
	}
	return p, nil
}

// bindStrict decodes a JSON body into dst, rejecting unknown fields, and
// runs the registered validator on the result.
func bindStrict(c echo.Context, dst any) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Invalid("request body is required")
		}
		return domain.Invalid("invalid request body: %s", err.Error())
	}
	if dec.More() {
		return domain.Invalid("invalid request body: trailing data")
	}
	return c.Validate(dst)
}

// queryError converts echo's binder error into a validation error.
func queryError(err error) error {
	if err == nil {
		return nil
	}
	var be *echo.BindingError
	if errors.As(err, &be) {
		return domain.Invalid("invalid query parameter %q", be.Field)
	}
	return domain.Invalid("invalid query parameters")
}

// optionalBool reads a boolean query parameter, returning nil when absent.
func optionalBool(c echo.Context, name string) (*bool, error) {
	if c.QueryParam(name) == "" {
		return nil, nil
	}
	var v bool
	if err := echo.QueryParamsBinder(c).Bool(name, &v).BindError(); err != nil {
		return nil, queryError(err)
	}
	return &v, nil
}

// queryTime reads an RFC 3339 timestamp query parameter. Absent means zero.
func queryTime(c echo.Context, name string) (time.Time, error) {
	var t time.Time
	if err := echo.QueryParamsBinder(c).Time(name, &t, time.RFC3339).BindError(); err != nil {
		return time.Time{}, queryError(err)
	}
	return t, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
