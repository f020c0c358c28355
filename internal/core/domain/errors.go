package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated    = errors.New("could not validate credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")
)

// NotFoundError names the entity kind that could not be found.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ForbiddenError carries the reason an ownership rule denied the request.
type ForbiddenError struct {
	Reason string
}

func (e *ForbiddenError) Error() string {
	if e.Reason == "" {
		return ErrForbidden.Error()
	}
	return e.Reason
}
func (e *ForbiddenError) Unwrap() error { return ErrForbidden }

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }
func (e *ConflictError) Unwrap() error { return ErrConflict }

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

func NotFound(entity string) error { return &NotFoundError{Entity: entity} }

func Forbidden(reason string) error { return &ForbiddenError{Reason: reason} }

func Conflict(format string, args ...any) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

func Invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
