package usecase

import (
	"errors"
	"fmt"
	"strings"

	"course-portal/pkg/utils"
)

// Errors returned by the services. Handlers map them to HTTP statuses with errors.Is.
var (
	ErrValidation         = errors.New("validation failed")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrAlreadyPurchased   = fmt.Errorf("%w: course already purchased", ErrConflict)
)

// serviceError keeps a caller-facing message while matching one of the sentinels above.
type serviceError struct {
	kind error
	msg  string
}

func (e *serviceError) Error() string {
	return e.msg
}

func (e *serviceError) Unwrap() error {
	return e.kind
}

func newError(kind error, msg string) error {
	return &serviceError{kind: kind, msg: msg}
}

func notFound(what string) error {
	return newError(ErrNotFound, what+" not found")
}

// ValidationError carries per-field messages and matches ErrValidation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, utils.FormatValidationErrors(e.Fields))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func validate(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
