// Package apperr defines the application error model: a single tagged error
// value carrying an HTTP status, a machine-readable code and an optional
// structured details payload, constructed through per-kind factories.
package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies an error into one of the taxonomy buckets the API exposes.
type Kind int

const (
	KindValidation Kind = iota
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindRouteNotFound
	KindConflict
	KindRateLimit
	KindBusinessLogic
	KindAuthenticationFailed
	KindDatabase
	KindExternalService
	KindPDFGeneration
	KindBadGateway
	KindServiceUnavailable
	KindInternal
)

// Error is the single error value used across services and handlers.
type Error struct {
	Kind    Kind
	Status  int
	Code    string
	Message string
	Details any
	Err     error // wrapped cause, not serialized
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, status int, code, message string) *Error {
	return &Error{Kind: kind, Status: status, Code: code, Message: message}
}

// WithDetails attaches a structured details payload and returns the error.
func (e *Error) WithDetails(details any) *Error {
	e.Details = details
	return e
}

// Validation reports invalid client input detected before any query runs.
func Validation(message string) *Error {
	return newError(KindValidation, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR", message)
}

// ValidationField reports a validation failure naming the offending field.
func ValidationField(field, message string) *Error {
	return Validation(message).WithDetails(map[string]string{"field": field})
}

func BadRequest(message string) *Error {
	return newError(KindBadRequest, fiber.StatusBadRequest, "BAD_REQUEST", message)
}

func Unauthorized(message string) *Error {
	return newError(KindUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED", message)
}

func Forbidden(message string) *Error {
	return newError(KindForbidden, fiber.StatusForbidden, "FORBIDDEN", message)
}

// NotFound reports a missing resource, including no-op guarded deletes.
func NotFound(message string) *Error {
	return newError(KindNotFound, fiber.StatusNotFound, "NOT_FOUND", message)
}

// RouteNotFound is produced by the catch-all handler for unknown paths.
func RouteNotFound(message string, knownRoutes []string) *Error {
	e := newError(KindRouteNotFound, fiber.StatusNotFound, "ROUTE_NOT_FOUND", message)
	return e.WithDetails(map[string]any{"available_routes": knownRoutes})
}

func Conflict(message string) *Error {
	return newError(KindConflict, fiber.StatusConflict, "CONFLICT", message)
}

func RateLimit(message string) *Error {
	return newError(KindRateLimit, fiber.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", message)
}

func BusinessLogic(message string) *Error {
	return newError(KindBusinessLogic, fiber.StatusUnprocessableEntity, "BUSINESS_LOGIC_ERROR", message)
}

func AuthenticationFailed(message string) *Error {
	return newError(KindAuthenticationFailed, fiber.StatusUnauthorized, "AUTHENTICATION_FAILED", message)
}

// Database wraps an infrastructure failure from the persistence layer.
// The cause is retained for logging but never serialized to the client.
func Database(err error) *Error {
	e := newError(KindDatabase, fiber.StatusInternalServerError, "DATABASE_ERROR", "database operation failed")
	e.Err = err
	return e
}

func ExternalService(message string, err error) *Error {
	e := newError(KindExternalService, fiber.StatusBadGateway, "EXTERNAL_SERVICE_ERROR", message)
	e.Err = err
	return e
}

func PDFGeneration(err error) *Error {
	e := newError(KindPDFGeneration, fiber.StatusInternalServerError, "PDF_GENERATION_ERROR", "report rendering failed")
	e.Err = err
	return e
}

func BadGateway(message string) *Error {
	return newError(KindBadGateway, fiber.StatusBadGateway, "BAD_GATEWAY", message)
}

func ServiceUnavailable(message string) *Error {
	return newError(KindServiceUnavailable, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", message)
}

func Internal(err error) *Error {
	e := newError(KindInternal, fiber.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal server error")
	e.Err = err
	return e
}

// From coerces any error into an *Error. Unknown errors become INTERNAL_SERVER_ERROR
// so infrastructure details never leak into a response body.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		switch fiberErr.Code {
		case fiber.StatusNotFound:
			return NotFound(fiberErr.Message)
		case fiber.StatusBadRequest:
			return BadRequest(fiberErr.Message)
		default:
			return Internal(err)
		}
	}
	return Internal(err)
}
