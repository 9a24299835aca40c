// Package common holds the response envelopes and request helpers shared by
// every handler package.
package common

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/finops/backoffice/pkg/apperr"
	"github.com/finops/backoffice/pkg/query"
)

// SuccessEnvelope is the uniform success response wrapper.
type SuccessEnvelope struct {
	Success     bool   `json:"success"`
	Data        any    `json:"data"`
	SuccessCode string `json:"successCode"`
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"`
	StatusCode  int    `json:"statusCode"`
}

// ErrorBody is the inner payload of the uniform error envelope.
type ErrorBody struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	ErrorCode  string `json:"errorCode"`
	Details    any    `json:"details,omitempty"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path"`
	Method     string `json:"method"`
}

// ErrorEnvelope is the uniform error response wrapper.
type ErrorEnvelope struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// ListPayload is the data block of every paginated list response.
type ListPayload struct {
	Data           any               `json:"data"`
	Pagination     query.Pagination  `json:"pagination"`
	FiltersApplied map[string]any    `json:"filters_applied"`
	SearchApplied  string            `json:"search_applied,omitempty"`
	SortApplied    query.SortApplied `json:"sort_applied"`
}

// AutocompletePayload is the data block of every autocomplete response.
type AutocompletePayload struct {
	Data         any    `json:"data"`
	SearchQuery  string `json:"search_query"`
	ResultCount  int    `json:"result_count"`
	LimitApplied int    `json:"limit_applied"`
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// WriteSuccess writes the success envelope with the given status.
func WriteSuccess(c *fiber.Ctx, status int, successCode, message string, data any) error {
	return c.Status(status).JSON(SuccessEnvelope{
		Success:     true,
		Data:        data,
		SuccessCode: successCode,
		Message:     message,
		Timestamp:   now(),
		StatusCode:  status,
	})
}

// WriteError coerces err into the error taxonomy and writes the error
// envelope, echoing the request path and method.
func WriteError(c *fiber.Ctx, err error) error {
	appErr := apperr.From(err)
	return c.Status(appErr.Status).JSON(ErrorEnvelope{
		Success: false,
		Error: ErrorBody{
			StatusCode: appErr.Status,
			Message:    appErr.Message,
			ErrorCode:  appErr.Code,
			Details:    appErr.Details,
			Timestamp:  now(),
			Path:       c.Path(),
			Method:     c.Method(),
		},
	})
}
