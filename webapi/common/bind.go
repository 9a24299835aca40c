package common

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/finops/backoffice/pkg/apperr"
)

var validate = validator.New()

// BindAndValidate parses the JSON body into T and runs the struct tags
// through go-playground/validator. Failures come back as field-level
// validation errors ready for the envelope.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, apperr.BadRequest("request body must be valid JSON")
	}
	if err := validate.Struct(input); err != nil {
		var fieldErrs validator.ValidationErrors
		if ok := isValidationErrors(err, &fieldErrs); ok {
			details := make(map[string]string, len(fieldErrs))
			for _, fe := range fieldErrs {
				details[fieldName(fe)] = validationMessage(fe)
			}
			return nil, apperr.Validation("request validation failed").WithDetails(details)
		}
		return nil, apperr.Validation(err.Error())
	}
	return &input, nil
}

func isValidationErrors(err error, target *validator.ValidationErrors) bool {
	ve, ok := err.(validator.ValidationErrors)
	if ok {
		*target = ve
	}
	return ok
}

// fieldName converts the Go field name to the snake_case used in payloads.
func fieldName(fe validator.FieldError) string {
	var b strings.Builder
	for i, r := range fe.Field() {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "numeric":
		return "must contain digits only"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}

// ParseID extracts the :id path parameter as a positive integer.
func ParseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, apperr.ValidationField("id", "id must be a positive integer")
	}
	return id, nil
}

// QueryValues exposes the raw query string as url.Values so repeated and
// bracketed parameters (ids, ids[]) survive; fiber's own query map collapses
// repeats.
func QueryValues(c *fiber.Ctx) (url.Values, error) {
	vs, err := url.ParseQuery(string(c.Request().URI().QueryString()))
	if err != nil {
		return nil, apperr.BadRequest("malformed query string")
	}
	return vs, nil
}

// SearchTerm normalizes the search parameter: surrounding whitespace is
// trimmed and a blank term means no search.
func SearchTerm(vs url.Values) string {
	return strings.TrimSpace(vs.Get("search"))
}

// AutocompleteLimit resolves the autocomplete result cap from the request,
// falling back to def and clamping at max.
func AutocompleteLimit(vs url.Values, def, max int) (int, error) {
	raw := strings.TrimSpace(vs.Get("limit"))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, apperr.ValidationField("limit", "limit must be a positive integer")
	}
	if n > max {
		n = max
	}
	return n, nil
}
