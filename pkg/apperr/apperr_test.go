package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/finops/backoffice/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoriesCarryStatusAndCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        *apperr.Error
		wantStatus int
		wantCode   string
	}{
		{"validation", apperr.Validation("bad input"), 422, "VALIDATION_ERROR"},
		{"not found", apperr.NotFound("no such client"), 404, "NOT_FOUND"},
		{"route not found", apperr.RouteNotFound("unknown", []string{"/api/v1/clients"}), 404, "ROUTE_NOT_FOUND"},
		{"database", apperr.Database(errors.New("conn refused")), 500, "DATABASE_ERROR"},
		{"rate limit", apperr.RateLimit("too many requests"), 429, "RATE_LIMIT_EXCEEDED"},
		{"pdf", apperr.PDFGeneration(errors.New("render")), 500, "PDF_GENERATION_ERROR"},
		{"external", apperr.ExternalService("upstream", errors.New("timeout")), 502, "EXTERNAL_SERVICE_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantStatus, tt.err.Status)
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

func TestValidationFieldNamesOffendingField(t *testing.T) {
	t.Parallel()

	err := apperr.ValidationField("min_amount", "min_amount must be a number")
	details, ok := err.Details.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "min_amount", details["field"])
}

func TestFromUnwrapsTaggedErrors(t *testing.T) {
	t.Parallel()

	orig := apperr.NotFound("gone")
	wrapped := fmt.Errorf("while deleting: %w", orig)
	assert.Same(t, orig, apperr.From(wrapped))
}

func TestFromCoercesUnknownToInternal(t *testing.T) {
	t.Parallel()

	got := apperr.From(errors.New("boom"))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", got.Code)
	assert.Equal(t, 500, got.Status)
}

func TestDatabaseRetainsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("deadlock")
	err := apperr.Database(cause)
	assert.ErrorIs(t, err, cause)
	assert.Nil(t, err.Details)
}
