package webapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finops/backoffice/pkg/config"
	"github.com/finops/backoffice/pkg/dto"
	clientsvc "github.com/finops/backoffice/pkg/service/client"
)

// fakeClientRepo serves a fixed data set so handler behavior can be checked
// without a database.
type fakeClientRepo struct {
	rows     []*dto.ClientRead
	total    int64
	names    []*dto.NameRead
	lastQ    dto.EntityListQuery
	lastTerm string
	lastCap  int
}

func (f *fakeClientRepo) Create(_ context.Context, create *dto.ClientCreate) (*dto.ClientRead, error) {
	return &dto.ClientRead{ID: 1, Name: create.Name}, nil
}

func (f *fakeClientRepo) Get(_ context.Context, id int64) (*dto.ClientRead, error) {
	for _, r := range f.rows {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeClientRepo) Update(context.Context, int64, *dto.ClientUpdate) (*dto.ClientRead, error) {
	return nil, nil
}

func (f *fakeClientRepo) Delete(context.Context, int64) (int64, error) { return 0, nil }

func (f *fakeClientRepo) Exists(context.Context, int64) (bool, error) { return true, nil }

func (f *fakeClientRepo) ListPaginated(_ context.Context, q dto.EntityListQuery) ([]*dto.ClientRead, int64, error) {
	f.lastQ = q
	offset := q.Page.Offset()
	if offset >= len(f.rows) {
		return nil, f.total, nil
	}
	end := offset + q.Page.Limit
	if end > len(f.rows) {
		end = len(f.rows)
	}
	return f.rows[offset:end], f.total, nil
}

func (f *fakeClientRepo) Autocomplete(_ context.Context, term string, limit int) ([]*dto.NameRead, error) {
	f.lastTerm = term
	f.lastCap = limit
	if limit > len(f.names) {
		limit = len(f.names)
	}
	return f.names[:limit], nil
}

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		Env: "test",
		Server: config.ServerConfig{
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		Pagination: config.PaginationConfig{
			DefaultLimit:         50,
			MaxLimit:             100,
			AutocompleteLimit:    5,
			AutocompleteMaxLimit: 10,
			ReportMaxRows:        1000,
		},
		RateLimit: config.RateLimitConfig{MaxRequests: 1000, Window: time.Minute},
	}
}

func newTestApp(repo *fakeClientRepo) *fiber.App {
	logger := slog.New(slog.DiscardHandler)
	return NewApp(Services{
		Clients: clientsvc.New(repo, logger),
	}, testConfig(), logger)
}

func doRequest(t *testing.T, app *fiber.App, method, target string, body string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint: errcheck

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))
	return resp.StatusCode, payload
}

func seedRows(n int) []*dto.ClientRead {
	rows := make([]*dto.ClientRead, n)
	for i := range rows {
		rows[i] = &dto.ClientRead{ID: int64(i + 1), Name: "Client"}
	}
	return rows
}

func TestPaginatedEnvelopeShape(t *testing.T) {
	repo := &fakeClientRepo{rows: seedRows(60), total: 150}
	app := newTestApp(repo)

	status, payload := doRequest(t, app, http.MethodGet, "/api/v1/clients/paginated?page=2&limit=25", "")

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, "CLIENTS_RETRIEVED", payload["successCode"])
	assert.EqualValues(t, http.StatusOK, payload["statusCode"])

	data := payload["data"].(map[string]any)
	pagination := data["pagination"].(map[string]any)
	assert.EqualValues(t, 2, pagination["current_page"])
	assert.EqualValues(t, 25, pagination["per_page"])
	assert.EqualValues(t, 150, pagination["total_count"])
	assert.EqualValues(t, 6, pagination["total_pages"])
	assert.Equal(t, true, pagination["has_next_page"])
	assert.Equal(t, true, pagination["has_previous_page"])

	sort := data["sort_applied"].(map[string]any)
	assert.Equal(t, "name", sort["sort_by"])
	assert.Equal(t, "asc", sort["sort_order"])
}

func TestPageBeyondEndIsEmptyNotError(t *testing.T) {
	repo := &fakeClientRepo{rows: seedRows(3), total: 3}
	app := newTestApp(repo)

	status, payload := doRequest(t, app, http.MethodGet, "/api/v1/clients/paginated?page=50", "")

	require.Equal(t, http.StatusOK, status)
	data := payload["data"].(map[string]any)
	assert.Empty(t, data["data"])
	pagination := data["pagination"].(map[string]any)
	assert.EqualValues(t, 50, pagination["current_page"])
	assert.Equal(t, false, pagination["has_next_page"])
}

func TestUnknownSortKeyFallsBackToDefault(t *testing.T) {
	repo := &fakeClientRepo{rows: seedRows(3), total: 3}
	app := newTestApp(repo)

	status, payload := doRequest(t, app, http.MethodGet, "/api/v1/clients/paginated?sort_by=password;drop&sort_order=sideways", "")

	require.Equal(t, http.StatusOK, status)
	data := payload["data"].(map[string]any)
	sort := data["sort_applied"].(map[string]any)
	assert.Equal(t, "name", sort["sort_by"])
	assert.Equal(t, "asc", sort["sort_order"])
	assert.Equal(t, "clients.name", repo.lastQ.Sort.Column)
}

func TestMalformedPageIsValidationError(t *testing.T) {
	app := newTestApp(&fakeClientRepo{})

	status, payload := doRequest(t, app, http.MethodGet, "/api/v1/clients/paginated?page=abc", "")

	require.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, false, payload["success"])
	errBody := payload["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_ERROR", errBody["errorCode"])
	assert.Equal(t, "/api/v1/clients/paginated", errBody["path"])
	assert.Equal(t, http.MethodGet, errBody["method"])
}

func TestAutocompleteCapsLimit(t *testing.T) {
	names := make([]*dto.NameRead, 20)
	for i := range names {
		names[i] = &dto.NameRead{ID: int64(i + 1), Name: "Client"}
	}
	repo := &fakeClientRepo{names: names}
	app := newTestApp(repo)

	status, payload := doRequest(t, app, http.MethodGet, "/api/v1/clients/autocomplete?search=cli&limit=50", "")

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 10, repo.lastCap, "limit must clamp at the hard cap")
	data := payload["data"].(map[string]any)
	assert.Equal(t, "cli", data["search_query"])
	assert.EqualValues(t, 10, data["limit_applied"])
	assert.EqualValues(t, 10, data["result_count"])
}

func TestAutocompleteDefaultLimit(t *testing.T) {
	repo := &fakeClientRepo{names: []*dto.NameRead{{ID: 1, Name: "Acme"}}}
	app := newTestApp(repo)

	status, payload := doRequest(t, app, http.MethodGet, "/api/v1/clients/autocomplete", "")

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 5, repo.lastCap)
	data := payload["data"].(map[string]any)
	assert.EqualValues(t, 1, data["result_count"])
}

func TestGetMissingClientReturns404Envelope(t *testing.T) {
	app := newTestApp(&fakeClientRepo{})

	status, payload := doRequest(t, app, http.MethodGet, "/api/v1/clients/99", "")

	require.Equal(t, http.StatusNotFound, status)
	errBody := payload["error"].(map[string]any)
	assert.Equal(t, "NOT_FOUND", errBody["errorCode"])
}

func TestCreateClientValidationDetails(t *testing.T) {
	app := newTestApp(&fakeClientRepo{})

	status, payload := doRequest(t, app, http.MethodPost, "/api/v1/clients/", `{"email":"not-an-email"}`)

	require.Equal(t, http.StatusUnprocessableEntity, status)
	errBody := payload["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_ERROR", errBody["errorCode"])
	details := errBody["details"].(map[string]any)
	assert.Contains(t, details, "name")
	assert.Contains(t, details, "email")
}

func TestUnknownRouteEnvelope(t *testing.T) {
	app := newTestApp(&fakeClientRepo{})

	status, payload := doRequest(t, app, http.MethodGet, "/api/v1/nope", "")

	require.Equal(t, http.StatusNotFound, status)
	errBody := payload["error"].(map[string]any)
	assert.Equal(t, "ROUTE_NOT_FOUND", errBody["errorCode"])
	details := errBody["details"].(map[string]any)
	assert.Contains(t, details["available_routes"], "/api/v1/clients")
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(&fakeClientRepo{})

	status, payload := doRequest(t, app, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "HEALTHY", payload["successCode"])
}
