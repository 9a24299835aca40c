package query_test

import (
	"net/url"
	"testing"

	"github.com/finops/backoffice/pkg/apperr"
	"github.com/finops/backoffice/pkg/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseQuery(t *testing.T, raw string) url.Values {
	t.Helper()
	vs, err := url.ParseQuery(raw)
	require.NoError(t, err)
	return vs
}

func TestParsePage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    query.PageRequest
		wantErr bool
	}{
		{"defaults", "", query.PageRequest{Page: 1, Limit: 50}, false},
		{"explicit", "page=3&limit=20", query.PageRequest{Page: 3, Limit: 20}, false},
		{"limit clamped to max", "limit=5000", query.PageRequest{Page: 1, Limit: 100}, false},
		{"zero page rejected", "page=0", query.PageRequest{}, true},
		{"negative limit rejected", "limit=-1", query.PageRequest{}, true},
		{"non-numeric page rejected", "page=two", query.PageRequest{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := query.ParsePage(mustParseQuery(t, tt.raw), 50, 100)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, "VALIDATION_ERROR", apperr.From(err).Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIDSetParam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    []int64
		wantErr bool
	}{
		{"absent means omitted", "", nil, false},
		{"single value", "bank_ids=4", []int64{4}, false},
		{"repeated values", "bank_ids=4&bank_ids=7", []int64{4, 7}, false},
		{"bracket variant", "bank_ids[]=1&bank_ids[]=2", []int64{1, 2}, false},
		{"comma separated", "bank_ids=1,2,3", []int64{1, 2, 3}, false},
		{"deduplicated", "bank_ids=5&bank_ids=5,5", []int64{5}, false},
		{"empty entries dropped", "bank_ids=,,", nil, false},
		{"non-integer rejected", "bank_ids=abc", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := query.IDSetParam(mustParseQuery(t, tt.raw), "bank_ids")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecimalRange(t *testing.T) {
	t.Parallel()

	t.Run("parses both bounds", func(t *testing.T) {
		t.Parallel()
		minVal, maxVal, err := query.DecimalRange(
			mustParseQuery(t, "min_amount=10.50&max_amount=99"), "min_amount", "max_amount")
		require.NoError(t, err)
		require.NotNil(t, minVal)
		require.NotNil(t, maxVal)
		assert.Equal(t, "10.5", minVal.String())
		assert.Equal(t, "99", maxVal.String())
	})

	t.Run("non-numeric names the field", func(t *testing.T) {
		t.Parallel()
		_, _, err := query.DecimalRange(
			mustParseQuery(t, "min_amount=lots"), "min_amount", "max_amount")
		require.Error(t, err)
		details := apperr.From(err).Details.(map[string]string)
		assert.Equal(t, "min_amount", details["field"])
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		t.Parallel()
		_, _, err := query.DecimalRange(
			mustParseQuery(t, "min_amount=100&max_amount=1"), "min_amount", "max_amount")
		require.Error(t, err)
	})
}

func TestDateRangeParam(t *testing.T) {
	t.Parallel()

	t.Run("inclusive bounds", func(t *testing.T) {
		t.Parallel()
		r, err := query.DateRangeParam(
			mustParseQuery(t, "start_date=2024-01-01&end_date=2024-01-31"), "start_date", "end_date")
		require.NoError(t, err)
		require.NotNil(t, r)
		assert.Equal(t, "2024-01-01", r.FromString())
		assert.Equal(t, "2024-01-31", r.ToString())
		assert.Equal(t, "2024-02-01", r.UpperBound().Format("2006-01-02"))
	})

	t.Run("open-ended start only", func(t *testing.T) {
		t.Parallel()
		r, err := query.DateRangeParam(
			mustParseQuery(t, "start_date=2024-01-01"), "start_date", "end_date")
		require.NoError(t, err)
		require.NotNil(t, r)
		assert.NotNil(t, r.From)
		assert.Nil(t, r.To)
		assert.Nil(t, r.UpperBound())
	})

	t.Run("start after end rejected", func(t *testing.T) {
		t.Parallel()
		_, err := query.DateRangeParam(
			mustParseQuery(t, "start_date=2024-02-01&end_date=2024-01-01"), "start_date", "end_date")
		require.Error(t, err)
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		t.Parallel()
		_, err := query.DateRangeParam(
			mustParseQuery(t, "start_date=01-01-2024"), "start_date", "end_date")
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.From(err).Code)
	})

	t.Run("absent range is nil", func(t *testing.T) {
		t.Parallel()
		r, err := query.DateRangeParam(mustParseQuery(t, ""), "start_date", "end_date")
		require.NoError(t, err)
		assert.Nil(t, r)
	})
}

func TestEnumParams(t *testing.T) {
	t.Parallel()

	t.Run("status accepts documented values", func(t *testing.T) {
		t.Parallel()
		got, err := query.EnumParam(mustParseQuery(t, "status=active"), "status", "active", "done")
		require.NoError(t, err)
		assert.Equal(t, "active", got)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		t.Parallel()
		_, err := query.EnumParam(mustParseQuery(t, "status=archived"), "status", "active", "done")
		require.Error(t, err)
	})

	t.Run("transaction_type zero is valid", func(t *testing.T) {
		t.Parallel()
		got, err := query.IntEnumParam(mustParseQuery(t, "transaction_type=0"), "transaction_type", 0, 1)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 0, *got)
	})

	t.Run("transaction_type out of range rejected", func(t *testing.T) {
		t.Parallel()
		_, err := query.IntEnumParam(mustParseQuery(t, "transaction_type=7"), "transaction_type", 0, 1)
		require.Error(t, err)
	})
}
