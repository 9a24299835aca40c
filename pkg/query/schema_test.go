package query_test

import (
	"testing"

	"github.com/finops/backoffice/pkg/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSortAllowList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		sortBy    string
		sortOrder string
		wantKey   string
		wantOrder query.Order
	}{
		{"known key and order", "transaction_amount", "asc", "transaction_amount", query.OrderAsc},
		{"unknown key falls back to default", "drop table", "asc", "create_date", query.OrderAsc},
		{"unknown order falls back to default", "client_name", "sideways", "client_name", query.OrderDesc},
		{"both empty use schema defaults", "", "", "create_date", query.OrderDesc},
		{"order is case-insensitive", "create_date", "ASC", "create_date", query.OrderAsc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := query.Transactions.ResolveSort(tt.sortBy, tt.sortOrder)
			assert.Equal(t, tt.wantKey, got.Key)
			assert.Equal(t, tt.wantOrder, got.Order)
			assert.Equal(t, query.Transactions.SortColumns[tt.wantKey], got.Column)
		})
	}
}

func TestResolveSortNameDefaultIsAscending(t *testing.T) {
	t.Parallel()

	got := query.Clients.ResolveSort("nonsense", "")
	assert.Equal(t, "name", got.Key)
	assert.Equal(t, query.OrderAsc, got.Order)
}

func TestSortAppliedEchoesEffectiveValues(t *testing.T) {
	t.Parallel()

	got := query.Transactions.ResolveSort("bogus", "bogus").Applied()
	assert.Equal(t, query.SortApplied{SortBy: "create_date", SortOrder: "desc"}, got)
}

func TestSortClauseAppendsPrimaryKeyTieBreak(t *testing.T) {
	t.Parallel()

	s := query.Transactions.ResolveSort("transaction_amount", "desc")
	assert.Equal(t,
		"transactions.transaction_amount DESC, transactions.id ASC",
		s.Clause(query.Transactions.IDColumn))
}

func TestSearchCondition(t *testing.T) {
	t.Parallel()

	t.Run("spans all searchable columns with OR", func(t *testing.T) {
		t.Parallel()
		cond, args, ok := query.Transactions.SearchCondition("acme")
		require.True(t, ok)
		assert.Equal(t,
			"(clients.name ILIKE ? OR banks.name ILIKE ? OR cards.name ILIKE ? OR transactions.remark ILIKE ?)",
			cond)
		require.Len(t, args, 4)
		for _, a := range args {
			assert.Equal(t, "%acme%", a)
		}
	})

	t.Run("blank term produces no clause", func(t *testing.T) {
		t.Parallel()
		_, _, ok := query.Transactions.SearchCondition("   ")
		assert.False(t, ok)
	})
}
