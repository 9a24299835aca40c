package query_test

import (
	"testing"

	"github.com/finops/backoffice/pkg/query"
	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		page     query.PageRequest
		total    int64
		want     query.Pagination
		wantOffs int
	}{
		{
			name:  "middle page of six",
			page:  query.PageRequest{Page: 2, Limit: 25},
			total: 150,
			want: query.Pagination{
				CurrentPage: 2, PerPage: 25, TotalCount: 150, TotalPages: 6,
				HasNextPage: true, HasPreviousPage: true,
			},
			wantOffs: 25,
		},
		{
			name:  "first page",
			page:  query.PageRequest{Page: 1, Limit: 50},
			total: 120,
			want: query.Pagination{
				CurrentPage: 1, PerPage: 50, TotalCount: 120, TotalPages: 3,
				HasNextPage: true, HasPreviousPage: false,
			},
			wantOffs: 0,
		},
		{
			name:  "last page not full",
			page:  query.PageRequest{Page: 3, Limit: 50},
			total: 120,
			want: query.Pagination{
				CurrentPage: 3, PerPage: 50, TotalCount: 120, TotalPages: 3,
				HasNextPage: false, HasPreviousPage: true,
			},
			wantOffs: 100,
		},
		{
			name:  "empty result set has zero pages",
			page:  query.PageRequest{Page: 1, Limit: 50},
			total: 0,
			want: query.Pagination{
				CurrentPage: 1, PerPage: 50, TotalCount: 0, TotalPages: 0,
				HasNextPage: false, HasPreviousPage: false,
			},
			wantOffs: 0,
		},
		{
			name:  "page past the end keeps true totals",
			page:  query.PageRequest{Page: 9, Limit: 10},
			total: 42,
			want: query.Pagination{
				CurrentPage: 9, PerPage: 10, TotalCount: 42, TotalPages: 5,
				HasNextPage: false, HasPreviousPage: true,
			},
			wantOffs: 80,
		},
		{
			name:  "exact multiple of limit",
			page:  query.PageRequest{Page: 1, Limit: 10},
			total: 30,
			want: query.Pagination{
				CurrentPage: 1, PerPage: 10, TotalCount: 30, TotalPages: 3,
				HasNextPage: true, HasPreviousPage: false,
			},
			wantOffs: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, query.NewPagination(tt.page, tt.total))
			assert.Equal(t, tt.wantOffs, tt.page.Offset())
		})
	}
}
