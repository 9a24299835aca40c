// Package query implements the paginated list-query layer shared by every
// entity endpoint: a declarative per-entity schema of searchable and sortable
// columns, normalizers that turn raw query-string values into typed filters,
// and the pagination arithmetic. SQL execution stays in the repositories; this
// package only decides what the data query and its paired count query share.
package query

import (
	"fmt"
	"strings"
)

// Order is a sort direction.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// ListSchema declares, for one entity, which columns free-text search spans,
// which sort keys are allow-listed (and the column or expression each maps
// to), and the default sort used when a request asks for an unknown key.
type ListSchema struct {
	Table            string
	IDColumn         string
	SearchColumns    []string
	SortColumns      map[string]string
	DefaultSortKey   string
	DefaultSortOrder Order
}

// Sort is a resolved, allow-listed sort selection.
type Sort struct {
	Key    string
	Column string
	Order  Order
}

// SortApplied echoes the effective sort back to the client. It always reflects
// the defaulted values, never the raw input.
type SortApplied struct {
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
}

// Applied returns the echo block for the response envelope.
func (s Sort) Applied() SortApplied {
	return SortApplied{SortBy: s.Key, SortOrder: string(s.Order)}
}

// Clause renders the ORDER BY expression, supplemented with the primary key
// ascending so pages stay stable when the chosen column has duplicates.
func (s Sort) Clause(idColumn string) string {
	dir := "ASC"
	if s.Order == OrderDesc {
		dir = "DESC"
	}
	return fmt.Sprintf("%s %s, %s ASC", s.Column, dir, idColumn)
}

// ResolveSort maps the requested sort key and order onto the allow-list.
// Unknown keys fall back to the schema default instead of failing the
// request; unknown orders fall back to the schema's default order.
func (s ListSchema) ResolveSort(sortBy, sortOrder string) Sort {
	key := strings.TrimSpace(sortBy)
	column, ok := s.SortColumns[key]
	if !ok {
		key = s.DefaultSortKey
		column = s.SortColumns[key]
	}
	order := s.DefaultSortOrder
	switch strings.ToLower(strings.TrimSpace(sortOrder)) {
	case "asc":
		order = OrderAsc
	case "desc":
		order = OrderDesc
	}
	return Sort{Key: key, Column: column, Order: order}
}

// SearchCondition builds the case-insensitive substring clause spanning the
// schema's search columns. The same condition must be applied to both the
// data query and its count query. ok is false when there is nothing to match.
func (s ListSchema) SearchCondition(term string) (cond string, args []any, ok bool) {
	term = strings.TrimSpace(term)
	if term == "" || len(s.SearchColumns) == 0 {
		return "", nil, false
	}
	parts := make([]string, 0, len(s.SearchColumns))
	args = make([]any, 0, len(s.SearchColumns))
	for _, col := range s.SearchColumns {
		parts = append(parts, col+" ILIKE ?")
		args = append(args, "%"+term+"%")
	}
	return "(" + strings.Join(parts, " OR ") + ")", args, true
}
