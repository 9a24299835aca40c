package common

import (
	"net/url"

	"github.com/finops/backoffice/pkg/config"
	"github.com/finops/backoffice/pkg/dto"
	"github.com/finops/backoffice/pkg/query"
)

// ParseEntityListQuery normalizes the shared list parameters (page/limit,
// sort_by/sort_order, search, start_date/end_date) against the entity's
// schema. Unknown sort input falls back to the schema default instead of
// failing.
func ParseEntityListQuery(
	vs url.Values,
	schema query.ListSchema,
	p config.PaginationConfig,
) (dto.EntityListQuery, error) {
	page, err := query.ParsePage(vs, p.DefaultLimit, p.MaxLimit)
	if err != nil {
		return dto.EntityListQuery{}, err
	}
	dates, err := query.DateRangeParam(vs, "start_date", "end_date")
	if err != nil {
		return dto.EntityListQuery{}, err
	}
	return dto.EntityListQuery{
		Page:   page,
		Sort:   schema.ResolveSort(vs.Get("sort_by"), vs.Get("sort_order")),
		Search: SearchTerm(vs),
		Dates:  dates,
	}, nil
}

// NewListPayload assembles the data block of a paginated list response.
func NewListPayload(
	data any,
	page query.PageRequest,
	total int64,
	filters map[string]any,
	search string,
	sort query.Sort,
) ListPayload {
	return ListPayload{
		Data:           data,
		Pagination:     query.NewPagination(page, total),
		FiltersApplied: filters,
		SearchApplied:  search,
		SortApplied:    sort.Applied(),
	}
}

// NewAutocompletePayload assembles the data block of an autocomplete
// response.
func NewAutocompletePayload(data []*dto.NameRead, term string, limit int) AutocompletePayload {
	if data == nil {
		data = []*dto.NameRead{}
	}
	return AutocompletePayload{
		Data:         data,
		SearchQuery:  term,
		ResultCount:  len(data),
		LimitApplied: limit,
	}
}
