package query

// PageRequest is a normalized page/limit pair.
type PageRequest struct {
	Page  int
	Limit int
}

// Offset converts the page number into a row offset.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination is the metadata block attached to every list response.
type Pagination struct {
	CurrentPage     int   `json:"current_page"`
	PerPage         int   `json:"per_page"`
	TotalCount      int64 `json:"total_count"`
	TotalPages      int   `json:"total_pages"`
	HasNextPage     bool  `json:"has_next_page"`
	HasPreviousPage bool  `json:"has_previous_page"`
}

// NewPagination derives the metadata for a page against a total row count
// produced by the paired count query. A page past the last one is not an
// error; it simply has no next page and keeps the true totals.
func NewPagination(p PageRequest, totalCount int64) Pagination {
	totalPages := 0
	if totalCount > 0 {
		totalPages = int((totalCount + int64(p.Limit) - 1) / int64(p.Limit))
	}
	return Pagination{
		CurrentPage:     p.Page,
		PerPage:         p.Limit,
		TotalCount:      totalCount,
		TotalPages:      totalPages,
		HasNextPage:     p.Page < totalPages,
		HasPreviousPage: p.Page > 1,
	}
}
