package dto

import (
	"github.com/finops/backoffice/pkg/query"
	"github.com/shopspring/decimal"
)

// EntityListQuery is the normalized list request shared by clients, banks,
// cards and their profiler counterparts: search, sort, pagination and an
// optional creation-date range.
type EntityListQuery struct {
	Page   query.PageRequest
	Sort   query.Sort
	Search string
	Dates  *query.DateRange
}

// Applied echoes the active filters for the response envelope.
func (q EntityListQuery) Applied() map[string]any {
	filters := map[string]any{}
	if q.Dates != nil {
		filters["start_date"] = q.Dates.FromString()
		filters["end_date"] = q.Dates.ToString()
	}
	return filters
}

// TransactionListQuery is the normalized list request for the primary ledger.
type TransactionListQuery struct {
	Page      query.PageRequest
	Sort      query.Sort
	Search    string
	Type      *int
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	Dates     *query.DateRange
	BankIDs   []int64
	CardIDs   []int64
	ClientIDs []int64
}

// Applied echoes the active filters for the response envelope.
func (q TransactionListQuery) Applied() map[string]any {
	filters := map[string]any{}
	if q.Type != nil {
		filters["transaction_type"] = *q.Type
	}
	if q.MinAmount != nil {
		filters["min_amount"] = q.MinAmount.String()
	}
	if q.MaxAmount != nil {
		filters["max_amount"] = q.MaxAmount.String()
	}
	if q.Dates != nil {
		filters["start_date"] = q.Dates.FromString()
		filters["end_date"] = q.Dates.ToString()
	}
	if len(q.BankIDs) > 0 {
		filters["bank_ids"] = q.BankIDs
	}
	if len(q.CardIDs) > 0 {
		filters["card_ids"] = q.CardIDs
	}
	if len(q.ClientIDs) > 0 {
		filters["client_ids"] = q.ClientIDs
	}
	return filters
}

// ProfileListQuery is the normalized list request for profiler profiles.
type ProfileListQuery struct {
	Page      query.PageRequest
	Sort      query.Sort
	Search    string
	Status    string
	ClientIDs []int64
	BankIDs   []int64
}

// Applied echoes the active filters for the response envelope.
func (q ProfileListQuery) Applied() map[string]any {
	filters := map[string]any{}
	if q.Status != "" {
		filters["status"] = q.Status
	}
	if len(q.ClientIDs) > 0 {
		filters["client_ids"] = q.ClientIDs
	}
	if len(q.BankIDs) > 0 {
		filters["bank_ids"] = q.BankIDs
	}
	return filters
}

// ProfilerTransactionListQuery is the normalized list request for the
// profiler ledger.
type ProfilerTransactionListQuery struct {
	Page       query.PageRequest
	Sort       query.Sort
	Search     string
	ProfileIDs []int64
	Type       string
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
	Dates      *query.DateRange
}

// Applied echoes the active filters for the response envelope.
func (q ProfilerTransactionListQuery) Applied() map[string]any {
	filters := map[string]any{}
	if len(q.ProfileIDs) > 0 {
		filters["profile_id"] = q.ProfileIDs
	}
	if q.Type != "" {
		filters["transaction_type"] = q.Type
	}
	if q.MinAmount != nil {
		filters["min_amount"] = q.MinAmount.String()
	}
	if q.MaxAmount != nil {
		filters["max_amount"] = q.MaxAmount.String()
	}
	if q.Dates != nil {
		filters["start_date"] = q.Dates.FromString()
		filters["end_date"] = q.Dates.ToString()
	}
	return filters
}
