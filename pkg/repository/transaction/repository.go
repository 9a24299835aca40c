// Package transaction declares the persistence contract for the primary
// ledger.
package transaction

import (
	"context"

	"github.com/finops/backoffice/pkg/dto"
)

// Repository is the persistence interface for ledger transactions.
// ListPaginated runs the data query and its count query against one shared
// predicate and returns both the page and the total. ListForReport applies
// the same filters without pagination, capped at maxRows.
type Repository interface {
	Create(ctx context.Context, create *dto.TransactionCreate) (*dto.TransactionRead, error)
	Get(ctx context.Context, id int64) (*dto.TransactionRead, error)
	Update(ctx context.Context, id int64, update *dto.TransactionUpdate) (*dto.TransactionRead, error)
	Delete(ctx context.Context, id int64) (int64, error)
	ListPaginated(ctx context.Context, q dto.TransactionListQuery) ([]*dto.TransactionRead, int64, error)
	ListForReport(ctx context.Context, q dto.TransactionListQuery, maxRows int) ([]*dto.TransactionRead, error)
}
